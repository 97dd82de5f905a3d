// Copyright 2025 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"

	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/analyze/common"
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/cloud"
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/model"
)

func write_parsed_output(run *adSuitabilityRun) error {
	return runUploadStep(run, common.PARSED_OUTPUT_STEP, common.ParsedOutputName, "txt", cloud.ContentTypeText,
		func() ([]byte, error) {
			return []byte(run.report), nil
		})
}

func write_filtered_output(run *adSuitabilityRun) error {
	return runUploadStep(run, common.FILTERED_OUTPUT_STEP, common.FilteredOutputName, "json", cloud.ContentTypeJSON,
		func() ([]byte, error) {
			return model.FormatJSONReport(run.filtered)
		})
}

// runUploadStep renders a document and stores it under a time-stamped name. The step output is
// the URI written.
func runUploadStep(run *adSuitabilityRun, stepKey, name, ext, contentType string, render func() ([]byte, error)) error {
	stepConfig := common.NewBasicStepConfig(run.config.BasicRunConfig, stepKey, nil)
	stepConfig.StepLogic = func(ctx context.Context) (string, error) {
		data, err := render()
		if err != nil {
			return "", err
		}
		uri := run.config.GetOutputURI(name, ext)
		if err := run.config.BlobWriter.Upload(ctx, uri, data, contentType); err != nil {
			return "", err
		}
		return uri, nil
	}
	return stepConfig.RunStep()
}
