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
	"fmt"

	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/analyze/common"
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/model"
)

func filter_objects(run *adSuitabilityRun) error {
	stepConfig := common.NewBasicStepConfig(run.config.BasicRunConfig, common.FILTER_OBJECTS_STEP, nil)
	stepConfig.StepLogic = func(ctx context.Context) (string, error) {
		criteria := run.config.CloudConfig.FilterCriteria()
		run.filtered = model.FilterObjects(run.annotations, criteria)
		run.report = model.FormatTextReport(run.filtered)

		if counter, err := run.config.Meter.Int64Counter("ads.objects.retained"); err == nil {
			counter.Add(ctx, int64(len(run.filtered)))
		}
		return fmt.Sprintf("retained %d of %d object annotations", len(run.filtered), len(run.annotations)), nil
	}
	return stepConfig.RunStep()
}
