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
	"go.uber.org/zap"
)

func annotate_video(run *adSuitabilityRun) error {
	stepConfig, err := common.NewGenaiStepConfig(common.ANNOTATE_VIDEO_STEP, run.config, nil)
	if err != nil {
		return err
	}

	stepConfig.StepLogic = annotateVideoLogicFunc(stepConfig, run)
	return stepConfig.RunStep()
}

func annotateVideoLogicFunc(config *common.GenaiStepConfig, run *adSuitabilityRun) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		runConfig := config.GenaiRunConfig
		outputURI := runConfig.GetOutputURI(common.AnnotationOutputName, "json")
		runConfig.Logger.Info("processing video",
			zap.String("annotation_output", outputURI),
			zap.Duration("timeout", runConfig.CloudConfig.Annotation.Timeout))

		annotations, err := runConfig.Annotator.AnnotateVideo(ctx, runConfig.InputURI, outputURI)
		if err != nil {
			return "", err
		}
		run.annotations = annotations

		if counter, err := runConfig.Meter.Int64Counter("ads.annotations.received"); err == nil {
			counter.Add(ctx, int64(len(annotations)))
		}
		return fmt.Sprintf("received %d object annotations", len(annotations)), nil
	}
}
