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
	"go.uber.org/zap"
)

func check_ad_suitability(run *adSuitabilityRun) error {
	stepConfig, err := common.NewGenaiStepConfig(common.AD_SUITABILITY_STEP, run.config, nil)
	if err != nil {
		return err
	}

	stepConfig.StepLogic = checkAdSuitabilityLogicFunc(stepConfig, run)
	return stepConfig.RunStep()
}

func checkAdSuitabilityLogicFunc(config *common.GenaiStepConfig, run *adSuitabilityRun) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		runConfig := config.GenaiRunConfig
		checker := cloud.NewSuitabilityChecker(
			runConfig.Generator,
			runConfig.BlobWriter,
			runConfig.TemplateService,
			config.Counters,
			runConfig.Logger.With(zap.String("step", config.StepKey)),
		)

		outputURI := runConfig.GetOutputURI(common.AdSuitabilityOutputName, "txt")
		verdict, err := checker.Check(ctx, run.report, outputURI)
		if err != nil {
			return "", err
		}
		run.verdict = verdict
		if verdict == cloud.SuitabilityErrorText {
			return verdict, nil
		}
		return outputURI, nil
	}
}
