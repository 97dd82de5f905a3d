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

package common

import (
	"context"
	"fmt"
	"time"

	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/cloud"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type BasicStepConfig struct {
	BasicRunConfig *BasicRunConfig
	StepKey        string
	StepLogic      func(ctx context.Context) (string, error)
}

func NewBasicStepConfig(basicRunConfig *BasicRunConfig, stepKey string, stepLogic func(ctx context.Context) (string, error)) *BasicStepConfig {
	return &BasicStepConfig{
		BasicRunConfig: basicRunConfig,
		StepKey:        stepKey,
		StepLogic:      stepLogic,
	}
}

func (config *BasicStepConfig) StepCompleted() bool {
	status := config.BasicRunConfig.GetStepStatusByKey(config.StepKey)
	return status != nil && status.Status == StepCompleted
}

// RunStep executes the step logic once per run inside a trace span and records its output.
// A failing step is recorded as failed and its error returned.
func (config *BasicStepConfig) RunStep() error {
	logger := config.BasicRunConfig.Logger.With(zap.String("step", config.StepKey))
	if config.StepCompleted() {
		logger.Info("step already completed, skipping step")
		return nil
	}
	if config.StepLogic == nil {
		return fmt.Errorf("step %s has no logic", config.StepKey)
	}

	ctx, span := otel.Tracer(cloud.InstrumentationName).Start(config.BasicRunConfig.Ctx, config.StepKey)
	defer span.End()
	span.SetAttributes(attribute.String("run_id", config.BasicRunConfig.RunID))

	start := time.Now()
	output, err := config.StepLogic(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		config.BasicRunConfig.setStepStatus(config.StepKey, StepStatus{Output: err.Error(), Status: StepFailed})
		logger.Error("step failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return fmt.Errorf("error executing step %s: %w", config.StepKey, err)
	}

	config.BasicRunConfig.setStepStatus(config.StepKey, StepStatus{Output: output, Status: StepCompleted})
	logger.Info("step completed", zap.String("output", output), zap.Duration("elapsed", time.Since(start)))
	return nil
}
