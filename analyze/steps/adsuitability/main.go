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
	"errors"
	"io/fs"
	"log"

	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/analyze/common"
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/cloud"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("error loading .env file: %v", err)
	}

	cloudConfig, err := cloud.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := initLogger(cloudConfig.Log)
	defer logger.Sync()

	ctx := context.Background()
	providers, err := cloud.InitTelemetry(ctx, cloudConfig.Telemetry, logger)
	if err != nil {
		logger.Fatal("failed to initialize telemetry", zap.Error(err))
	}

	genaiRunConfig, err := common.NewGenaiRunConfig(ctx, cloudConfig, logger)
	if err != nil {
		providers.Shutdown(ctx)
		logger.Fatal("failed to create cloud clients", zap.Error(err))
	}

	run, runErr := runWorkflow(genaiRunConfig)

	if err := genaiRunConfig.Close(); err != nil {
		logger.Warn("failed to close cloud clients", zap.Error(err))
	}
	if err := providers.Shutdown(ctx); err != nil {
		logger.Warn("failed to flush telemetry", zap.Error(err))
	}
	if runErr != nil {
		genaiRunConfig.Logger.Fatal("ad suitability workflow failed", zap.Error(runErr))
	}

	genaiRunConfig.Logger.Info("finished processing",
		zap.Int("annotations", len(run.annotations)),
		zap.Int("retained_objects", len(run.filtered)),
		zap.Any("outputs", genaiRunConfig.GetStepsOutput([]string{
			common.PARSED_OUTPUT_STEP,
			common.FILTERED_OUTPUT_STEP,
			common.AD_SUITABILITY_STEP,
		})),
	)
}
