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

	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/cloud"
)

type GenaiStepConfig struct {
	BasicStepConfig
	GenaiRunConfig *GenaiRunConfig
	Counters       *cloud.GenAICounter
}

func NewGenaiStepConfig(stepKey string, genaiRunConfig *GenaiRunConfig, stepLogic func(ctx context.Context) (string, error)) (*GenaiStepConfig, error) {
	basicStepConfig := NewBasicStepConfig(genaiRunConfig.BasicRunConfig, stepKey, stepLogic)
	return &GenaiStepConfig{
		BasicStepConfig: *basicStepConfig,
		GenaiRunConfig:  genaiRunConfig,
		Counters:        cloud.NewGenAICounter(genaiRunConfig.Meter, stepKey),
	}, nil
}
