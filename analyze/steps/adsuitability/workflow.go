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
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/analyze/common"
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/model"
)

// adSuitabilityRun carries the in-memory results handed from one step to the next.
type adSuitabilityRun struct {
	config      *common.GenaiRunConfig
	annotations []*model.ObjectAnnotation
	filtered    []*model.FilteredObject
	report      string
	verdict     string
}

var workflowSteps = []func(*adSuitabilityRun) error{
	annotate_video,
	filter_objects,
	write_parsed_output,
	write_filtered_output,
	check_ad_suitability,
}

// runWorkflow executes the steps in order and stops at the first failing one.
func runWorkflow(config *common.GenaiRunConfig) (*adSuitabilityRun, error) {
	run := &adSuitabilityRun{config: config}
	for _, step := range workflowSteps {
		if err := step(run); err != nil {
			return run, err
		}
	}
	return run, nil
}
