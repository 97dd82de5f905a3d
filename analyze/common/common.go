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

const (
	StepCompleted = "completed"
	StepFailed    = "failed"

	ANNOTATE_VIDEO_STEP  = "ads_annotate_video"
	FILTER_OBJECTS_STEP  = "ads_filter_objects"
	PARSED_OUTPUT_STEP   = "ads_parsed_output"
	FILTERED_OUTPUT_STEP = "ads_filtered_output"
	AD_SUITABILITY_STEP  = "ads_ad_suitability"
)

// Object name stems of the blobs written by a run.
const (
	AnnotationOutputName    = "annotations"
	FilteredOutputName      = "output"
	ParsedOutputName        = "parsed_output"
	AdSuitabilityOutputName = "ad_suitability_output"
)

type StepStatus struct {
	Output string `json:"output"`
	Status string `json:"status"`
}
