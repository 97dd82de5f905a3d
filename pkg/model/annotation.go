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

package model

// BoundingBox is a normalized rectangle (0-1 coordinates) locating an object within a frame.
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Frame is a single tracked position of an object.
type Frame struct {
	Time        float64     `json:"time"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

// ObjectAnnotation is one object track as returned by the video annotation service.
type ObjectAnnotation struct {
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
	Frames      []*Frame `json:"frames"`
}

// FilteredObject is an annotation that passed the filter, with its tracked duration.
type FilteredObject struct {
	Object     string   `json:"object"`
	Confidence float64  `json:"confidence"`
	Duration   float64  `json:"duration"`
	Frames     []*Frame `json:"frames"`
}

// TrackedDuration returns the span between the earliest and latest frame of the annotation.
// The boolean is false when the annotation has no frames.
func (a *ObjectAnnotation) TrackedDuration() (float64, bool) {
	if len(a.Frames) == 0 {
		return 0, false
	}
	minTime, maxTime := a.Frames[0].Time, a.Frames[0].Time
	for _, frame := range a.Frames[1:] {
		minTime = min(minTime, frame.Time)
		maxTime = max(maxTime, frame.Time)
	}
	return maxTime - minTime, true
}
