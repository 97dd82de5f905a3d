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

import (
	"strings"
)

const (
	DefaultMinConfidence  = 0.6
	DefaultMinDurationSec = 5.0
)

// DefaultExcludedLabels are the labels produced by the logo, face, person and explicit content
// features. They are never candidates for ad placement.
var DefaultExcludedLabels = []string{"logo", "face", "person", "explicit_content"}

// FilterCriteria decides which object annotations are kept for the report.
type FilterCriteria struct {
	ExcludedLabels []string
	MinConfidence  float64
	MinDurationSec float64
}

func NewDefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		ExcludedLabels: append([]string(nil), DefaultExcludedLabels...),
		MinConfidence:  DefaultMinConfidence,
		MinDurationSec: DefaultMinDurationSec,
	}
}

func (c FilterCriteria) excludedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.ExcludedLabels))
	for _, label := range c.ExcludedLabels {
		set[strings.ToLower(strings.TrimSpace(label))] = struct{}{}
	}
	return set
}

// FilterObjects keeps the annotations whose label is not excluded (case-insensitive), whose
// confidence is at least MinConfidence and whose tracked duration is at least MinDurationSec.
// Annotations without frames are dropped. The result keeps the input order and is never nil.
func FilterObjects(annotations []*ObjectAnnotation, criteria FilterCriteria) []*FilteredObject {
	excluded := criteria.excludedSet()
	filtered := make([]*FilteredObject, 0)
	for _, annotation := range annotations {
		if annotation == nil {
			continue
		}
		if _, ok := excluded[strings.ToLower(annotation.Description)]; ok {
			continue
		}
		if annotation.Confidence < criteria.MinConfidence {
			continue
		}
		duration, ok := annotation.TrackedDuration()
		if !ok || duration < criteria.MinDurationSec {
			continue
		}
		filtered = append(filtered, &FilteredObject{
			Object:     annotation.Description,
			Confidence: annotation.Confidence,
			Duration:   duration,
			Frames:     annotation.Frames,
		})
	}
	return filtered
}
