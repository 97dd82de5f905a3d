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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormatTextReport renders the filtered objects as the plain-text report that is both stored and
// sent to the generative model. The output depends only on its input.
func FormatTextReport(objects []*FilteredObject) string {
	var b strings.Builder
	for _, obj := range objects {
		fmt.Fprintf(&b, "Object: %s\n", obj.Object)
		fmt.Fprintf(&b, "Confidence: %.6f\n", obj.Confidence)
		fmt.Fprintf(&b, "Duration: %s seconds\n", formatDuration(obj.Duration))
		b.WriteString("Frames:\n")
		for _, frame := range obj.Frames {
			box := frame.BoundingBox
			fmt.Fprintf(&b, "  Time: %.6f seconds\n", frame.Time)
			fmt.Fprintf(&b, "  Bounding Box: left = %.6f, top = %.6f, right = %.6f, bottom = %.6f\n",
				box.Left, box.Top, box.Right, box.Bottom)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatJSONReport renders the filtered objects as a JSON array. An empty input yields "[]".
func FormatJSONReport(objects []*FilteredObject) ([]byte, error) {
	if objects == nil {
		objects = []*FilteredObject{}
	}
	out, err := json.Marshal(objects)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filtered objects: %w", err)
	}
	return out, nil
}

// formatDuration prints the shortest decimal form of d, always with a fractional part (6 -> "6.0").
func formatDuration(d float64) string {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
