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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleObjects() []*FilteredObject {
	return []*FilteredObject{
		{
			Object:     "car",
			Confidence: 0.8,
			Duration:   6,
			Frames: []*Frame{
				{Time: 0, BoundingBox: BoundingBox{Left: 0.1, Top: 0.2, Right: 0.5, Bottom: 0.6}},
				{Time: 6, BoundingBox: BoundingBox{Left: 0.15, Top: 0.25, Right: 0.55, Bottom: 0.65}},
			},
		},
		{
			Object:     "bottle",
			Confidence: 0.712345678,
			Duration:   7.25,
			Frames: []*Frame{
				{Time: 1.5, BoundingBox: BoundingBox{Left: 0, Top: 0, Right: 1, Bottom: 1}},
			},
		},
	}
}

func TestFormatTextReport(t *testing.T) {
	want := "Object: car\n" +
		"Confidence: 0.800000\n" +
		"Duration: 6.0 seconds\n" +
		"Frames:\n" +
		"  Time: 0.000000 seconds\n" +
		"  Bounding Box: left = 0.100000, top = 0.200000, right = 0.500000, bottom = 0.600000\n" +
		"  Time: 6.000000 seconds\n" +
		"  Bounding Box: left = 0.150000, top = 0.250000, right = 0.550000, bottom = 0.650000\n" +
		"\n" +
		"Object: bottle\n" +
		"Confidence: 0.712346\n" +
		"Duration: 7.25 seconds\n" +
		"Frames:\n" +
		"  Time: 1.500000 seconds\n" +
		"  Bounding Box: left = 0.000000, top = 0.000000, right = 1.000000, bottom = 1.000000\n" +
		"\n"

	assert.Equal(t, want, FormatTextReport(sampleObjects()))
}

func TestFormatTextReport_Empty(t *testing.T) {
	assert.Equal(t, "", FormatTextReport(nil))
	assert.Equal(t, "", FormatTextReport([]*FilteredObject{}))
}

func TestFormatTextReport_Idempotent(t *testing.T) {
	objects := sampleObjects()
	assert.Equal(t, FormatTextReport(objects), FormatTextReport(objects))
}

func TestFormatJSONReport(t *testing.T) {
	out, err := FormatJSONReport(sampleObjects())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "car", decoded[0]["object"])
	assert.Equal(t, 0.8, decoded[0]["confidence"])
	assert.Equal(t, 6.0, decoded[0]["duration"])

	frames := decoded[0]["frames"].([]any)
	require.Len(t, frames, 2)
	frame := frames[1].(map[string]any)
	assert.Equal(t, 6.0, frame["time"])
	assert.Equal(t, map[string]any{"left": 0.15, "top": 0.25, "right": 0.55, "bottom": 0.65}, frame["bounding_box"])
}

func TestFormatJSONReport_Empty(t *testing.T) {
	out, err := FormatJSONReport(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

// The JSON document and the text report must describe the same objects and frames.
func TestReportsDescribeSameObjects(t *testing.T) {
	objects := sampleObjects()
	out, err := FormatJSONReport(objects)
	require.NoError(t, err)

	var decoded []*FilteredObject
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, FormatTextReport(objects), FormatTextReport(decoded))

	text := FormatTextReport(objects)
	for _, obj := range decoded {
		assert.Contains(t, text, fmt.Sprintf("Object: %s\n", obj.Object))
	}
	assert.Equal(t, 3, strings.Count(text, "  Time: "))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "6.0", formatDuration(6))
	assert.Equal(t, "5.5", formatDuration(5.5))
	assert.Equal(t, "12.345678901", formatDuration(12.345678901))
}
