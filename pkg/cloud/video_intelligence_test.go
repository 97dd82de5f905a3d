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

package cloud

import (
	"testing"

	vipb "cloud.google.com/go/videointelligence/apiv1/videointelligencepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"
)

func trackingFrame(seconds int64, nanos int32, left float32) *vipb.ObjectTrackingFrame {
	return &vipb.ObjectTrackingFrame{
		TimeOffset:            &durationpb.Duration{Seconds: seconds, Nanos: nanos},
		NormalizedBoundingBox: &vipb.NormalizedBoundingBox{Left: left, Top: 0.25, Right: 0.75, Bottom: 0.5},
	}
}

func TestConvertObjectAnnotations(t *testing.T) {
	resp := &vipb.AnnotateVideoResponse{
		AnnotationResults: []*vipb.VideoAnnotationResults{
			{
				ObjectAnnotations: []*vipb.ObjectTrackingAnnotation{
					{
						Entity:     &vipb.Entity{Description: "car"},
						Confidence: 0.5,
						Frames: []*vipb.ObjectTrackingFrame{
							trackingFrame(0, 0, 0.125),
							trackingFrame(6, 500000000, 0.25),
						},
					},
					nil,
				},
			},
			{
				ObjectAnnotations: []*vipb.ObjectTrackingAnnotation{
					{Confidence: 0.75, Frames: []*vipb.ObjectTrackingFrame{{}}},
				},
			},
		},
	}

	got := ConvertObjectAnnotations(resp)
	require.Len(t, got, 2)

	car := got[0]
	assert.Equal(t, "car", car.Description)
	assert.Equal(t, 0.5, car.Confidence)
	require.Len(t, car.Frames, 2)
	assert.Equal(t, 6.5, car.Frames[1].Time)
	assert.Equal(t, 0.25, car.Frames[1].BoundingBox.Left)
	assert.Equal(t, 0.75, car.Frames[1].BoundingBox.Right)

	unnamed := got[1]
	assert.Equal(t, "", unnamed.Description)
	require.Len(t, unnamed.Frames, 1)
	assert.Equal(t, 0.0, unnamed.Frames[0].Time)
	assert.Equal(t, 0.0, unnamed.Frames[0].BoundingBox.Bottom)
}

func TestConvertObjectAnnotations_NilResponse(t *testing.T) {
	got := ConvertObjectAnnotations(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOffsetSecondsDropsSubMicrosecond(t *testing.T) {
	assert.InDelta(t, 2.000001, offsetSeconds(&durationpb.Duration{Seconds: 2, Nanos: 1999}), 1e-12)
	assert.Equal(t, 0.0, offsetSeconds(nil))
}

func TestNewAnnotateVideoRequest(t *testing.T) {
	req, err := newAnnotateVideoRequest("gs://media/in.mp4", "gs://media/output-1.json")
	require.NoError(t, err)
	assert.Equal(t, "gs://media/in.mp4", req.GetInputUri())
	assert.Equal(t, "gs://media/output-1.json", req.GetOutputUri())
	assert.Equal(t, AnnotationFeatures, req.GetFeatures())
	assert.NotNil(t, req.GetVideoContext())

	_, err = newAnnotateVideoRequest("/local/in.mp4", "")
	assert.ErrorIs(t, err, ErrInvalidGCSURI)
}
