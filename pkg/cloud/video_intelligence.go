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
	"context"
	"fmt"
	"strings"
	"time"

	videointelligence "cloud.google.com/go/videointelligence/apiv1"
	vipb "cloud.google.com/go/videointelligence/apiv1/videointelligencepb"
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/model"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/durationpb"
)

// AnnotationFeatures is the fixed feature set requested for every video. Only object tracking
// feeds the report; the other features label what the filter later excludes.
var AnnotationFeatures = []vipb.Feature{
	vipb.Feature_OBJECT_TRACKING,
	vipb.Feature_LOGO_RECOGNITION,
	vipb.Feature_FACE_DETECTION,
	vipb.Feature_PERSON_DETECTION,
	vipb.Feature_EXPLICIT_CONTENT_DETECTION,
}

// Annotator submits a stored video for analysis and returns its object annotations.
type Annotator interface {
	AnnotateVideo(ctx context.Context, inputURI, outputURI string) ([]*model.ObjectAnnotation, error)
}

type VideoIntelligenceAnnotator struct {
	client  *videointelligence.Client
	timeout time.Duration
}

func NewVideoIntelligenceAnnotator(ctx context.Context, timeout time.Duration, opts ...option.ClientOption) (*VideoIntelligenceAnnotator, error) {
	client, err := videointelligence.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("videointelligence client: %w", err)
	}
	return &VideoIntelligenceAnnotator{client: client, timeout: timeout}, nil
}

func (a *VideoIntelligenceAnnotator) Close() error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Close()
}

// AnnotateVideo starts the annotation operation and blocks until it finishes or the configured
// timeout elapses.
func (a *VideoIntelligenceAnnotator) AnnotateVideo(ctx context.Context, inputURI, outputURI string) ([]*model.ObjectAnnotation, error) {
	req, err := newAnnotateVideoRequest(inputURI, outputURI)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	op, err := a.client.AnnotateVideo(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("videointelligence AnnotateVideo: %w", err)
	}
	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("videointelligence operation %s: %w", op.Name(), err)
	}
	return ConvertObjectAnnotations(resp), nil
}

func newAnnotateVideoRequest(inputURI, outputURI string) (*vipb.AnnotateVideoRequest, error) {
	if !strings.HasPrefix(inputURI, gcsScheme) {
		return nil, fmt.Errorf("%w: input must be gs://... got %q", ErrInvalidGCSURI, inputURI)
	}
	return &vipb.AnnotateVideoRequest{
		InputUri:     inputURI,
		OutputUri:    outputURI,
		Features:     append([]vipb.Feature(nil), AnnotationFeatures...),
		VideoContext: &vipb.VideoContext{},
	}, nil
}

// ConvertObjectAnnotations flattens the object tracking annotations of every result, in the
// order the service returned them.
func ConvertObjectAnnotations(resp *vipb.AnnotateVideoResponse) []*model.ObjectAnnotation {
	annotations := make([]*model.ObjectAnnotation, 0)
	for _, result := range resp.GetAnnotationResults() {
		for _, ota := range result.GetObjectAnnotations() {
			if ota == nil {
				continue
			}
			annotation := &model.ObjectAnnotation{
				Description: ota.GetEntity().GetDescription(),
				Confidence:  float64(ota.GetConfidence()),
				Frames:      make([]*model.Frame, 0, len(ota.GetFrames())),
			}
			for _, frame := range ota.GetFrames() {
				if frame == nil {
					continue
				}
				box := frame.GetNormalizedBoundingBox()
				annotation.Frames = append(annotation.Frames, &model.Frame{
					Time: offsetSeconds(frame.GetTimeOffset()),
					BoundingBox: model.BoundingBox{
						Left:   float64(box.GetLeft()),
						Top:    float64(box.GetTop()),
						Right:  float64(box.GetRight()),
						Bottom: float64(box.GetBottom()),
					},
				})
			}
			annotations = append(annotations, annotation)
		}
	}
	return annotations
}

// offsetSeconds converts a frame offset to seconds at microsecond precision.
func offsetSeconds(d *durationpb.Duration) float64 {
	if d == nil {
		return 0
	}
	return float64(d.GetSeconds()) + float64(d.GetNanos()/1000)/1e6
}
