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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGCSURI(t *testing.T) {
	tests := []struct {
		uri        string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{uri: "gs://media/videos/cat.mp4", wantBucket: "media", wantObject: "videos/cat.mp4"},
		{uri: "gs://media/out - 1.json", wantBucket: "media", wantObject: "out - 1.json"},
		{uri: "media/videos/cat.mp4", wantErr: true},
		{uri: "gs://media", wantErr: true},
		{uri: "gs://media/", wantErr: true},
		{uri: "gs:///object", wantErr: true},
		{uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, object, err := ParseGCSURI(tt.uri)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGCSURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantObject, object)
		})
	}
}

func TestGCSURI(t *testing.T) {
	assert.Equal(t, "gs://media/reports/output-1.json", GCSURI("media", "reports/output-1.json"))
}
