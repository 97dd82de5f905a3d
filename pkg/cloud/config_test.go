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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	EnvConfigFile, "INPUT_FILE", "OUTPUT_BUCKET", "OUTPUT_PREFIX", "SUITABILITY_BACKEND",
	"GEMINI_API_ENDPOINT", "GEMINI_API_KEY", "GEMINI_MODEL", "GOOGLE_CLOUD_PROJECT",
	"GOOGLE_CLOUD_LOCATION", "LOG_LEVEL", "LOG_FORMAT", "OTEL_EXPORTER_OTLP_ENDPOINT",
	"EXCLUDED_LABELS", "ANNOTATION_TIMEOUT", "GEMINI_HTTP_TIMEOUT", "MIN_CONFIDENCE",
	"MIN_DURATION_SEC", "OTEL_ENABLED",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("INPUT_FILE", "media/videos/ad.mp4")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gs://media/videos/ad.mp4", config.Input.VideoURI)
	assert.Equal(t, "media", config.Output.Bucket)
	assert.Equal(t, 300*time.Second, config.Annotation.Timeout)
	assert.Equal(t, 0.6, config.Filter.MinConfidence)
	assert.Equal(t, 5.0, config.Filter.MinDurationSec)
	assert.Equal(t, []string{"logo", "face", "person", "explicit_content"}, config.Filter.ExcludedLabels)
	assert.Equal(t, BackendREST, config.Suitability.Backend)
	assert.Equal(t, DefaultGeminiEndpoint, config.Suitability.Endpoint)
	assert.False(t, config.Telemetry.Enabled)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  video_uri: gs://media/in.mp4
output:
  bucket: reports
  prefix: /runs/
annotation:
  timeout: 90s
filter:
  min_confidence: 0.7
  excluded_labels: [logo]
suitability:
  backend: GenAI
  model: gemini-2.0-flash
`), 0o600))
	t.Setenv(EnvConfigFile, path)
	t.Setenv("MIN_DURATION_SEC", "2.5")
	t.Setenv("OTEL_ENABLED", "true")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gs://media/in.mp4", config.Input.VideoURI)
	assert.Equal(t, "reports", config.Output.Bucket)
	assert.Equal(t, "runs", config.Output.Prefix)
	assert.Equal(t, 90*time.Second, config.Annotation.Timeout)
	assert.Equal(t, 0.7, config.Filter.MinConfidence)
	assert.Equal(t, 2.5, config.Filter.MinDurationSec)
	assert.Equal(t, []string{"logo"}, config.Filter.ExcludedLabels)
	assert.Equal(t, BackendGenAI, config.Suitability.Backend)
	assert.Equal(t, "gemini-2.0-flash", config.Suitability.Model)
	assert.True(t, config.Telemetry.Enabled)

	criteria := config.FilterCriteria()
	assert.Equal(t, 0.7, criteria.MinConfidence)
	assert.Equal(t, 2.5, criteria.MinDurationSec)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing input", env: map[string]string{}},
		{name: "input without object", env: map[string]string{"INPUT_FILE": "media"}},
		{name: "bad float", env: map[string]string{"INPUT_FILE": "media/a.mp4", "MIN_CONFIDENCE": "high"}},
		{name: "confidence out of range", env: map[string]string{"INPUT_FILE": "media/a.mp4", "MIN_CONFIDENCE": "1.5"}},
		{name: "zero duration", env: map[string]string{"INPUT_FILE": "media/a.mp4", "MIN_DURATION_SEC": "0"}},
		{name: "bad timeout", env: map[string]string{"INPUT_FILE": "media/a.mp4", "ANNOTATION_TIMEOUT": "soon"}},
		{name: "unknown backend", env: map[string]string{"INPUT_FILE": "media/a.mp4", "SUITABILITY_BACKEND": "carrier-pigeon"}},
		{name: "missing config file", env: map[string]string{"INPUT_FILE": "media/a.mp4", EnvConfigFile: "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("ADS_TEST_GETENV", "")
	assert.Equal(t, "fallback", Getenv("ADS_TEST_GETENV", "fallback"))
	t.Setenv("ADS_TEST_GETENV", "value")
	assert.Equal(t, "value", Getenv("ADS_TEST_GETENV", "fallback"))
}
