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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/model"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigFile = "ADS_CONFIG_FILE"

	BackendREST  = "rest"
	BackendGenAI = "genai"

	DefaultGeminiModel       = "gemini-1.5-flash"
	DefaultGeminiEndpoint    = "https://generativelanguage.googleapis.com/v1beta/models/" + DefaultGeminiModel + ":generateContent"
	DefaultAnnotationTimeout = 300 * time.Second
	DefaultHTTPTimeout       = 60 * time.Second
)

type InputConfig struct {
	VideoURI string `yaml:"video_uri"`
}

type OutputConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

type AnnotationConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type FilterConfig struct {
	ExcludedLabels []string `yaml:"excluded_labels"`
	MinConfidence  float64  `yaml:"min_confidence"`
	MinDurationSec float64  `yaml:"min_duration_sec"`
}

type SuitabilityConfig struct {
	Backend     string        `yaml:"backend"`
	Endpoint    string        `yaml:"endpoint"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Project     string        `yaml:"project"`
	Location    string        `yaml:"location"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	// PromptTemplate replaces the built-in prompt when set. It is a text/template with a
	// single REPORT parameter.
	PromptTemplate string `yaml:"prompt_template"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TelemetryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
}

type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Annotation  AnnotationConfig  `yaml:"annotation"`
	Filter      FilterConfig      `yaml:"filter"`
	Suitability SuitabilityConfig `yaml:"suitability"`
	Log         LogConfig         `yaml:"log"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

func NewConfig() *Config {
	return &Config{
		Annotation: AnnotationConfig{Timeout: DefaultAnnotationTimeout},
		Filter: FilterConfig{
			ExcludedLabels: append([]string(nil), model.DefaultExcludedLabels...),
			MinConfidence:  model.DefaultMinConfidence,
			MinDurationSec: model.DefaultMinDurationSec,
		},
		Suitability: SuitabilityConfig{
			Backend:     BackendREST,
			Endpoint:    DefaultGeminiEndpoint,
			Model:       DefaultGeminiModel,
			Location:    "us-central1",
			HTTPTimeout: DefaultHTTPTimeout,
		},
		Log: LogConfig{Level: "info", Format: "json"},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: "localhost:4317",
			ServiceName:  "smart-ad-placement",
		},
	}
}

func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

// LoadConfig builds the run configuration from defaults, the optional YAML file named by
// ADS_CONFIG_FILE and environment overrides, in that order.
func LoadConfig() (*Config, error) {
	config := NewConfig()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Normalize(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Input.VideoURI = Getenv("INPUT_FILE", c.Input.VideoURI)
	c.Output.Bucket = Getenv("OUTPUT_BUCKET", c.Output.Bucket)
	c.Output.Prefix = Getenv("OUTPUT_PREFIX", c.Output.Prefix)
	c.Suitability.Backend = Getenv("SUITABILITY_BACKEND", c.Suitability.Backend)
	c.Suitability.Endpoint = Getenv("GEMINI_API_ENDPOINT", c.Suitability.Endpoint)
	c.Suitability.APIKey = Getenv("GEMINI_API_KEY", c.Suitability.APIKey)
	c.Suitability.Model = Getenv("GEMINI_MODEL", c.Suitability.Model)
	c.Suitability.Project = Getenv("GOOGLE_CLOUD_PROJECT", c.Suitability.Project)
	c.Suitability.Location = Getenv("GOOGLE_CLOUD_LOCATION", c.Suitability.Location)
	c.Log.Level = Getenv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = Getenv("LOG_FORMAT", c.Log.Format)
	c.Telemetry.OTLPEndpoint = Getenv("OTEL_EXPORTER_OTLP_ENDPOINT", c.Telemetry.OTLPEndpoint)

	if labels := os.Getenv("EXCLUDED_LABELS"); labels != "" {
		c.Filter.ExcludedLabels = strings.Split(labels, ",")
	}

	var err error
	if c.Annotation.Timeout, err = envDuration("ANNOTATION_TIMEOUT", c.Annotation.Timeout); err != nil {
		return err
	}
	if c.Suitability.HTTPTimeout, err = envDuration("GEMINI_HTTP_TIMEOUT", c.Suitability.HTTPTimeout); err != nil {
		return err
	}
	if c.Filter.MinConfidence, err = envFloat("MIN_CONFIDENCE", c.Filter.MinConfidence); err != nil {
		return err
	}
	if c.Filter.MinDurationSec, err = envFloat("MIN_DURATION_SEC", c.Filter.MinDurationSec); err != nil {
		return err
	}
	if v := os.Getenv("OTEL_ENABLED"); v != "" {
		if c.Telemetry.Enabled, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid OTEL_ENABLED %q: %w", v, err)
		}
	}
	return nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

// Normalize turns a bucket/object input into a gs:// URI and defaults the output bucket to the
// bucket holding the input video.
func (c *Config) Normalize() error {
	if c.Input.VideoURI == "" {
		return errors.New("no input file specified")
	}
	if !strings.HasPrefix(c.Input.VideoURI, gcsScheme) {
		c.Input.VideoURI = gcsScheme + c.Input.VideoURI
	}
	bucket, _, err := ParseGCSURI(c.Input.VideoURI)
	if err != nil {
		return err
	}
	if c.Output.Bucket == "" {
		c.Output.Bucket = bucket
	}
	c.Output.Prefix = strings.Trim(c.Output.Prefix, "/")
	c.Suitability.Backend = strings.ToLower(strings.TrimSpace(c.Suitability.Backend))
	return nil
}

func (c *Config) Validate() error {
	if _, _, err := ParseGCSURI(c.Input.VideoURI); err != nil {
		return err
	}
	if c.Annotation.Timeout <= 0 {
		return fmt.Errorf("annotation timeout must be positive, got %s", c.Annotation.Timeout)
	}
	if c.Filter.MinConfidence < 0 || c.Filter.MinConfidence > 1 {
		return fmt.Errorf("min confidence must be within [0, 1], got %v", c.Filter.MinConfidence)
	}
	// A zero threshold would let single-frame tracks through.
	if c.Filter.MinDurationSec <= 0 {
		return fmt.Errorf("min duration must be positive, got %v", c.Filter.MinDurationSec)
	}
	switch c.Suitability.Backend {
	case BackendREST:
		if c.Suitability.Endpoint == "" {
			return errors.New("rest suitability backend requires an endpoint")
		}
	case BackendGenAI:
		if c.Suitability.Model == "" {
			return errors.New("genai suitability backend requires a model")
		}
	default:
		return fmt.Errorf("unknown suitability backend %q", c.Suitability.Backend)
	}
	return nil
}

func (c *Config) FilterCriteria() model.FilterCriteria {
	return model.FilterCriteria{
		ExcludedLabels: c.Filter.ExcludedLabels,
		MinConfidence:  c.Filter.MinConfidence,
		MinDurationSec: c.Filter.MinDurationSec,
	}
}
