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

import (
	"context"
	"errors"
	"fmt"

	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/cloud"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// GenaiRunConfig extends the run with the cloud services the workflow talks to.
type GenaiRunConfig struct {
	*BasicRunConfig
	CloudConfig     *cloud.Config
	Annotator       cloud.Annotator
	BlobWriter      cloud.BlobWriter
	Generator       cloud.Generator
	TemplateService *cloud.TemplateService
	Meter           metric.Meter

	closers []func() error
}

// NewGenaiRunConfig creates the Cloud Storage, Video Intelligence and generative clients for a run.
func NewGenaiRunConfig(ctx context.Context, config *cloud.Config, logger *zap.Logger) (*GenaiRunConfig, error) {
	basicRunConfig, err := NewBasicRunConfig(ctx, config, logger)
	if err != nil {
		return nil, err
	}
	storageClient, err := basicRunConfig.GetStorageClient()
	if err != nil {
		return nil, err
	}

	annotator, err := cloud.NewVideoIntelligenceAnnotator(ctx, config.Annotation.Timeout)
	if err != nil {
		basicRunConfig.Close()
		return nil, err
	}

	generator, err := newGenerator(ctx, config.Suitability)
	if err != nil {
		annotator.Close()
		basicRunConfig.Close()
		return nil, err
	}

	runConfig, err := NewGenaiRunConfigWithClients(basicRunConfig, config, annotator, cloud.NewGCSBlobWriter(storageClient), generator)
	if err != nil {
		annotator.Close()
		basicRunConfig.Close()
		return nil, err
	}
	runConfig.closers = append(runConfig.closers, annotator.Close, basicRunConfig.Close)
	return runConfig, nil
}

// NewGenaiRunConfigWithClients assembles a run around already constructed clients.
func NewGenaiRunConfigWithClients(basicRunConfig *BasicRunConfig, config *cloud.Config, annotator cloud.Annotator, blobWriter cloud.BlobWriter, generator cloud.Generator) (*GenaiRunConfig, error) {
	templateService, err := cloud.NewTemplateService(config)
	if err != nil {
		return nil, err
	}
	return &GenaiRunConfig{
		BasicRunConfig:  basicRunConfig,
		CloudConfig:     config,
		Annotator:       annotator,
		BlobWriter:      blobWriter,
		Generator:       generator,
		TemplateService: templateService,
		Meter:           otel.Meter(cloud.InstrumentationName),
	}, nil
}

func newGenerator(ctx context.Context, config cloud.SuitabilityConfig) (cloud.Generator, error) {
	switch config.Backend {
	case cloud.BackendREST:
		return cloud.NewRESTGenerator(config.Endpoint, config.APIKey, config.HTTPTimeout), nil
	case cloud.BackendGenAI:
		return cloud.NewGenAIGenerator(ctx, config)
	default:
		return nil, fmt.Errorf("unknown suitability backend %q", config.Backend)
	}
}

func (config *GenaiRunConfig) Close() error {
	var errs []error
	for _, closer := range config.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	config.closers = nil
	return errors.Join(errs...)
}
