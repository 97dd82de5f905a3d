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
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/hemamadhuri-cloudAmbassadors/hemamadhuri-cloudAmbassadors-Smart-Ad-Placement-video-Intelligence-API/pkg/cloud"
	"go.uber.org/zap"
)

// BasicRunConfig holds what every step of a run shares: the input video, where outputs go, the
// run identity and the status of the steps executed so far.
type BasicRunConfig struct {
	InputURI     string
	InputBucket  string
	InputFile    string
	OutputBucket string
	OutputPrefix string
	RunID        string
	StartedAt    time.Time
	Ctx          context.Context
	Logger       *zap.Logger

	storageClient *storage.Client
	mu            sync.Mutex
	statuses      map[string]StepStatus
}

func NewBasicRunConfig(ctx context.Context, config *cloud.Config, logger *zap.Logger) (*BasicRunConfig, error) {
	inputBucket, inputFile, err := cloud.ParseGCSURI(config.Input.VideoURI)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	return &BasicRunConfig{
		InputURI:     config.Input.VideoURI,
		InputBucket:  inputBucket,
		InputFile:    inputFile,
		OutputBucket: config.Output.Bucket,
		OutputPrefix: config.Output.Prefix,
		RunID:        runID,
		StartedAt:    time.Now(),
		Ctx:          ctx,
		Logger:       logger.With(zap.String("run_id", runID), zap.String("input", config.Input.VideoURI)),
		statuses:     make(map[string]StepStatus),
	}, nil
}

func (config *BasicRunConfig) GetStorageClient() (*storage.Client, error) {
	if config.storageClient == nil {
		client, err := storage.NewClient(config.Ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		config.storageClient = client
	}
	return config.storageClient, nil
}

func (config *BasicRunConfig) SetStorageClient(storageClient *storage.Client) {
	if config.storageClient != nil {
		config.storageClient.Close()
	}
	config.storageClient = storageClient
}

func (config *BasicRunConfig) Close() error {
	if config.storageClient == nil {
		return nil
	}
	err := config.storageClient.Close()
	config.storageClient = nil
	return err
}

// runTimestamp is the Unix start time of the run with millisecond precision. All blobs of a
// run share it.
func (config *BasicRunConfig) runTimestamp() string {
	ms := config.StartedAt.UnixMilli()
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}

// GetOutputURI returns gs://<output bucket>/<prefix>/<name>-<timestamp>.<ext>.
func (config *BasicRunConfig) GetOutputURI(name, ext string) string {
	object := fmt.Sprintf("%s-%s.%s", name, config.runTimestamp(), ext)
	if config.OutputPrefix != "" {
		object = config.OutputPrefix + "/" + object
	}
	return cloud.GCSURI(config.OutputBucket, object)
}

func (config *BasicRunConfig) GetStepStatusByKey(stepKey string) *StepStatus {
	config.mu.Lock()
	defer config.mu.Unlock()
	status, ok := config.statuses[stepKey]
	if !ok {
		return nil
	}
	return &status
}

func (config *BasicRunConfig) setStepStatus(stepKey string, status StepStatus) {
	config.mu.Lock()
	defer config.mu.Unlock()
	config.statuses[stepKey] = status
}

func (config *BasicRunConfig) getStepsField(stepKeys []string, extractor func(status *StepStatus) string) map[string]string {
	config.mu.Lock()
	defer config.mu.Unlock()
	outputs := make(map[string]string)
	for _, stepKey := range stepKeys {
		status, ok := config.statuses[stepKey]
		if !ok {
			continue
		}
		outputs[stepKey] = extractor(&status)
	}
	return outputs
}

func (config *BasicRunConfig) GetStepsStatus(stepKeys []string) map[string]string {
	return config.getStepsField(stepKeys, func(status *StepStatus) string { return status.Status })
}

func (config *BasicRunConfig) GetStepsOutput(stepKeys []string) map[string]string {
	return config.getStepsField(stepKeys, func(status *StepStatus) string { return status.Output })
}
