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
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// SuitabilityErrorText is returned in place of a verdict when the generative endpoint cannot be
// reached or rejects the request.
const SuitabilityErrorText = "Error occurred"

type SuitabilityChecker struct {
	generator Generator
	writer    BlobWriter
	templates *TemplateService
	counters  *GenAICounter
	logger    *zap.Logger
}

func NewSuitabilityChecker(generator Generator, writer BlobWriter, templates *TemplateService, counters *GenAICounter, logger *zap.Logger) *SuitabilityChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuitabilityChecker{
		generator: generator,
		writer:    writer,
		templates: templates,
		counters:  counters,
		logger:    logger,
	}
}

// Check asks the model whether ads can be placed on the objects in report and stores the answer
// at outputURI. Transport failures are logged and yield SuitabilityErrorText with a nil error;
// malformed answers and storage failures are returned as errors.
func (c *SuitabilityChecker) Check(ctx context.Context, report, outputURI string) (string, error) {
	prompt, err := c.templates.RenderSuitabilityPrompt(report)
	if err != nil {
		return "", err
	}

	result, err := c.generator.Generate(ctx, prompt)
	if errors.Is(err, ErrTransport) {
		c.logger.Error("error communicating with generative endpoint", zap.Error(err))
		if c.counters != nil {
			c.counters.FailureCounter.Add(ctx, 1)
		}
		return SuitabilityErrorText, nil
	}
	if err != nil {
		return "", err
	}

	if c.counters != nil {
		c.counters.InputCounter.Add(ctx, result.InputTokens)
		c.counters.OutputCounter.Add(ctx, result.OutputTokens)
	}

	if err := c.writer.Upload(ctx, outputURI, []byte(result.Text), ContentTypeText); err != nil {
		return "", fmt.Errorf("failed to save ad suitability output: %w", err)
	}
	c.logger.Info("ad suitability output saved", zap.String("uri", outputURI))
	return result.Text, nil
}
