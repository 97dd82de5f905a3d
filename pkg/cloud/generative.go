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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"
)

var (
	// ErrTransport covers network failures and non-2xx answers from the generative endpoint.
	ErrTransport = errors.New("generative endpoint transport error")

	ErrMalformedResponse = errors.New("malformed generative response")
)

const maxErrorBodyBytes = 4096

type GenerateResult struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
}

// Generator sends a single free-text prompt to a generative model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*GenerateResult, error)
}

type generateContentPart struct {
	Text string `json:"text"`
}

type generateContentContent struct {
	Parts []generateContentPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []generateContentContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content *generateContentContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int64 `json:"promptTokenCount"`
		CandidatesTokenCount int64 `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

// RESTGenerator calls a generateContent endpoint directly, authenticating with an API key query
// parameter.
type RESTGenerator struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewRESTGenerator(endpoint, apiKey string, timeout time.Duration) *RESTGenerator {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &RESTGenerator{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *RESTGenerator) requestURL() (string, error) {
	u, err := url.Parse(g.endpoint)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint %q is not an absolute URL", g.endpoint)
	}
	if g.apiKey != "" {
		q := u.Query()
		q.Set("key", g.apiKey)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (g *RESTGenerator) Generate(ctx context.Context, prompt string) (*GenerateResult, error) {
	payload := generateContentRequest{
		Contents: []generateContentContent{{Parts: []generateContentPart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint, err := g.requestURL()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("%w: status=%d msg=%s", ErrTransport, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if len(decoded.Candidates) == 0 || decoded.Candidates[0].Content == nil || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidate text", ErrMalformedResponse)
	}

	result := &GenerateResult{Text: decoded.Candidates[0].Content.Parts[0].Text}
	if usage := decoded.UsageMetadata; usage != nil {
		result.InputTokens = usage.PromptTokenCount
		result.OutputTokens = usage.CandidatesTokenCount
	}
	return result, nil
}

// GenAIGenerator sends the prompt through the genai SDK, against Vertex AI when a project is
// configured and the Gemini API otherwise.
type GenAIGenerator struct {
	client *genai.Client
	model  string
}

func NewGenAIGenerator(ctx context.Context, config SuitabilityConfig) (*GenAIGenerator, error) {
	clientConfig := &genai.ClientConfig{}
	if config.Project != "" {
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = config.Project
		clientConfig.Location = config.Location
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
		clientConfig.APIKey = config.APIKey
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &GenAIGenerator{client: client, model: config.Model}, nil
}

func (g *GenAIGenerator) Generate(ctx context.Context, prompt string) (*GenerateResult, error) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{
			genai.NewPartFromText(prompt),
		},
			Role: genai.RoleUser},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return resultFromGenAI(resp)
}

func resultFromGenAI(resp *genai.GenerateContentResponse) (*GenerateResult, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidate text", ErrMalformedResponse)
	}
	result := &GenerateResult{Text: resp.Candidates[0].Content.Parts[0].Text}
	if resp.UsageMetadata != nil {
		result.InputTokens = int64(resp.UsageMetadata.PromptTokenCount)
		result.OutputTokens = int64(resp.UsageMetadata.CandidatesTokenCount)
	}
	return result, nil
}
