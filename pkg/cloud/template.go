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
	"fmt"
	"text/template"
)

const DefaultSuitabilityPrompt = `Can we place Ads on these objects:{{.REPORT}} ? please analyze ad suitability for each object instance, Ensure **all instances** of the object are included, even if the same object appears multiple times. If yes, Provide object data in below JSON format? If No, just say No without explanation{
"object": "Object Name",
"confidence": Confidence Value,
"duration": Duration in seconds,
"frames": [
  {
    "time": Frame Time in seconds,
  }
]
}
`

type TemplateService struct {
	suitability *template.Template
}

func NewTemplateService(config *Config) (*TemplateService, error) {
	text := DefaultSuitabilityPrompt
	if config != nil && config.Suitability.PromptTemplate != "" {
		text = config.Suitability.PromptTemplate
	}
	tmpl, err := template.New("suitability").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suitability prompt template: %w", err)
	}
	return &TemplateService{suitability: tmpl}, nil
}

func (s *TemplateService) GetSuitabilityTemplate() *template.Template {
	return s.suitability
}

// RenderSuitabilityPrompt embeds the text report in the suitability prompt.
func (s *TemplateService) RenderSuitabilityPrompt(report string) (string, error) {
	params := map[string]interface{}{
		"REPORT": report,
	}
	var buffer bytes.Buffer
	if err := s.suitability.Execute(&buffer, params); err != nil {
		return "", fmt.Errorf("failed to render suitability prompt: %w", err)
	}
	return buffer.String(), nil
}
