// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package pdfmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Enhancer rewrites assembled markdown to repair formatting the heuristic
// extraction got wrong. Implementations must preserve all source content;
// an error means the caller keeps the original markdown.
type Enhancer interface {
	Enhance(ctx context.Context, markdown, docName string) (string, error)
}

const enhanceSystemPrompt = `You are a document formatting expert. You receive markdown extracted from a PDF and improve its formatting while preserving ALL content exactly.

Your tasks:
1. Fix broken formatting (merged lines, incorrect headers, etc.)
2. Format headers according to document hierarchy (#, ##, ###)
3. Fix malformed tables
4. Preserve all original text - never summarize or remove content
5. Add bold/italic markdown where it is clearly intended
6. Keep page markers as HTML comments: <!-- Page N -->

Return ONLY the improved markdown, no explanations.`

// GeminiEnhancer implements Enhancer against the Gemini API.
type GeminiEnhancer struct {
	APIKey string
	Model  string
}

// NewGeminiEnhancer creates a GeminiEnhancer. An empty model selects
// gemini-2.0-flash.
func NewGeminiEnhancer(apiKey, model string) *GeminiEnhancer {
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiEnhancer{
		APIKey: strings.TrimSpace(apiKey),
		Model:  model,
	}
}

func (g *GeminiEnhancer) Enhance(ctx context.Context, markdown, docName string) (string, error) {
	if g.APIKey == "" {
		return "", errors.New("gemini: API key is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(enhanceSystemPrompt)},
	}

	user := fmt.Sprintf("Source PDF: %s\n\nExtracted content:\n%s", docName, markdown)

	// Retry transient failures a few times with a short backoff.
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, genai.Text(user))
		if err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 300 * time.Millisecond):
			}
			continue
		}
		txt := firstText(resp)
		if txt == "" {
			return "", errors.New("gemini: empty response")
		}
		return stripCodeFences(strings.TrimSpace(txt)), nil
	}
	return "", lastErr
}

// firstText returns the first text part among the response candidates.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

// stripCodeFences unwraps a response the model wrapped in a ``` block.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := s
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		return s
	}
	body = strings.TrimSuffix(strings.TrimRight(body, "\n \t"), "```")
	return strings.TrimSpace(body)
}

func ptrFloat32(v float32) *float32 { return &v }
