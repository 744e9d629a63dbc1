package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	defaultAnthropicModel   = "claude-3-sonnet-20240229"
	anthropicVersion        = "2023-06-01"
	anthropicMaxTokens      = 1024
)

// Anthropic implements Generator against the Anthropic messages API.
type Anthropic struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewAnthropic creates a Claude-backed generator.
func NewAnthropic(opts Options) *Anthropic {
	model := opts.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	return &Anthropic{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: opts.httpTimeout()},
	}
}

// Name returns the backend's preset name.
func (a *Anthropic) Name() string {
	return "claude"
}

// Generate translates a natural-language request into raw command text.
func (a *Anthropic) Generate(ctx context.Context, userPrompt string) (string, error) {
	return a.message(ctx, commandSystemPrompt, renderGeneratePrompt(userPrompt))
}

// DescribeParameters asks the model to describe a command's placeholders.
func (a *Anthropic) DescribeParameters(ctx context.Context, command string) (string, error) {
	return a.message(ctx, parameterSystemPrompt, renderDescribePrompt(command))
}

// message makes a messages API call and returns the concatenated text blocks.
func (a *Anthropic) message(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":       a.model,
		"max_tokens":  anthropicMaxTokens,
		"temperature": 0,
		"system":      systemPrompt,
		"messages": []chatMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var respData struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(respData.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var sb strings.Builder
	for _, block := range respData.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
