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
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o"
)

// OpenAI implements Generator against the OpenAI chat completions API.
type OpenAI struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAI creates an OpenAI-backed generator.
func NewOpenAI(opts Options) *OpenAI {
	model := opts.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAI{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: opts.httpTimeout()},
	}
}

// Name returns the backend's preset name.
func (o *OpenAI) Name() string {
	return "gpt4o"
}

// Generate translates a natural-language request into raw command text.
func (o *OpenAI) Generate(ctx context.Context, userPrompt string) (string, error) {
	return o.chat(ctx, commandSystemPrompt, renderGeneratePrompt(userPrompt))
}

// DescribeParameters asks the model to describe a command's placeholders.
func (o *OpenAI) DescribeParameters(ctx context.Context, command string) (string, error) {
	return o.chat(ctx, parameterSystemPrompt, renderDescribePrompt(command))
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chat makes a chat-completions call and returns the first choice's text.
func (o *OpenAI) chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":       o.model,
		"temperature": 0,
		"messages": []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var respData struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(respData.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(respData.Choices[0].Message.Content), nil
}
