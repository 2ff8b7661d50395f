package ai

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
	claudeEndpoint     = "https://api.anthropic.com/v1/messages"
	claudeAPIVersion   = "2023-06-01"
	defaultClaudeModel = "claude-opus-4-20250514"
)

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ClaudeProvider calls the Anthropic messages API directly.
type ClaudeProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewClaudeProvider(apiKey, model string, client *http.Client) *ClaudeProvider {
	if model == "" {
		model = defaultClaudeModel
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ClaudeProvider{apiKey: apiKey, model: model, endpoint: claudeEndpoint, client: client}
}

func (p *ClaudeProvider) Name() string { return "Claude" }

func (p *ClaudeProvider) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return "", fmt.Errorf("claude: %w", ErrMissingAPIKey)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("claude: %w", ErrEmptyPrompt)
	}
	reqBody, err := json.Marshal(claudeRequest{
		Model:     p.model,
		MaxTokens: 2000,
		Messages:  []claudeMessage{{Role: "user", Content: systemPrompt + "\n\n" + prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("claude: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("claude: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", claudeAPIVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("claude: read response: %w", err)
	}

	var cr claudeResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("claude: unmarshal response (HTTP %d): %w", resp.StatusCode, err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("claude: api error: %s", cr.Error.Message)
	}
	for _, block := range cr.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("claude: %w", ErrEmptyReply)
}
