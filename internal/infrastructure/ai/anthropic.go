package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/ports"
)

const anthropicVersion = "2023-06-01"

type anthropicProvider struct {
	cfg        domain.ProviderConfig
	httpClient *http.Client
}

func newAnthropicProvider(cfg domain.ProviderConfig, client *http.Client) ports.Provider {
	return &anthropicProvider{cfg: cfg, httpClient: client}
}

func (p *anthropicProvider) Name() string {
	return "anthropic"
}

func (p *anthropicProvider) Complete(ctx context.Context, prompt domain.ResolvedPrompt) (string, error) {
	payload := anthropicRequest{
		Model:     p.cfg.ModelID,
		MaxTokens: p.cfg.MaxTokens,
		System:    prompt.System,
		Messages: []anthropicMessage{
			{
				Role:    "user",
				Content: []anthropicContent{{Type: "text", Text: prompt.User}},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.NewConfigError("encode anthropic request: %v", err)
	}

	ctx, cancel := withDeadline(ctx, p.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewConfigError("build anthropic request: %v", err)
	}
	httpReq.Header.Set("x-api-key", p.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", domain.NewTransportError("anthropic request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", domain.NewBackendError("anthropic: %s%s", resp.Status, backendDetail(resp.Body))
	}

	var decoded anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", domain.NewMalformedError("decode anthropic response", err)
	}
	if len(decoded.Content) == 0 {
		return "", domain.NewMalformedError("anthropic response contained no content", nil)
	}

	return decoded.Content[0].Text, nil
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}
