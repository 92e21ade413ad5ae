package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/askshell/ask/internal/domain"
	"github.com/askshell/ask/internal/ports"
)

type openAIProvider struct {
	cfg        domain.ProviderConfig
	httpClient *http.Client
}

func newOpenAIProvider(cfg domain.ProviderConfig, client *http.Client) ports.Provider {
	return &openAIProvider{cfg: cfg, httpClient: client}
}

func (p *openAIProvider) Name() string {
	return "openai"
}

func (p *openAIProvider) Complete(ctx context.Context, prompt domain.ResolvedPrompt) (string, error) {
	payload := chatCompletionRequest{
		Model:     p.cfg.ModelID,
		MaxTokens: p.cfg.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.NewConfigError("encode openai request: %v", err)
	}

	ctx, cancel := withDeadline(ctx, p.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewConfigError("build openai request: %v", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", domain.NewTransportError("openai request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", domain.NewBackendError("openai: %s%s", resp.Status, backendDetail(resp.Body))
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", domain.NewMalformedError("decode openai response", err)
	}
	if len(decoded.Choices) == 0 {
		return "", domain.NewMalformedError("openai response contained no choices", nil)
	}

	return decoded.Choices[0].Message.Content, nil
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// backendDetail pulls the error message out of a failure payload so the
// operator sees whatever diagnostic the backend provided.
func backendDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var envelope struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Sprintf(": %s", envelope.Error.Message)
	}
	if detail := strings.TrimSpace(string(data)); detail != "" {
		return fmt.Sprintf(": %s", detail)
	}
	return ""
}

func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
