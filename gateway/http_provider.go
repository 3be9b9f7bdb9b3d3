package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/careercompass/backend/models"
	"github.com/careercompass/backend/utils"
)

const maxErrorBody = 512

// HTTPProvider calls the AI service over HTTP at {baseURL}/api/analyze and
// {baseURL}/api/chat. Call deadlines come from the context.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider for the AI service at baseURL
func NewHTTPProvider(baseURL string) *HTTPProvider {
	client := utils.NewHTTPClient(0)
	client.Transport = utils.UserAgentMiddleware(client.Transport)
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Analyze implements Provider
func (p *HTTPProvider) Analyze(ctx context.Context, req models.ProviderAnalyzeRequest) (*models.ProviderAnalyzeResponse, error) {
	var resp models.ProviderAnalyzeResponse
	if err := p.post(ctx, "/api/analyze", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat implements Provider
func (p *HTTPProvider) Chat(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
	var resp models.ProviderChatResponse
	if err := p.post(ctx, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *HTTPProvider) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ProviderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	log.Printf("[Gateway] POST %s -> %d in %s", path, resp.StatusCode, time.Since(start))
	return nil
}
