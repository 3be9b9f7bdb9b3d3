// Package gateway sits between the API and the external AI provider. It
// normalizes requests into the provider's wire vocabulary, normalizes replies
// into the canonical analysis shape, and substitutes synthetic content when the
// provider cannot be reached so that analyze and chat never fail on upstream
// errors.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/careercompass/backend/models"
)

// Default provider call bounds
const (
	DefaultAnalyzeTimeout = 30 * time.Second
	DefaultChatTimeout    = 15 * time.Second
)

// Provider is the external AI analysis service
type Provider interface {
	Analyze(ctx context.Context, req models.ProviderAnalyzeRequest) (*models.ProviderAnalyzeResponse, error)
	Chat(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error)
}

// Gateway is stateless across calls and safe for concurrent use
type Gateway struct {
	provider       Provider
	analyzeTimeout time.Duration
	chatTimeout    time.Duration
}

// Option configures a Gateway
type Option func(*Gateway)

// WithTimeouts overrides the provider call bounds
func WithTimeouts(analyze, chat time.Duration) Option {
	return func(g *Gateway) {
		if analyze > 0 {
			g.analyzeTimeout = analyze
		}
		if chat > 0 {
			g.chatTimeout = chat
		}
	}
}

// New creates a gateway over the given provider. A nil provider means every
// call takes the fallback path.
func New(provider Provider, opts ...Option) *Gateway {
	g := &Gateway{
		provider:       provider,
		analyzeTimeout: DefaultAnalyzeTimeout,
		chatTimeout:    DefaultChatTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ValidationError reports a missing required input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewCredentials builds caller credentials. Returns nil when no key is given;
// the provider defaults to gemini when only a key is supplied.
func NewCredentials(apiKey, provider, model string) *models.ProviderCredentials {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = models.DefaultProvider
	}
	return &models.ProviderCredentials{
		Provider: provider,
		APIKey:   apiKey,
		Model:    strings.TrimSpace(model),
	}
}

// boundedContext detaches the provider call from the caller's cancellation and
// bounds it by timeout instead. A disconnecting client does not abort the call.
func boundedContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	return nil
}
