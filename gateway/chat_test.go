package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/backend/models"
)

func TestChat_RequiresMessage(t *testing.T) {
	_, err := New(nil).Chat(context.Background(), ChatInput{Message: " \n"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "message", vErr.Field)
}

func TestChat_ReturnsProviderReply(t *testing.T) {
	p := &stubProvider{chat: func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
		return &models.ProviderChatResponse{Response: "Learn Kubernetes first."}, nil
	}}

	reply, err := New(p).Chat(context.Background(), ChatInput{Message: "What next?"})
	require.NoError(t, err)
	assert.Equal(t, "Learn Kubernetes first.", reply)
}

func TestChat_AcceptsLegacyMessageField(t *testing.T) {
	p := &stubProvider{chat: func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
		return &models.ProviderChatResponse{Message: "legacy reply"}, nil
	}}

	reply, err := New(p).Chat(context.Background(), ChatInput{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "legacy reply", reply)
}

func TestChat_ForwardsHistoryInOrder(t *testing.T) {
	p := &stubProvider{chat: func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
		return &models.ProviderChatResponse{Response: "ok"}, nil
	}}
	history := []models.ChatTurn{
		{Role: models.RoleUser, Content: "first"},
		{Role: models.RoleAssistant, Content: "second"},
		{Role: models.RoleUser, Content: "third"},
	}
	chatCtx := models.ChatContext{MatchScore: 64, ResumeText: "resume"}

	_, err := New(p).Chat(context.Background(), ChatInput{
		Message:     "and now?",
		Context:     chatCtx,
		History:     history,
		Credentials: NewCredentials("key", "anthropic", ""),
	})
	require.NoError(t, err)

	require.Len(t, p.chatted, 1)
	req := p.chatted[0]
	require.Len(t, req.History, 3)
	assert.Equal(t, "first", req.History[0].Content)
	assert.Equal(t, "second", req.History[1].Content)
	assert.Equal(t, "third", req.History[2].Content)
	assert.Equal(t, 64, req.Context.MatchScore)
	assert.Equal(t, "resume", req.Context.ResumeText)
	assert.NotNil(t, req.Context.Gaps)
	assert.Equal(t, "anthropic", req.UserProvider)
	assert.Nil(t, chatCtx.Gaps, "caller context must not be mutated")
}

func TestChat_FallsBackToRules(t *testing.T) {
	chatCtx := models.ChatContext{
		MatchScore: 85,
		Gaps:       []models.Gap{{Category: "Cloud", Description: "Cloud", Priority: "High", Actionable: "Get certified"}},
	}

	tests := []struct {
		name string
		chat func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error)
	}{
		{"error", func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
			return nil, errors.New("connection refused")
		}},
		{"empty reply", func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
			return &models.ProviderChatResponse{Response: "  "}, nil
		}},
		{"panic", func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
			panic("boom")
		}},
		{"timeout", func(ctx context.Context, req models.ProviderChatRequest) (*models.ProviderChatResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&stubProvider{chat: tt.chat}, WithTimeouts(20*time.Millisecond, 20*time.Millisecond))

			reply, err := g.Chat(context.Background(), ChatInput{Message: "Am I ready?", Context: chatCtx})
			require.NoError(t, err)
			assert.Equal(t, FallbackReply("Am I ready?", chatCtx), reply)
			assert.Contains(t, reply, "well-qualified")
		})
	}
}
