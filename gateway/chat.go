package gateway

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/careercompass/backend/models"
)

// ChatInput is one chat question. Context is passed by value and never
// mutated; History is forwarded in the order given.
type ChatInput struct {
	Message     string
	Context     models.ChatContext
	History     []models.ChatTurn
	Credentials *models.ProviderCredentials
}

// NewChatRequest builds the canonical snake_case chat request
func NewChatRequest(in ChatInput) models.ProviderChatRequest {
	chatCtx := in.Context
	if chatCtx.Skills.Matched == nil {
		chatCtx.Skills.Matched = []models.SkillMatch{}
	}
	if chatCtx.Skills.Missing == nil {
		chatCtx.Skills.Missing = []models.MissingSkill{}
	}
	if chatCtx.Gaps == nil {
		chatCtx.Gaps = []models.Gap{}
	}
	if chatCtx.Recommendations == nil {
		chatCtx.Recommendations = []models.Recommendation{}
	}

	req := models.ProviderChatRequest{
		Message: in.Message,
		Context: models.NewProviderChatContext(chatCtx),
		History: models.NewProviderHistory(in.History),
	}
	if in.Credentials != nil {
		req.UserAPIKey = in.Credentials.APIKey
		req.UserProvider = in.Credentials.Provider
		req.UserModel = in.Credentials.Model
	}
	return req
}

// Chat answers a question about an analysis. The only error it returns is a
// *ValidationError; provider failures are answered by FallbackReply.
func (g *Gateway) Chat(ctx context.Context, in ChatInput) (string, error) {
	if err := requireText("message", in.Message); err != nil {
		return "", err
	}

	reply, err := g.callChat(ctx, NewChatRequest(in))
	if err != nil {
		log.Printf("[Gateway] Provider chat unavailable, using rule-based reply: %v", err)
		return FallbackReply(in.Message, in.Context), nil
	}
	return reply, nil
}

func (g *Gateway) callChat(ctx context.Context, req models.ProviderChatRequest) (reply string, err error) {
	if g.provider == nil {
		return "", errors.New("no provider configured")
	}

	callCtx, cancel := boundedContext(ctx, g.chatTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			reply, err = "", &PanicError{Value: r}
		}
	}()

	resp, err := g.provider.Chat(callCtx, req)
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Text()) == "" {
		return "", errors.New("empty chat response")
	}
	return resp.Text(), nil
}
