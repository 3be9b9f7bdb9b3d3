package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/careercompass/backend/gateway"
	"github.com/careercompass/backend/storage"
)

// CareerChatTool answers career questions about a stored analysis
type CareerChatTool struct {
	gateway *gateway.Gateway
	store   storage.AnalysisStore
}

// NewCareerChatTool creates a new chat tool
func NewCareerChatTool(gw *gateway.Gateway, store storage.AnalysisStore) *CareerChatTool {
	return &CareerChatTool{
		gateway: gw,
		store:   store,
	}
}

func (t *CareerChatTool) Name() string {
	return "career_chat"
}

func (t *CareerChatTool) Description() string {
	return `Ask a career question about a previous resume analysis.
Pass the analysis_id returned by analyze_match to answer against that analysis;
without it the question is answered generically.`
}

func (t *CareerChatTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"message": map[string]interface{}{
				"type":        "string",
				"description": "The question to ask",
			},
			"analysis_id": map[string]interface{}{
				"type":        "string",
				"description": "Id of a stored analysis",
			},
		},
		"required": []string{"message"},
	}
}

// CareerChatInput represents the input for career_chat
type CareerChatInput struct {
	Message    string `json:"message"`
	AnalysisID string `json:"analysis_id,omitempty"`
}

// CareerChatOutput is the career_chat result payload
type CareerChatOutput struct {
	Response   string `json:"response"`
	AnalysisID string `json:"analysis_id,omitempty"`
	Grounded   bool   `json:"grounded"`
}

func (t *CareerChatTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in CareerChatInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	userID := UserIDFrom(ctx)
	chatCtx, history, found := storage.ChatSource(ctx, t.store, in.AnalysisID, userID)

	reply, err := t.gateway.Chat(ctx, gateway.ChatInput{
		Message: in.Message,
		Context: chatCtx,
		History: history,
	})
	if err != nil {
		var vErr *gateway.ValidationError
		if errors.As(err, &vErr) {
			return NewErrorResult(vErr.Message)
		}
		return nil, err
	}

	if found {
		storage.RecordExchange(ctx, t.store, in.AnalysisID, userID, in.Message, reply, time.Now())
	}

	return NewSuccessResult(CareerChatOutput{
		Response:   reply,
		AnalysisID: in.AnalysisID,
		Grounded:   found,
	})
}
