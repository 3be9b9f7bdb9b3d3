package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/backend/gateway"
	"github.com/careercompass/backend/models"
	"github.com/careercompass/backend/storage"
)

func decodeResult(t *testing.T, raw json.RawMessage, data interface{}) ToolResult {
	t.Helper()
	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	if result.Success && data != nil {
		require.NoError(t, json.Unmarshal(result.Data, data))
	}
	return result
}

func TestToolRegistry_ListSortedByName(t *testing.T) {
	store := storage.NewMemoryStore()
	gw := gateway.New(nil)

	registry := NewToolRegistry()
	registry.Register(NewCareerChatTool(gw, store))
	registry.Register(NewAnalyzeMatchTool(gw, store))

	list := registry.List()
	require.Len(t, list, 2)
	assert.Equal(t, "analyze_match", list[0].Name())
	assert.Equal(t, "career_chat", list[1].Name())

	_, ok := registry.Get("career_chat")
	assert.True(t, ok)
	_, ok = registry.Get("search_jobs")
	assert.False(t, ok)
}

func TestAnalyzeMatchTool_SavesForUser(t *testing.T) {
	store := storage.NewMemoryStore()
	tool := NewAnalyzeMatchTool(gateway.New(nil), store)
	ctx := WithUserID(context.Background(), "u1")

	raw, err := tool.Execute(ctx, json.RawMessage(`{"resume_text":"Go dev","job_description":"Go job"}`))
	require.NoError(t, err)

	var resp models.AnalyzeResponse
	result := decodeResult(t, raw, &resp)
	require.True(t, result.Success)
	assert.True(t, resp.Saved)
	assert.Equal(t, gateway.MockModel, resp.Metadata.AIModel)

	stored, err := store.GetAnalysis(ctx, resp.AnalysisID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Go dev", stored.ResumeText)
}

func TestAnalyzeMatchTool_NoSave(t *testing.T) {
	tool := NewAnalyzeMatchTool(gateway.New(nil), storage.NewMemoryStore())
	ctx := WithUserID(context.Background(), "u1")

	raw, err := tool.Execute(ctx, json.RawMessage(`{"resume_text":"r","job_description":"j","save":false}`))
	require.NoError(t, err)

	var resp models.AnalyzeResponse
	decodeResult(t, raw, &resp)
	assert.False(t, resp.Saved)
	assert.True(t, storage.IsTempID(resp.AnalysisID))
}

func TestAnalyzeMatchTool_ValidationError(t *testing.T) {
	tool := NewAnalyzeMatchTool(gateway.New(nil), storage.NewMemoryStore())

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"resume_text":"","job_description":"j"}`))
	require.NoError(t, err)

	result := decodeResult(t, raw, nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "resumeText")

	raw, err = tool.Execute(context.Background(), json.RawMessage(`{`))
	require.NoError(t, err)
	assert.False(t, decodeResult(t, raw, nil).Success)
}

func TestCareerChatTool_GroundedOnStoredAnalysis(t *testing.T) {
	store := storage.NewMemoryStore()
	gw := gateway.New(nil)
	ctx := WithUserID(context.Background(), "u1")

	analysis := &models.AnalysisResult{UserID: "u1", MatchScore: 85}
	analysis.Normalize()
	require.True(t, storage.SaveAnalysis(ctx, store, analysis, true))

	tool := NewCareerChatTool(gw, store)
	input, _ := json.Marshal(CareerChatInput{Message: "Am I ready?", AnalysisID: analysis.ID})
	raw, err := tool.Execute(ctx, input)
	require.NoError(t, err)

	var out CareerChatOutput
	require.True(t, decodeResult(t, raw, &out).Success)
	assert.True(t, out.Grounded)
	assert.Contains(t, out.Response, "well-qualified")

	stored, err := store.GetAnalysis(ctx, analysis.ID, "u1")
	require.NoError(t, err)
	assert.Len(t, stored.ChatHistory, 2)
}

func TestCareerChatTool_Ungrounded(t *testing.T) {
	tool := NewCareerChatTool(gateway.New(nil), storage.Unavailable{})

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"message":"hello"}`))
	require.NoError(t, err)

	var out CareerChatOutput
	require.True(t, decodeResult(t, raw, &out).Success)
	assert.False(t, out.Grounded)
	assert.Contains(t, out.Response, "career assistant")
}
