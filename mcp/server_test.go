package mcp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/backend/gateway"
	"github.com/careercompass/backend/storage"
	"github.com/careercompass/backend/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	gw := gateway.New(nil)
	registry := tools.NewToolRegistry()
	registry.Register(tools.NewAnalyzeMatchTool(gw, store))
	registry.Register(tools.NewCareerChatTool(gw, store))

	router := gin.New()
	NewServer(registry).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func post(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleMCP_ToolsList(t *testing.T) {
	w := post(t, newTestRouter(), "/api/v1/mcp", MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result ToolsListResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Result.Tools, 2)
	assert.Equal(t, "analyze_match", resp.Result.Tools[0].Name)
	assert.NotEmpty(t, resp.Result.Tools[0].InputSchema)
}

func TestHandleMCP_Initialize(t *testing.T) {
	w := post(t, newTestRouter(), "/api/v1/mcp", MCPRequest{JSONRPC: "2.0", ID: "init", Method: "initialize"})

	var resp struct {
		Result InitializeResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, protocolVersion, resp.Result.ProtocolVersion)
	assert.Equal(t, "career-compass", resp.Result.ServerInfo.Name)
}

func TestHandleMCP_ToolsCall(t *testing.T) {
	params, _ := json.Marshal(ToolCallParams{
		Name:      "career_chat",
		Arguments: json.RawMessage(`{"message":"How do I prepare for the interview?"}`),
	})
	w := post(t, newTestRouter(), "/api/v1/mcp", MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/call", Params: params})

	var resp struct {
		Result ToolCallResult `json:"result"`
		Error  *MCPError      `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	assert.False(t, resp.Result.IsError)
	require.Len(t, resp.Result.Content, 1)
	assert.Contains(t, resp.Result.Content[0].Text, "Interview preparation checklist")
}

func TestHandleMCP_Errors(t *testing.T) {
	router := newTestRouter()

	w := post(t, router, "/api/v1/mcp", MCPRequest{JSONRPC: "2.0", ID: 3, Method: "resources/list"})
	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)

	w = post(t, router, "/api/v1/mcp/tools/call", ToolCallParams{Name: "search_jobs"})
	var call ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &call))
	assert.True(t, call.IsError)
	assert.Contains(t, call.Content[0].Text, "tool not found")
}

func TestHandleToolsList_Direct(t *testing.T) {
	w := post(t, newTestRouter(), "/api/v1/mcp/tools/list", map[string]string{})

	var resp ToolsListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tools, 2)
}
