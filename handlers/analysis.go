package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careercompass/backend/auth"
	"github.com/careercompass/backend/gateway"
	"github.com/careercompass/backend/models"
	"github.com/careercompass/backend/storage"
)

// AnalysisHandler serves resume analyses, chat and history
type AnalysisHandler struct {
	gateway      *gateway.Gateway
	store        storage.AnalysisStore
	historyLimit int
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(gw *gateway.Gateway, store storage.AnalysisStore, historyLimit int) *AnalysisHandler {
	return &AnalysisHandler{
		gateway:      gw,
		store:        store,
		historyLimit: historyLimit,
	}
}

// Analyze handles resume analysis requests
// @Summary Analyze a resume against a job description
// @Description Scores the resume, lists matched and missing skills, gaps and recommendations. Falls back to a synthetic analysis when the AI service is unavailable.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AnalyzeRequest true "Analysis request"
// @Success 201 {object} models.AnalyzeResponse "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	userID := auth.UserID(c)
	settings := models.AnalysisSettings{}
	if req.AnalysisSettings != nil {
		settings = *req.AnalysisSettings
	}

	log.Printf("[AnalysisHandler] Analyze: user=%s, resume=%d chars, job=%d chars, hasUserKey=%t",
		userID, len(req.ResumeText), len(req.JobDescription), req.UserAPIKey != "")

	result, err := h.gateway.Analyze(c.Request.Context(), gateway.AnalysisInput{
		UserID:         userID,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Credentials:    gateway.NewCredentials(req.UserAPIKey, req.UserProvider, req.UserModel),
		Settings:       settings,
	})
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	saved := storage.SaveAnalysis(c.Request.Context(), h.store, result, req.ShouldSave())

	c.JSON(http.StatusCreated, models.NewAnalyzeResponse(result, saved))
}

// Chat handles questions about an analysis
// @Summary Chat about an analysis
// @Description Answers a career question using the given context or a stored analysis. Falls back to rule-based answers when the AI service is unavailable.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChatRequest true "Chat request"
// @Success 200 {object} models.ChatResponse "Chat answer"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /chat [post]
func (h *AnalysisHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	userID := auth.UserID(c)

	var (
		chatCtx models.ChatContext
		history = req.History
	)
	if req.Context != nil {
		chatCtx = *req.Context
	} else {
		stored, storedHistory, _ := storage.ChatSource(ctx, h.store, req.AnalysisID, userID)
		chatCtx = stored
		if len(history) == 0 {
			history = storedHistory
		}
	}

	reply, err := h.gateway.Chat(ctx, gateway.ChatInput{
		Message:     req.Message,
		Context:     chatCtx,
		History:     history,
		Credentials: gateway.NewCredentials(req.UserAPIKey, req.UserProvider, req.UserModel),
	})
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	now := time.Now().UTC()
	storage.RecordExchange(ctx, h.store, req.AnalysisID, userID, req.Message, reply, now)

	c.JSON(http.StatusOK, models.ChatResponse{
		Success:   true,
		Response:  reply,
		Timestamp: now.Format(time.RFC3339),
	})
}

// GetAnalysis returns one stored analysis
// @Summary Get an analysis
// @Description Returns a stored analysis owned by the caller
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Success 200 {object} models.AnalysisDetailResponse "Analysis"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Analysis not found"
// @Failure 503 {object} models.ErrorResponse "Storage unavailable"
// @Router /analysis/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	id := c.Param("id")
	if storage.IsTempID(id) {
		respondError(c, http.StatusNotFound, "Analysis not found", "unsaved analyses cannot be retrieved")
		return
	}

	analysis, err := h.store.GetAnalysis(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[AnalysisHandler] Failed to get analysis %s: %v", id, err)
		}
		respondStoreError(c, err, "Analysis not found")
		return
	}

	c.JSON(http.StatusOK, models.AnalysisDetailResponse{
		Success: true,
		Data:    analysis,
	})
}

// DeleteAnalysis removes a stored analysis
// @Summary Delete an analysis
// @Description Deletes a stored analysis owned by the caller
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Success 200 {object} models.DeleteResponse "Deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Analysis not found"
// @Failure 503 {object} models.ErrorResponse "Storage unavailable"
// @Router /analysis/{id} [delete]
func (h *AnalysisHandler) DeleteAnalysis(c *gin.Context) {
	id := c.Param("id")
	if storage.IsTempID(id) {
		respondError(c, http.StatusNotFound, "Analysis not found", "")
		return
	}

	if err := h.store.DeleteAnalysis(c.Request.Context(), id, auth.UserID(c)); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[AnalysisHandler] Failed to delete analysis %s: %v", id, err)
		}
		respondStoreError(c, err, "Analysis not found")
		return
	}

	log.Printf("[AnalysisHandler] Analysis %s deleted", id)
	c.JSON(http.StatusOK, models.DeleteResponse{
		Success: true,
		Message: "Analysis deleted",
	})
}

// History lists the caller's recent analyses
// @Summary Analysis history
// @Description Lists the caller's most recent analyses, newest first, without resume and job text. Returns an empty list when storage is unavailable.
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of analyses"
// @Success 200 {object} models.HistoryResponse "History"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /history [get]
func (h *AnalysisHandler) History(c *gin.Context) {
	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}

	analyses, err := h.store.ListAnalyses(c.Request.Context(), auth.UserID(c), limit)
	if err != nil {
		message := "History is temporarily unavailable"
		if errors.Is(err, storage.ErrUnavailable) {
			message = "History is not available: storage is not configured"
		} else {
			log.Printf("[AnalysisHandler] Failed to list history: %v", err)
		}
		c.JSON(http.StatusOK, models.HistoryResponse{
			Success: true,
			Data:    []models.AnalysisResult{},
			Count:   0,
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		Success: true,
		Data:    analyses,
		Count:   len(analyses),
	})
}

func respondGatewayError(c *gin.Context, err error) {
	var vErr *gateway.ValidationError
	if errors.As(err, &vErr) {
		respondError(c, http.StatusBadRequest, "Invalid request body", vErr.Message)
		return
	}
	log.Printf("[AnalysisHandler] Unexpected gateway error: %v", err)
	respondError(c, http.StatusInternalServerError, "Internal server error", "")
}
