package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/careercompass/backend/models"
)

// SaveAnalysis persists the analysis when autoSave is set and assigns its id.
// When saving is skipped or fails the analysis gets a temp id instead; the
// returned flag reports whether it was stored.
func SaveAnalysis(ctx context.Context, s AnalysisStore, analysis *models.AnalysisResult, autoSave bool) bool {
	if autoSave {
		id, err := s.CreateAnalysis(ctx, analysis)
		if err == nil {
			analysis.ID = id
			return true
		}
		if errors.Is(err, ErrUnavailable) {
			log.Printf("[Storage] Store unavailable, analysis not saved")
		} else {
			log.Printf("[Storage] Failed to save analysis: %v", err)
		}
	}

	analysis.ID = NewTempID(time.Now())
	return false
}

// RecordExchange appends a question and its answer to a stored analysis.
// Failures are logged and otherwise ignored.
func RecordExchange(ctx context.Context, s AnalysisStore, analysisID, userID, question, answer string, at time.Time) {
	if analysisID == "" || IsTempID(analysisID) {
		return
	}

	err := s.AppendChatTurns(ctx, analysisID, userID,
		models.ChatTurn{Role: models.RoleUser, Content: question, Timestamp: at},
		models.ChatTurn{Role: models.RoleAssistant, Content: answer, Timestamp: at},
	)
	if err != nil && !errors.Is(err, ErrUnavailable) {
		log.Printf("[Storage] Failed to record chat for analysis %s: %v", analysisID, err)
	}
}

// ChatSource resolves the context a chat question is answered against: the
// stored analysis when it can be loaded, otherwise an empty context. History
// comes from the stored conversation.
func ChatSource(ctx context.Context, s AnalysisStore, analysisID, userID string) (models.ChatContext, []models.ChatTurn, bool) {
	if analysisID == "" || IsTempID(analysisID) {
		return models.EmptyChatContext(), nil, false
	}

	analysis, err := s.GetAnalysis(ctx, analysisID, userID)
	if err != nil {
		if !errors.Is(err, ErrUnavailable) && !errors.Is(err, ErrNotFound) {
			log.Printf("[Storage] Failed to load analysis %s for chat: %v", analysisID, err)
		}
		return models.EmptyChatContext(), nil, false
	}
	return analysis.ChatContext(), analysis.ChatHistory, true
}
