package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careercompass/backend/gateway"
	"github.com/careercompass/backend/models"
	"github.com/careercompass/backend/storage"
)

// AnalyzeMatchTool scores a resume against a job description
type AnalyzeMatchTool struct {
	gateway *gateway.Gateway
	store   storage.AnalysisStore
}

// NewAnalyzeMatchTool creates a new analysis tool
func NewAnalyzeMatchTool(gw *gateway.Gateway, store storage.AnalysisStore) *AnalyzeMatchTool {
	return &AnalyzeMatchTool{
		gateway: gw,
		store:   store,
	}
}

func (t *AnalyzeMatchTool) Name() string {
	return "analyze_match"
}

func (t *AnalyzeMatchTool) Description() string {
	return `Analyze how well a resume matches a job description.
Returns a match score (0-100), matched and missing skills, qualification gaps,
resume recommendations and a top tip. Always returns a result.`
}

func (t *AnalyzeMatchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "Plain text of the candidate's resume",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "Plain text of the job posting",
			},
			"detail_level": map[string]interface{}{
				"type": "string",
				"enum": []string{models.DetailQuick, models.DetailStandard, models.DetailDetailed, models.DetailComprehensive},
			},
			"priority_focus": map[string]interface{}{
				"type": "string",
				"enum": []string{models.FocusBalanced, models.FocusSkills, models.FocusExperience, models.FocusKeywords},
			},
			"save": map[string]interface{}{
				"type":        "boolean",
				"description": "Store the analysis in the user's history (default true)",
			},
		},
		"required": []string{"resume_text", "job_description"},
	}
}

// AnalyzeMatchInput represents the input for analyze_match
type AnalyzeMatchInput struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	DetailLevel    string `json:"detail_level,omitempty"`
	PriorityFocus  string `json:"priority_focus,omitempty"`
	Save           *bool  `json:"save,omitempty"`
}

func (t *AnalyzeMatchTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in AnalyzeMatchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	userID := UserIDFrom(ctx)
	result, err := t.gateway.Analyze(ctx, gateway.AnalysisInput{
		UserID:         userID,
		ResumeText:     in.ResumeText,
		JobDescription: in.JobDescription,
		Settings: models.AnalysisSettings{
			DetailLevel:   in.DetailLevel,
			PriorityFocus: in.PriorityFocus,
		},
	})
	if err != nil {
		var vErr *gateway.ValidationError
		if errors.As(err, &vErr) {
			return NewErrorResult(vErr.Message)
		}
		return nil, err
	}

	autoSave := (in.Save == nil || *in.Save) && userID != ""
	saved := storage.SaveAnalysis(ctx, t.store, result, autoSave)

	return NewSuccessResult(models.NewAnalyzeResponse(result, saved))
}
