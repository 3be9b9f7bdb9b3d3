package gateway

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/careercompass/backend/models"
)

// Defaults substituted for fields the provider omits
const (
	DefaultMatchScore = 75
	DefaultTopTip     = "Focus on highlighting your relevant experience"
	DefaultModelLabel = "gpt-3.5-turbo"
	AnalysisVersion   = "1.0"
)

// AnalysisInput is one analysis request. Settings and credentials are built
// per request by the caller and threaded in explicitly.
type AnalysisInput struct {
	UserID         string
	ResumeText     string
	JobDescription string
	Credentials    *models.ProviderCredentials
	Settings       models.AnalysisSettings
}

// NewAnalyzeRequest renames the inputs into the provider's wire vocabulary.
// Credentials are attached only when present.
func NewAnalyzeRequest(resumeText, jobDescription string, creds *models.ProviderCredentials, settings models.AnalysisSettings) models.ProviderAnalyzeRequest {
	settings = settings.WithDefaults()
	req := models.ProviderAnalyzeRequest{
		ResumeText:      resumeText,
		JobDescription:  jobDescription,
		DetailLevel:     settings.DetailLevel,
		IncludeExamples: settings.Examples(),
		PriorityFocus:   settings.PriorityFocus,
	}
	if creds != nil {
		req.UserAPIKey = creds.APIKey
		req.UserProvider = creds.Provider
		req.UserModel = creds.Model
	}
	return req
}

// Analyze produces an analysis for the resume/job pair. The only error it
// returns is a *ValidationError; any provider failure yields a mock analysis
// whose metadata.aiModel is MockModel.
func (g *Gateway) Analyze(ctx context.Context, in AnalysisInput) (*models.AnalysisResult, error) {
	if err := requireText("resumeText", in.ResumeText); err != nil {
		return nil, err
	}
	if err := requireText("jobDescription", in.JobDescription); err != nil {
		return nil, err
	}

	settings := in.Settings.WithDefaults()
	req := NewAnalyzeRequest(in.ResumeText, in.JobDescription, in.Credentials, settings)

	start := time.Now()
	resp, err := g.callAnalyze(ctx, req)
	if err != nil {
		log.Printf("[Gateway] Provider analysis unavailable, returning mock analysis: %v", err)
		resp = MockAnalysis()
	}
	elapsed := time.Since(start)

	result := NormalizeAnalysis(resp, settings)
	result.UserID = in.UserID
	result.ResumeText = in.ResumeText
	result.JobDescription = in.JobDescription
	result.Metadata.ProcessingTime = elapsed.Milliseconds()
	result.CreatedAt = time.Now()
	result.UpdatedAt = result.CreatedAt

	log.Printf("[Gateway] Analysis complete: score=%d, model=%s, matched=%d, missing=%d, gaps=%d, took=%s",
		result.MatchScore, result.Metadata.AIModel, len(result.Skills.Matched), len(result.Skills.Missing), len(result.Gaps), elapsed)

	return result, nil
}

func (g *Gateway) callAnalyze(ctx context.Context, req models.ProviderAnalyzeRequest) (resp *models.ProviderAnalyzeResponse, err error) {
	if g.provider == nil {
		return nil, errors.New("no provider configured")
	}

	callCtx, cancel := boundedContext(ctx, g.analyzeTimeout)
	defer cancel()

	// Provider panics take the fallback path too.
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, &PanicError{Value: r}
		}
	}()

	resp, err = g.provider.Analyze(callCtx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("empty analysis response")
	}
	return resp, nil
}

// NormalizeAnalysis converts a provider reply into the canonical result shape,
// substituting defaults for omitted fields.
func NormalizeAnalysis(resp *models.ProviderAnalyzeResponse, settings models.AnalysisSettings) *models.AnalysisResult {
	score := DefaultMatchScore
	if resp.MatchScore != nil {
		score = *resp.MatchScore
	}
	topTip := resp.TopTip
	if topTip == "" {
		topTip = DefaultTopTip
	}
	model := resp.Model
	if model == "" {
		model = DefaultModelLabel
	}

	result := &models.AnalysisResult{
		MatchScore: score,
		Skills: models.Skills{
			Matched: clampRelevance(resp.MatchedSkills),
			Missing: resp.MissingSkills,
		},
		Gaps:            resp.Gaps,
		Recommendations: resp.Recommendations,
		TopTip:          topTip,
		Status:          models.StatusCompleted,
		Metadata: models.AnalysisMetadata{
			AIModel:          model,
			Version:          AnalysisVersion,
			AnalysisSettings: settings.WithDefaults(),
		},
	}
	result.Normalize()
	return result
}

func clampRelevance(skills []models.SkillMatch) []models.SkillMatch {
	if skills == nil {
		return nil
	}
	out := make([]models.SkillMatch, len(skills))
	for i, s := range skills {
		switch {
		case s.Relevance < 0:
			s.Relevance = 0
		case s.Relevance > 1:
			s.Relevance = 1
		}
		out[i] = s
	}
	return out
}
