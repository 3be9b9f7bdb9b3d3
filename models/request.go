package models

import "time"

// AnalyzeRequest represents the API request for a resume analysis
// @Description Resume analysis request
type AnalyzeRequest struct {
	ResumeText       string            `json:"resumeText" binding:"required" example:"Jane Doe\nBackend engineer, 5 years of Go..."`
	JobDescription   string            `json:"jobDescription" binding:"required" example:"We are hiring a senior Go engineer..."`
	UserAPIKey       string            `json:"userApiKey,omitempty" example:"AIza..."`
	UserProvider     string            `json:"userProvider,omitempty" example:"gemini"`
	UserModel        string            `json:"userModel,omitempty" example:"gemini-2.5-flash"`
	AutoSave         *bool             `json:"autoSave,omitempty" example:"true"`
	AnalysisSettings *AnalysisSettings `json:"analysisSettings,omitempty"`
}

// ShouldSave reports the auto-save flag, which defaults to true
func (r *AnalyzeRequest) ShouldSave() bool {
	return r.AutoSave == nil || *r.AutoSave
}

// AnalyzeResponse represents the API response for a resume analysis
// @Description Resume analysis result
type AnalyzeResponse struct {
	Success         bool             `json:"success" example:"true"`
	AnalysisID      string           `json:"analysisId" example:"Xy3kq9WbT2"`
	Saved           bool             `json:"saved" example:"true"`
	MatchScore      int              `json:"matchScore" example:"72"`
	Skills          Skills           `json:"skills"`
	Gaps            []Gap            `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
	TopTip          string           `json:"topTip"`
	Metadata        AnalysisMetadata `json:"metadata"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// NewAnalyzeResponse builds the response for an analysis
func NewAnalyzeResponse(a *AnalysisResult, saved bool) AnalyzeResponse {
	return AnalyzeResponse{
		Success:         true,
		AnalysisID:      a.ID,
		Saved:           saved,
		MatchScore:      a.MatchScore,
		Skills:          a.Skills,
		Gaps:            a.Gaps,
		Recommendations: a.Recommendations,
		TopTip:          a.TopTip,
		Metadata:        a.Metadata,
		CreatedAt:       a.CreatedAt,
	}
}

// ChatRequest represents the API request for a chat question
// @Description Chat request about an analysis
type ChatRequest struct {
	AnalysisID   string       `json:"analysisId,omitempty" example:"Xy3kq9WbT2"`
	Message      string       `json:"message" binding:"required" example:"What skills should I learn?"`
	Context      *ChatContext `json:"context,omitempty"`
	History      []ChatTurn   `json:"history,omitempty"`
	UserAPIKey   string       `json:"userApiKey,omitempty"`
	UserProvider string       `json:"userProvider,omitempty"`
	UserModel    string       `json:"userModel,omitempty"`
}

// ChatResponse represents the API response for a chat question
// @Description Chat answer
type ChatResponse struct {
	Success   bool   `json:"success" example:"true"`
	Response  string `json:"response" example:"Based on your analysis, I recommend prioritizing..."`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// AnalysisDetailResponse wraps a stored analysis
// @Description Stored analysis
type AnalysisDetailResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    *AnalysisResult `json:"data"`
}

// HistoryResponse lists a user's recent analyses
// @Description Analysis history
type HistoryResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    []AnalysisResult `json:"data"`
	Count   int              `json:"count" example:"3"`
	Message string           `json:"message,omitempty"`
}

// DeleteResponse acknowledges a deletion
// @Description Deletion acknowledgement
type DeleteResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Analysis deleted"`
}

// ExtractResumeResponse returns text extracted from an uploaded resume
// @Description Extracted resume text
type ExtractResumeResponse struct {
	Success    bool   `json:"success" example:"true"`
	Text       string `json:"text"`
	FileName   string `json:"fileName" example:"resume.pdf"`
	Characters int    `json:"characters" example:"4210"`
	Archived   bool   `json:"archived" example:"false"`
	ArchiveURL string `json:"archiveUrl,omitempty"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"resumeText is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Store     string `json:"store" example:"firestore"`
	Provider  string `json:"provider" example:"http"`
}
