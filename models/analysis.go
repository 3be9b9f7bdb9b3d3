package models

import "time"

// AnalysisStatus is the lifecycle state of an analysis
type AnalysisStatus string

const (
	StatusPending   AnalysisStatus = "pending"
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// Priority labels used by gaps, missing skills and recommendations
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Analysis setting values
const (
	DetailQuick         = "quick"
	DetailStandard      = "standard"
	DetailDetailed      = "detailed"
	DetailComprehensive = "comprehensive"

	FocusSkills     = "skills"
	FocusExperience = "experience"
	FocusBalanced   = "balanced"
	FocusKeywords   = "keywords"
)

// DefaultProvider is assumed when a caller supplies an API key without naming a provider
const DefaultProvider = "gemini"

// SkillMatch is a skill found in both the resume and the job description
type SkillMatch struct {
	Name      string  `json:"name" firestore:"name" example:"Go"`
	Relevance float64 `json:"relevance" firestore:"relevance" example:"0.9"`
}

// MissingSkill is a skill the job asks for that the resume lacks
type MissingSkill struct {
	Name       string `json:"name" firestore:"name" example:"Kubernetes"`
	Priority   string `json:"priority" firestore:"priority" example:"High"`
	Suggestion string `json:"suggestion" firestore:"suggestion" example:"Deploy a side project to a managed cluster"`
}

// Skills groups matched and missing skills
type Skills struct {
	Matched []SkillMatch   `json:"matched" firestore:"matched"`
	Missing []MissingSkill `json:"missing" firestore:"missing"`
}

// Gap is a qualification gap between resume and job description
type Gap struct {
	Category    string `json:"category" firestore:"category" example:"Technical Skills"`
	Description string `json:"description" firestore:"description" example:"Cloud computing experience"`
	Priority    string `json:"priority" firestore:"priority" example:"High"`
	Actionable  string `json:"actionable" firestore:"actionable" example:"Complete an AWS certification"`
}

// Recommendation is a suggested resume or career action
type Recommendation struct {
	Text     string `json:"text" firestore:"text" example:"Add quantifiable achievements"`
	Priority string `json:"priority" firestore:"priority" example:"High"`
	Impact   string `json:"impact" firestore:"impact" example:"High"`
}

// AnalysisSettings controls how detailed the provider analysis is
// @Description Analysis configuration
type AnalysisSettings struct {
	DetailLevel     string `json:"detailLevel,omitempty" firestore:"detailLevel" example:"detailed"`
	IncludeExamples *bool  `json:"includeExamples,omitempty" firestore:"includeExamples" example:"true"`
	PriorityFocus   string `json:"priorityFocus,omitempty" firestore:"priorityFocus" example:"balanced"`
}

// WithDefaults fills unset fields. Unrecognized values are passed through untouched.
func (s AnalysisSettings) WithDefaults() AnalysisSettings {
	if s.DetailLevel == "" {
		s.DetailLevel = DetailDetailed
	}
	if s.IncludeExamples == nil {
		include := true
		s.IncludeExamples = &include
	}
	if s.PriorityFocus == "" {
		s.PriorityFocus = FocusBalanced
	}
	return s
}

// Examples reports the include-examples flag, defaulting to true
func (s AnalysisSettings) Examples() bool {
	return s.IncludeExamples == nil || *s.IncludeExamples
}

// ProviderCredentials are caller-supplied model credentials. Never persisted.
type ProviderCredentials struct {
	Provider string `json:"-"`
	APIKey   string `json:"-"`
	Model    string `json:"-"`
}

// AnalysisMetadata describes how an analysis was produced
type AnalysisMetadata struct {
	ProcessingTime   int64            `json:"processingTime" firestore:"processingTime" example:"1532"`
	AIModel          string           `json:"aiModel" firestore:"aiModel" example:"gemini-2.5-flash"`
	Version          string           `json:"version" firestore:"version" example:"1.0"`
	AnalysisSettings AnalysisSettings `json:"analysisSettings" firestore:"analysisSettings"`
}

// ChatTurn is one message in an analysis conversation
type ChatTurn struct {
	Role      string    `json:"role" firestore:"role" example:"user"`
	Content   string    `json:"content" firestore:"content" example:"What skills should I learn?"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// AnalysisResult is a completed resume-to-job analysis
// @Description Resume analysis result
type AnalysisResult struct {
	ID              string           `json:"id" firestore:"-" example:"Xy3kq9WbT2"`
	UserID          string           `json:"userId" firestore:"userId"`
	ResumeText      string           `json:"resumeText,omitempty" firestore:"resumeText"`
	JobDescription  string           `json:"jobDescription,omitempty" firestore:"jobDescription"`
	MatchScore      int              `json:"matchScore" firestore:"matchScore" example:"72"`
	Skills          Skills           `json:"skills" firestore:"skills"`
	Gaps            []Gap            `json:"gaps" firestore:"gaps"`
	Recommendations []Recommendation `json:"recommendations" firestore:"recommendations"`
	TopTip          string           `json:"topTip" firestore:"topTip"`
	ChatHistory     []ChatTurn       `json:"chatHistory,omitempty" firestore:"chatHistory"`
	Status          AnalysisStatus   `json:"status" firestore:"status" example:"completed"`
	Metadata        AnalysisMetadata `json:"metadata" firestore:"metadata"`
	CreatedAt       time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

// Normalize enforces the score range and replaces nil lists with empty ones
func (a *AnalysisResult) Normalize() {
	a.MatchScore = ClampScore(a.MatchScore)
	if a.Skills.Matched == nil {
		a.Skills.Matched = []SkillMatch{}
	}
	if a.Skills.Missing == nil {
		a.Skills.Missing = []MissingSkill{}
	}
	if a.Gaps == nil {
		a.Gaps = []Gap{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []Recommendation{}
	}
}

// Summary returns a copy without the large text fields, for history listings
func (a AnalysisResult) Summary() AnalysisResult {
	a.ResumeText = ""
	a.JobDescription = ""
	a.ChatHistory = nil
	return a
}

// ChatContext projects the analysis into the read-only chat context
func (a *AnalysisResult) ChatContext() ChatContext {
	return ChatContext{
		JobDescription:  a.JobDescription,
		ResumeText:      a.ResumeText,
		MatchScore:      a.MatchScore,
		Skills:          a.Skills,
		Gaps:            a.Gaps,
		Recommendations: a.Recommendations,
	}
}

// ClampScore bounds a match score to [0,100]
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
