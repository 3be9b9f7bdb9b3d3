package models

import "time"

// ProviderAnalyzeRequest is the AI service wire shape for POST /api/analyze
type ProviderAnalyzeRequest struct {
	ResumeText      string `json:"resume_text"`
	JobDescription  string `json:"job_description"`
	DetailLevel     string `json:"detail_level"`
	IncludeExamples bool   `json:"include_examples"`
	PriorityFocus   string `json:"priority_focus"`
	UserAPIKey      string `json:"user_api_key,omitempty"`
	UserProvider    string `json:"user_provider,omitempty"`
	UserModel       string `json:"user_model,omitempty"`
}

// Credentials reconstructs the caller credentials carried by the request, if any
func (r *ProviderAnalyzeRequest) Credentials() *ProviderCredentials {
	if r.UserAPIKey == "" {
		return nil
	}
	return &ProviderCredentials{Provider: r.UserProvider, APIKey: r.UserAPIKey, Model: r.UserModel}
}

// ProviderAnalyzeResponse is the AI service reply to /api/analyze.
// Pointer and nil-able fields distinguish "omitted" from zero values.
type ProviderAnalyzeResponse struct {
	MatchScore      *int             `json:"match_score"`
	MatchedSkills   []SkillMatch     `json:"matched_skills"`
	MissingSkills   []MissingSkill   `json:"missing_skills"`
	Gaps            []Gap            `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
	TopTip          string           `json:"top_tip"`
	Model           string           `json:"model"`
}

// ProviderChatContext is the snake_case chat context sent to the AI service
type ProviderChatContext struct {
	ResumeText      string           `json:"resume_text"`
	JobDescription  string           `json:"job_description"`
	MatchScore      int              `json:"match_score"`
	Skills          Skills           `json:"skills"`
	Gaps            []Gap            `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
}

// NewProviderChatContext converts a ChatContext into its wire shape
func NewProviderChatContext(c ChatContext) ProviderChatContext {
	return ProviderChatContext{
		ResumeText:      c.ResumeText,
		JobDescription:  c.JobDescription,
		MatchScore:      c.MatchScore,
		Skills:          c.Skills,
		Gaps:            c.Gaps,
		Recommendations: c.Recommendations,
	}
}

// ChatContext converts the wire shape back into a ChatContext
func (p ProviderChatContext) ChatContext() ChatContext {
	return ChatContext{
		ResumeText:      p.ResumeText,
		JobDescription:  p.JobDescription,
		MatchScore:      p.MatchScore,
		Skills:          p.Skills,
		Gaps:            p.Gaps,
		Recommendations: p.Recommendations,
	}
}

// ProviderChatTurn is one history entry on the wire
type ProviderChatTurn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewProviderHistory converts history turns preserving their order
func NewProviderHistory(turns []ChatTurn) []ProviderChatTurn {
	out := make([]ProviderChatTurn, 0, len(turns))
	for _, t := range turns {
		pt := ProviderChatTurn{Role: t.Role, Content: t.Content}
		if !t.Timestamp.IsZero() {
			pt.Timestamp = t.Timestamp.UTC().Format(time.RFC3339)
		}
		out = append(out, pt)
	}
	return out
}

// ProviderChatRequest is the AI service wire shape for POST /api/chat
type ProviderChatRequest struct {
	Message      string              `json:"message"`
	Context      ProviderChatContext `json:"context"`
	History      []ProviderChatTurn  `json:"history"`
	UserAPIKey   string              `json:"user_api_key,omitempty"`
	UserProvider string              `json:"user_provider,omitempty"`
	UserModel    string              `json:"user_model,omitempty"`
}

// Credentials reconstructs the caller credentials carried by the request, if any
func (r *ProviderChatRequest) Credentials() *ProviderCredentials {
	if r.UserAPIKey == "" {
		return nil
	}
	return &ProviderCredentials{Provider: r.UserProvider, APIKey: r.UserAPIKey, Model: r.UserModel}
}

// ProviderChatResponse is the AI service reply to /api/chat. Older services answer in "message".
type ProviderChatResponse struct {
	Response string `json:"response"`
	Message  string `json:"message,omitempty"`
	Model    string `json:"model,omitempty"`
}

// Text returns the reply text, preferring "response"
func (r *ProviderChatResponse) Text() string {
	if r.Response != "" {
		return r.Response
	}
	return r.Message
}
