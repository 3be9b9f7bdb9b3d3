package models

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatContext is the analysis data a chat question is answered against
// @Description Analysis context for chat
type ChatContext struct {
	JobDescription  string           `json:"jobDescription"`
	ResumeText      string           `json:"resumeText"`
	MatchScore      int              `json:"matchScore" example:"72"`
	Skills          Skills           `json:"skills"`
	Gaps            []Gap            `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
}

// EmptyChatContext is used when no analysis could be found
func EmptyChatContext() ChatContext {
	return ChatContext{
		Skills:          Skills{Matched: []SkillMatch{}, Missing: []MissingSkill{}},
		Gaps:            []Gap{},
		Recommendations: []Recommendation{},
	}
}
