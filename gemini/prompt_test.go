package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/backend/models"
)

func TestAnalysisPrompt_HonorsSettings(t *testing.T) {
	prompt := AnalysisPrompt(models.ProviderAnalyzeRequest{
		ResumeText:      "RESUME BODY",
		JobDescription:  "JOB BODY",
		DetailLevel:     models.DetailQuick,
		IncludeExamples: false,
		PriorityFocus:   models.FocusKeywords,
	})

	assert.Contains(t, prompt, "RESUME BODY")
	assert.Contains(t, prompt, "JOB BODY")
	assert.Contains(t, prompt, "at most 3 gaps")
	assert.Contains(t, prompt, "keyword overlap")
	assert.Contains(t, prompt, "Do not include examples")
	assert.Contains(t, prompt, `"match_score"`)
}

func TestAnalysisPrompt_UnknownSettingsAreSkipped(t *testing.T) {
	prompt := AnalysisPrompt(models.ProviderAnalyzeRequest{
		DetailLevel:     "verbose",
		PriorityFocus:   "vibes",
		IncludeExamples: true,
	})
	assert.Contains(t, prompt, "Include a concrete example")
	assert.NotContains(t, prompt, "verbose")
}

func TestChatInstruction(t *testing.T) {
	instr := ChatInstruction(models.ProviderChatContext{
		MatchScore: 64,
		Skills: models.Skills{
			Matched: []models.SkillMatch{{Name: "Go"}},
			Missing: []models.MissingSkill{{Name: "Kubernetes", Priority: "High"}},
		},
		Gaps: []models.Gap{{Category: "Technical Skills", Description: "Cloud", Priority: "High", Actionable: "Get certified"}},
	})

	assert.Contains(t, instr, "Match score: 64%")
	assert.Contains(t, instr, "Matched skills: Go")
	assert.Contains(t, instr, "Kubernetes (High)")
	assert.Contains(t, instr, "Next step: Get certified")
	assert.NotContains(t, instr, "RESUME:")
}

func TestParseAnalysis(t *testing.T) {
	resp, err := ParseAnalysis("```json\n{\"match_score\": 77, \"matched_skills\": [{\"name\": \"Go\", \"relevance\": 0.8}], \"top_tip\": \"tip\"}\n```")
	require.NoError(t, err)
	require.NotNil(t, resp.MatchScore)
	assert.Equal(t, 77, *resp.MatchScore)
	assert.Equal(t, "Go", resp.MatchedSkills[0].Name)
	assert.Equal(t, "tip", resp.TopTip)

	resp, err = ParseAnalysis(`{"top_tip": "only a tip"}`)
	require.NoError(t, err)
	assert.Nil(t, resp.MatchScore)

	_, err = ParseAnalysis("I cannot help with that")
	assert.Error(t, err)
}

func TestCallerGeminiKey(t *testing.T) {
	assert.Nil(t, callerGeminiKey(nil))
	assert.Nil(t, callerGeminiKey(&models.ProviderCredentials{Provider: "openai", APIKey: "k"}))
	assert.NotNil(t, callerGeminiKey(&models.ProviderCredentials{Provider: "Gemini", APIKey: "k"}))
	assert.NotNil(t, callerGeminiKey(&models.ProviderCredentials{APIKey: "k"}))
}
