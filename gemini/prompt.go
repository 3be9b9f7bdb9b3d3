package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careercompass/backend/models"
)

const analysisSchema = `{
  "match_score": 0,
  "matched_skills": [{"name": "skill", "relevance": 0.9}],
  "missing_skills": [{"name": "skill", "priority": "High|Medium|Low", "suggestion": "how to acquire it"}],
  "gaps": [{"category": "Technical Skills|Experience|Soft Skills|Education", "description": "what is missing", "priority": "High|Medium|Low", "actionable": "concrete next step"}],
  "recommendations": [{"text": "resume change", "priority": "High|Medium|Low", "impact": "High|Medium|Low"}],
  "top_tip": "single most important advice"
}`

var detailInstructions = map[string]string{
	models.DetailQuick:         "Keep the analysis short: at most 3 gaps and 3 recommendations.",
	models.DetailStandard:      "Give a balanced analysis with 3 to 5 gaps and recommendations.",
	models.DetailDetailed:      "Give a thorough analysis with up to 6 gaps and 6 recommendations.",
	models.DetailComprehensive: "Be exhaustive: cover every requirement in the job description.",
}

var focusInstructions = map[string]string{
	models.FocusSkills:     "Weigh technical and domain skills most heavily.",
	models.FocusExperience: "Weigh relevant work experience and seniority most heavily.",
	models.FocusKeywords:   "Weigh keyword overlap with the job description most heavily, as an applicant tracking system would.",
	models.FocusBalanced:   "Weigh skills, experience and keywords equally.",
}

// AnalysisPrompt builds the resume analysis prompt for the given request
func AnalysisPrompt(req models.ProviderAnalyzeRequest) string {
	var sb strings.Builder
	sb.WriteString("You are an expert career counselor and resume analyst.\n")
	sb.WriteString("Analyze the resume against the job description and return a JSON object with exactly this structure:\n\n")
	sb.WriteString(analysisSchema)
	sb.WriteString("\n\nRules:\n")
	sb.WriteString("- match_score is an integer from 0 to 100.\n")
	sb.WriteString("- relevance is a number from 0 to 1.\n")
	if s, ok := detailInstructions[req.DetailLevel]; ok {
		sb.WriteString("- " + s + "\n")
	}
	if s, ok := focusInstructions[req.PriorityFocus]; ok {
		sb.WriteString("- " + s + "\n")
	}
	if req.IncludeExamples {
		sb.WriteString("- Include a concrete example in each suggestion and actionable step.\n")
	} else {
		sb.WriteString("- Do not include examples; keep suggestions brief.\n")
	}
	fmt.Fprintf(&sb, "\nRESUME:\n%s\n\nJOB DESCRIPTION:\n%s\n\n", req.ResumeText, req.JobDescription)
	sb.WriteString("Return ONLY the JSON object, no markdown formatting, no explanation.")
	return sb.String()
}

// ChatInstruction builds the system instruction for a chat about an analysis
func ChatInstruction(c models.ProviderChatContext) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful career advisor. Answer the user's question using the analysis below. ")
	sb.WriteString("Be specific and actionable, and keep answers under 250 words.\n\n")
	fmt.Fprintf(&sb, "Match score: %d%%\n", c.MatchScore)

	if names := matchedNames(c.Skills.Matched); len(names) > 0 {
		fmt.Fprintf(&sb, "Matched skills: %s\n", strings.Join(names, ", "))
	}
	if len(c.Skills.Missing) > 0 {
		names := make([]string, 0, len(c.Skills.Missing))
		for _, s := range c.Skills.Missing {
			names = append(names, fmt.Sprintf("%s (%s)", s.Name, s.Priority))
		}
		fmt.Fprintf(&sb, "Missing skills: %s\n", strings.Join(names, ", "))
	}
	for _, g := range c.Gaps {
		fmt.Fprintf(&sb, "Gap [%s] %s: %s. Next step: %s\n", g.Priority, g.Category, g.Description, g.Actionable)
	}
	for _, r := range c.Recommendations {
		fmt.Fprintf(&sb, "Recommendation [%s]: %s\n", r.Priority, r.Text)
	}
	if c.JobDescription != "" {
		fmt.Fprintf(&sb, "\nJOB DESCRIPTION:\n%s\n", c.JobDescription)
	}
	if c.ResumeText != "" {
		fmt.Fprintf(&sb, "\nRESUME:\n%s\n", c.ResumeText)
	}
	return sb.String()
}

func matchedNames(skills []models.SkillMatch) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

// ParseAnalysis decodes the model's JSON reply
func ParseAnalysis(text string) (*models.ProviderAnalyzeResponse, error) {
	var resp models.ProviderAnalyzeResponse
	if err := json.Unmarshal([]byte(cleanJSON(text)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	return &resp, nil
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
