package gateway

import (
	"fmt"
	"math/rand/v2"

	"github.com/careercompass/backend/models"
)

// MockModel marks analyses synthesized without the provider
const MockModel = "mock-v1"

const mockMatchScore = 72

var mockSkillPool = []string{"JavaScript", "React", "Node.js", "Python", "SQL"}

// MockAnalysis synthesizes a fixed analysis. Only the split between matched
// and missing skills (2 to 4 matched) and the matched relevances vary.
// It does not look at the resume or job description.
func MockAnalysis() *models.ProviderAnalyzeResponse {
	matchedCount := rand.IntN(3) + 2
	score := mockMatchScore

	matched := make([]models.SkillMatch, 0, matchedCount)
	for _, name := range mockSkillPool[:matchedCount] {
		matched = append(matched, models.SkillMatch{
			Name:      name,
			Relevance: 0.8 + rand.Float64()*0.2,
		})
	}

	missing := make([]models.MissingSkill, 0, len(mockSkillPool)-matchedCount)
	for _, name := range mockSkillPool[matchedCount:] {
		missing = append(missing, models.MissingSkill{
			Name:       name,
			Priority:   models.PriorityHigh,
			Suggestion: fmt.Sprintf("Consider learning %s to improve your profile", name),
		})
	}

	return &models.ProviderAnalyzeResponse{
		MatchScore:    &score,
		MatchedSkills: matched,
		MissingSkills: missing,
		Gaps: []models.Gap{
			{
				Category:    "Technical Skills",
				Description: "Cloud computing experience (AWS, Azure, or GCP)",
				Priority:    models.PriorityHigh,
				Actionable:  "Complete AWS certification or build cloud-based projects",
			},
			{
				Category:    "Experience",
				Description: "Leadership or team management experience",
				Priority:    models.PriorityMedium,
				Actionable:  "Seek opportunities to lead projects or mentor junior developers",
			},
			{
				Category:    "Soft Skills",
				Description: "Cross-functional collaboration experience",
				Priority:    models.PriorityMedium,
				Actionable:  "Highlight any collaborative projects in your resume",
			},
		},
		Recommendations: []models.Recommendation{
			{
				Text:     "Add quantifiable achievements to your work experience",
				Priority: models.PriorityHigh,
				Impact:   models.PriorityHigh,
			},
			{
				Text:     "Include relevant certifications and training",
				Priority: models.PriorityMedium,
				Impact:   models.PriorityMedium,
			},
		},
		TopTip: "Focus on quantifying your achievements with specific metrics and outcomes to make your resume stand out.",
		Model:  MockModel,
	}
}
