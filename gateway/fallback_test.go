package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careercompass/backend/models"
)

func TestFallbackRule_Selection(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Hello", "greeting"},
		{"  hey there!! ", "greeting"},
		{"Good morning.", "greeting"},
		{"Hello, what should I learn?", "default"},
		{"What are my strongest skills?", "strengths"},
		{"Which qualifications do I have?", "strengths"},
		{"What skills should I learn?", "skill_plan"},
		{"Which skill should I prioritize?", "skill_plan"},
		{"How can I improve my skills?", "skill_plan"},
		{"What skill can I improve?", "skill_plan"},
		{"How do I improve skills for this role?", "skill_plan"},
		{"How do I get better at the skills they want?", "skill_plan"},
		{"How can I improve my resume?", "improve"},
		{"Make it stronger", "improve"},
		{"Am I ready for this job?", "readiness"},
		{"Am I qualified?", "readiness"},
		{"What are my chances?", "readiness"},
		{"How do I describe a project?", "experience"},
		{"Any certification ideas?", "certification"},
		{"Recommend a course", "certification"},
		{"How should I prepare for the interview?", "interview"},
		{"What am I lacking?", "gaps"},
		{"Tell me about gaps", "gaps"},
		{"Thanks", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, fallbackRule(tt.message).name)
		})
	}
}

func TestFallbackReply_ImproveSkillsListsHighPriorityGaps(t *testing.T) {
	c := models.ChatContext{
		Gaps: []models.Gap{
			{Category: "Technical Skills", Description: "Cloud", Priority: models.PriorityHigh, Actionable: "Get certified"},
		},
	}

	reply := FallbackReply("How can I improve my skills?", c)
	assert.Contains(t, reply, "**Cloud**: Get certified")
	assert.NotContains(t, reply, "matched skills")
}

func TestFallbackReply_Greeting(t *testing.T) {
	reply := FallbackReply("Hello", models.ChatContext{})
	assert.Contains(t, reply, "career assistant")

	reply = FallbackReply("hi", models.ChatContext{MatchScore: 68})
	assert.Contains(t, reply, "68%")
}

func TestFallbackReply_SkillPlanListsHighPriorityGaps(t *testing.T) {
	chatCtx := models.ChatContext{
		Gaps: []models.Gap{
			{Description: "Cloud", Priority: "High", Actionable: "Get certified"},
			{Description: "Leadership", Priority: "Medium", Actionable: "Mentor"},
		},
	}

	reply := FallbackReply("What skills should I learn?", chatCtx)
	assert.Contains(t, reply, "**Cloud**: Get certified")
	assert.NotContains(t, reply, "Leadership")
	assert.Contains(t, reply, "Based on the job requirements")

	chatCtx.ResumeText = "Go developer"
	reply = FallbackReply("What skills should I learn?", chatCtx)
	assert.Contains(t, reply, "Based on your resume and the job requirements")
}

func TestFallbackReply_SkillPlanCapsAtThree(t *testing.T) {
	chatCtx := models.ChatContext{Gaps: []models.Gap{
		{Description: "A", Priority: "high", Actionable: "a"},
		{Description: "B", Priority: "High", Actionable: "b"},
		{Description: "C", Priority: "HIGH", Actionable: "c"},
		{Description: "D", Priority: "High", Actionable: "d"},
	}}

	reply := FallbackReply("which skills to prioritize", chatCtx)
	assert.Contains(t, reply, "3. **C**: c")
	assert.NotContains(t, reply, "**D**")
}

func TestFallbackReply_SkillPlanWithoutGaps(t *testing.T) {
	reply := FallbackReply("What skills should I learn?", models.ChatContext{})
	assert.Contains(t, reply, "hands-on projects")
}

func TestFallbackReply_Strengths(t *testing.T) {
	chatCtx := models.ChatContext{Skills: models.Skills{
		Matched: []models.SkillMatch{{Name: "Go"}, {Name: "SQL"}},
		Missing: []models.MissingSkill{{Name: "Kubernetes"}},
	}}

	reply := FallbackReply("What are my strongest skills?", chatCtx)
	assert.Contains(t, reply, "Go, SQL")
	assert.Contains(t, reply, "Kubernetes")

	reply = FallbackReply("What are my strongest skills?", models.ChatContext{})
	assert.Contains(t, reply, "don't see matched skills")
}

func TestFallbackReply_Improve(t *testing.T) {
	chatCtx := models.ChatContext{Recommendations: []models.Recommendation{
		{Text: "one"}, {Text: "two"}, {Text: "three"}, {Text: "four"},
	}}

	reply := FallbackReply("How can I improve?", chatCtx)
	assert.Contains(t, reply, "3. three")
	assert.NotContains(t, reply, "four")

	reply = FallbackReply("How can I improve?", models.ChatContext{})
	assert.Contains(t, reply, "quantifiable achievements")
}

func TestFallbackReply_ReadinessTiers(t *testing.T) {
	tests := []struct {
		score     int
		tier      string
		alignment bool
	}{
		{95, "You're well-qualified", true},
		{80, "You're well-qualified", true},
		{72, "You have a good foundation", true},
		{65, "You have a good foundation", false},
		{40, "You should focus on developing key skills", false},
	}

	for _, tt := range tests {
		reply := FallbackReply("Am I ready?", models.ChatContext{MatchScore: tt.score})
		assert.Contains(t, reply, tt.tier)
		assert.Equal(t, tt.alignment, strings.Contains(reply, "aligns well"), "score %d", tt.score)
	}
}

func TestFallbackReply_Gaps(t *testing.T) {
	chatCtx := models.ChatContext{Gaps: []models.Gap{
		{Category: "Technical Skills", Description: "Cloud", Priority: "High", Actionable: "Get certified"},
	}}

	reply := FallbackReply("What am I missing?", chatCtx)
	assert.Contains(t, reply, "**Technical Skills**: Cloud")
	assert.Contains(t, reply, "Action: Get certified")

	reply = FallbackReply("What am I missing?", models.ChatContext{})
	assert.Contains(t, reply, "Gap Analysis")
}

func TestFallbackReply_DefaultMentionsScore(t *testing.T) {
	reply := FallbackReply("Tell me something", models.ChatContext{MatchScore: 55})
	assert.Contains(t, reply, "55%")
}

func TestFallbackReply_IsDeterministic(t *testing.T) {
	chatCtx := models.ChatContext{MatchScore: 70}
	for _, msg := range []string{"hello", "am I ready", "interview tips", "anything"} {
		assert.Equal(t, FallbackReply(msg, chatCtx), FallbackReply(msg, chatCtx))
	}
}
