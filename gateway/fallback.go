package gateway

import (
	"fmt"
	"strings"

	"github.com/careercompass/backend/models"
)

// topN bounds how many gaps, recommendations and skills a reply lists
const topN = 3

// chatRule is one canned-response rule. Rules are tried in order; the first
// match wins.
type chatRule struct {
	name  string
	match func(msg string) bool
	reply func(c models.ChatContext) string
}

var chatRules = []chatRule{
	{name: "greeting", match: isGreeting, reply: greetingReply},
	{name: "skill_plan", match: asksSkillPlan, reply: skillPlanReply},
	{name: "strengths", match: asksStrengths, reply: strengthsReply},
	{name: "improve", match: hasImproveIntent, reply: improveReply},
	{name: "readiness", match: containsAny("ready", "qualified", "chance"), reply: readinessReply},
	{name: "experience", match: containsAny("experience", "project", "highlight"), reply: fixedReply(starMethodReply)},
	{name: "certification", match: containsAny("certif", "course", "training"), reply: fixedReply(certificationReply)},
	{name: "interview", match: containsAny("interview", "prepare"), reply: fixedReply(interviewReply)},
	{name: "gaps", match: containsAny("gap", "missing", "lack"), reply: gapsReply},
}

// FallbackReply answers a chat question from the analysis context alone,
// without the provider. It is deterministic and stateless.
func FallbackReply(message string, c models.ChatContext) string {
	return fallbackRule(message).reply(c)
}

// fallbackRule selects the rule for a message; the default rule when none match
func fallbackRule(message string) chatRule {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range chatRules {
		if rule.match(msg) {
			return rule
		}
	}
	return chatRule{name: "default", reply: defaultReply}
}

var greetings = map[string]bool{
	"hi": true, "hello": true, "hey": true, "hiya": true, "howdy": true, "greetings": true,
	"hi there": true, "hello there": true, "hey there": true,
	"good morning": true, "good afternoon": true, "good evening": true,
}

// isGreeting matches a message that is nothing but a greeting
func isGreeting(msg string) bool {
	return greetings[strings.TrimRight(msg, " !.?,;:")]
}

// asksStrengths matches questions about current skills. Questions about
// learning or improving skills belong to the skill plan rule, and "qualified"
// to readiness.
func asksStrengths(msg string) bool {
	if !containsAny("strongest", "best skill", "my skill", "what skill", "qualification")(msg) {
		return false
	}
	return !hasLearningIntent(msg) && !hasImproveIntent(msg)
}

// asksSkillPlan matches skill questions with learning or improve intent.
// "improve my skills" is a skill plan question, not a resume one.
func asksSkillPlan(msg string) bool {
	return strings.Contains(msg, "skill") && (hasLearningIntent(msg) || hasImproveIntent(msg))
}

func hasLearningIntent(msg string) bool {
	return containsAny("learn", "priorit", "should i")(msg)
}

func hasImproveIntent(msg string) bool {
	return containsAny("improve", "better", "stronger")(msg)
}

func containsAny(keywords ...string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}

func fixedReply(text string) func(models.ChatContext) string {
	return func(models.ChatContext) string { return text }
}

func greetingReply(c models.ChatContext) string {
	if c.MatchScore > 0 {
		return fmt.Sprintf("Hello! I've reviewed your analysis: you have a %d%% match for this role.\n\n"+
			"Ask me which skills to prioritize, how to improve your resume, or how to prepare for the interview.", c.MatchScore)
	}
	return "Hello! I'm your career assistant. I can help you understand your resume analysis, " +
		"prioritize skills to learn, improve your resume, and prepare for interviews.\n\nWhat would you like to know?"
}

func strengthsReply(c models.ChatContext) string {
	matched := skillNames(c.Skills.Matched, 5)
	if len(matched) == 0 {
		return "I don't see matched skills in your analysis yet. Run an analysis with your full resume " +
			"and I can point out your strongest qualifications for this role."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your strongest skills for this role are: %s.", strings.Join(matched, ", "))
	if missing := missingNames(c.Skills.Missing, topN); len(missing) > 0 {
		fmt.Fprintf(&sb, "\n\nTo round out your profile, consider building: %s.", strings.Join(missing, ", "))
	}
	sb.WriteString("\n\nMake these strengths prominent in your summary and back each one with a concrete achievement.")
	return sb.String()
}

func skillPlanReply(c models.ChatContext) string {
	high := highPriorityGaps(c.Gaps)
	hasResume := strings.TrimSpace(c.ResumeText) != ""

	if len(high) == 0 {
		if !hasResume {
			return "Start with the skills the job description emphasizes most. Paste your resume into a new analysis " +
				"and I can build a prioritized plan. Consider online courses, certifications, or hands-on projects."
		}
		return "Start with the high-priority skills from your gap analysis. Consider online courses, certifications, " +
			"or hands-on projects to build expertise. Focus on practical application over theory."
	}

	var sb strings.Builder
	if hasResume {
		sb.WriteString("Based on your resume and the job requirements, I recommend prioritizing these skills:\n\n")
	} else {
		sb.WriteString("Based on the job requirements, I recommend prioritizing these skills:\n\n")
	}
	for i, g := range limitGaps(high, topN) {
		fmt.Fprintf(&sb, "%d. **%s**: %s\n", i+1, g.Description, g.Actionable)
	}
	sb.WriteString("\nFocus on high-priority gaps first to maximize your impact. " +
		"Consider online courses (Coursera, Udemy) or hands-on projects to build expertise.")
	return sb.String()
}

func improveReply(c models.ChatContext) string {
	if len(c.Recommendations) == 0 {
		return "To improve your resume match score:\n" +
			"1. Add quantifiable achievements with metrics (e.g., \"Increased performance by 40%\")\n" +
			"2. Include relevant keywords from the job description\n" +
			"3. Highlight projects that align with role requirements\n" +
			"4. Use action verbs and focus on outcomes"
	}

	var sb strings.Builder
	sb.WriteString("Here are specific ways to improve your resume:\n\n")
	for i, r := range c.Recommendations {
		if i == topN {
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, r.Text)
	}
	sb.WriteString("\nAlso remember to add quantifiable achievements with specific metrics to make your experience stand out.")
	return sb.String()
}

// ReadinessTier describes a match score in words
func ReadinessTier(score int) string {
	switch {
	case score >= 80:
		return "You're well-qualified"
	case score >= 60:
		return "You have a good foundation"
	default:
		return "You should focus on developing key skills"
	}
}

func readinessReply(c models.ChatContext) string {
	advice := "To improve your chances, prioritize the high-priority skill gaps and update your resume to emphasize relevant experience."
	if c.MatchScore >= 70 {
		advice = "Your experience aligns well with the requirements. Focus on highlighting relevant achievements in your application."
	}
	return fmt.Sprintf("%s for this role with a %d%% match score.\n\n%s\n\n"+
		"Remember, even if gaps exist, your attitude, learning ability, and relevant experience matter greatly to employers.",
		ReadinessTier(c.MatchScore), c.MatchScore, advice)
}

func gapsReply(c models.ChatContext) string {
	high := highPriorityGaps(c.Gaps)
	if len(high) == 0 {
		return "Check your Gap Analysis tab for specific areas to improve. Focus on high-priority items first " +
			"and create an action plan to address them systematically."
	}

	items := make([]string, 0, len(high))
	for i, g := range high {
		items = append(items, fmt.Sprintf("%d. **%s**: %s\n   Action: %s", i+1, g.Category, g.Description, g.Actionable))
	}
	return "Your main gaps to address:\n\n" + strings.Join(items, "\n\n") +
		"\n\nDon't let gaps discourage you, they're opportunities for growth. Focus on one at a time and track your progress."
}

func defaultReply(c models.ChatContext) string {
	return fmt.Sprintf("I'm here to help with your career development! Based on your %d%% match score, I can assist with:\n\n"+
		"- Specific skills to learn and prioritize\n"+
		"- Ways to improve your resume and highlight achievements\n"+
		"- Interview preparation and presentation strategies\n"+
		"- Understanding your gaps and creating an action plan\n\n"+
		"What would you like to know more about?", c.MatchScore)
}

const starMethodReply = "When describing your experience, use the STAR method:\n" +
	"- **Situation**: Set the context\n" +
	"- **Task**: Explain the challenge\n" +
	"- **Action**: Describe what you did\n" +
	"- **Result**: Quantify the impact\n\n" +
	"Example: \"Led a team of 3 to migrate legacy system to microservices, reducing deployment time by 60% and improving uptime to 99.9%\"\n\n" +
	"Always quantify achievements with specific metrics and outcomes."

const certificationReply = "Certifications that can boost your profile:\n" +
	"1. **Cloud**: AWS Solutions Architect, Azure Administrator\n" +
	"2. **Development**: Professional Scrum Developer, Modern Web Development\n" +
	"3. **Management**: PMP, Agile/Scrum Master\n" +
	"4. **Security**: CompTIA Security+, CISSP\n\n" +
	"Choose certifications that align with the job requirements and your career goals. Many offer free trials or affordable options."

const interviewReply = "Interview preparation checklist:\n\n" +
	"**Before:**\n" +
	"- Research the company and its tech stack\n" +
	"- Review the job description thoroughly\n" +
	"- Prepare STAR examples for your achievements\n\n" +
	"**During:**\n" +
	"- Highlight relevant projects and outcomes\n" +
	"- Ask thoughtful questions about the role and team\n" +
	"- Be honest about gaps and emphasize willingness to learn\n\n" +
	"**Technical:**\n" +
	"- Practice coding problems (LeetCode, HackerRank)\n" +
	"- Review system design concepts\n" +
	"- Prepare to discuss your projects in detail"

func highPriorityGaps(gaps []models.Gap) []models.Gap {
	var high []models.Gap
	for _, g := range gaps {
		if strings.EqualFold(strings.TrimSpace(g.Priority), models.PriorityHigh) {
			high = append(high, g)
		}
	}
	return high
}

func limitGaps(gaps []models.Gap, n int) []models.Gap {
	if len(gaps) > n {
		return gaps[:n]
	}
	return gaps
}

func skillNames(skills []models.SkillMatch, n int) []string {
	names := make([]string, 0, n)
	for _, s := range skills {
		if len(names) == n {
			break
		}
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

func missingNames(skills []models.MissingSkill, n int) []string {
	names := make([]string, 0, n)
	for _, s := range skills {
		if len(names) == n {
			break
		}
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}
