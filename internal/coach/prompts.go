package coach

import (
	"fmt"
	"strings"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
)

// complexityLabels describes the candidate level used in scoring prompts.
var complexityLabels = map[questions.Difficulty]string{
	questions.DifficultyBeginner:     "entry-level",
	questions.DifficultyIntermediate: "mid-level professional",
	questions.DifficultyAdvanced:     "senior-level expert",
}

func complexityLabel(d questions.Difficulty) string {
	if l, ok := complexityLabels[d]; ok {
		return l
	}
	return complexityLabels[questions.DifficultyIntermediate]
}

func nameExtractPrompt(introduction string) string {
	return fmt.Sprintf(`Extract ONLY the first name from this introduction. Rules:
- Return only the first name (no last names, titles, or extra words)
- If no clear first name is found, return "Candidate"
- If multiple names, return only the first one

Introduction: "%s"`, truncate(introduction, 200))
}

func scorePrompt(question, answer string, difficulty questions.Difficulty) string {
	return fmt.Sprintf(`As an expert interview coach, evaluate this %s candidate's answer.

Question: %s
Answer: %s

Provide a JSON response with:
{
    "score": [0-10 integer],
    "strengths": ["strength1", "strength2"],
    "improvements": ["improvement1", "improvement2"],
    "sample_answer": "brief improved version"
}

Scoring criteria:
- Relevance and completeness (40%%)
- Clarity and structure (30%%)
- Specific examples and details (30%%)`, complexityLabel(difficulty), question, answer)
}

func practicePrompt(topic string, count int, difficulty questions.Difficulty) string {
	return fmt.Sprintf(`Create %d interview questions about %s for a %s-level position.
For each question, provide:
1. The question
2. A comprehensive model answer
3. Key points to mention

Format as:
**Q1: [Question]**
**Model Answer:** [Answer]
**Key Points:** [Points]

Make answers specific, actionable, and include examples where appropriate.`,
		count, topic, strings.ToLower(string(difficulty)))
}

func feedbackPrompt(s *interview.Session) string {
	cfg := s.Config()
	sum := interview.BuildSummary(s)

	name := s.CandidateName()
	if name == "" {
		name = "Anonymous"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `As an expert interview coach, analyze this %s-level %s interview performance.

Candidate: %s
Difficulty: %s
Category: %s

Interview Performance Summary:
- Total Questions: %d
- Questions Answered: %d
- Total Time: %s
- Completion Rate: %.1f%%

Questions and Answers:
`,
		cfg.Difficulty, cfg.Category,
		name, cfg.Difficulty, cfg.Category,
		sum.TotalQuestions, sum.AnsweredCount,
		interview.FormatClock(sum.TotalTimeSecs), sum.CompletionPercent)

	for i, a := range s.Answers() {
		answer := a.Answer
		if answer == "" {
			answer = "[No answer provided]"
		}
		fmt.Fprintf(&b, `
Q%d: %s
Answer: %s
Time Used: %ds / %ds
`, i+1, a.Question, truncate(answer, 500), a.TimeTaken, s.EffectiveTimeLimit())
	}

	b.WriteString(`
Please provide comprehensive feedback including:

1. **Overall Performance Score (0-100):**

2. **Strengths Demonstrated:**
   - List 3-4 key strengths observed

3. **Areas for Improvement:**
   - List 3-4 specific areas to work on

4. **Question-by-Question Analysis:**
   - Brief feedback on each answer (1-2 sentences each)

5. **Recommendations for Next Steps:**
   - Specific actionable advice for improvement

6. **Interview Readiness Assessment:**
   - Overall readiness level and what to focus on

Format the response with clear headers and bullet points.`)

	return b.String()
}

// truncate clips s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
