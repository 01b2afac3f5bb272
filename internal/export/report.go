// Package export renders completed interview attempts as plain-text files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
)

// Report renders the full results document: header, per-question
// transcript, and the coach feedback.
func Report(s *interview.Session, now time.Time) string {
	cfg := s.Config()
	sum := interview.BuildSummary(s)

	name := s.CandidateName()
	if name == "" {
		name = "Anonymous"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `AI MOCK INTERVIEW RESULTS
========================
Date: %s
Candidate: %s
Category: %s
Difficulty: %s
Total Questions: %d
Questions Answered: %d
Completion Rate: %.0f%%
Total Time: %s

QUESTIONS & ANSWERS
==================
`,
		now.Format("2006-01-02 15:04:05"),
		name, cfg.Category, cfg.Difficulty,
		sum.TotalQuestions, sum.AnsweredCount,
		sum.CompletionPercent, interview.FormatClock(sum.TotalTimeSecs))

	for i, a := range s.Answers() {
		answer := a.Answer
		if answer == "" {
			answer = "[No answer provided]"
		}
		fmt.Fprintf(&b, `
Q%d: %s
Time Allocated: %ds
Time Used: %ds

Your Answer:
%s

%s
`, i+1, a.Question, s.EffectiveTimeLimit(), a.TimeTaken, answer, strings.Repeat("=", 50))
	}

	feedback, ok := s.Feedback()
	if !ok || feedback == "" {
		feedback = "Feedback not available - please check your LLM connection"
	}
	fmt.Fprintf(&b, `

AI COACH FEEDBACK
================
%s

END OF REPORT
=============
Generated by PrepBot
`, feedback)

	return b.String()
}

// Summary renders the short shareable summary.
func Summary(s *interview.Session) string {
	cfg := s.Config()
	sum := interview.BuildSummary(s)

	return fmt.Sprintf(`INTERVIEW SUMMARY
Completed %d/%d questions
Category: %s (%s)
Time: %s
Completion: %.0f%%

Ready for your next challenge!
`,
		sum.AnsweredCount, sum.TotalQuestions,
		cfg.Category, cfg.Difficulty,
		interview.FormatClock(sum.TotalTimeSecs), sum.CompletionPercent)
}

// ReportFilename returns the timestamped name for a full report file.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("interview_results_%s.txt", now.Format("20060102_1504"))
}

// SummaryFilename returns the timestamped name for a summary file.
func SummaryFilename(now time.Time) string {
	return fmt.Sprintf("interview_summary_%s.txt", now.Format("20060102_1504"))
}

// PracticeFilename returns the name for saved practice material.
func PracticeFilename(topic string) string {
	return strings.ReplaceAll(topic, " ", "_") + "_practice_questions.txt"
}

// WriteFile writes content under dir, creating the directory if needed,
// and returns the full path.
func WriteFile(dir, filename, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return path, nil
}
