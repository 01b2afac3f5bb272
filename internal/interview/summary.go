package interview

import "fmt"

// Summary holds the aggregate figures for an attempt, used by the summary
// and analytics screens and by the report exporter.
type Summary struct {
	TotalQuestions    int
	AnsweredCount     int
	TotalTimeSecs     int
	AverageTimeSecs   float64
	CompletionPercent float64
}

// BuildSummary computes the aggregate figures from the recorded answers.
func BuildSummary(s *Session) Summary {
	sum := Summary{TotalQuestions: len(s.answers)}
	for _, a := range s.answers {
		sum.TotalTimeSecs += a.TimeTaken
		if a.Answered() {
			sum.AnsweredCount++
		}
	}
	if sum.TotalQuestions > 0 {
		sum.AverageTimeSecs = float64(sum.TotalTimeSecs) / float64(sum.TotalQuestions)
		sum.CompletionPercent = float64(sum.AnsweredCount) / float64(sum.TotalQuestions) * 100
	}
	return sum
}

// FormatClock renders a seconds count as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
