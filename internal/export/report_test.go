package export

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
)

type cannedFeedback struct{ text string }

func (c cannedFeedback) TranscriptFeedback(_ context.Context, _ *interview.Session) string {
	return c.text
}

func completedSession(t *testing.T, feedback string) *interview.Session {
	t.Helper()
	s := interview.NewSession(interview.Config{
		Category:      questions.CategoryGeneral,
		Difficulty:    questions.DifficultyBeginner,
		NumQuestions:  3,
		BaseTimeLimit: 60,
	}, nil)
	if err := s.Start(rand.New(rand.NewSource(11))); err != nil {
		t.Fatalf("start: %v", err)
	}
	ctx := context.Background()
	_ = s.Submit(ctx, "Hi, I'm a build engineer with five years of CI experience.")
	_ = s.Submit(ctx, "")
	_ = s.Submit(ctx, "I stay calm under pressure.")
	if feedback != "" {
		if _, err := s.EnsureFeedback(ctx, cannedFeedback{text: feedback}); err != nil {
			t.Fatalf("feedback: %v", err)
		}
	}
	return s
}

func TestReport(t *testing.T) {
	s := completedSession(t, "Good pacing overall.")
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	got := Report(s, now)

	for _, want := range []string{
		"AI MOCK INTERVIEW RESULTS",
		"Date: 2025-06-01 14:30:00",
		"Candidate: Anonymous",
		"Category: General",
		"Difficulty: Beginner",
		"Total Questions: 3",
		"Questions Answered: 2",
		"Completion Rate: 67%",
		"Time Allocated: 90s",
		"[No answer provided]",
		"AI COACH FEEDBACK",
		"Good pacing overall.",
		"END OF REPORT",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReport_MissingFeedbackPlaceholder(t *testing.T) {
	s := completedSession(t, "")
	got := Report(s, time.Now())
	if !strings.Contains(got, "Feedback not available") {
		t.Error("report should carry the feedback placeholder")
	}
}

func TestSummary(t *testing.T) {
	s := completedSession(t, "")
	got := Summary(s)

	for _, want := range []string{
		"INTERVIEW SUMMARY",
		"Completed 2/3 questions",
		"Category: General (Beginner)",
		"Completion: 67%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestFilenames(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	if got := ReportFilename(now); got != "interview_results_20250601_1430.txt" {
		t.Errorf("ReportFilename = %q", got)
	}
	if got := SummaryFilename(now); got != "interview_summary_20250601_1430.txt" {
		t.Errorf("SummaryFilename = %q", got)
	}
	if got := PracticeFilename("System Design"); got != "System_Design_practice_questions.txt" {
		t.Errorf("PracticeFilename = %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := WriteFile(dir, "report.txt", "content")
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("content = %q", data)
	}
}
