package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/export"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/layout"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

// feedbackReadyMsg is sent once the coach feedback has been generated.
type feedbackReadyMsg struct {
	Feedback string
}

// savedMsg is sent when a report or summary file has been written.
type savedMsg struct {
	Path string
	Err  error
}

// SummaryScreen shows the results of a completed attempt and the coach
// feedback, and exports report files on request.
type SummaryScreen struct {
	session   *interview.Session
	coachSvc  *coach.Service
	eventRepo store.EventRepo

	loading   bool
	feedback  string
	saveNote  string
	saveError string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a completed session.
func New(session *interview.Session, coachSvc *coach.Service, eventRepo store.EventRepo) *SummaryScreen {
	return &SummaryScreen{
		session:   session,
		coachSvc:  coachSvc,
		eventRepo: eventRepo,
		loading:   coachSvc != nil,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.coachSvc == nil {
		return nil
	}
	return s.generateFeedback()
}

// generateFeedback runs the one-shot feedback generation off the Update
// loop, then persists the completed attempt.
func (s *SummaryScreen) generateFeedback() tea.Cmd {
	session, coachSvc, eventRepo := s.session, s.coachSvc, s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()
		feedback, _ := session.EnsureFeedback(ctx, coachSvc)

		if eventRepo != nil {
			_ = eventRepo.RecordInterview(ctx, buildResultData(session, feedback))
		}

		return feedbackReadyMsg{Feedback: feedback}
	}
}

// buildResultData flattens the session into the store's record shape.
func buildResultData(session *interview.Session, feedback string) store.InterviewResultData {
	cfg := session.Config()
	sum := interview.BuildSummary(session)

	data := store.InterviewResultData{
		SessionID:          session.ID,
		Category:           string(cfg.Category),
		Difficulty:         string(cfg.Difficulty),
		NumQuestions:       sum.TotalQuestions,
		BaseLimitSecs:      cfg.BaseTimeLimit,
		EffectiveLimitSecs: session.EffectiveTimeLimit(),
		CandidateName:      session.CandidateName(),
		AnsweredCount:      sum.AnsweredCount,
		TotalTimeSecs:      sum.TotalTimeSecs,
		CompletionPercent:  sum.CompletionPercent,
		Feedback:           feedback,
	}
	for i, a := range session.Answers() {
		data.Answers = append(data.Answers, store.AnswerData{
			QuestionIndex: i,
			Question:      a.Question,
			Answer:        a.Answer,
			TimeTakenSecs: a.TimeTaken,
		})
	}
	return data
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Save report"},
		{Key: "D", Description: "Save summary"},
		{Key: "N", Description: "New interview"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackReadyMsg:
		s.loading = false
		s.feedback = msg.Feedback
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.saveError = msg.Err.Error()
			s.saveNote = ""
		} else {
			s.saveNote = "Saved " + msg.Path
			s.saveError = ""
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SummaryScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	switch msg.String() {
	case "s", "S":
		return s, s.save(export.Report(s.session, time.Now()), export.ReportFilename(time.Now()))

	case "d", "D":
		return s, s.save(export.Summary(s.session), export.SummaryFilename(time.Now()))

	case "n", "N", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) save(content, filename string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteFile(".", filename, content)
		return savedMsg{Path: path, Err: err}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, s.renderStats())

	if s.loading {
		sections = append(sections, theme.Hint.Render("Generating your feedback..."))
	} else {
		sections = append(sections, s.renderFeedback(width))
	}

	if s.saveNote != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Render(s.saveNote))
	}
	if s.saveError != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Save failed: "+s.saveError))
	}

	content := strings.Join(sections, "\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Width(minInt(width-4, 76)).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *SummaryScreen) renderStats() string {
	cfg := s.session.Config()
	sum := interview.BuildSummary(s.session)

	name := s.session.CandidateName()
	if name == "" {
		name = "Anonymous"
	}

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Interview complete, " + name + "!")

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	row := func(k, v string) string {
		return label.Render(fmt.Sprintf("%-18s", k)) + value.Render(v)
	}

	lines := []string{
		heading,
		"",
		row("Category", fmt.Sprintf("%s (%s)", cfg.Category, cfg.Difficulty)),
		row("Answered", fmt.Sprintf("%d of %d", sum.AnsweredCount, sum.TotalQuestions)),
		row("Completion", fmt.Sprintf("%.0f%%", sum.CompletionPercent)),
		row("Total time", interview.FormatClock(sum.TotalTimeSecs)),
		row("Avg per question", fmt.Sprintf("%.0fs", sum.AverageTimeSecs)),
	}
	return strings.Join(lines, "\n")
}

func (s *SummaryScreen) renderFeedback(width int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Coach feedback")

	if s.feedback == "" {
		return heading + "\n" + theme.Hint.Render("Feedback not available - please check your LLM connection")
	}

	bodyStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(minInt(width-12, 68))
	if coach.IsFailure(s.feedback) {
		bodyStyle = bodyStyle.Foreground(theme.Error)
	}

	return heading + "\n" + bodyStyle.Render(s.feedback)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
