package analytics

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/layout"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

type analyticsLoadedMsg struct {
	Overall    store.OverallStats
	Categories []store.CategoryStats
	Recent     []store.InterviewEvent
	Err        error
}

// AnalyticsScreen displays interview history and aggregate statistics.
type AnalyticsScreen struct {
	eventRepo  store.EventRepo
	overall    store.OverallStats
	categories []store.CategoryStats
	recent     []store.InterviewEvent
	selected   int
	expanded   map[int]bool
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates a new AnalyticsScreen.
func New(eventRepo store.EventRepo) *AnalyticsScreen {
	return &AnalyticsScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *AnalyticsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		overall, err := s.eventRepo.Overall(ctx)
		if err != nil {
			return analyticsLoadedMsg{Err: err}
		}
		categories, err := s.eventRepo.StatsByCategory(ctx)
		if err != nil {
			return analyticsLoadedMsg{Err: err}
		}
		recent, err := s.eventRepo.RecentInterviews(ctx, 20)
		if err != nil {
			return analyticsLoadedMsg{Err: err}
		}

		return analyticsLoadedMsg{Overall: overall, Categories: categories, Recent: recent}
	}
}

func (s *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (s *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.overall = msg.Overall
			s.categories = msg.Categories
			s.recent = msg.Recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.recent)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *AnalyticsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading analytics...")
	}
	if s.overall.Attempts == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No interviews yet. Complete one to see your stats!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Overall line.
	overallLine := fmt.Sprintf("%d interviews  ·  %d/%d questions answered  ·  %.0f%% avg completion  ·  %s total",
		s.overall.Attempts,
		s.overall.QuestionsAnswered, s.overall.QuestionsAsked,
		s.overall.AvgCompletion,
		interview.FormatClock(s.overall.TotalTimeSecs))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(overallLine)))
	b.WriteString("\n\n")

	// Per-category lines.
	for _, c := range s.categories {
		line := fmt.Sprintf("%-16s %d attempts  %d/%d answered  %.0f%% completion",
			c.Category, c.Attempts, c.QuestionsAnswered, c.QuestionsAsked, c.AvgCompletion)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Recent interviews")))
	b.WriteString("\n")

	for i, ev := range s.recent {
		dateStr := ev.CreatedAt.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s (%s)  %d/%d answered  %.0f%%",
			prefix, dateStr, ev.Category, ev.Difficulty,
			ev.AnsweredCount, ev.NumQuestions, ev.CompletionPercent)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			name := ev.CandidateName
			if name == "" {
				name = "Anonymous"
			}
			detail := fmt.Sprintf("    %s  ·  %s total  ·  %ds per question allotted",
				name, interview.FormatClock(ev.TotalTimeSecs), ev.EffectiveLimitSecs)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
