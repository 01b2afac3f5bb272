package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/analytics"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/askcoach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/placeholder"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/practice"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/setup"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/components"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

const noLLMReason = "No LLM provider is configured.\nSet PREPBOT_GEMINI_API_KEY (or another provider key) and restart."

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	attempts  int
	answered  int
	avgRate   float64
	haveStats bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(coachSvc *coach.Service, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{}

	if eventRepo != nil {
		if overall, err := eventRepo.Overall(context.Background()); err == nil {
			h.attempts = overall.Attempts
			h.answered = overall.QuestionsAnswered
			h.avgRate = overall.AvgCompletion
			h.haveStats = true
		}
	}

	items := []components.MenuItem{
		{Label: "START INTERVIEW", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(coachSvc, eventRepo)}
			}
		}},
		{Label: "PRACTICE MODE", Action: func() tea.Cmd {
			if coachSvc == nil || !coachSvc.Available() {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Practice Mode", noLLMReason)}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(coachSvc)}
			}
		}},
		{Label: "ASK THE COACH", Action: func() tea.Cmd {
			if coachSvc == nil || !coachSvc.Available() {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Ask the Coach", noLLMReason)}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: askcoach.New(coachSvc)}
			}
		}},
		{Label: "ANALYTICS", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Analytics", "No database available.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analytics.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("AI MOCK INTERVIEW")
	sections = append(sections, title)

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Timed questions, AI scoring, coach feedback")
	sections = append(sections, subtitle)

	if h.haveStats && h.attempts > 0 {
		sections = append(sections, "")
		sections = append(sections, h.renderStatsBar())
	}

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (h *HomeScreen) renderStatsBar() string {
	stat := func(label string, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(value)
	}
	parts := []string{
		stat("Interviews:", fmt.Sprintf("%d", h.attempts)),
		stat("Answered:", fmt.Sprintf("%d", h.answered)),
		stat("Avg completion:", fmt.Sprintf("%.0f%%", h.avgRate)),
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("  │  "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
