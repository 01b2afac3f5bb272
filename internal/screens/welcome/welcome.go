package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/home"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerDelay  = 300 * time.Millisecond
	minSplash    = 600 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows a splash before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the home menu.
func New(coachSvc *coach.Service, eventRepo store.EventRepo) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: func() screen.Screen {
			return home.New(coachSvc, eventRepo)
		},
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Debounce so a buffered keystroke doesn't skip the splash.
		if w.elapsed >= minSplash {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Your AI mock-interview coach")
	sections = append(sections, tagline)

	if w.elapsed >= bannerDelay {
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
