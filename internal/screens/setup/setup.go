package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	interviewscreen "github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/components"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/layout"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

// Field indices for focus navigation.
const (
	fieldCategory = iota
	fieldDifficulty
	fieldNumQuestions
	fieldTimeLimit
	numFields
)

// SetupScreen lets the user configure an interview before starting it.
type SetupScreen struct {
	coachSvc  *coach.Service
	eventRepo store.EventRepo

	pickers [4]components.Picker
	focus   int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with sensible defaults pre-selected.
func New(coachSvc *coach.Service, eventRepo store.EventRepo) *SetupScreen {
	var categories []string
	for _, c := range questions.Categories() {
		categories = append(categories, string(c))
	}
	var difficulties []string
	for _, d := range questions.Difficulties() {
		difficulties = append(difficulties, string(d))
	}
	var counts []string
	for _, n := range questions.QuestionCounts {
		counts = append(counts, fmt.Sprintf("%d questions", n))
	}
	var limits []string
	for _, t := range questions.TimeLimits {
		limits = append(limits, fmt.Sprintf("%ds / question", t))
	}

	s := &SetupScreen{
		coachSvc:  coachSvc,
		eventRepo: eventRepo,
	}
	s.pickers[fieldCategory] = components.NewPicker("Category", categories, 0)
	s.pickers[fieldDifficulty] = components.NewPicker("Difficulty", difficulties, 1)
	s.pickers[fieldNumQuestions] = components.NewPicker("Questions", counts, 1)
	s.pickers[fieldTimeLimit] = components.NewPicker("Time limit", limits, 1)
	s.pickers[s.focus].Focused = true
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k", "shift+tab":
		s.setFocus(s.focus - 1)
		return s, nil

	case "down", "j", "tab":
		s.setFocus(s.focus + 1)
		return s, nil

	case "enter":
		return s, s.startInterview()
	}

	var cmd tea.Cmd
	s.pickers[s.focus], cmd = s.pickers[s.focus].Update(msg)
	return s, cmd
}

func (s *SetupScreen) setFocus(i int) {
	if i < 0 {
		i = numFields - 1
	}
	if i >= numFields {
		i = 0
	}
	s.pickers[s.focus].Focused = false
	s.focus = i
	s.pickers[s.focus].Focused = true
}

// config builds the interview configuration from the current selections.
func (s *SetupScreen) config() interview.Config {
	return interview.Config{
		Category:      questions.Categories()[s.pickers[fieldCategory].Selected],
		Difficulty:    questions.Difficulties()[s.pickers[fieldDifficulty].Selected],
		NumQuestions:  questions.QuestionCounts[s.pickers[fieldNumQuestions].Selected],
		BaseTimeLimit: questions.TimeLimits[s.pickers[fieldTimeLimit].Selected],
	}
}

func (s *SetupScreen) startInterview() tea.Cmd {
	cfg := s.config()
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: interviewscreen.New(cfg, s.coachSvc, s.eventRepo),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var lines []string

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Configure your interview")
	lines = append(lines, heading, "")

	for i := range s.pickers {
		lines = append(lines, s.pickers[i].View())
	}

	cfg := s.config()
	effective := questions.AdjustTimeLimit(cfg.BaseTimeLimit, cfg.Difficulty)
	note := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Effective limit at %s difficulty: %ds per question",
			strings.ToLower(string(cfg.Difficulty)), effective))
	lines = append(lines, "", note)

	hint := theme.Hint.Render("press enter to begin")
	lines = append(lines, "", hint)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Title() string {
	return "New Interview"
}
