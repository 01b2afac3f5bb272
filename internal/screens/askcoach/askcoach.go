package askcoach

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/components"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/layout"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

// answerMsg is sent when the coach responds to a question.
type answerMsg struct {
	Answer string
}

// exchange is one question/answer pair in the conversation log.
type exchange struct {
	Question string
	Answer   string
}

// CoachScreen is a free-form Q&A surface for interview advice.
type CoachScreen struct {
	coachSvc *coach.Service
	input    components.TextInput
	history  []exchange
	waiting  bool
}

var _ screen.Screen = (*CoachScreen)(nil)
var _ screen.KeyHintProvider = (*CoachScreen)(nil)

// New creates a CoachScreen.
func New(coachSvc *coach.Service) *CoachScreen {
	return &CoachScreen{
		coachSvc: coachSvc,
		input:    components.NewTextInput("Ask anything about interviewing...", 200),
	}
}

func (c *CoachScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *CoachScreen) Title() string {
	return "Ask the Coach"
}

func (c *CoachScreen) KeyHints() []layout.KeyHint {
	if c.waiting {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CoachScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		c.waiting = false
		c.history[len(c.history)-1].Answer = msg.Answer
		return c, nil

	case tea.KeyPressMsg:
		if c.waiting {
			return c, nil
		}
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return c, c.ask()
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	if !c.waiting {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *CoachScreen) ask() tea.Cmd {
	question := strings.TrimSpace(c.input.Value())
	if question == "" {
		return nil
	}
	c.waiting = true
	c.history = append(c.history, exchange{Question: question})
	c.input = components.NewTextInput("Ask anything about interviewing...", 200)

	coachSvc := c.coachSvc
	return tea.Batch(c.input.Init(), func() tea.Msg {
		return answerMsg{Answer: coachSvc.Ask(context.Background(), question)}
	})
}

func (c *CoachScreen) View(width, height int) string {
	var sections []string

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Ask the Coach")
	sections = append(sections, heading)

	if len(c.history) == 0 {
		sections = append(sections, theme.Hint.Render(
			"Ask about answering techniques, preparation, or anything interview-related."))
	}

	bodyWidth := width - 12
	if bodyWidth > 72 {
		bodyWidth = 72
	}

	questionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Width(bodyWidth)
	answerStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth)
	failStyle := lipgloss.NewStyle().Foreground(theme.Error).Width(bodyWidth)

	// Show the most recent exchanges that fit; older ones scroll away.
	start := 0
	if len(c.history) > 3 {
		start = len(c.history) - 3
	}
	for _, ex := range c.history[start:] {
		sections = append(sections, questionStyle.Render("You: "+ex.Question))
		switch {
		case ex.Answer == "":
			sections = append(sections, theme.Hint.Render("Coach is thinking..."))
		case coach.IsFailure(ex.Answer):
			sections = append(sections, failStyle.Render("Coach: "+ex.Answer))
		default:
			sections = append(sections, answerStyle.Render("Coach: "+ex.Answer))
		}
	}

	if !c.waiting {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render("> ")+c.input.View())
	}

	content := strings.Join(sections, "\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Width(minInt(width-4, 80)).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
