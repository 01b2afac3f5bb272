package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/components"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if !s.started {
		return renderLoading(width, "Drawing your questions...")
	}
	if s.confirmingQuit {
		return renderQuitConfirm(width)
	}
	if s.busy {
		return renderLoading(width, "Recording your answer...")
	}
	return s.renderQuestionView(width, height)
}

func (s *InterviewScreen) renderQuestionView(width, height int) string {
	total := len(s.session.Questions())
	index := s.session.Index()
	cfg := s.session.Config()

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", index+1, total))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", cfg.Category, cfg.Difficulty))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(index)/float64(total), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Question text.
	question, _ := s.session.DisplayQuestion()
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(question))
	b.WriteString("\n\n")

	if s.paused {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render("⏸ Paused · ctrl+p to resume"))
		b.WriteString("\n\n")
	}

	// Answer area.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this interview early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Unanswered questions will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, end interview"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders a transient waiting state.
func renderLoading(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + msg)
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
