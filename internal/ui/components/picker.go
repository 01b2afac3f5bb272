package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

// Picker is a labeled option selector cycled with left/right keys.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker with the given options, pre-selecting index.
func NewPicker(label string, options []string, selected int) Picker {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Picker{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Update handles left/right cycling while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected--
		if p.Selected < 0 {
			p.Selected = len(p.Options) - 1
		}
	case "right", "l":
		p.Selected++
		if p.Selected >= len(p.Options) {
			p.Selected = 0
		}
	}

	return p, nil
}

// Value returns the selected option text.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the picker as "Label:  ◂ value ▸".
func (p Picker) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	if p.Focused {
		labelStyle = labelStyle.Bold(true).Foreground(theme.Primary)
		valueStyle = valueStyle.Bold(true).Foreground(theme.Primary)
		arrowStyle = arrowStyle.Foreground(theme.Primary)
	}

	return fmt.Sprintf("%s  %s %s %s",
		labelStyle.Render(fmt.Sprintf("%-16s", p.Label+":")),
		arrowStyle.Render("◂"),
		valueStyle.Render(fmt.Sprintf("%-14s", p.Value())),
		arrowStyle.Render("▸"),
	)
}
