package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

// PlaceholderScreen is shown when a feature's dependencies are unavailable.
type PlaceholderScreen struct {
	title  string
	reason string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and reason text.
func New(title, reason string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, reason: reason}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	msg := "╌╌ Unavailable ╌╌\n\n" + p.reason + "\n\npress esc to go back"
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
