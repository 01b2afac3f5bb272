package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/export"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/components"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/layout"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

// materialReadyMsg is sent when practice material generation finishes.
type materialReadyMsg struct {
	Material string
}

// savedMsg is sent when the material has been written to a file.
type savedMsg struct {
	Path string
	Err  error
}

// practiceCounts are the selectable numbers of generated questions.
var practiceCounts = []int{3, 5, 7, 10}

// Focusable fields.
const (
	fieldTopic = iota
	fieldCount
	fieldDifficulty
	numFields
)

// PracticeScreen generates study questions for an arbitrary topic.
type PracticeScreen struct {
	coachSvc *coach.Service

	topic      components.TextInput
	count      components.Picker
	difficulty components.Picker
	focus      int

	generating bool
	warning    string
	material   string
	topicUsed  string
	saveNote   string
	saveError  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen.
func New(coachSvc *coach.Service) *PracticeScreen {
	var counts []string
	for _, n := range practiceCounts {
		counts = append(counts, fmt.Sprintf("%d questions", n))
	}
	var difficulties []string
	for _, d := range questions.Difficulties() {
		difficulties = append(difficulties, string(d))
	}

	p := &PracticeScreen{
		coachSvc:   coachSvc,
		topic:      components.NewTextInput("e.g. Go concurrency, system design...", 60),
		count:      components.NewPicker("Questions", counts, 1),
		difficulty: components.NewPicker("Difficulty", difficulties, 1),
	}
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.topic.Init()
}

func (p *PracticeScreen) Title() string {
	return "Practice Material"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.generating {
		return []layout.KeyHint{}
	}
	if p.material != "" {
		return []layout.KeyHint{
			{Key: "S", Description: "Save"},
			{Key: "R", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case materialReadyMsg:
		p.generating = false
		p.material = msg.Material
		return p, nil

	case savedMsg:
		if msg.Err != nil {
			p.saveError = msg.Err.Error()
			p.saveNote = ""
		} else {
			p.saveNote = "Saved " + msg.Path
			p.saveError = ""
		}
		return p, nil

	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	if !p.generating && p.material == "" && p.focus == fieldTopic {
		var cmd tea.Cmd
		p.topic, cmd = p.topic.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.generating {
		return p, nil
	}

	// Result view.
	if p.material != "" {
		switch key {
		case "s", "S":
			return p, p.save()
		case "r", "R":
			p.material = ""
			p.saveNote = ""
			p.saveError = ""
			return p, p.topic.Init()
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	// Form view.
	switch key {
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "shift+tab":
		p.setFocus(p.focus - 1)
		return p, nil

	case "down", "tab":
		p.setFocus(p.focus + 1)
		return p, nil

	case "enter":
		return p.generate()
	}

	switch p.focus {
	case fieldTopic:
		var cmd tea.Cmd
		p.topic, cmd = p.topic.Update(msg)
		return p, cmd
	case fieldCount:
		p.count, _ = p.count.Update(msg)
	case fieldDifficulty:
		p.difficulty, _ = p.difficulty.Update(msg)
	}
	return p, nil
}

func (p *PracticeScreen) setFocus(i int) {
	if i < 0 {
		i = numFields - 1
	}
	if i >= numFields {
		i = 0
	}
	p.focus = i
	p.count.Focused = p.focus == fieldCount
	p.difficulty.Focused = p.focus == fieldDifficulty
}

func (p *PracticeScreen) generate() (screen.Screen, tea.Cmd) {
	topic := strings.TrimSpace(p.topic.Value())
	if topic == "" {
		p.warning = "Please enter a topic first."
		return p, nil
	}
	p.warning = ""
	p.generating = true
	p.topicUsed = topic

	coachSvc := p.coachSvc
	count := practiceCounts[p.count.Selected]
	difficulty := questions.Difficulties()[p.difficulty.Selected]
	return p, func() tea.Msg {
		material, err := coachSvc.PracticeMaterial(context.Background(), topic, count, difficulty)
		if err != nil {
			material = coach.FailureMarker + " " + err.Error()
		}
		return materialReadyMsg{Material: material}
	}
}

func (p *PracticeScreen) save() tea.Cmd {
	material, topic := p.material, p.topicUsed
	return func() tea.Msg {
		content := fmt.Sprintf("PRACTICE QUESTIONS: %s\nGenerated: %s\n\n%s\n",
			topic, time.Now().Format("2006-01-02 15:04"), material)
		path, err := export.WriteFile(".", export.PracticeFilename(topic), content)
		return savedMsg{Path: path, Err: err}
	}
}

func (p *PracticeScreen) View(width, height int) string {
	if p.generating {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Generating practice questions...")
	}

	if p.material != "" {
		return p.renderMaterial(width, height)
	}
	return p.renderForm(width, height)
}

func (p *PracticeScreen) renderForm(width, height int) string {
	var lines []string

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Generate practice questions")
	lines = append(lines, heading, "")

	topicLabel := lipgloss.NewStyle().Foreground(theme.Text)
	if p.focus == fieldTopic {
		topicLabel = topicLabel.Bold(true).Foreground(theme.Primary)
	}
	lines = append(lines, topicLabel.Render(fmt.Sprintf("%-16s", "Topic:"))+p.topic.View())
	lines = append(lines, p.count.View())
	lines = append(lines, p.difficulty.View())

	if p.warning != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Warning).Render(p.warning))
	}

	lines = append(lines, "", theme.Hint.Render("press enter to generate"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (p *PracticeScreen) renderMaterial(width, height int) string {
	var sections []string

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Practice questions: " + p.topicUsed)
	sections = append(sections, heading)

	bodyStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 12)
	if coach.IsFailure(p.material) {
		bodyStyle = bodyStyle.Foreground(theme.Error)
	}
	sections = append(sections, bodyStyle.Render(p.material))

	if p.saveNote != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Render(p.saveNote))
	}
	if p.saveError != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Save failed: "+p.saveError))
	}

	content := strings.Join(sections, "\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Width(width - 8).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
