package interview

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	sess "github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/summary"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/components"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/layout"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/ui/theme"
)

// recordKind selects how the current answer is recorded.
type recordKind int

const (
	recordSubmit recordKind = iota
	recordSkip
	recordAuto
)

// InterviewScreen runs one timed interview attempt.
type InterviewScreen struct {
	session   *sess.Session
	coachSvc  *coach.Service
	eventRepo store.EventRepo
	input     components.TextArea

	started        bool
	busy           bool // an answer command is in flight; the session is off-limits
	confirmingQuit bool
	errMsg         string

	// Cached for Status/View so nothing reads the session while busy.
	remaining int
	paused    bool
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen for the given configuration.
func New(cfg sess.Config, coachSvc *coach.Service, eventRepo store.EventRepo) *InterviewScreen {
	session := sess.NewSession(cfg, nil)
	if coachSvc != nil {
		session.Extractor = coachSvc
	}
	return &InterviewScreen{
		session:   session,
		coachSvc:  coachSvc,
		eventRepo: eventRepo,
		input:     components.NewTextArea("Type your answer here...", 70, 8),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return tea.Batch(s.start(), s.input.Init())
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

// Status shows the countdown in the header, colored by how much time is left.
func (s *InterviewScreen) Status() string {
	if !s.started || s.errMsg != "" {
		return ""
	}
	clock := sess.FormatClock(s.remaining)
	if s.paused {
		return theme.TimerWarning.Render("⏸ " + clock)
	}
	switch sess.TimerBand(s.remaining) {
	case sess.BandNormal:
		return theme.TimerNormal.Render(clock)
	case sess.BandWarning:
		return theme.TimerWarning.Render(clock)
	default:
		return theme.TimerDanger.Render(clock)
	}
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.confirmingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if !s.started || s.busy {
		return []layout.KeyHint{}
	}
	pauseDesc := "Pause"
	if s.paused {
		pauseDesc = "Resume"
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+K", Description: "Skip"},
		{Key: "Ctrl+P", Description: pauseDesc},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case answerRecordedMsg:
		return s.handleAnswerRecorded(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.started && !s.busy && !s.confirmingQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// start draws the question set off the Update loop.
func (s *InterviewScreen) start() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return startedMsg{Err: session.Start(rng)}
	}
}

func (s *InterviewScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.started = true
	s.remaining, _ = s.session.Remaining()
	return s, tickCmd()
}

func (s *InterviewScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, nil
	}
	if !s.started || s.busy {
		// Keep the tick loop alive; the session is busy or not ready.
		return s, tickCmd()
	}
	if s.session.Phase() != sess.PhaseInProgress {
		return s, nil
	}

	s.remaining, _ = s.session.Remaining()
	s.paused = s.session.Paused()

	if s.session.Expired() {
		s.busy = true
		return s, tea.Batch(s.record(recordAuto, ""), tickCmd())
	}
	return s, tickCmd()
}

// record applies a submit, skip, or auto-advance in a command so the
// first-answer name extraction call never blocks the UI.
func (s *InterviewScreen) record(kind recordKind, answer string) tea.Cmd {
	session := s.session
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch kind {
		case recordSubmit:
			err = session.Submit(ctx, answer)
		case recordSkip:
			err = session.Skip(ctx)
		case recordAuto:
			err = session.AutoAdvance(ctx)
		}
		return answerRecordedMsg{Err: err}
	}
}

func (s *InterviewScreen) handleAnswerRecorded(msg answerRecordedMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	if s.session.Phase() == sess.PhaseCompleted {
		session, coachSvc, eventRepo := s.session, s.coachSvc, s.eventRepo
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(session, coachSvc, eventRepo),
			}
		}
	}

	s.input.Reset()
	s.remaining, _ = s.session.Remaining()
	s.paused = false
	return s, nil
}

func (s *InterviewScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if !s.started || s.busy {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.confirmingQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmingQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmingQuit = true
		return s, nil

	case "ctrl+s":
		s.busy = true
		return s, s.record(recordSubmit, s.input.Value())

	case "ctrl+k":
		s.busy = true
		return s, s.record(recordSkip, "")

	case "ctrl+p":
		s.session.TogglePause()
		s.paused = s.session.Paused()
		s.remaining, _ = s.session.Remaining()
		return s, nil
	}

	// Everything else edits the answer.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.session.SetDraft(s.input.Value())
	return s, cmd
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
