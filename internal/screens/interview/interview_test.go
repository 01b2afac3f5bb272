package interview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	sess "github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/router"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screen"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/screens/summary"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testConfig() sess.Config {
	return sess.Config{
		Category:      questions.CategoryGeneral,
		Difficulty:    questions.DifficultyIntermediate,
		NumQuestions:  3,
		BaseTimeLimit: 60,
	}
}

// startedScreen returns an InterviewScreen with the question set drawn, by
// running the start command synchronously.
func startedScreen(t *testing.T) *InterviewScreen {
	t.Helper()
	s := New(testConfig(), nil, nil)
	msg := s.start()()
	started, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("expected startedMsg, got %T", msg)
	}
	if started.Err != nil {
		t.Fatalf("start failed: %v", started.Err)
	}
	scr, _ := s.Update(started)
	return scr.(*InterviewScreen)
}

// recordAndDeliver runs a pending answer command and feeds the result back.
func recordAndDeliver(t *testing.T, s *InterviewScreen, cmd tea.Cmd) *InterviewScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected an answer command")
	}
	msg := cmd()
	recorded, ok := msg.(answerRecordedMsg)
	if !ok {
		t.Fatalf("expected answerRecordedMsg, got %T", msg)
	}
	scr, _ := s.Update(recorded)
	return scr.(*InterviewScreen)
}

func TestInterviewScreen_Title(t *testing.T) {
	s := New(testConfig(), nil, nil)
	if s.Title() != "Interview" {
		t.Errorf("Title = %q, want %q", s.Title(), "Interview")
	}
}

func TestInterviewScreen_View_Loading(t *testing.T) {
	s := New(testConfig(), nil, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "Drawing your questions") {
		t.Error("expected loading view before the question set is drawn")
	}
}

func TestInterviewScreen_View_Question(t *testing.T) {
	s := startedScreen(t)
	view := s.View(80, 24)
	if !strings.Contains(view, "Question 1 of 3") {
		t.Errorf("expected question progress line, got:\n%s", view)
	}
}

func TestInterviewScreen_Status_Countdown(t *testing.T) {
	s := startedScreen(t)
	if !strings.Contains(s.Status(), "01:00") {
		t.Errorf("Status = %q, want countdown 01:00", s.Status())
	}
}

func TestInterviewScreen_PauseToggle(t *testing.T) {
	s := startedScreen(t)

	scr, _ := s.Update(ctrlKey('p'))
	s = scr.(*InterviewScreen)
	if !s.session.Paused() {
		t.Error("expected session paused after ctrl+p")
	}
	if !strings.Contains(s.Status(), "⏸") {
		t.Errorf("Status = %q, want pause marker", s.Status())
	}

	scr, _ = s.Update(ctrlKey('p'))
	s = scr.(*InterviewScreen)
	if s.session.Paused() {
		t.Error("expected session resumed after second ctrl+p")
	}
}

func TestInterviewScreen_QuitConfirm(t *testing.T) {
	s := startedScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	is := scr.(*InterviewScreen)
	if !is.confirmingQuit {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = is.Update(keyPress('n'))
	is = scr.(*InterviewScreen)
	if is.confirmingQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestInterviewScreen_QuitConfirm_Yes(t *testing.T) {
	s := startedScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
}

func TestInterviewScreen_Submit(t *testing.T) {
	s := startedScreen(t)
	s.input.SetValue("My answer")

	scr, cmd := s.Update(ctrlKey('s'))
	s = scr.(*InterviewScreen)
	if !s.busy {
		t.Error("expected busy while the answer is recorded")
	}

	s = recordAndDeliver(t, s, cmd)
	if s.busy {
		t.Error("expected busy cleared after recording")
	}

	answers := s.session.Answers()
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if answers[0].Answer != "My answer" {
		t.Errorf("answer = %q, want %q", answers[0].Answer, "My answer")
	}
	if s.session.Index() != 1 {
		t.Errorf("index = %d, want 1", s.session.Index())
	}
}

func TestInterviewScreen_Skip(t *testing.T) {
	s := startedScreen(t)
	s.input.SetValue("draft that should be discarded")

	scr, cmd := s.Update(ctrlKey('k'))
	s = recordAndDeliver(t, scr.(*InterviewScreen), cmd)

	answers := s.session.Answers()
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if answers[0].Answer != "" {
		t.Errorf("skip recorded answer %q, want empty", answers[0].Answer)
	}
}

func TestInterviewScreen_CompletionReplacesWithSummary(t *testing.T) {
	s := startedScreen(t)

	var lastCmd tea.Cmd
	for i := 0; i < 3; i++ {
		scr, cmd := s.Update(ctrlKey('s'))
		s = scr.(*InterviewScreen)
		msg := cmd()
		var next screen.Screen
		next, lastCmd = s.Update(msg)
		s = next.(*InterviewScreen)
	}

	if lastCmd == nil {
		t.Fatal("expected a command after the final answer")
	}
	replaceMsg, ok := lastCmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", lastCmd())
	}
	if _, ok := replaceMsg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", replaceMsg.Screen)
	}
}

func TestInterviewScreen_KeysIgnoredWhileBusy(t *testing.T) {
	s := startedScreen(t)

	scr, _ := s.Update(ctrlKey('s'))
	s = scr.(*InterviewScreen)

	_, cmd := s.Update(ctrlKey('s'))
	if cmd != nil {
		t.Error("expected submit to be ignored while busy")
	}
	if len(s.session.Answers()) != 0 {
		t.Error("session must not be touched synchronously while busy")
	}
}

func TestInterviewScreen_KeyHints(t *testing.T) {
	s := startedScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.confirmingQuit = true
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("quit-confirm hints = %d, want 2", len(hints))
	}
}
