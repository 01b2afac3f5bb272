package interview

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
)

var (
	// ErrNotStarted is returned by transitions that require an active attempt.
	ErrNotStarted = errors.New("interview has not started")

	// ErrAlreadyStarted is returned by Start on a running or completed attempt.
	ErrAlreadyStarted = errors.New("interview already started")

	// ErrCompleted is returned by question transitions after completion.
	ErrCompleted = errors.New("interview is complete")

	// ErrNotCompleted is returned by Reset before the attempt completes.
	ErrNotCompleted = errors.New("interview is not complete")
)

// Start draws the question set and begins the attempt. The rng drives the
// bank shuffle; attempts are deterministic under a fixed seed.
func (s *Session) Start(rng *rand.Rand) error {
	if s.phase != PhaseNotStarted {
		return ErrAlreadyStarted
	}

	drawn, err := questions.Draw(s.cfg.Category, s.cfg.NumQuestions, rng)
	if err != nil {
		return fmt.Errorf("draw questions: %w", err)
	}

	s.ID = uuid.New().String()
	s.queue = drawn
	s.effectiveTimeLimit = questions.AdjustTimeLimit(s.cfg.BaseTimeLimit, s.cfg.Difficulty)
	s.answers = s.answers[:0]
	s.drafts = make(map[int]string)
	s.candidateName = ""
	s.nameAttempted = false
	s.feedback = ""
	s.feedbackSet = false
	s.index = 0
	s.questionStart = s.clock()
	s.paused = false
	s.phase = PhaseInProgress

	return nil
}

// CurrentQuestion returns the raw text of the active question.
func (s *Session) CurrentQuestion() (string, error) {
	if s.phase != PhaseInProgress {
		return "", ErrNotStarted
	}
	return s.queue[s.index], nil
}

// DisplayQuestion returns the active question as it should be shown. From
// the second question onward it is prefixed with the candidate's name when
// one has been extracted.
func (s *Session) DisplayQuestion() (string, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return "", err
	}
	if s.index > 0 && s.candidateName != "" {
		return s.candidateName + ", " + q, nil
	}
	return q, nil
}

// elapsed returns the wall-clock seconds spent on the current question,
// excluding time spent paused.
func (s *Session) elapsed() int {
	ref := s.clock()
	if s.paused {
		ref = s.pausedAt
	}
	secs := int(ref.Sub(s.questionStart).Seconds())
	if secs < 0 {
		secs = 0
	}
	return secs
}

// Remaining returns the seconds left on the current question's countdown.
// Pure with respect to session state: repeated calls while paused report
// the same value.
func (s *Session) Remaining() (int, error) {
	if s.phase != PhaseInProgress {
		return 0, ErrNotStarted
	}
	remaining := s.effectiveTimeLimit - s.elapsed()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// TimerBand maps a remaining-seconds value to its display band.
func TimerBand(remaining int) Band {
	switch {
	case remaining > 30:
		return BandNormal
	case remaining > 10:
		return BandWarning
	default:
		return BandDanger
	}
}

// Expired reports whether the current question's time has run out. Never
// true while paused.
func (s *Session) Expired() bool {
	if s.phase != PhaseInProgress || s.paused {
		return false
	}
	remaining, err := s.Remaining()
	return err == nil && remaining == 0
}

// SetDraft stores the in-progress answer text for the current question.
func (s *Session) SetDraft(text string) {
	if s.phase != PhaseInProgress {
		return
	}
	s.drafts[s.index] = text
}

// Draft returns the stored draft text for the current question.
func (s *Session) Draft() string {
	return s.drafts[s.index]
}

// Submit records the supplied answer text (which may be empty) for the
// current question and advances. Time taken is measured from the question
// start, excluding paused time, clamped to >= 0.
func (s *Session) Submit(ctx context.Context, answer string) error {
	if s.phase != PhaseInProgress {
		return s.transitionErr()
	}
	s.appendRecord(ctx, answer, s.elapsed())
	s.advance()
	return nil
}

// Skip records an empty answer for the current question regardless of any
// draft text, keeping the measured elapsed time, and advances.
func (s *Session) Skip(ctx context.Context) error {
	if s.phase != PhaseInProgress {
		return s.transitionErr()
	}
	s.appendRecord(ctx, "", s.elapsed())
	s.advance()
	return nil
}

// AutoAdvance records whatever draft text exists for the current question
// (empty if none) with the full time limit as time taken, and advances.
// Callers invoke it when Expired reports true; it must not fire while
// paused.
func (s *Session) AutoAdvance(ctx context.Context) error {
	if s.phase != PhaseInProgress {
		return s.transitionErr()
	}
	if s.paused {
		return nil
	}
	s.appendRecord(ctx, s.drafts[s.index], s.effectiveTimeLimit)
	s.advance()
	return nil
}

// appendRecord appends exactly one AnswerRecord for the current question
// and triggers name extraction when this is the first answer and the text
// is non-blank.
func (s *Session) appendRecord(ctx context.Context, answer string, timeTaken int) {
	display, _ := s.DisplayQuestion()
	s.answers = append(s.answers, AnswerRecord{
		Question:    s.queue[s.index],
		DisplayText: display,
		Answer:      answer,
		TimeTaken:   timeTaken,
		Category:    s.cfg.Category,
		Difficulty:  s.cfg.Difficulty,
	})

	if s.index == 0 && !s.nameAttempted && strings.TrimSpace(answer) != "" {
		s.nameAttempted = true
		if s.Extractor != nil {
			s.candidateName = s.Extractor.ExtractName(ctx, answer)
		}
	}
}

// advance moves to the next question or completes the attempt.
func (s *Session) advance() {
	s.index++
	if s.index >= len(s.queue) {
		s.phase = PhaseCompleted
		return
	}
	s.questionStart = s.clock()
	s.paused = false
}

// Pause freezes the countdown. No-op if already paused or not in progress.
func (s *Session) Pause() {
	if s.phase != PhaseInProgress || s.paused {
		return
	}
	s.paused = true
	s.pausedAt = s.clock()
}

// Resume restarts the countdown, shifting the question start forward by the
// paused duration so remaining time is unchanged across the pause.
func (s *Session) Resume() {
	if s.phase != PhaseInProgress || !s.paused {
		return
	}
	s.questionStart = s.questionStart.Add(s.clock().Sub(s.pausedAt))
	s.paused = false
}

// TogglePause pauses a running timer or resumes a paused one.
func (s *Session) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// EnsureFeedback generates the narrative feedback exactly once per
// completed attempt, caching the result until Reset. Repeated calls return
// the cached text.
func (s *Session) EnsureFeedback(ctx context.Context, gen FeedbackGenerator) (string, error) {
	if s.phase != PhaseCompleted {
		return "", ErrNotCompleted
	}
	if s.feedbackSet {
		return s.feedback, nil
	}
	s.feedback = gen.TranscriptFeedback(ctx, s)
	s.feedbackSet = true
	return s.feedback, nil
}

// Reset clears the attempt back to its pre-start defaults. Configuration
// fields are preserved for the next attempt.
func (s *Session) Reset() error {
	if s.phase != PhaseCompleted {
		return ErrNotCompleted
	}
	s.ID = ""
	s.phase = PhaseNotStarted
	s.queue = nil
	s.index = 0
	s.answers = nil
	s.drafts = make(map[int]string)
	s.candidateName = ""
	s.nameAttempted = false
	s.feedback = ""
	s.feedbackSet = false
	s.effectiveTimeLimit = 0
	s.questionStart = time.Time{}
	s.paused = false
	s.pausedAt = time.Time{}
	return nil
}

func (s *Session) transitionErr() error {
	if s.phase == PhaseCompleted {
		return ErrCompleted
	}
	return ErrNotStarted
}
