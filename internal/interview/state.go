package interview

import (
	"context"
	"strings"
	"time"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
)

// Phase represents the lifecycle stage of an interview attempt.
type Phase int

const (
	PhaseNotStarted Phase = iota // Configured but not yet started
	PhaseInProgress              // Serving questions
	PhaseCompleted               // All questions answered
)

// Band is the timer display band for the remaining time.
type Band int

const (
	BandNormal  Band = iota // remaining > 30s
	BandWarning             // 10s < remaining <= 30s
	BandDanger              // remaining <= 10s
)

// PlaceholderName is used when no candidate name could be extracted.
const PlaceholderName = "Candidate"

// Config holds the interview settings chosen before an attempt starts.
// It survives Reset so the next attempt starts from the same choices.
type Config struct {
	Category      questions.Category
	Difficulty    questions.Difficulty
	NumQuestions  int
	BaseTimeLimit int // seconds per question before difficulty adjustment
}

// AnswerRecord is the immutable result of one question being answered,
// skipped, or timed out. Exactly one record is produced per question.
type AnswerRecord struct {
	Question    string
	DisplayText string // question as shown, possibly name-prefixed
	Answer      string
	TimeTaken   int // seconds
	Category    questions.Category
	Difficulty  questions.Difficulty
}

// Answered reports whether the record carries a non-blank answer.
func (r AnswerRecord) Answered() bool {
	return strings.TrimSpace(r.Answer) != ""
}

// NameExtractor derives the candidate's first name from their introduction.
// Implementations must always return a usable name, falling back to
// PlaceholderName on any failure.
type NameExtractor interface {
	ExtractName(ctx context.Context, introduction string) string
}

// FeedbackGenerator produces the narrative feedback for a completed attempt.
type FeedbackGenerator interface {
	TranscriptFeedback(ctx context.Context, session *Session) string
}

// Session is the state of one interview attempt. All state lives in this
// struct; there is no ambient session storage. Mutating methods enforce
// the phase preconditions and the one-record-per-question invariant.
type Session struct {
	// ID is the UUID for this attempt, assigned at Start.
	ID string

	// Extractor derives the candidate name from the first answer.
	// Nil disables extraction (the name stays unset).
	Extractor NameExtractor

	cfg                Config
	effectiveTimeLimit int
	phase              Phase
	queue              []string
	index              int
	answers            []AnswerRecord
	drafts             map[int]string
	candidateName      string
	nameAttempted      bool
	feedback           string
	feedbackSet        bool

	questionStart time.Time
	paused        bool
	pausedAt      time.Time

	clock func() time.Time
}

// NewSession creates a session in PhaseNotStarted with the given config.
// The clock is injectable for tests; pass nil for time.Now.
func NewSession(cfg Config, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		cfg:    cfg,
		drafts: make(map[int]string),
		clock:  clock,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Config returns the attempt configuration.
func (s *Session) Config() Config { return s.cfg }

// EffectiveTimeLimit returns the difficulty-adjusted per-question limit in
// seconds. Fixed once Start has run; zero before that.
func (s *Session) EffectiveTimeLimit() int { return s.effectiveTimeLimit }

// Questions returns the drawn question list for this attempt.
func (s *Session) Questions() []string { return s.queue }

// Index returns the zero-based index of the current question. Once the
// attempt completes it equals len(Questions()).
func (s *Session) Index() int { return s.index }

// Answers returns the records appended so far, in question order.
func (s *Session) Answers() []AnswerRecord { return s.answers }

// CandidateName returns the extracted candidate name, or "" if extraction
// has not produced one.
func (s *Session) CandidateName() string { return s.candidateName }

// Paused reports whether the timer is paused.
func (s *Session) Paused() bool { return s.paused }

// Feedback returns the cached feedback text and whether it has been set.
func (s *Session) Feedback() (string, bool) { return s.feedback, s.feedbackSet }
