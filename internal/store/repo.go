package store

import "context"

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AnswerData is one question outcome inside an interview result.
type AnswerData struct {
	QuestionIndex int
	Question      string
	Answer        string
	TimeTakenSecs int
}

// InterviewResultData captures a completed attempt and its answers.
type InterviewResultData struct {
	SessionID          string
	Category           string
	Difficulty         string
	NumQuestions       int
	BaseLimitSecs      int
	EffectiveLimitSecs int
	CandidateName      string
	AnsweredCount      int
	TotalTimeSecs      int
	CompletionPercent  float64
	Feedback           string
	Answers            []AnswerData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// CategoryStats aggregates interview history for one question category.
type CategoryStats struct {
	Category          string
	Attempts          int
	QuestionsAsked    int
	QuestionsAnswered int
	AvgCompletion     float64
	TotalTimeSecs     int
}

// OverallStats aggregates interview history across all categories.
type OverallStats struct {
	Attempts          int
	QuestionsAsked    int
	QuestionsAnswered int
	AvgCompletion     float64
	TotalTimeSecs     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecordInterview persists a completed attempt and its answer rows
	// atomically.
	RecordInterview(ctx context.Context, data InterviewResultData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// Overall aggregates interview history across all attempts.
	Overall(ctx context.Context) (OverallStats, error)

	// StatsByCategory aggregates interview history per category.
	StatsByCategory(ctx context.Context) ([]CategoryStats, error)

	// RecentInterviews returns completed attempts, newest first.
	RecentInterviews(ctx context.Context, limit int) ([]InterviewEvent, error)
}
