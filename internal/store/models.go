package store

import "gorm.io/gorm"

// InterviewEvent records one completed interview attempt.
type InterviewEvent struct {
	gorm.Model
	SessionID          string `gorm:"uniqueIndex;not null"`
	Category           string `gorm:"not null;index"`
	Difficulty         string `gorm:"not null"`
	NumQuestions       int    `gorm:"not null"`
	BaseLimitSecs      int    `gorm:"not null"`
	EffectiveLimitSecs int    `gorm:"not null"`
	CandidateName      string
	AnsweredCount      int
	TotalTimeSecs      int
	CompletionPercent  float64
	Feedback           string `gorm:"type:text"`
}

// AnswerEvent records a single question outcome within an attempt.
type AnswerEvent struct {
	gorm.Model
	SessionID     string `gorm:"index;not null"`
	QuestionIndex int    `gorm:"not null"`
	Question      string `gorm:"type:text;not null"`
	Answer        string `gorm:"type:text"`
	Answered      bool   `gorm:"not null"`
	TimeTakenSecs int    `gorm:"not null"`
	Category      string `gorm:"not null;index"`
	Difficulty    string `gorm:"not null"`
}

// LLMRequestEvent records one LLM API call.
type LLMRequestEvent struct {
	gorm.Model
	Provider     string `gorm:"not null"`
	ModelID      string `gorm:"column:model;not null"`
	Purpose      string `gorm:"not null;index"`
	InputTokens  int    `gorm:"not null"`
	OutputTokens int    `gorm:"not null"`
	LatencyMs    int64  `gorm:"not null"`
	Success      bool   `gorm:"not null"`
	ErrorMessage string `gorm:"type:text"`
	RequestBody  string `gorm:"type:text"`
	ResponseBody string `gorm:"type:text"`
}
