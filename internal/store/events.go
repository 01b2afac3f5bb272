package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// eventRepo implements EventRepo backed by gorm.
type eventRepo struct {
	db *gorm.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	rec := LLMRequestEvent{
		Provider:     data.Provider,
		ModelID:      data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecordInterview(ctx context.Context, data InterviewResultData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := InterviewEvent{
			SessionID:          data.SessionID,
			Category:           data.Category,
			Difficulty:         data.Difficulty,
			NumQuestions:       data.NumQuestions,
			BaseLimitSecs:      data.BaseLimitSecs,
			EffectiveLimitSecs: data.EffectiveLimitSecs,
			CandidateName:      data.CandidateName,
			AnsweredCount:      data.AnsweredCount,
			TotalTimeSecs:      data.TotalTimeSecs,
			CompletionPercent:  data.CompletionPercent,
			Feedback:           data.Feedback,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("save interview event: %w", err)
		}

		for _, a := range data.Answers {
			row := AnswerEvent{
				SessionID:     data.SessionID,
				QuestionIndex: a.QuestionIndex,
				Question:      a.Question,
				Answer:        a.Answer,
				Answered:      a.Answer != "",
				TimeTakenSecs: a.TimeTakenSecs,
				Category:      data.Category,
				Difficulty:    data.Difficulty,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("save answer event %d: %w", a.QuestionIndex, err)
			}
		}
		return nil
	})
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	if opts.Purpose != "" {
		q = q.Where("purpose = ?", opts.Purpose)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var events []LLMRequestEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	var e LLMRequestEvent
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var out []PurposeUsage
	err := r.db.WithContext(ctx).
		Model(&LLMRequestEvent{}).
		Select("purpose, COUNT(*) AS calls, " +
			"COALESCE(SUM(input_tokens), 0) AS input_tokens, " +
			"COALESCE(SUM(output_tokens), 0) AS output_tokens, " +
			"CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER) AS avg_latency_ms").
		Group("purpose").
		Order("purpose").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var out []ModelUsage
	err := r.db.WithContext(ctx).
		Model(&LLMRequestEvent{}).
		Select("model, COUNT(*) AS calls, " +
			"COALESCE(SUM(input_tokens), 0) AS input_tokens, " +
			"COALESCE(SUM(output_tokens), 0) AS output_tokens").
		Group("model").
		Order("model").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Overall(ctx context.Context) (OverallStats, error) {
	var out OverallStats
	err := r.db.WithContext(ctx).
		Model(&InterviewEvent{}).
		Select("COUNT(*) AS attempts, " +
			"COALESCE(SUM(num_questions), 0) AS questions_asked, " +
			"COALESCE(SUM(answered_count), 0) AS questions_answered, " +
			"COALESCE(AVG(completion_percent), 0) AS avg_completion, " +
			"COALESCE(SUM(total_time_secs), 0) AS total_time_secs").
		Scan(&out).Error
	if err != nil {
		return OverallStats{}, fmt.Errorf("aggregate overall stats: %w", err)
	}
	return out, nil
}

func (r *eventRepo) StatsByCategory(ctx context.Context) ([]CategoryStats, error) {
	var out []CategoryStats
	err := r.db.WithContext(ctx).
		Model(&InterviewEvent{}).
		Select("category, COUNT(*) AS attempts, " +
			"COALESCE(SUM(num_questions), 0) AS questions_asked, " +
			"COALESCE(SUM(answered_count), 0) AS questions_answered, " +
			"COALESCE(AVG(completion_percent), 0) AS avg_completion, " +
			"COALESCE(SUM(total_time_secs), 0) AS total_time_secs").
		Group("category").
		Order("category").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate stats by category: %w", err)
	}
	return out, nil
}

func (r *eventRepo) RecentInterviews(ctx context.Context, limit int) ([]InterviewEvent, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var events []InterviewEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	return events, nil
}
