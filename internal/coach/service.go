package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/llm"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/questions"
)

// FailureMarker flags a degraded evaluation response. Any response
// containing it is non-authoritative and must not be parsed.
const FailureMarker = "❌"

// ErrEmptyTopic is returned by PracticeMaterial before any provider call.
var ErrEmptyTopic = errors.New("topic is required")

// Score is the structured result of evaluating one answer. When the
// provider's JSON could not be parsed, only Value and Feedback are set.
type Score struct {
	Value        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	SampleAnswer string   `json:"sample_answer"`
	Feedback     string   `json:"feedback,omitempty"`
}

var scoreSchema = &llm.Schema{
	Name:        "answer-score",
	Description: "Structured evaluation of one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 10,
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"improvements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"sample_answer": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"score", "strengths", "improvements", "sample_answer"},
		"additionalProperties": false,
	},
}

// Service is the evaluation client. Every method returns control with a
// usable string: transport and provider failures degrade to responses
// carrying FailureMarker instead of errors.
type Service struct {
	provider llm.Provider
	attempts int
}

// NewService creates a Service on the given provider. A nil provider is
// valid and makes every call short-circuit to the unavailable message,
// which is how a missing API key is handled at startup.
func NewService(provider llm.Provider, retry llm.RetryConfig) *Service {
	attempts := retry.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Service{provider: provider, attempts: attempts}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// IsFailure reports whether a response string is a degraded failure
// response rather than real model output.
func IsFailure(response string) bool {
	return strings.Contains(response, FailureMarker)
}

// Evaluate sends a free-form prompt and returns the response text. It
// never returns an error: a missing provider or an exhausted retry budget
// yields a string carrying FailureMarker.
func (s *Service) Evaluate(ctx context.Context, prompt string) string {
	if s.provider == nil {
		return FailureMarker + " LLM provider not available. Please check your API key and connection."
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   1500,
		Temperature: 0.7,
	})
	if err != nil {
		return fmt.Sprintf("%s Error after %d attempts: %v", FailureMarker, s.attempts, err)
	}
	return strings.TrimSpace(string(resp.Content))
}

// Ask answers a free-form coaching question.
func (s *Service) Ask(ctx context.Context, question string) string {
	return s.Evaluate(llm.WithPurpose(ctx, "coach"), question)
}

// ExtractName derives the candidate's first name from their introduction.
// It implements interview.NameExtractor: the result is always usable,
// falling back to the placeholder on any failure or unreasonable output.
func (s *Service) ExtractName(ctx context.Context, introduction string) string {
	if strings.TrimSpace(introduction) == "" {
		return interview.PlaceholderName
	}

	raw := s.Evaluate(llm.WithPurpose(ctx, "name-extract"), nameExtractPrompt(introduction))
	if IsFailure(raw) {
		return interview.PlaceholderName
	}

	words := strings.Fields(raw)
	if len(words) == 0 || len(words) > 2 {
		return interview.PlaceholderName
	}

	clean := cleanNameToken(words[0])
	if clean == "" {
		return interview.PlaceholderName
	}
	return titleCase(clean)
}

// cleanNameToken strips everything but letters and hyphens.
func cleanNameToken(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// titleCase capitalizes the first letter of each hyphen-separated part.
func titleCase(name string) string {
	parts := strings.Split(strings.ToLower(name), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, "-")
}

// ScoreAnswer evaluates a single answer and returns a structured score.
// A blank answer scores zero without a provider call. Unparseable model
// output degrades to a middling score carrying the raw text as feedback.
func (s *Service) ScoreAnswer(ctx context.Context, question, answer string, difficulty questions.Difficulty) Score {
	if strings.TrimSpace(answer) == "" {
		return Score{Value: 0, Feedback: "No answer provided"}
	}

	ctx = llm.WithPurpose(ctx, "answer-score")
	prompt := scorePrompt(question, answer, difficulty)

	if s.provider == nil {
		return Score{Value: 5, Feedback: s.Evaluate(ctx, prompt)}
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    scoreSchema,
		MaxTokens: 1500,
	})
	if err != nil {
		// Schema validation failed but the model did return JSON-ish
		// content: try a lenient parse before giving up.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			if sc, ok := parseScore(invalid.Content); ok {
				return sc
			}
			return Score{Value: 5, Feedback: strings.TrimSpace(string(invalid.Content))}
		}
		return Score{Value: 5, Feedback: fmt.Sprintf("%s Error after %d attempts: %v", FailureMarker, s.attempts, err)}
	}

	if sc, ok := parseScore(resp.Content); ok {
		return sc
	}
	return Score{Value: 5, Feedback: strings.TrimSpace(string(resp.Content))}
}

// parseScore attempts a strict JSON parse of score output. Content that
// does not open with a brace is never parsed.
func parseScore(raw json.RawMessage) (Score, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return Score{}, false
	}
	var sc Score
	if err := json.Unmarshal([]byte(trimmed), &sc); err != nil {
		return Score{}, false
	}
	return sc, true
}

// TranscriptFeedback generates the narrative feedback for a completed
// attempt. It implements interview.FeedbackGenerator.
func (s *Service) TranscriptFeedback(ctx context.Context, session *interview.Session) string {
	return s.Evaluate(llm.WithPurpose(ctx, "feedback"), feedbackPrompt(session))
}

// PracticeMaterial generates study questions and model answers for a
// topic. A blank topic is rejected before any provider call.
func (s *Service) PracticeMaterial(ctx context.Context, topic string, count int, difficulty questions.Difficulty) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", ErrEmptyTopic
	}
	return s.Evaluate(llm.WithPurpose(ctx, "practice-material"), practicePrompt(topic, count, difficulty)), nil
}
