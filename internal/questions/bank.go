package questions

import (
	"fmt"
	"math"
	"math/rand"
)

// Category identifies a question bank.
type Category string

const (
	CategoryGeneral        Category = "General"
	CategoryTechnical      Category = "Technical"
	CategoryBehavioral     Category = "Behavioral"
	CategoryProblemSolving Category = "Problem Solving"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryTechnical,
		CategoryBehavioral,
		CategoryProblemSolving,
	}
}

// banks maps each category to its ordered list of canned questions.
var banks = map[Category][]string{
	CategoryGeneral: {
		"Tell me about yourself.",
		"Why are you interested in this position?",
		"What are your strengths and weaknesses?",
		"Where do you see yourself in 5 years?",
		"Why should we hire you?",
		"Describe a challenging situation you faced and how you handled it.",
	},
	CategoryTechnical: {
		"Explain object-oriented programming principles.",
		"What is the difference between SQL and NoSQL databases?",
		"Describe your experience with version control systems.",
		"How do you ensure code quality and maintainability?",
		"Explain the concept of API design and RESTful services.",
		"What are design patterns and can you give examples?",
	},
	CategoryBehavioral: {
		"Tell me about a time you had to work with a difficult team member.",
		"Describe a project where you had to meet a tight deadline.",
		"Give an example of when you had to learn something new quickly.",
		"Tell me about a mistake you made and how you handled it.",
		"Describe a time when you had to explain something complex to a non-technical person.",
	},
	CategoryProblemSolving: {
		"How would you approach debugging a system that's running slowly?",
		"Design a system for a library management system.",
		"How would you handle a situation where a client is unhappy with deliverables?",
		"Explain how you would prioritize tasks when everything seems urgent.",
		"Walk me through your problem-solving process.",
	},
}

// Bank returns a copy of the question bank for the given category.
func Bank(category Category) ([]string, error) {
	bank, ok := banks[category]
	if !ok {
		return nil, fmt.Errorf("unknown category: %q", category)
	}
	out := make([]string, len(bank))
	copy(out, bank)
	return out, nil
}

// BankSize returns the number of questions available for a category.
func BankSize(category Category) int {
	return len(banks[category])
}

// Draw shuffles the category's bank and returns the first min(n, bank size)
// questions. Questions are unique, drawn without replacement.
func Draw(category Category, n int, rng *rand.Rand) ([]string, error) {
	bank, err := Bank(category)
	if err != nil {
		return nil, err
	}
	rng.Shuffle(len(bank), func(i, j int) {
		bank[i], bank[j] = bank[j], bank[i]
	})
	if n > len(bank) {
		n = len(bank)
	}
	return bank[:n], nil
}

// Difficulty is the interview difficulty level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Difficulties returns all difficulty levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// difficultyLevels carries the per-level timer multiplier and the complexity
// label used in evaluation prompts.
var difficultyLevels = map[Difficulty]struct {
	TimeMultiplier float64
	Complexity     string
}{
	DifficultyBeginner:     {TimeMultiplier: 1.5, Complexity: "basic"},
	DifficultyIntermediate: {TimeMultiplier: 1.0, Complexity: "moderate"},
	DifficultyAdvanced:     {TimeMultiplier: 0.8, Complexity: "complex"},
}

// TimeMultiplier returns the timer multiplier for a difficulty.
// Unknown difficulties fall back to 1.0.
func TimeMultiplier(d Difficulty) float64 {
	if lvl, ok := difficultyLevels[d]; ok {
		return lvl.TimeMultiplier
	}
	return 1.0
}

// Complexity returns the prompt complexity label for a difficulty.
func Complexity(d Difficulty) string {
	if lvl, ok := difficultyLevels[d]; ok {
		return lvl.Complexity
	}
	return "moderate"
}

// AdjustTimeLimit applies the difficulty multiplier to a base per-question
// time limit in seconds, flooring to an integer.
func AdjustTimeLimit(baseSeconds int, d Difficulty) int {
	return int(math.Floor(float64(baseSeconds) * TimeMultiplier(d)))
}

// QuestionCounts are the selectable interview lengths.
var QuestionCounts = []int{3, 5, 7, 10}

// TimeLimits are the selectable per-question base time limits in seconds.
var TimeLimits = []int{60, 90, 120, 180}
