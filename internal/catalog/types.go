// Package catalog holds the static learning content: tutorials with their
// lessons and exercises, the pattern library, the example library, and the
// playground code templates. Catalog data is immutable after construction.
package catalog

import "prompt_school_backend/internal/validation"

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

type Tutorial struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    string     `json:"duration"`
	Lessons     []Lesson   `json:"lessons"`
}

type Lesson struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Duration      string          `json:"duration"`
	Concepts      []string        `json:"concepts"`
	Theory        string          `json:"theory"`
	Examples      []WorkedExample `json:"examples"`
	Exercises     []Exercise      `json:"exercises"`
	Prerequisites []string        `json:"prerequisites,omitempty"`
}

type WorkedExample struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

// Exercise carries its own validation rule, injected at construction time.
type Exercise struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StarterCode string          `json:"starterCode"`
	Solution    string          `json:"solution"`
	Hints       []string        `json:"hints"`
	Rule        validation.Rule `json:"-"`
}

// Pattern is an entry in the prompt-pattern library.
type Pattern struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Description string     `json:"description"`
	Template    string     `json:"template"`
	UseCases    []string   `json:"useCases"`
}

// ExampleEntry is a worked prompt from the example library.
type ExampleEntry struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
	Prompt      string     `json:"prompt"`
}

// CodeTemplate seeds the playground editor.
type CodeTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description"`
	Code        string `json:"code"`
}
