// Package wizard provides the interactive question flow for project
// creation, built on huh forms.
package wizard

import "errors"

// Result holds the user's selections from the create-project wizard.
type Result struct {
	ProjectName string   // Project name token (required).
	Database    string   // Persistence strategy key, or "" for none.
	WithAuth    bool     // Generate the authentication unit.
	Crud        bool     // Generate CRUD operations for resources.
	Resources   []string // Resource tokens to generate up front.
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string              // Unique identifier.
	Type        QuestionType        // Select, Input, or Confirm.
	Title       string              // Question title.
	Description string              // Additional description.
	Options     []Option            // Options for select questions.
	Default     string              // Default value.
	Required    bool                // Whether the field is required.
	Validate    func(string) error  // Extra validation for input questions.
	Condition   func(*Result) bool  // Condition for showing this question.
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label.
	Value string // Actual value stored.
	Desc  string // Optional description.
}

// Error definitions for the wizard package.
var (
	// ErrCancelled indicates the user aborted the wizard.
	ErrCancelled = errors.New("wizard cancelled")

	// ErrNoQuestions indicates Run was called with an empty question set.
	ErrNoQuestions = errors.New("no questions to ask")
)
