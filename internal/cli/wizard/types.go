// Package wizard provides the interactive huh-based parameter prompt used
// by the configure command when stdin is a terminal.
package wizard

import (
	"errors"

	"github.com/modu-ai/dockergen/internal/prompt"
)

// Brand colors used by the wizard theme (dark variants).
const (
	ColorPrimary   = "#2496ED"
	ColorSecondary = "#0DB7ED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	Field       prompt.Field // Requested parameter
	Type        QuestionType // Select or Input
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Options for select questions
	Default     string       // Preselected option or input placeholder
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
)
