package wordlist

import (
	"errors"
	"fmt"
)

// Sentinel kinds for validation failures, matchable with errors.Is.
var (
	// ErrEmptyLine is returned when the input contains a zero-length line.
	// Lines holding only whitespace are not empty; no trimming is applied.
	ErrEmptyLine = errors.New("empty line in input")

	// ErrCountOutOfRange is returned when the input holds fewer than
	// MinWords or more than MaxWords lines.
	ErrCountOutOfRange = errors.New("word count out of range")
)

// ValidationError reports why an input was rejected during loading. It wraps
// one of the sentinel kinds above so callers can branch on errors.Is while
// still getting positional detail in the message.
type ValidationError struct {
	Kind error

	// Line is the 1-based position of the offending line (ErrEmptyLine).
	Line int

	// Count, Min and Max describe the bound violation (ErrCountOutOfRange).
	Count int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrEmptyLine:
		return fmt.Sprintf("line %d: empty lines are not allowed in the input", e.Line)
	case ErrCountOutOfRange:
		return fmt.Sprintf("invalid number of words: %d (the input must contain between %d and %d words)",
			e.Count, e.Min, e.Max)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes the sentinel kind for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Kind }
