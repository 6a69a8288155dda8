package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPart = errors.New("part must be 1 or 2")

	// ErrInvariant marks a structural invariant violation. It points at a bug
	// in a parser or algorithm rather than at bad input, and aborts the run.
	ErrInvariant = errors.New("structural invariant violated")
)

// ParseError reports a record that does not match the expected shape.
// Line is 1-based; 0 means the error is not tied to a single line.
type ParseError struct {
	Day    int
	Line   int
	Text   string
	Reason string
}

func NewParseError(day, line int, text, reason string) *ParseError {
	return &ParseError{
		Day:    day,
		Line:   line,
		Text:   text,
		Reason: reason,
	}
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("day %d: parse error: %s", e.Day, e.Reason)
	}
	return fmt.Sprintf("day %d: parse error on line %d %q: %s", e.Day, e.Line, e.Text, e.Reason)
}

func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

type InvariantError struct {
	Day    int
	Reason string
}

func Invariantf(day int, format string, args ...any) *InvariantError {
	return &InvariantError{
		Day:    day,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("day %d: %s: %s", e.Day, ErrInvariant, e.Reason)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}
