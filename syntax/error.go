package syntax

import "fmt"

// ErrorCode classifies parse failures.
type ErrorCode uint8

const (
	// ErrInvalidEscape indicates a backslash followed by a non-metacharacter.
	ErrInvalidEscape ErrorCode = iota

	// ErrInvalidRightParen indicates a `)` with no matching `(`.
	ErrInvalidRightParen

	// ErrMissingArgument indicates `+` `*` `?` or `|` with no preceding
	// expression to operate on.
	ErrMissingArgument

	// ErrMissingRightParen indicates a `(` left unclosed at end of input.
	ErrMissingRightParen

	// ErrEmptyPattern indicates the pattern parsed to nothing.
	ErrEmptyPattern
)

// String returns a human-readable name for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidEscape:
		return "invalid escape sequence"
	case ErrInvalidRightParen:
		return "unexpected right parenthesis"
	case ErrMissingArgument:
		return "missing argument to operator"
	case ErrMissingRightParen:
		return "missing right parenthesis"
	case ErrEmptyPattern:
		return "empty pattern"
	default:
		return fmt.Sprintf("unknown error code (%d)", c)
	}
}

// A ParseError describes a failure to parse a pattern.
// Pos is the index, in runes, of the character that triggered the error;
// it is -1 for failures detected at end of input. Char is the offending
// rune for ErrInvalidEscape and 0 otherwise.
//
// ParseError is a deterministic function of the pattern: the same pattern
// always produces the same error.
type ParseError struct {
	Code ErrorCode
	Pos  int
	Char rune
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Code {
	case ErrInvalidEscape:
		return fmt.Sprintf("syntax: %s at position %d: %q", e.Code, e.Pos, e.Char)
	case ErrMissingRightParen, ErrEmptyPattern:
		return fmt.Sprintf("syntax: %s", e.Code)
	default:
		return fmt.Sprintf("syntax: %s at position %d", e.Code, e.Pos)
	}
}
