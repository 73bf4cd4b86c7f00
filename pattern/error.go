package pattern

import "fmt"

// Error types for pattern parsing and expansion setup.

// ErrMalformedClass indicates a bracket expression with no closing ']'.
var ErrMalformedClass = &Error{Kind: MalformedClass, Pos: -1, Message: "missing closing ]"}

// ErrEmptyClass indicates a bracket expression that resolves to no characters.
var ErrEmptyClass = &Error{Kind: EmptyClass, Pos: -1, Message: "empty character class"}

// ErrMalformedQuantifier indicates an unterminated '{...}' or non-numeric bounds.
var ErrMalformedQuantifier = &Error{Kind: MalformedQuantifier, Pos: -1, Message: "malformed repetition"}

// ErrInvalidRange indicates a repetition with min > max, or a class range
// whose start is after its end.
var ErrInvalidRange = &Error{Kind: InvalidRange, Pos: -1, Message: "invalid range"}

// ErrDanglingQuantifier indicates a repetition with nothing to repeat.
var ErrDanglingQuantifier = &Error{Kind: DanglingQuantifier, Pos: -1, Message: "missing argument to repetition operator"}

// ErrNoPlaceholder indicates word substitution was requested but the pattern
// has no placeholder.
var ErrNoPlaceholder = &Error{Kind: NoPlaceholder, Pos: -1, Message: "pattern has no placeholder"}

// ErrEmptyWordList indicates word substitution with no words.
var ErrEmptyWordList = &Error{Kind: EmptyWordList, Pos: -1, Message: "word list is empty"}

// ErrInvalidConfig indicates that the provided configuration is invalid.
var ErrInvalidConfig = &Error{Kind: InvalidConfig, Pos: -1, Message: "invalid configuration"}

// ErrInvalidSyntax indicates the pattern was rejected by strict regex validation.
var ErrInvalidSyntax = &Error{Kind: InvalidSyntax, Pos: -1, Message: "invalid regex syntax"}

// ErrorKind classifies pattern errors into categories
type ErrorKind uint8

const (
	// MalformedClass indicates an unterminated bracket expression
	MalformedClass ErrorKind = iota

	// EmptyClass indicates a bracket expression with no members
	EmptyClass

	// MalformedQuantifier indicates an unterminated or non-numeric {m,n}
	MalformedQuantifier

	// InvalidRange indicates min > max in a quantifier or start > end in a class range
	InvalidRange

	// DanglingQuantifier indicates a quantifier with no preceding atom
	DanglingQuantifier

	// NoPlaceholder indicates substitution without a placeholder in the pattern
	NoPlaceholder

	// EmptyWordList indicates substitution with an empty word list
	EmptyWordList

	// InvalidConfig indicates configuration validation failed
	InvalidConfig

	// InvalidSyntax indicates strict validation against a regex engine failed
	InvalidSyntax
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case MalformedClass:
		return "MalformedClass"
	case EmptyClass:
		return "EmptyClass"
	case MalformedQuantifier:
		return "MalformedQuantifier"
	case InvalidRange:
		return "InvalidRange"
	case DanglingQuantifier:
		return "DanglingQuantifier"
	case NoPlaceholder:
		return "NoPlaceholder"
	case EmptyWordList:
		return "EmptyWordList"
	case InvalidConfig:
		return "InvalidConfig"
	case InvalidSyntax:
		return "InvalidSyntax"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error describes a rejected pattern, word list or configuration.
// Pos is the rune offset of the offending construct, or -1 when the error
// is not tied to a position.
type Error struct {
	Kind    ErrorKind
	Pos     int
	Message string
	Cause   error // Optional underlying error
}

func errorAt(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Message
	if e.Pos >= 0 {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
