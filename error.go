package regexpand

import "github.com/coregx/regexpand/pattern"

// Error is the error type returned for rejected patterns, word lists and
// configurations. Use errors.Is with the sentinel values below to test for a
// kind, or errors.As to read the position.
type Error = pattern.Error

// ErrorKind classifies an Error.
type ErrorKind = pattern.ErrorKind

// Error kinds.
const (
	MalformedClass      = pattern.MalformedClass
	EmptyClass          = pattern.EmptyClass
	MalformedQuantifier = pattern.MalformedQuantifier
	InvalidRange        = pattern.InvalidRange
	DanglingQuantifier  = pattern.DanglingQuantifier
	NoPlaceholder       = pattern.NoPlaceholder
	EmptyWordList       = pattern.EmptyWordList
	InvalidConfig       = pattern.InvalidConfig
	InvalidSyntax       = pattern.InvalidSyntax
)

// Sentinel errors for errors.Is.
var (
	ErrMalformedClass      = pattern.ErrMalformedClass
	ErrEmptyClass          = pattern.ErrEmptyClass
	ErrMalformedQuantifier = pattern.ErrMalformedQuantifier
	ErrInvalidRange        = pattern.ErrInvalidRange
	ErrDanglingQuantifier  = pattern.ErrDanglingQuantifier
	ErrNoPlaceholder       = pattern.ErrNoPlaceholder
	ErrEmptyWordList       = pattern.ErrEmptyWordList
	ErrInvalidConfig       = pattern.ErrInvalidConfig
	ErrInvalidSyntax       = pattern.ErrInvalidSyntax
)
