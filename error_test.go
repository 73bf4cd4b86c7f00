package regexpand

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStrictErrorWrapsStdlibMessage verifies that strict-mode rejections keep
// the regex engine's message, which matches the stdlib format.
func TestStrictErrorWrapsStdlibMessage(t *testing.T) {
	strict := DefaultConfig().WithStrictSyntax(true)
	patterns := []string{
		"(abc",
		"abc)",
		"a{1001}",
		`x\8`,
	}

	for _, src := range patterns {
		t.Run(src, func(t *testing.T) {
			_, stdlibErr := regexp.Compile(src)
			require.Error(t, stdlibErr, "stdlib accepts %q", src)

			_, err := CompileWithConfig(src, strict)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSyntax)
			assert.True(t, strings.HasSuffix(err.Error(), stdlibErr.Error()),
				"error message mismatch:\n  got:  %q\n  want suffix: %q", err.Error(), stdlibErr.Error())
		})
	}
}

// TestErrorKindsAreDistinct verifies that errors.Is matches on kind only.
func TestErrorKindsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrMalformedClass,
		ErrEmptyClass,
		ErrMalformedQuantifier,
		ErrInvalidRange,
		ErrDanglingQuantifier,
		ErrNoPlaceholder,
		ErrEmptyWordList,
		ErrInvalidConfig,
		ErrInvalidSyntax,
	}

	_, err := Compile("ab{")
	require.Error(t, err)
	for _, s := range sentinels {
		assert.Equal(t, s == ErrMalformedQuantifier, errors.Is(err, s), "errors.Is(%v, %v)", err, s)
	}
}

// TestErrorPositions verifies that positions refer to the caller's pattern,
// counted in runes, even after unbounded operators are rewritten.
func TestErrorPositions(t *testing.T) {
	tests := []struct {
		src  string
		kind ErrorKind
		pos  int
	}{
		{"[abc", MalformedClass, 0},
		{"a+[", MalformedClass, 2},
		{"ü*{3,1}", InvalidRange, 2},
		{"{1}", DanglingQuantifier, 0},
		{"ab[]", EmptyClass, 2},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Compile(tt.src)
			var perr *Error
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.pos, perr.Pos)
		})
	}
}

// TestWordListErrorsHaveNoPosition verifies word-list errors report Pos -1.
func TestWordListErrorsHaveNoPosition(t *testing.T) {
	_, err := CompileWords("abc", []string{"x"}, DefaultConfig())
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, NoPlaceholder, perr.Kind)
	assert.Equal(t, -1, perr.Pos)
	assert.NotContains(t, err.Error(), "at position")
}
