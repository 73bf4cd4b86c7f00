package regexpand

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/regexpand/wordlist"
)

func rawOutputs(ex *Expander) []string {
	var out []string
	it := ex.Iterator()
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		out = append(out, s)
	}
	return out
}

// TestCompileWordsStreamsLargeProducts verifies that compiling does not walk
// the word combinations, so the first string of a huge product is immediate.
func TestCompileWordsStreamsLargeProducts(t *testing.T) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}

	start := time.Now()
	ex, err := CompileWords("/x-/x-/x-/x", words, DefaultConfig())
	require.NoError(t, err)
	it := ex.Iterator()
	first, ok := it.Next()
	elapsed := time.Since(start)

	require.True(t, ok)
	assert.Equal(t, "w0-w0-w0-w0", first)
	assert.Less(t, elapsed, 5*time.Second, "first output took %v", elapsed)

	var s string
	for range 1000 {
		s, ok = it.Next()
		require.True(t, ok)
	}
	assert.Equal(t, "w0-w0-w1-w0", s)

	n, exact := ex.Count()
	assert.True(t, exact)
	assert.Equal(t, uint64(1_000_000_000_000), n)
}

// TestCompileWordsCombinesParsedPieces checks that combining separately
// parsed pieces expands exactly like parsing each concrete pattern.
func TestCompileWordsCombinesParsedPieces(t *testing.T) {
	const src = `[ab]/x-/x\d?`
	words := []string{"x{2}", "[yz]?", "", `\+`, `q\\`, `\w{0,1}`}
	config := DefaultConfig().WithQuantifierCeiling(2)

	ex, err := CompileWords(src, words, config)
	require.NoError(t, err)
	require.NotNil(t, ex.frags)

	tmpl, err := wordlist.Split(src, config.PlaceholderToken)
	require.NoError(t, err)
	tuples, err := tmpl.Expand(words)
	require.NoError(t, err)

	var want []string
	var wantCount uint64
	for concrete := range tuples.All() {
		sub, err := CompileWithConfig(concrete, config)
		require.NoError(t, err, "concrete pattern %q", concrete)
		want = append(want, rawOutputs(sub)...)
		n, _ := sub.Count()
		wantCount += n
	}

	got := rawOutputs(ex)
	assert.Equal(t, want, got)

	n, exact := ex.Count()
	assert.True(t, exact)
	assert.Equal(t, wantCount, n)
	assert.Equal(t, uint64(len(got)), n)
}

// TestCompileWordsPiecesThatNeedContext covers words and segments that only
// make sense once joined, which are parsed as whole concrete patterns.
func TestCompileWordsPiecesThatNeedContext(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		words []string
		want  []string
	}{
		{"word inside class", "[/x]", []string{"a-c", "x"}, []string{"a", "b", "c", "x"}},
		{"segment starts with quantifier", "/x{2}", []string{"ab"}, []string{"abb"}},
		{"word ends with backslash", "/xn", []string{`a\`}, []string{"a\n"}},
		{"word opens a class", "/x]", []string{"[pq"}, []string{"p", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := CompileWords(tt.src, tt.words, DefaultConfig())
			require.NoError(t, err)
			assert.Nil(t, ex.frags)
			assert.Equal(t, tt.want, rawOutputs(ex))

			n, exact := ex.Count()
			assert.True(t, exact)
			assert.Equal(t, uint64(len(tt.want)), n)
		})
	}

	_, err := CompileWords("[/x]", []string{"ok", "z-a"}, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), `substituted pattern "[z-a]"`)
}

func TestParseFragment(t *testing.T) {
	tests := []struct {
		src string
		ok  bool
	}{
		{"", true},
		{"abc", true},
		{"a{2}[xy]?", true},
		{`a\\`, true},
		{`a\`, false},
		{`a\\\`, false},
		{"[ab", false},
		{"{2}", false},
		{"+a", false},
		{"a{", false},
	}
	for _, tt := range tests {
		_, ok := parseFragment(tt.src, 3)
		assert.Equal(t, tt.ok, ok, "fragment %q", tt.src)
	}
}

// TestEscapedTokenWithEscapeMeaning verifies that an escaped placeholder
// reads back as the token even when its first character is an escape letter.
func TestEscapedTokenWithEscapeMeaning(t *testing.T) {
	tests := []struct {
		token string
		src   string
		want  string
	}{
		{"dx", `\dx-dx`, "dx-w"},
		{"nn", `\nn:nn`, "nn:w"},
		{"{W}", `\{W}={W}`, "{W}=w"},
		{"+x", `\+x+x`, "+xw"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			config := DefaultConfig().WithPlaceholderToken(tt.token)
			ex, err := CompileWords(tt.src, []string{"w"}, config)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, collect(t, ex))
		})
	}
}
