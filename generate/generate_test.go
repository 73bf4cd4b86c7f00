package generate

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/regexpand/pattern"
)

func expand(t *testing.T, src string, ceiling int) []string {
	t.Helper()
	p, err := pattern.Parse(src, ceiling)
	require.NoError(t, err)
	return slices.Collect(Strings(p.Atoms))
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"[abc]", []string{"a", "b", "c"}},
		{"[aabbcc]", []string{"a", "b", "c"}},
		{"[a-c]", []string{"a", "b", "c"}},
		{"x[ab]y[12]", []string{"xay1", "xay2", "xby1", "xby2"}},
		{"a?", []string{"", "a"}},
		{"a{0,1}", []string{"", "a"}},
		{"a{0}b", []string{"b"}},
		{"a{0}", []string{""}},
		{`\{1\}`, []string{"{1}"}},
		{`[\d]{1}x`, []string{"0x", "1x", "2x", "3x", "4x", "5x", "6x", "7x", "8x", "9x"}},
		{"é[ñö]", []string{"éñ", "éö"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, expand(t, tt.src, pattern.DefaultCeiling))
		})
	}
}

func TestGenerateLengthOrder(t *testing.T) {
	got := expand(t, "[ab]{2,3}", pattern.DefaultCeiling)
	require.Len(t, got, 12)
	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, got[:4])
	assert.Equal(t, []string{"aaa", "aab", "aba", "abb", "baa", "bab", "bba", "bbb"}, got[4:])
}

func TestGenerateStarUsesCeiling(t *testing.T) {
	assert.Equal(t, []string{"", "a", "aa", "aaa"}, expand(t, "a*", 3))
	assert.Equal(t, []string{"a", "aa", "aaa"}, expand(t, "a+", 3))
	assert.Equal(t, []string{"x", "xa", "xaa"}, expand(t, "xa*", 2))
}

func TestGenerateNestedQuantifier(t *testing.T) {
	nested := expand(t, "[ab]{2}{2}", pattern.DefaultCeiling)
	flat := expand(t, "[ab]{4}", pattern.DefaultCeiling)
	assert.Equal(t, flat, nested)

	// {1,2} of {0,1}: lengths of the inner candidates vary independently.
	assert.Equal(t,
		[]string{"", "a", "", "a", "a", "aa"},
		expand(t, "a?{1,2}", pattern.DefaultCeiling))
}

func TestGenerateIsLazy(t *testing.T) {
	// Each of these would be far too large to materialize.
	p := pattern.MustParse(`[ab]*`, pattern.DefaultCeiling)
	g := New(p.Atoms)

	var got []string
	for s := range g.All() {
		got = append(got, s)
		if len(got) == 7 {
			break
		}
	}
	assert.Equal(t, []string{"", "a", "b", "aa", "ab", "ba", "bb"}, got)

	// The generator resumes where the loop stopped.
	s, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, "aaa", s)

	q := pattern.MustParse(`\w*\d`, pattern.DefaultCeiling)
	first := make([]string, 0, 11)
	for s := range Strings(q.Atoms) {
		first = append(first, s)
		if len(first) == 11 {
			break
		}
	}
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a0"}, first)
}

func TestGeneratorResetAndExhaustion(t *testing.T) {
	p := pattern.MustParse("[abc]", pattern.DefaultCeiling)
	g := New(p.Atoms)

	s, _ := g.Next()
	assert.Equal(t, "a", s)
	s, _ = g.Next()
	assert.Equal(t, "b", s)

	g.Reset()
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(g.All()))

	_, ok := g.Next()
	assert.False(t, ok, "exhausted generator stays exhausted")
	_, ok = g.Next()
	assert.False(t, ok)
}

func TestGeneratorsAreIndependent(t *testing.T) {
	p := pattern.MustParse("[ab][cd]", pattern.DefaultCeiling)
	g1, g2 := New(p.Atoms), New(p.Atoms)

	a, _ := g1.Next()
	b, _ := g1.Next()
	c, _ := g2.Next()
	assert.Equal(t, "ac", a)
	assert.Equal(t, "ad", b)
	assert.Equal(t, "ac", c)
}

func TestDeterministicOrder(t *testing.T) {
	src := `[x-z]\d{1,2}[_-]`
	assert.Equal(t, expand(t, src, 4), expand(t, src, 4))
}

func TestCount(t *testing.T) {
	tests := []struct {
		src       string
		ceiling   int
		want      uint64
		wantExact bool
	}{
		{"", pattern.DefaultCeiling, 1, true},
		{"abc", pattern.DefaultCeiling, 1, true},
		{"[ab]{2,3}", pattern.DefaultCeiling, 12, true},
		{"[ab]{2}{2}", pattern.DefaultCeiling, 16, true},
		{"a?{1,2}", pattern.DefaultCeiling, 6, true},
		{`\d{2}[xy]`, pattern.DefaultCeiling, 200, true},
		{"a{0}", pattern.DefaultCeiling, 1, true},
		{"a*", pattern.DefaultCeiling, pattern.DefaultCeiling + 1, true},
		{"[ab]*", 3, 15, true},
		{"[ab]*", pattern.DefaultCeiling, math.MaxUint64, false},
		{`\w{20}`, pattern.DefaultCeiling, math.MaxUint64, false},
		{`\d{10}\d{10}`, pattern.DefaultCeiling, math.MaxUint64, false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := pattern.MustParse(tt.src, tt.ceiling)
			n, exact := Count(p.Atoms)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.wantExact, exact)
		})
	}
}

func TestCountMatchesEnumeration(t *testing.T) {
	for _, src := range []string{"[ab]{0,3}x?", `[a-c]{2}\d`, "a?{2}{0,2}", "[xy]{1}{1,2}z"} {
		p := pattern.MustParse(src, 4)
		n, exact := Count(p.Atoms)
		require.True(t, exact)
		assert.Equal(t, int(n), len(slices.Collect(Strings(p.Atoms))), "pattern %q", src)
	}
}

func BenchmarkGenerate(b *testing.B) {
	p := pattern.MustParse(`[a-z]{3}\d`, pattern.DefaultCeiling)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := New(p.Atoms)
		for {
			if _, ok := g.Next(); !ok {
				break
			}
		}
	}
}
