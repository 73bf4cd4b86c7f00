// Package wordlist substitutes word-list entries into pattern placeholders.
//
// A pattern such as `user/x@example\.com` is split around each unescaped
// occurrence of the placeholder token into literal segments. Every ordered
// choice of words for the placeholder sites yields one concrete pattern, which
// callers then parse and expand like any other.
package wordlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexpand/internal/conv"
	"github.com/coregx/regexpand/pattern"
)

// DefaultToken marks a substitution site.
const DefaultToken = "/x"

// Template is a pattern split around its placeholder sites.
// A Template is immutable and safe for concurrent use.
type Template struct {
	segments []string
	token    string
}

// Split locates the unescaped occurrences of token in src.
//
// An occurrence preceded by an odd number of backslashes is escaped: the
// escaping backslash is dropped and the token is kept as quoted literal text,
// so it expands to itself whatever characters it contains. Split fails with a
// NoPlaceholder error if no unescaped occurrence exists.
func Split(src, token string) (*Template, error) {
	if token == "" {
		return nil, &pattern.Error{Kind: pattern.InvalidConfig, Pos: -1, Message: "placeholder token is empty"}
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(token))
	auto, err := builder.Build()
	if err != nil {
		return nil, &pattern.Error{
			Kind:    pattern.InvalidConfig,
			Pos:     -1,
			Message: "cannot index placeholder token " + token,
			Cause:   err,
		}
	}

	haystack := []byte(src)
	var (
		segments []string
		cur      strings.Builder
	)
	last := 0
	for last < len(haystack) {
		m := auto.Find(haystack, last)
		if m == nil {
			break
		}
		if escaped(haystack, last, m.Start) {
			cur.WriteString(src[last : m.Start-1])
			cur.WriteString(pattern.QuoteMeta(token))
			last = m.End
			continue
		}
		cur.WriteString(src[last:m.Start])
		segments = append(segments, cur.String())
		cur.Reset()
		last = m.End
	}

	if len(segments) == 0 {
		return nil, &pattern.Error{
			Kind:    pattern.NoPlaceholder,
			Pos:     -1,
			Message: fmt.Sprintf("pattern %q does not contain placeholder %q", src, token),
		}
	}
	cur.WriteString(src[last:])
	segments = append(segments, cur.String())
	return &Template{segments: segments, token: token}, nil
}

// escaped reports whether the byte at pos follows an odd run of backslashes
// that starts at or after floor.
func escaped(b []byte, floor, pos int) bool {
	n := 0
	for i := pos - 1; i >= floor && b[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// Sites returns the number of placeholder occurrences.
func (t *Template) Sites() int {
	return len(t.segments) - 1
}

// Segments returns the literal text around the sites; there is one more
// segment than there are sites.
func (t *Template) Segments() []string {
	return append([]string(nil), t.segments...)
}

// Token returns the placeholder token the template was split on.
func (t *Template) Token() string {
	return t.token
}

// Fill interleaves words between the segments. It panics if len(words)
// differs from Sites.
func (t *Template) Fill(words ...string) string {
	if len(words) != t.Sites() {
		panic("wordlist: Fill called with wrong number of words")
	}
	var b strings.Builder
	b.WriteString(t.segments[0])
	for i, w := range words {
		b.WriteString(w)
		b.WriteString(t.segments[i+1])
	}
	return b.String()
}

// Expand returns a cursor over the concrete patterns for every ordered
// choice of words at the sites. Words may repeat across sites.
func (t *Template) Expand(words []string) (*Tuples, error) {
	if len(words) == 0 {
		return nil, &pattern.Error{Kind: pattern.EmptyWordList, Pos: -1, Message: "word list is empty"}
	}
	return &Tuples{
		tmpl:    t,
		words:   words,
		indices: make([]int, t.Sites()),
		chosen:  make([]string, t.Sites()),
	}, nil
}

// Tuples enumerates concrete patterns in Cartesian-product order: the word
// at the last site varies fastest, and words are taken in list order.
//
// Tuples is a cursor and is not safe for concurrent use.
type Tuples struct {
	tmpl    *Template
	words   []string
	indices []int
	chosen  []string

	started bool
	done    bool
}

// Next returns the next concrete pattern, or false when all word
// combinations have been produced.
func (c *Tuples) Next() (string, bool) {
	if !c.Step() {
		return "", false
	}
	return c.Current(), true
}

// Step moves to the next combination without building its pattern and
// reports false when none is left.
func (c *Tuples) Step() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		return true
	}
	if !c.advance() {
		c.done = true
		return false
	}
	return true
}

// Choice returns the word index chosen for each site by the last Step. The
// slice is reused by later calls.
func (c *Tuples) Choice() []int {
	return c.indices
}

// Current builds the concrete pattern for the last Step.
func (c *Tuples) Current() string {
	for i, idx := range c.indices {
		c.chosen[i] = c.words[idx]
	}
	return c.tmpl.Fill(c.chosen...)
}

func (c *Tuples) advance() bool {
	for i := len(c.indices) - 1; i >= 0; i-- {
		c.indices[i]++
		if c.indices[i] < len(c.words) {
			return true
		}
		c.indices[i] = 0
	}
	return false
}

// Reset rewinds the cursor to the first combination.
func (c *Tuples) Reset() {
	clear(c.indices)
	c.started = false
	c.done = false
}

// Len returns the number of concrete patterns, len(words)^Sites. exact is
// false when the count saturated at math.MaxUint64.
func (c *Tuples) Len() (n uint64, exact bool) {
	n, exact = 1, true
	base := conv.IntToUint64(len(c.words))
	for range c.indices {
		var ok bool
		n, ok = conv.MulSat(n, base)
		exact = exact && ok
	}
	return n, exact
}

// All returns an iterator over the remaining concrete patterns.
func (c *Tuples) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, ok := c.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}
