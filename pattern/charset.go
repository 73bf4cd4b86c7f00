package pattern

import (
	"strings"

	"github.com/coregx/regexpand/internal/conv"
	"github.com/coregx/regexpand/internal/sparse"
)

// asciiUniverse is the initial sparse capacity; larger code points grow the set.
const asciiUniverse = 128

// CharSet is a set of runes with a stable stored order.
//
// Inserting a rune that is already present is a no-op, so the stored order is
// the order of first insertion (or ascending after Sort). The stored order is
// the order in which the generator enumerates the set.
//
// The zero value is an empty set ready to use.
type CharSet struct {
	set *sparse.SparseSet
}

// NewCharSet returns a set holding rs in first-seen order.
func NewCharSet(rs ...rune) CharSet {
	var c CharSet
	for _, r := range rs {
		c.Add(r)
	}
	return c
}

// Add inserts r and reports whether it was not already present.
func (c *CharSet) Add(r rune) bool {
	if c.set == nil {
		c.set = sparse.NewSparseSet(asciiUniverse)
	}
	return c.set.Insert(conv.RuneToUint32(r))
}

// AddRange inserts every code point in [lo, hi].
func (c *CharSet) AddRange(lo, hi rune) {
	for r := lo; r <= hi; r++ {
		c.Add(r)
	}
}

// Union inserts all members of o, in o's order.
func (c *CharSet) Union(o CharSet) {
	if o.set == nil {
		return
	}
	o.set.Iter(func(v uint32) {
		c.Add(conv.Uint32ToRune(v))
	})
}

// Sort reorders the set by ascending code point.
func (c *CharSet) Sort() {
	if c.set != nil {
		c.set.Sort()
	}
}

// Clone returns an independent copy with the same stored order.
func (c CharSet) Clone() CharSet {
	var out CharSet
	out.Union(c)
	return out
}

// Len returns the number of members.
func (c CharSet) Len() int {
	if c.set == nil {
		return 0
	}
	return c.set.Size()
}

// Contains reports whether r is a member.
func (c CharSet) Contains(r rune) bool {
	return r >= 0 && c.set != nil && c.set.Contains(conv.RuneToUint32(r))
}

// Runes returns the members in stored order. The slice is freshly allocated.
func (c CharSet) Runes() []rune {
	if c.set == nil {
		return nil
	}
	vals := c.set.Values()
	out := make([]rune, len(vals))
	for i, v := range vals {
		out[i] = conv.Uint32ToRune(v)
	}
	return out
}

// String renders the set as a bracket expression in stored order,
// escaping characters that are special inside brackets.
func (c CharSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range c.Runes() {
		writeLiteral(&b, r, true)
	}
	b.WriteByte(']')
	return b.String()
}

// writeLiteral writes r so that parsing it back yields exactly r.
func writeLiteral(b *strings.Builder, r rune, inClass bool) {
	switch r {
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\r':
		b.WriteString(`\r`)
	case '\f':
		b.WriteString(`\f`)
	case '\v':
		b.WriteString(`\v`)
	case '\b':
		b.WriteString(`\b`)
	case '\a':
		b.WriteString(`\a`)
	case '\\', '[', ']', '{', '}', '+', '*', '?':
		b.WriteByte('\\')
		b.WriteRune(r)
	case '-':
		if inClass {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	default:
		b.WriteRune(r)
	}
}

// Shorthand classes. The complements are taken within the printable set:
// ASCII digits, letters and punctuation, space, and \t \n \v \f \r.
var (
	wordClass     CharSet
	digitClass    CharSet
	spaceClass    CharSet
	nonWordClass  CharSet
	nonDigitClass CharSet
	nonSpaceClass CharSet
	printable     CharSet
)

func init() {
	wordClass.AddRange('a', 'z')
	wordClass.AddRange('A', 'Z')
	wordClass.AddRange('0', '9')
	wordClass.Add('_')

	digitClass.AddRange('0', '9')

	for _, r := range " \t\n\r\f\v" {
		spaceClass.Add(r)
	}

	printable.AddRange('\t', '\r')
	printable.AddRange(' ', '~')

	nonWordClass = complement(wordClass)
	nonDigitClass = complement(digitClass)
	nonSpaceClass = complement(spaceClass)
}

// complement returns printable minus c, ascending by code point.
func complement(c CharSet) CharSet {
	var out CharSet
	for _, r := range printable.Runes() {
		if !c.Contains(r) {
			out.Add(r)
		}
	}
	out.Sort()
	return out
}

func isShorthand(letter rune) bool {
	switch letter {
	case 'w', 'd', 's', 'W', 'D', 'S':
		return true
	}
	return false
}

// shorthandClass returns a copy of the class named by letter.
func shorthandClass(letter rune) (CharSet, bool) {
	var c CharSet
	switch letter {
	case 'w':
		c = wordClass
	case 'd':
		c = digitClass
	case 's':
		c = spaceClass
	case 'W':
		c = nonWordClass
	case 'D':
		c = nonDigitClass
	case 'S':
		c = nonSpaceClass
	default:
		return CharSet{}, false
	}
	return c.Clone(), true
}
