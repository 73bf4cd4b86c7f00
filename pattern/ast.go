package pattern

import (
	"strconv"
	"strings"
)

// Atom is one parsed unit of a pattern: a character set, or a nested atom,
// repeated between Min and Max times inclusive.
//
// Exactly one of Set and Sub is meaningful. A leaf atom (Sub == nil) expands to
// every string of length Min..Max over Set. A nested atom arises from stacked
// quantifiers such as `[ab]{2}{3}`: the candidate strings of Sub are themselves
// the alphabet being repeated.
//
// An atom with no explicit quantifier has Min == Max == 1.
type Atom struct {
	Set CharSet
	Sub *Atom
	Min int
	Max int
}

// IsLeaf reports whether the atom repeats a character set directly.
func (a Atom) IsLeaf() bool {
	return a.Sub == nil
}

// IsSingle reports whether the atom is an unquantified character set.
func (a Atom) IsSingle() bool {
	return a.Sub == nil && a.Min == 1 && a.Max == 1
}

// String renders the atom in canonical pattern syntax.
func (a Atom) String() string {
	var b strings.Builder
	a.write(&b)
	return b.String()
}

func (a Atom) write(b *strings.Builder) {
	switch {
	case a.Sub != nil:
		a.Sub.write(b)
	case a.Set.Len() == 1:
		writeLiteral(b, a.Set.Runes()[0], false)
	default:
		b.WriteString(a.Set.String())
	}

	if a.Sub == nil && a.Min == 1 && a.Max == 1 {
		return
	}
	b.WriteByte('{')
	b.WriteString(strconv.Itoa(a.Min))
	if a.Max != a.Min {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(a.Max))
	}
	b.WriteByte('}')
}

// Pattern is the parsed form of a pattern string: an ordered sequence of
// atoms whose expansions are concatenated left to right.
//
// A Pattern is immutable once returned by Parse.
type Pattern struct {
	Atoms []Atom

	source  string
	ceiling int
}

// Source returns the pattern text as given to Parse.
func (p *Pattern) Source() string {
	return p.source
}

// Ceiling returns the repeat bound used for unbounded operators.
func (p *Pattern) Ceiling() int {
	return p.ceiling
}

// String renders the parsed atoms in canonical syntax, with unbounded
// operators already replaced by explicit ranges.
func (p *Pattern) String() string {
	var b strings.Builder
	for _, a := range p.Atoms {
		a.write(&b)
	}
	return b.String()
}
