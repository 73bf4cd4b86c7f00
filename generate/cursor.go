package generate

import (
	"unicode/utf8"

	"github.com/coregx/regexpand/pattern"
)

// cursor walks the candidate strings of a single atom.
//
// After reset the cursor is positioned on its first candidate; every atom has
// at least one. next moves to the following candidate and reports false once
// the candidates are exhausted, after which only reset is valid.
type cursor interface {
	reset()
	next() bool
	appendTo(dst []byte) []byte
}

// newCursor builds the cursor for a.
func newCursor(a *pattern.Atom) cursor {
	if a.IsSingle() {
		return newSetCursor(a.Set)
	}
	if a.IsLeaf() {
		set := a.Set.Runes()
		return &repeatCursor{
			newInner: func() cursor { return &setCursor{runes: set} },
			min:      a.Min,
			max:      a.Max,
		}
	}
	sub := a.Sub
	return &repeatCursor{
		newInner: func() cursor { return newCursor(sub) },
		min:      a.Min,
		max:      a.Max,
	}
}

// setCursor enumerates a character set in stored order.
type setCursor struct {
	runes []rune
	i     int
}

func newSetCursor(set pattern.CharSet) *setCursor {
	return &setCursor{runes: set.Runes()}
}

func (c *setCursor) reset() { c.i = 0 }

func (c *setCursor) next() bool {
	c.i++
	return c.i < len(c.runes)
}

func (c *setCursor) appendTo(dst []byte) []byte {
	return utf8.AppendRune(dst, c.runes[c.i])
}

// repeatCursor enumerates n-fold concatenations of an inner cursor's
// candidates for n = min..max, shortest first. Within one length the slots
// form an odometer with the rightmost slot varying fastest.
//
// Slots for length n are only created when length n is reached, so a
// {0,1000000} atom costs memory proportional to the current length.
type repeatCursor struct {
	newInner func() cursor
	min, max int

	n     int
	slots []cursor
}

func (c *repeatCursor) reset() {
	c.setLength(c.min)
}

func (c *repeatCursor) setLength(n int) {
	c.n = n
	for len(c.slots) < n {
		c.slots = append(c.slots, c.newInner())
	}
	for _, s := range c.slots[:n] {
		s.reset()
	}
}

func (c *repeatCursor) next() bool {
	if odometer(c.slots[:c.n]) {
		return true
	}
	if c.n >= c.max {
		return false
	}
	c.setLength(c.n + 1)
	return true
}

func (c *repeatCursor) appendTo(dst []byte) []byte {
	for _, s := range c.slots[:c.n] {
		dst = s.appendTo(dst)
	}
	return dst
}

// odometer advances cs as a mixed-radix counter, rightmost fastest. A cursor
// that wraps is reset and carries into its left neighbour. It reports false
// when every cursor wrapped, leaving all of them reset.
func odometer(cs []cursor) bool {
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].next() {
			return true
		}
		cs[i].reset()
	}
	return false
}
