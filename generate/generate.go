// Package generate enumerates the strings denoted by a parsed pattern.
//
// The enumeration is the Cartesian product of the atoms' candidate
// sequences, taken in atom order with the rightmost atom varying fastest.
// A quantified atom lists its candidates length by length, shortest first.
// Nothing is precomputed: each candidate is produced on demand from a small
// amount of cursor state, so patterns whose expansion could never fit in
// memory can still be streamed and abandoned at any point.
package generate

import (
	"iter"

	"github.com/coregx/regexpand/pattern"
)

// Generator is a resumable cursor over the expansion of an atom sequence.
//
// A Generator is not safe for concurrent use. Create one per consumer; the
// underlying atoms are only read.
type Generator struct {
	cursors []cursor
	buf     []byte

	started bool
	done    bool
}

// New returns a Generator over atoms. The atoms must not be modified while
// the Generator is in use.
func New(atoms []pattern.Atom) *Generator {
	g := &Generator{cursors: make([]cursor, len(atoms))}
	for i := range atoms {
		g.cursors[i] = newCursor(&atoms[i])
	}
	return g
}

// Next returns the next string, or false once the expansion is exhausted.
func (g *Generator) Next() (string, bool) {
	if g.done {
		return "", false
	}
	if !g.started {
		g.started = true
		for _, c := range g.cursors {
			c.reset()
		}
	} else if !odometer(g.cursors) {
		g.done = true
		return "", false
	}

	g.buf = g.buf[:0]
	for _, c := range g.cursors {
		g.buf = c.appendTo(g.buf)
	}
	return string(g.buf), true
}

// Reset rewinds the Generator to the first string.
func (g *Generator) Reset() {
	g.started = false
	g.done = false
}

// All returns an iterator over the remaining strings. Breaking out of the
// loop leaves the Generator positioned after the last string yielded.
func (g *Generator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, ok := g.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Strings is a convenience that returns a fresh iterator over the full
// expansion of atoms.
func Strings(atoms []pattern.Atom) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range New(atoms).All() {
			if !yield(s) {
				return
			}
		}
	}
}
