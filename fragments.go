package regexpand

import (
	"github.com/coregx/regexpand/generate"
	"github.com/coregx/regexpand/internal/conv"
	"github.com/coregx/regexpand/pattern"
	"github.com/coregx/regexpand/wordlist"
)

// fragments holds the atoms of every template segment and every word of a
// word-list pattern. It exists only when each piece parses on its own, in
// which case a concrete pattern's atoms are the concatenation of its
// pieces' atoms and no concrete pattern ever has to be parsed.
type fragments struct {
	segments [][]pattern.Atom
	words    [][]pattern.Atom
}

// parseFragments parses the segments of tmpl and each word separately.
// It returns false if some piece depends on its neighbours.
func parseFragments(tmpl *wordlist.Template, words []string, ceiling int) (*fragments, bool) {
	segs := tmpl.Segments()
	f := &fragments{
		segments: make([][]pattern.Atom, len(segs)),
		words:    make([][]pattern.Atom, len(words)),
	}
	for i, s := range segs {
		atoms, ok := parseFragment(s, ceiling)
		if !ok {
			return nil, false
		}
		f.segments[i] = atoms
	}
	for i, w := range words {
		atoms, ok := parseFragment(w, ceiling)
		if !ok {
			return nil, false
		}
		f.words[i] = atoms
	}
	return f, true
}

// parseFragment parses src as one piece of a larger pattern. A piece that
// parses cleanly cannot leave a class or repetition open and cannot begin
// with a quantifier; one that also does not end in an unpaired backslash
// yields the same atoms wherever it is placed.
func parseFragment(src string, ceiling int) ([]pattern.Atom, bool) {
	n := 0
	for i := len(src) - 1; i >= 0 && src[i] == '\\'; i-- {
		n++
	}
	if n%2 == 1 {
		return nil, false
	}
	p, err := pattern.Parse(src, ceiling)
	if err != nil {
		return nil, false
	}
	return p.Atoms, true
}

// join returns the atoms of the concrete pattern for the given word choice.
func (f *fragments) join(choice []int) []pattern.Atom {
	size := len(f.segments[0])
	for i, w := range choice {
		size += len(f.words[w]) + len(f.segments[i+1])
	}
	atoms := make([]pattern.Atom, 0, size)
	atoms = append(atoms, f.segments[0]...)
	for i, w := range choice {
		atoms = append(atoms, f.words[w]...)
		atoms = append(atoms, f.segments[i+1]...)
	}
	return atoms
}

// count returns the raw expansion size over every word choice: the product
// of the segment counts times, per site, the sum of the word counts.
func (f *fragments) count() (n uint64, exact bool) {
	n, exact = 1, true
	mul := func(v uint64, ok bool) {
		var mulOK bool
		n, mulOK = conv.MulSat(n, v)
		exact = exact && ok && mulOK
	}

	for _, atoms := range f.segments {
		mul(generate.Count(atoms))
	}

	var perSite uint64
	sumExact := true
	for _, atoms := range f.words {
		c, ok := generate.Count(atoms)
		var addOK bool
		perSite, addOK = conv.AddSat(perSite, c)
		sumExact = sumExact && ok && addOK
	}
	for range len(f.segments) - 1 {
		mul(perSite, sumExact)
	}
	return n, exact
}
