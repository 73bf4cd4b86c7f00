// Package dedup suppresses repeated strings in a stream while preserving the
// order in which distinct strings first appear.
//
// Memory grows with the number of distinct strings seen, never with the size
// of the underlying stream.
package dedup

import "iter"

// Set is an insertion-ordered set of strings.
//
// The zero value is an empty set ready to use. A Set is not safe for
// concurrent use.
type Set struct {
	index map[string]int
	order []string
}

// NewSet returns an empty set with room for sizeHint strings.
func NewSet(sizeHint int) *Set {
	return &Set{
		index: make(map[string]int, sizeHint),
		order: make([]string, 0, sizeHint),
	}
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v string) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
	return true
}

// Contains reports whether v has been added.
func (s *Set) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Index returns the insertion position of v, or -1.
func (s *Set) Index(v string) int {
	if i, ok := s.index[v]; ok {
		return i
	}
	return -1
}

// Len returns the number of distinct strings added.
func (s *Set) Len() int {
	return len(s.order)
}

// Values returns the strings in first-insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []string {
	return s.order
}

// Filter is a cursor that drops strings its source already produced. Unlike
// Set it keeps no record of order, only membership.
type Filter struct {
	next func() (string, bool)
	seen map[string]struct{}
}

// NewFilter wraps a pull function such as (*generate.Generator).Next.
func NewFilter(next func() (string, bool)) *Filter {
	return &Filter{next: next, seen: make(map[string]struct{})}
}

// Next returns the next string not returned before, or false when the
// source is exhausted.
func (f *Filter) Next() (string, bool) {
	for {
		s, ok := f.next()
		if !ok {
			return "", false
		}
		if _, dup := f.seen[s]; !dup {
			f.seen[s] = struct{}{}
			return s, true
		}
	}
}

// Seen returns the number of distinct strings returned so far.
func (f *Filter) Seen() int {
	return len(f.seen)
}

// Seq returns seq with repeated strings removed. Each iteration of the
// returned sequence starts with an empty seen-set.
func Seq(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for s := range seq {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			if !yield(s) {
				return
			}
		}
	}
}
