// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion and membership testing while maintaining a
// dense list of elements in insertion order. It backs character sets, where the
// stored order of code points defines the enumeration order of expanded strings.
package sparse

import "sort"

// SparseSet is a set of uint32 values that supports O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array.
//
// The sparse array grows on demand up to the largest inserted value, so sets of
// ASCII code points stay small while arbitrary Unicode ranges still work.
// Elements are never removed, which keeps the dense array in insertion order.
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values, in insertion order
}

// NewSparseSet creates a new sparse set with the given initial capacity.
// Values >= capacity are still accepted; the sparse array grows to fit them.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, min(capacity, 128)),
	}
}

// Insert adds a value to the set.
// If the value is already present, this is a no-op and Insert returns false.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	if uint64(value) >= uint64(len(s.sparse)) {
		s.grow(value)
	}

	//nolint:gosec // G115: dense length is bounded by the sparse universe
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

func (s *SparseSet) grow(value uint32) {
	n := uint64(value) + 1
	if doubled := uint64(len(s.sparse)) * 2; doubled > n {
		n = doubled
	}
	grown := make([]uint32, n)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Contains returns true if the value is in the set
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == value
}

// Size returns the number of elements in the set
func (s *SparseSet) Size() int {
	return len(s.dense)
}

// IsEmpty returns true if the set contains no elements
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Clear removes all elements from the set in O(1) time
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Values returns a slice of all values in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}

// Sort reorders the dense array ascending. Membership is preserved.
func (s *SparseSet) Sort() {
	sort.Slice(s.dense, func(i, j int) bool { return s.dense[i] < s.dense[j] })
	for i, v := range s.dense {
		//nolint:gosec // G115: index is bounded by the sparse universe
		s.sparse[v] = uint32(i)
	}
}

// Iter calls the given function for each value in insertion order.
func (s *SparseSet) Iter(f func(uint32)) {
	for _, v := range s.dense {
		f(v)
	}
}
