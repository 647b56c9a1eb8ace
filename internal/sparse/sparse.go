// Package sparse provides the sparse-set data structure used to track
// visited NFA states during epsilon-closure computation (subset
// construction). A sparse set gives O(1) insertion and membership
// testing over a known, small universe — exactly the shape of "have I
// already queued this state id" during a closure walk.
package sparse

import "github.com/globalnames/taxamatch/internal/conv"

// SparseSet is a set of state ids in [0, capacity) supporting O(1)
// Insert and Contains, with a dense slice for iteration order.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
}

// NewSparseSet creates a sparse set over the state-id universe
// [0, capacity).
func NewSparseSet(capacity int) *SparseSet {
	n := conv.IntToUint32(capacity)
	return &SparseSet{
		sparse: make([]uint32, n),
		dense:  make([]uint32, 0, n),
	}
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value int) bool {
	if value < 0 || conv.IntToUint32(value) >= conv.IntToUint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < conv.IntToUint32(len(s.dense)) && s.dense[idx] == conv.IntToUint32(value)
}

// Insert adds value to the set; a no-op if already present.
func (s *SparseSet) Insert(value int) {
	if s.Contains(value) {
		return
	}
	v := conv.IntToUint32(value)
	s.sparse[v] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, v)
}

// Values returns the set's members in insertion order. The returned
// slice is valid until the next Insert.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
