// Package sparse provides a sparse set for O(1) membership testing.
//
// The breadth-first evaluator uses it to deduplicate (pc, sp) thread
// states: insertion, lookup and clearing are all constant time, and Clear
// does not touch the backing arrays, so one set can be reused across an
// entire scan.
package sparse

// Set is a set of uint32 values with O(1) insert, lookup and clear.
// It keeps a sparse array (value -> dense index) alongside a dense array
// of the stored values; a value is present iff the two agree.
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1) time.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// Capacity returns the exclusive upper bound on storable values.
func (s *Set) Capacity() int {
	return len(s.sparse)
}
