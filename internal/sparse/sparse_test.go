package sparse

import "testing"

func TestSetBasic(t *testing.T) {
	s := NewSet(100)

	if s.Len() != 0 {
		t.Errorf("new set Len = %d, want 0", s.Len())
	}
	if s.Contains(5) {
		t.Error("new set contains 5")
	}

	if !s.Insert(5) {
		t.Error("first Insert(5) = false, want true")
	}
	if s.Insert(5) {
		t.Error("second Insert(5) = true, want false")
	}
	if !s.Contains(5) {
		t.Error("set does not contain 5 after insert")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	s.Insert(0)
	s.Insert(99)
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	for _, v := range []uint32{0, 5, 99} {
		if !s.Contains(v) {
			t.Errorf("set does not contain %d", v)
		}
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet(10)
	for i := uint32(0); i < 10; i++ {
		s.Insert(i)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len())
	}
	for i := uint32(0); i < 10; i++ {
		if s.Contains(i) {
			t.Errorf("set contains %d after Clear", i)
		}
	}
	// Reinsertion after Clear must behave like a fresh set.
	if !s.Insert(3) || !s.Contains(3) || s.Len() != 1 {
		t.Error("set misbehaves after Clear")
	}
}

func TestSetContainsOutOfRange(t *testing.T) {
	s := NewSet(4)
	if s.Contains(4) {
		t.Error("Contains(capacity) = true")
	}
	if s.Contains(1 << 30) {
		t.Error("Contains(huge) = true")
	}
}

func TestSetSparseAliasing(t *testing.T) {
	// Absent values whose sparse slot happens to point at a live dense
	// entry must not read as present.
	s := NewSet(8)
	s.Insert(3)
	if s.Contains(0) {
		t.Error("aliased sparse entry misread as membership")
	}
}

func TestSetCapacity(t *testing.T) {
	s := NewSet(42)
	if s.Capacity() != 42 {
		t.Errorf("Capacity = %d, want 42", s.Capacity())
	}
}
