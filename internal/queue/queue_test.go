package queue

import "testing"

func TestNew(t *testing.T) {
	q := New()

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() should be true for a fresh queue")
	}
	if q.Current() != nil {
		t.Error("Current() should be nil for a fresh queue")
	}
}

func TestInsertEnd_FirstEntryIsSelfLinked(t *testing.T) {
	q := New()
	e := q.InsertEnd(1)

	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	if q.Current() != e {
		t.Error("Current() should be the sole entry")
	}
	if q.Next(e) != e || q.Prev(e) != e {
		t.Error("a singleton entry should link to itself in both directions")
	}
}

func TestInsertEnd_Circularity(t *testing.T) {
	q := New()
	q.InsertEnd(1)
	q.InsertEnd(2)
	q.InsertEnd(3)

	if got := q.Snapshot(); !equalIDs(got, []int64{1, 2, 3}) {
		t.Fatalf("Snapshot() = %v, want [1 2 3]", got)
	}

	start := q.Current()
	cur := start
	for i := 0; i < 3; i++ {
		_, ok := q.SkipNext()
		if !ok {
			t.Fatalf("SkipNext() failed on step %d", i)
		}
		cur = q.Current()
	}
	if cur != start {
		t.Error("three skips around a 3-entry circular queue should return to the start")
	}
}

func TestRemove_NilIsFalse(t *testing.T) {
	q := New()
	if q.Remove(nil) {
		t.Error("Remove(nil) should return false")
	}
}

func TestRemove_LastEntryClearsPointers(t *testing.T) {
	q := New()
	e := q.InsertEnd(1)
	if !q.Remove(e) {
		t.Fatal("Remove() should succeed")
	}
	if q.Len() != 0 || q.Current() != nil {
		t.Error("removing the only entry should empty the queue")
	}
}

func TestRemove_HeadTailCurrentReassignment(t *testing.T) {
	q := New()
	a := q.InsertEnd(1)
	b := q.InsertEnd(2)
	q.InsertEnd(3)

	if !q.Remove(a) {
		t.Fatal("Remove(a) should succeed")
	}
	if got := q.Snapshot(); !equalIDs(got, []int64{2, 3}) {
		t.Fatalf("Snapshot() = %v, want [2 3]", got)
	}
	if q.Current() != b {
		t.Error("removing the current head should advance current to its successor")
	}
}

func TestMoveUpMoveDown_Scenario(t *testing.T) {
	q := New()
	q.InsertEnd(1)
	q.InsertEnd(2)
	three := q.InsertEnd(3)

	q.MoveUp(three)
	if got := q.Snapshot(); !equalIDs(got, []int64{1, 3, 2}) {
		t.Fatalf("after first MoveUp: Snapshot() = %v, want [1 3 2]", got)
	}

	q.MoveUp(three)
	if got := q.Snapshot(); !equalIDs(got, []int64{3, 1, 2}) {
		t.Fatalf("after second MoveUp: Snapshot() = %v, want [3 1 2]", got)
	}

	q.MoveDown(three)
	if got := q.Snapshot(); !equalIDs(got, []int64{1, 3, 2}) {
		t.Fatalf("after MoveDown: Snapshot() = %v, want [1 3 2]", got)
	}
}

func TestMoveUp_TwoEntrySwap(t *testing.T) {
	q := New()
	a := q.InsertEnd(1)
	b := q.InsertEnd(2)

	if !q.MoveUp(b) {
		t.Fatal("MoveUp(b) should succeed on a 2-entry queue")
	}
	if got := q.Snapshot(); !equalIDs(got, []int64{2, 1}) {
		t.Fatalf("Snapshot() = %v, want [2 1]", got)
	}
	if q.Next(b) != a || q.Prev(b) != a || q.Next(a) != b || q.Prev(a) != b {
		t.Error("a 2-entry ring's links should be unchanged by the swap, only head/tail move")
	}

	if !q.MoveUp(a) {
		t.Fatal("MoveUp(a) should succeed again")
	}
	if got := q.Snapshot(); !equalIDs(got, []int64{1, 2}) {
		t.Fatalf("Snapshot() = %v, want [1 2]", got)
	}
}

func TestMoveUp_NoOpBelowTwoEntries(t *testing.T) {
	q := New()
	e := q.InsertEnd(1)
	if q.MoveUp(e) {
		t.Error("MoveUp on a singleton queue should be a no-op returning false")
	}
}

func TestRotate_ShiftsWindowNotRing(t *testing.T) {
	q := New()
	q.InsertEnd(1)
	q.InsertEnd(2)
	q.InsertEnd(3)

	q.Rotate(true)
	if got := q.Snapshot(); !equalIDs(got, []int64{2, 3, 1}) {
		t.Fatalf("Snapshot() after forward rotate = %v, want [2 3 1]", got)
	}

	q.Rotate(false)
	if got := q.Snapshot(); !equalIDs(got, []int64{1, 2, 3}) {
		t.Fatalf("Snapshot() after backward rotate = %v, want [1 2 3]", got)
	}
}

func TestFindByID_FirstOccurrenceAndPosition(t *testing.T) {
	q := New()
	q.InsertEnd(5)
	dup := q.InsertEnd(7)
	q.InsertEnd(7)

	e, pos := q.FindByID(7)
	if e != dup || pos != 1 {
		t.Errorf("FindByID(7) = (%v, %d), want the first match at position 1", e, pos)
	}

	if e, pos := q.FindByID(99); e != nil || pos != -1 {
		t.Errorf("FindByID(99) = (%v, %d), want (nil, -1)", e, pos)
	}
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
