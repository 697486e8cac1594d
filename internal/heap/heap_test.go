package heap

import "testing"

func TestNew_InvalidCapacity(t *testing.T) {
	if New(0) != nil {
		t.Error("New(0) should return nil")
	}
	if New(-1) != nil {
		t.Error("New(-1) should return nil")
	}
}

func TestInsertAndPeek(t *testing.T) {
	h := New(4)
	if !h.Insert(1, 5.0) {
		t.Fatal("Insert should succeed under capacity")
	}
	if !h.Insert(2, 9.0) {
		t.Fatal("Insert should succeed under capacity")
	}

	top, ok := h.Peek()
	if !ok || top.SongID != 2 || top.Priority != 9.0 {
		t.Errorf("Peek() = %+v, want song 2 at priority 9.0", top)
	}
}

func TestInsert_CapacityExhausted(t *testing.T) {
	h := New(1)
	if !h.Insert(1, 1.0) {
		t.Fatal("first insert should succeed")
	}
	if h.Insert(2, 1.0) {
		t.Error("insert past capacity should fail")
	}
}

func TestExtractMax_EmptySentinel(t *testing.T) {
	h := New(2)
	e, ok := h.ExtractMax()
	if ok {
		t.Fatal("ExtractMax on empty heap should report false")
	}
	if e.SongID != -1 || e.Priority != -1.0 {
		t.Errorf("ExtractMax() sentinel = %+v, want {-1 -1.0}", e)
	}
}

func TestUpdatePriority_HeapOrderingScenario(t *testing.T) {
	h := New(8)
	h.UpdatePriority(10, 3*2+4) // 10
	h.UpdatePriority(11, 1*2+2) // 4
	h.UpdatePriority(12, 10*2+0) // 20

	got := extractAllIDs(h.CopyTopN(3))
	want := []int64{12, 10, 11}
	if !equalIDs(got, want) {
		t.Errorf("CopyTopN(3) = %v, want %v", got, want)
	}
}

func TestUpdatePriority_UnseenIDInserts(t *testing.T) {
	h := New(4)
	if !h.UpdatePriority(1, 5.0) {
		t.Fatal("UpdatePriority on an unseen id should insert")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestUpdatePriority_EqualIsNoOp(t *testing.T) {
	h := New(4)
	h.Insert(1, 5.0)
	h.Insert(2, 5.0)

	if !h.UpdatePriority(2, 5.0) {
		t.Fatal("UpdatePriority should return true for an existing id")
	}
	top, _ := h.Peek()
	if top.SongID != 1 {
		t.Errorf("equal priority update should not disturb tie order, top = %d", top.SongID)
	}
}

func TestCopyTopN_LeavesLiveHeapUntouched(t *testing.T) {
	h := New(4)
	h.Insert(1, 1.0)
	h.Insert(2, 2.0)
	h.Insert(3, 3.0)

	before := h.Len()
	_ = h.CopyTopN(10)
	if h.Len() != before {
		t.Errorf("Len() after CopyTopN = %d, want %d (heap must not be mutated)", h.Len(), before)
	}

	// Calling CopyTopN repeatedly must not perturb the live index either.
	first := extractAllIDs(h.CopyTopN(3))
	second := extractAllIDs(h.CopyTopN(3))
	if !equalIDs(first, second) {
		t.Errorf("CopyTopN results diverged across calls: %v vs %v", first, second)
	}
}

func TestNoDuplicateSongIDs(t *testing.T) {
	h := New(4)
	h.Insert(1, 1.0)
	if h.Insert(1, 99.0) {
		t.Error("Insert should refuse a song ID already tracked by the heap")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func extractAllIDs(entries []Entry) []int64 {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.SongID
	}
	return ids
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
