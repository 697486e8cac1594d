// Package queue implements the playback queue as a circular doubly linked
// list with a "current" cursor. Nodes are addressed by an opaque *Entry
// handle so callers can relocate or remove a specific occurrence in O(1)
// without a second traversal.
//
// The circularity is purely navigational: the Queue is the sole owner of
// its entries and the garbage collector reclaims them on Remove, the way
// entry->next/entry->prev only ever describe position, never ownership.
package queue

// Entry is one occurrence of a song in the queue. Two entries may carry
// the same SongID; identity is the pointer, not the ID.
type Entry struct {
	SongID int64

	next *Entry
	prev *Entry
}

// Queue is a circular doubly linked list with a playback cursor.
type Queue struct {
	head    *Entry
	tail    *Entry
	current *Entry
	size    int
}

// New creates an empty playback queue.
func New() *Queue {
	return &Queue{}
}

// Len returns the number of entries in the queue.
func (q *Queue) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool {
	return q.size == 0
}

// Current returns the entry under the playback cursor, or nil if the queue
// is empty.
func (q *Queue) Current() *Entry {
	return q.current
}

// InsertEnd appends a new entry for songID after the tail and returns it.
// If the queue was empty the new entry becomes head, tail and current all
// at once, linked to itself.
func (q *Queue) InsertEnd(songID int64) *Entry {
	e := &Entry{SongID: songID}

	if q.head == nil {
		e.next = e
		e.prev = e
		q.head = e
		q.tail = e
		q.current = e
	} else {
		e.prev = q.tail
		e.next = q.head
		q.tail.next = e
		q.head.prev = e
		q.tail = e
	}

	q.size++
	return e
}

// Remove unlinks e from the queue. It returns false when e is nil or the
// queue is empty; removing the last entry leaves the queue empty with a
// nil cursor.
func (q *Queue) Remove(e *Entry) bool {
	if e == nil || q.size == 0 {
		return false
	}

	if q.size == 1 {
		q.head = nil
		q.tail = nil
		q.current = nil
	} else {
		e.prev.next = e.next
		e.next.prev = e.prev

		if q.head == e {
			q.head = e.next
		}
		if q.tail == e {
			q.tail = e.prev
		}
		if q.current == e {
			q.current = e.next
		}
	}

	e.next = nil
	e.prev = nil
	q.size--
	return true
}

// MoveUp swaps e with its predecessor by re-linking, not by copying the
// song ID between nodes. It is a no-op when fewer than two entries exist.
func (q *Queue) MoveUp(e *Entry) bool {
	if e == nil || q.size < 2 {
		return false
	}

	// A 2-entry ring is its own predecessor's predecessor: e and prev
	// are each other's only neighbor in both directions, so swapping
	// them changes nothing about next/prev, only which one is head.
	if q.size == 2 {
		prev := e.prev
		if q.head == prev {
			q.head, q.tail = e, prev
		} else {
			q.head, q.tail = prev, e
		}
		return true
	}

	prev := e.prev
	pPrev := prev.prev
	next := e.next

	pPrev.next = e
	e.prev = pPrev
	e.next = prev
	prev.prev = e
	prev.next = next
	next.prev = prev

	switch q.head {
	case prev:
		q.head = e
	case e:
		q.head = prev
	}

	switch q.tail {
	case e:
		q.tail = prev
	case prev:
		q.tail = e
	}

	return true
}

// MoveDown is defined as moving e's successor up. On a circular list this
// means moving the tail "down" relocates it just before the head.
func (q *Queue) MoveDown(e *Entry) bool {
	if e == nil || q.size < 2 {
		return false
	}
	return q.MoveUp(e.next)
}

// Rotate shifts the head/tail window over the ring by one link without
// touching the ring itself. It is a no-op when fewer than two entries
// exist.
func (q *Queue) Rotate(forward bool) {
	if q.size < 2 {
		return
	}
	if forward {
		q.head = q.head.next
		q.tail = q.tail.next
	} else {
		q.head = q.head.prev
		q.tail = q.tail.prev
	}
}

// SkipNext advances the cursor to the next entry and returns the song ID
// the cursor moved away from. It fails only when the queue is empty.
func (q *Queue) SkipNext() (oldSongID int64, ok bool) {
	if q.current == nil {
		return 0, false
	}
	old := q.current.SongID
	q.current = q.current.next
	return old, true
}

// SkipPrev advances the cursor to the previous entry and returns the song
// ID the cursor moved away from. It fails only when the queue is empty.
func (q *Queue) SkipPrev() (oldSongID int64, ok bool) {
	if q.current == nil {
		return 0, false
	}
	old := q.current.SongID
	q.current = q.current.prev
	return old, true
}

// Next returns e's circular successor. It is stable even for a
// singleton queue, where e.next == e.
func (q *Queue) Next(e *Entry) *Entry {
	if e == nil {
		return nil
	}
	return e.next
}

// Prev returns e's circular predecessor.
func (q *Queue) Prev(e *Entry) *Entry {
	if e == nil {
		return nil
	}
	return e.prev
}

// FindByID scans from head and returns the first entry carrying songID
// along with its zero-based position. Duplicates are not disambiguated:
// this is an accepted O(n) trade for a structure edited far more often
// than it is searched by ID.
func (q *Queue) FindByID(songID int64) (*Entry, int) {
	if q.size == 0 {
		return nil, -1
	}

	cur := q.head
	for i := 0; i < q.size; i++ {
		if cur.SongID == songID {
			return cur, i
		}
		cur = cur.next
	}
	return nil, -1
}

// Snapshot returns the queue's song IDs in traversal order starting at
// head. It never relies on a terminator; it stops after exactly Len()
// steps around the ring.
func (q *Queue) Snapshot() []int64 {
	ids := make([]int64, 0, q.size)
	if q.size == 0 {
		return ids
	}

	cur := q.head
	for i := 0; i < q.size; i++ {
		ids = append(ids, cur.SongID)
		cur = cur.next
	}
	return ids
}
