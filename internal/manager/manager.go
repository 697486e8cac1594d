// Package manager implements the coordination layer that composes the
// playback queue, popularity heap, search tries, operation stacks and
// upcoming buffer into the engine's single public facade. It is the only
// permissible mutator of those substructures; every exported method here
// keeps them mutually consistent or leaves them exactly as it found them.
package manager

import (
	"github.com/rina-voss/soundqueue/internal/heap"
	"github.com/rina-voss/soundqueue/internal/opstack"
	"github.com/rina-voss/soundqueue/internal/queue"
	"github.com/rina-voss/soundqueue/internal/trie"
	"github.com/rina-voss/soundqueue/internal/upcoming"
)

// NoSong is the sentinel song ID returned by CurrentSong when the queue
// is empty.
const NoSong int64 = -1

// Manager is the engine's public facade. The zero value is not usable;
// construct one with New.
type Manager struct {
	queue      *queue.Queue
	popularity *heap.Heap
	titles     *trie.Trie
	artists    *trie.Trie
	undo       *opstack.Stack
	redo       *opstack.Stack
	upcoming   *upcoming.Buffer
}

// New creates a Manager whose popularity index tracks at most
// heapCapacity distinct song IDs. It fails only when heapCapacity is not
// positive.
func New(heapCapacity int) (*Manager, bool) {
	h := heap.New(heapCapacity)
	if h == nil {
		return nil, false
	}
	return &Manager{
		queue:      queue.New(),
		popularity: h,
		titles:     trie.New(),
		artists:    trie.New(),
		undo:       opstack.New(),
		redo:       opstack.New(),
		upcoming:   upcoming.New(),
	}, true
}

// AddSong inserts songID at the tail of the queue, indexes title and
// artist for prefix search, and folds likes/plays into the popularity
// score 2*likes + plays. It returns false only if the queue insert
// itself fails, which the in-memory CDLL never does; the check exists so
// a future allocator-bound implementation stays a drop-in.
func (m *Manager) AddSong(songID int64, title, artist string, likes, plays int) bool {
	entry := m.queue.InsertEnd(songID)
	if entry == nil {
		return false
	}

	m.titles.Insert(title, songID)
	m.artists.Insert(artist, songID)

	priority := popularityScore(likes, plays)
	m.popularity.UpdatePriority(songID, priority)

	m.undo.Push(opstack.Operation{
		Kind:        opstack.KindAdd,
		SongID:      songID,
		OldPosition: m.queue.Len() - 1,
		OldPriority: priority,
	})
	m.redo.Clear()
	return true
}

// RemoveSong unlinks the first queue occurrence of songID. The trie and
// popularity index are left untouched: the popularity index survives a
// song's removal from the queue because it tracks historical standing,
// not queue membership. It returns false when songID is not queued.
func (m *Manager) RemoveSong(songID int64) bool {
	entry, position := m.queue.FindByID(songID)
	if entry == nil {
		return false
	}

	if !m.queue.Remove(entry) {
		return false
	}

	m.undo.Push(opstack.Operation{
		Kind:        opstack.KindRemove,
		SongID:      songID,
		OldPosition: position,
	})
	m.redo.Clear()
	return true
}

// SkipNext advances the playback cursor forward by one link. It returns
// false only when the queue is empty.
func (m *Manager) SkipNext() bool {
	oldID, ok := m.queue.SkipNext()
	if !ok {
		return false
	}
	m.undo.Push(opstack.Operation{Kind: opstack.KindSkip, SongID: oldID})
	m.redo.Clear()
	return true
}

// SkipPrev advances the playback cursor backward by one link. It returns
// false only when the queue is empty.
func (m *Manager) SkipPrev() bool {
	oldID, ok := m.queue.SkipPrev()
	if !ok {
		return false
	}
	m.undo.Push(opstack.Operation{Kind: opstack.KindSkip, SongID: oldID})
	m.redo.Clear()
	return true
}

// MoveUp swaps songID's first queue occurrence with its predecessor. It
// returns false when songID is not queued or fewer than two entries
// exist.
func (m *Manager) MoveUp(songID int64) bool {
	entry, _ := m.queue.FindByID(songID)
	if entry == nil || !m.queue.MoveUp(entry) {
		return false
	}
	m.undo.Push(opstack.Operation{Kind: opstack.KindMoveUp, SongID: songID})
	m.redo.Clear()
	return true
}

// MoveDown swaps songID's first queue occurrence with its successor. It
// returns false when songID is not queued or fewer than two entries
// exist.
func (m *Manager) MoveDown(songID int64) bool {
	entry, _ := m.queue.FindByID(songID)
	if entry == nil || !m.queue.MoveDown(entry) {
		return false
	}
	m.undo.Push(opstack.Operation{Kind: opstack.KindMoveDown, SongID: songID})
	m.redo.Clear()
	return true
}

// RotateQueue shifts the head/tail window over the ring by one link.
// Rotation is not recorded for undo: it changes which entries the window
// exposes, not the ring itself.
func (m *Manager) RotateQueue(forward bool) {
	m.queue.Rotate(forward)
}

// UpdatePriority folds likes/plays into 2*likes + plays and applies it to
// songID's popularity entry, inserting it if unseen. It returns false
// when songID is unseen and the popularity index is already at capacity.
func (m *Manager) UpdatePriority(songID int64, likes, plays int) bool {
	priority := popularityScore(likes, plays)
	if !m.popularity.UpdatePriority(songID, priority) {
		return false
	}
	m.undo.Push(opstack.Operation{Kind: opstack.KindUpdatePriority, SongID: songID})
	m.redo.Clear()
	return true
}

// Undo reverses the most recently recorded operation and pushes it onto
// the redo stack. SKIP and UPDATE_PRIORITY have no recorded prior state
// to restore and are no-ops in the reverse direction. It returns false
// when the undo stack is empty.
func (m *Manager) Undo() bool {
	op, ok := m.undo.Pop()
	if !ok {
		return false
	}

	switch op.Kind {
	case opstack.KindAdd:
		if entry, _ := m.queue.FindByID(op.SongID); entry != nil {
			m.queue.Remove(entry)
		}
	case opstack.KindRemove:
		// Position restoration is a best-effort re-append at the tail;
		// the original insertion point is not tracked.
		m.queue.InsertEnd(op.SongID)
	case opstack.KindMoveUp:
		if entry, _ := m.queue.FindByID(op.SongID); entry != nil {
			m.queue.MoveDown(entry)
		}
	case opstack.KindMoveDown:
		if entry, _ := m.queue.FindByID(op.SongID); entry != nil {
			m.queue.MoveUp(entry)
		}
	case opstack.KindSkip, opstack.KindUpdatePriority:
		// No-op: no prior cursor position or priority was recorded.
	}

	m.redo.Push(op)
	return true
}

// Redo re-executes the most recently undone operation without
// re-recording it on the undo stack directly; it is pushed back once,
// preserving the original record for a subsequent undo. It returns false
// when the redo stack is empty.
func (m *Manager) Redo() bool {
	op, ok := m.redo.Pop()
	if !ok {
		return false
	}

	switch op.Kind {
	case opstack.KindAdd:
		m.queue.InsertEnd(op.SongID)
	case opstack.KindRemove:
		if entry, _ := m.queue.FindByID(op.SongID); entry != nil {
			m.queue.Remove(entry)
		}
	case opstack.KindMoveUp:
		if entry, _ := m.queue.FindByID(op.SongID); entry != nil {
			m.queue.MoveUp(entry)
		}
	case opstack.KindMoveDown:
		if entry, _ := m.queue.FindByID(op.SongID); entry != nil {
			m.queue.MoveDown(entry)
		}
	case opstack.KindSkip, opstack.KindUpdatePriority:
		// No-op, mirroring Undo.
	}

	m.undo.Push(op)
	return true
}

// CurrentSong returns the song ID under the playback cursor, or NoSong
// when the queue is empty.
func (m *Manager) CurrentSong() int64 {
	cur := m.queue.Current()
	if cur == nil {
		return NoSong
	}
	return cur.SongID
}

// QueueSize returns the number of entries currently queued.
func (m *Manager) QueueSize() int {
	return m.queue.Len()
}

// QueueSnapshot returns the queue's song IDs in traversal order starting
// at head.
func (m *Manager) QueueSnapshot() []int64 {
	return m.queue.Snapshot()
}

// Recommendations returns up to limit song IDs in descending priority
// order, leaving the live popularity index untouched.
func (m *Manager) Recommendations(limit int) []int64 {
	top := m.popularity.CopyTopN(limit)
	ids := make([]int64, len(top))
	for i, e := range top {
		ids[i] = e.SongID
	}
	return ids
}

// SearchSongs returns the song IDs indexed under prefix by title.
func (m *Manager) SearchSongs(prefix string) []int64 {
	return m.titles.SearchPrefix(prefix)
}

// SearchArtists returns the song IDs indexed under prefix by artist.
func (m *Manager) SearchArtists(prefix string) []int64 {
	return m.artists.SearchPrefix(prefix)
}

// EnqueueUpcoming appends songID to the prefetch buffer. It has no
// bearing on queue membership or ordering.
func (m *Manager) EnqueueUpcoming(songID int64) {
	m.upcoming.Enqueue(songID)
}

// DequeueUpcoming removes and returns the front of the prefetch buffer.
func (m *Manager) DequeueUpcoming() (int64, bool) {
	return m.upcoming.Dequeue()
}

// PeekUpcoming returns the front of the prefetch buffer without removing it.
func (m *Manager) PeekUpcoming() (int64, bool) {
	return m.upcoming.Peek()
}

// UpcomingLen returns the number of song IDs buffered for prefetch.
func (m *Manager) UpcomingLen() int {
	return m.upcoming.Len()
}

func popularityScore(likes, plays int) float64 {
	return float64(2*likes + plays)
}
