// Package upcoming implements the prefetch buffer: a plain FIFO of song
// IDs that the manager exposes but never reads from itself. Callers use
// it purely as a hint channel for prefetching, independent of playback
// queue semantics.
package upcoming

// Buffer is a FIFO of song IDs.
type Buffer struct {
	ids []int64
	// head is the index of the next ID to dequeue; ids[:head] is spent
	// and reclaimed on Dequeue once the slice grows past a handful of
	// stale entries, so the buffer never grows unbounded under steady
	// enqueue/dequeue traffic.
	head int
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Enqueue appends songID to the back of the buffer. O(1) amortized.
func (b *Buffer) Enqueue(songID int64) {
	b.ids = append(b.ids, songID)
}

// Dequeue removes and returns the front song ID. ok is false when the
// buffer is empty.
func (b *Buffer) Dequeue() (int64, bool) {
	if b.head >= len(b.ids) {
		return 0, false
	}
	id := b.ids[b.head]
	b.head++

	if b.head == len(b.ids) {
		b.ids = b.ids[:0]
		b.head = 0
	} else if b.head > 16 && b.head*2 > len(b.ids) {
		b.ids = append(b.ids[:0], b.ids[b.head:]...)
		b.head = 0
	}
	return id, true
}

// Peek returns the front song ID without removing it.
func (b *Buffer) Peek() (int64, bool) {
	if b.head >= len(b.ids) {
		return 0, false
	}
	return b.ids[b.head], true
}

// IsEmpty reports whether the buffer holds no song IDs.
func (b *Buffer) IsEmpty() bool {
	return b.head >= len(b.ids)
}

// Len returns the number of song IDs currently buffered.
func (b *Buffer) Len() int {
	return len(b.ids) - b.head
}

// Clear discards every buffered song ID.
func (b *Buffer) Clear() {
	b.ids = b.ids[:0]
	b.head = 0
}
