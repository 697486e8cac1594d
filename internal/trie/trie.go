// Package trie implements a 26-ary prefix index over song titles and
// artist names. Keys are case-folded to [a-z] on insertion and lookup;
// every other rune is skipped rather than rejected, so "Señorita" folds
// to "seorita" instead of failing to insert.
//
// search_prefix intentionally returns only the list attached to the
// prefix's own terminal node, not every ID reachable beneath it in the
// subtree. That duality exists in the C original; this is the simple
// half of it, and the half the manager's search actually uses.
package trie

type node struct {
	children [26]*node
	terminal bool
	songIDs  []int64
}

// Trie is a case-folded, alphabetic-only prefix index.
type Trie struct {
	root *node
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert walks or creates the path spelled by key's letters and prepends
// song_id to the terminal node's list. Duplicate (key, song_id) pairs are
// preserved, not deduplicated.
func (t *Trie) Insert(key string, songID int64) {
	n := t.root
	for _, r := range key {
		idx, ok := foldIndex(r)
		if !ok {
			continue
		}
		if n.children[idx] == nil {
			n.children[idx] = &node{}
		}
		n = n.children[idx]
	}

	n.terminal = true
	n.songIDs = append([]int64{songID}, n.songIDs...)
}

// SearchPrefix walks the path spelled by prefix's letters and returns the
// ID list attached to the terminal node reached. A prefix that exists in
// the trie only as an interior node (no insertion ended exactly there)
// returns an empty result, even if longer words extend it.
func (t *Trie) SearchPrefix(prefix string) []int64 {
	n := t.root
	for _, r := range prefix {
		idx, ok := foldIndex(r)
		if !ok {
			continue
		}
		if n.children[idx] == nil {
			return nil
		}
		n = n.children[idx]
	}
	return n.songIDs
}

// foldIndex lowercases r and maps it to 0-25, reporting false for any
// rune outside [A-Za-z].
func foldIndex(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	default:
		return 0, false
	}
}
