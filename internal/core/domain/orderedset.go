package domain

import "strings"

// OrderedSet is a string set that remembers insertion order. Membership
// is decided by a caller-supplied canonical form, so hashtag dedup can
// be case-insensitive while the stored values keep their original
// spelling. The zero value is not usable; call NewOrderedSet.
type OrderedSet struct {
	items []string
	seen  map[string]bool
	key   func(string) string
}

// NewOrderedSet creates an ordered set. key canonicalises values for
// membership checks; nil means exact match.
func NewOrderedSet(key func(string) string) *OrderedSet {
	if key == nil {
		key = func(s string) string { return s }
	}
	return &OrderedSet{seen: make(map[string]bool), key: key}
}

// FoldKey canonicalises by lowercasing. Handy for case-insensitive sets.
func FoldKey(s string) string { return strings.ToLower(s) }

// Add inserts v if its canonical form is unseen. Returns true when the
// value was inserted.
func (s *OrderedSet) Add(v string) bool {
	k := s.key(v)
	if s.seen[k] {
		return false
	}
	s.seen[k] = true
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v's canonical form is present.
func (s *OrderedSet) Contains(v string) bool {
	return s.seen[s.key(v)]
}

// Len returns the number of stored values.
func (s *OrderedSet) Len() int { return len(s.items) }

// Items returns the stored values in insertion order. The returned
// slice is a copy.
func (s *OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Take returns up to n values in insertion order.
func (s *OrderedSet) Take(n int) []string {
	if n > len(s.items) {
		n = len(s.items)
	}
	out := make([]string, n)
	copy(out, s.items[:n])
	return out
}
