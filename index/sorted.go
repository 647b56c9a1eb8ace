// Package index provides the per-strategy sorted lookup structure the
// fuzzy matcher probes with DFA successor walks. Each strategy owns
// one Sorted: a deterministic transform maps
// every full dictionary name into a bucket key, and the set of distinct
// bucket keys is kept sorted under codepoint order for binary-search
// "ceil" probes.
package index

import "sort"

// Sorted maps transformed keys back to the set of full dictionary names
// that produced them, and keeps the distinct transformed keys sorted for
// Ceil lookups.
type Sorted struct {
	keys   []string
	toFull map[string]map[string]struct{}
}

// NewSorted returns an empty Sorted index.
// Callers add (key, fullName) entries with Add and must call Freeze once before using
// Ceil — Freeze sorts the accumulated keys exactly once, so bulk
// construction stays O(n log n) rather than O(n^2 log n).
func NewSorted() *Sorted {
	return &Sorted{toFull: make(map[string]map[string]struct{})}
}

// Add records that fullName maps to key under this index's transform.
func (s *Sorted) Add(key, fullName string) {
	bucket, ok := s.toFull[key]
	if !ok {
		bucket = make(map[string]struct{})
		s.toFull[key] = bucket
		s.keys = append(s.keys, key)
	}
	bucket[fullName] = struct{}{}
}

// Freeze sorts the accumulated distinct keys. Must be called once after
// all Add calls and before any Ceil call.
func (s *Sorted) Freeze() {
	sort.Strings(s.keys)
}

// Ceil returns the smallest transformed key >= w, or ok=false if none
// exists.
func (s *Sorted) Ceil(w string) (string, bool) {
	i := sort.SearchStrings(s.keys, w)
	if i >= len(s.keys) {
		return "", false
	}
	return s.keys[i], true
}

// FullNames returns the set of full dictionary names that transform to
// key, or nil if key is not present.
func (s *Sorted) FullNames(key string) map[string]struct{} {
	return s.toFull[key]
}

// Len returns the number of distinct transformed keys in the index.
func (s *Sorted) Len() int {
	return len(s.keys)
}
