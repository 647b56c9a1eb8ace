package index

import (
	"sync/atomic"

	"github.com/globalnames/taxamatch/automaton"
)

// Intersect enumerates every key accepted by dfa that is also present in
// idx, in lexicographic order, without scanning idx. For each candidate
// key present in both, accept is called to apply the edit-budget
// verifier and any data-source filter; only keys for which accept
// returns true are emitted.
//
// probes, if non-nil, is incremented once per Ceil call — an
// observability counter with no semantic effect on the result.
func Intersect(dfa *automaton.DFA, idx *Sorted, probes *int64, accept func(key string) bool) []string {
	var out []string

	m, ok := dfa.NextValidString([]rune{0})
	for ok {
		if probes != nil {
			atomic.AddInt64(probes, 1)
		}
		n, found := idx.Ceil(string(m))
		if !found {
			break
		}
		if n == string(m) {
			if accept(n) {
				out = append(out, n)
			}
			m, ok = dfa.NextValidString(append([]rune(n), 0))
		} else {
			m, ok = dfa.NextValidString([]rune(n))
		}
	}
	return out
}
