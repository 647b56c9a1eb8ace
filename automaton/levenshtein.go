package automaton

// BuildLevenshtein constructs the NFA that accepts exactly the strings
// within edit distance <= k of term. States are pairs
// (i, e) with 0 <= i <= len(term), 0 <= e <= k, encoded as a single
// StateID = i*(k+1) + e so the automaton package's StateID-indexed
// machinery can be reused unchanged.
//
// Edges, for each position i < len(term) (exact for every e, the other
// three only for error budget e < k):
//   - exact:         (i,e) --term[i]--> (i+1,e)
//   - deletion:      (i,e) --ANY-->     (i,  e+1)
//   - insertion:     (i,e) --EPS-->     (i+1,e+1)
//   - substitution:  (i,e) --ANY-->     (i+1,e+1)
//
// plus trailing-error padding (n,e) --ANY--> (n,e+1) for e<k, and every
// (n,e) is final.
func BuildLevenshtein(term []rune, k int) *NFA {
	n := len(term)
	id := func(i, e int) StateID { return StateID(i*(k+1) + e) }

	nfa := NewNFA(id(0, 0))
	for i := 0; i <= n; i++ {
		for e := 0; e <= k; e++ {
			if i < n {
				nfa.AddTransition(id(i, e), term[i], id(i+1, e))
			}
			if e < k {
				if i < n {
					nfa.AddTransition(id(i, e), Any, id(i, e+1))
					nfa.AddTransition(id(i, e), Epsilon, id(i+1, e+1))
					nfa.AddTransition(id(i, e), Any, id(i+1, e+1))
				} else {
					nfa.AddTransition(id(i, e), Any, id(i, e+1))
				}
			}
		}
	}
	for e := 0; e <= k; e++ {
		nfa.AddFinal(id(n, e))
	}
	return nfa
}
