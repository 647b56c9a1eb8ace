// Package automaton implements the NFA/DFA primitives this module's
// fuzzy matching is built on: a generic non-deterministic automaton over
// single-rune labels with EPSILON and ANY edges, subset construction to
// a deterministic automaton, and a DFA successor walk ("next valid
// string") that couples the DFA with a sorted dictionary to enumerate
// accepted strings without scanning it.
//
// States are identified by a set of NFA states (subset construction);
// the set itself, canonicalized by sorting, is the DFA state's identity
// for memoization purposes.
package automaton

import (
	"sort"

	"github.com/globalnames/taxamatch/internal/sparse"
)

// Epsilon and Any are sentinel labels outside the valid Unicode scalar
// range, so they can never collide with a real transition character.
const (
	Epsilon rune = -1
	Any     rune = -2
)

// StateID identifies a single state within one NFA.
type StateID int

// NFA is a non-deterministic finite automaton over rune labels. Edges
// are stored per source state as label -> destination set. EPSILON edges
// are consumed without reading input; ANY edges match any single
// character, including one that also has a labelled edge from the same
// state (the labelled-over-default tie-break applies only in the DFA).
type NFA struct {
	start    StateID
	final    map[StateID]bool
	trans    map[StateID]map[rune][]StateID
	numStates int
}

// NewNFA creates an empty NFA with the given start state.
func NewNFA(start StateID) *NFA {
	return &NFA{
		start: start,
		final: make(map[StateID]bool),
		trans: make(map[StateID]map[rune][]StateID),
	}
}

// AddTransition registers an edge from src to dest labelled with label,
// which may be a literal rune, Epsilon, or Any.
func (n *NFA) AddTransition(src StateID, label rune, dest StateID) {
	if n.trans[src] == nil {
		n.trans[src] = make(map[rune][]StateID)
	}
	n.trans[src][label] = append(n.trans[src][label], dest)
	n.track(src)
	n.track(dest)
}

// AddFinal marks state as accepting.
func (n *NFA) AddFinal(state StateID) {
	n.final[state] = true
	n.track(state)
}

func (n *NFA) track(s StateID) {
	if int(s)+1 > n.numStates {
		n.numStates = int(s) + 1
	}
}

// epsilonClosure expands a set of states by transitively following
// EPSILON edges, returning the result sorted and deduplicated.
func (n *NFA) epsilonClosure(states []StateID) []StateID {
	seen := sparse.NewSparseSet(n.numStates)
	var frontier []StateID
	for _, s := range states {
		if !seen.Contains(int(s)) {
			seen.Insert(int(s))
			frontier = append(frontier, s)
		}
	}
	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, dest := range n.trans[s][Epsilon] {
			if !seen.Contains(int(dest)) {
				seen.Insert(int(dest))
				frontier = append(frontier, dest)
			}
		}
	}
	values := seen.Values()
	out := make([]StateID, len(values))
	for i, v := range values {
		out[i] = StateID(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// nextState computes the epsilon-closure of the union, over every state
// in states, of edges(s, label) and edges(s, Any) — i.e. a single
// deterministic step of the subset construction.
func (n *NFA) nextState(states []StateID, label rune) []StateID {
	var dest []StateID
	for _, s := range states {
		edges := n.trans[s]
		if edges == nil {
			continue
		}
		dest = append(dest, edges[label]...)
		if label != Any {
			dest = append(dest, edges[Any]...)
		}
	}
	if len(dest) == 0 {
		return nil
	}
	return n.epsilonClosure(dest)
}

// isFinal reports whether states intersects the NFA's final states.
func (n *NFA) isFinal(states []StateID) bool {
	for _, s := range states {
		if n.final[s] {
			return true
		}
	}
	return false
}

// inputs returns the distinct non-epsilon labels reachable from states
// in one step (including Any, if any state has a default edge).
func (n *NFA) inputs(states []StateID) []rune {
	seen := make(map[rune]bool)
	var labels []rune
	for _, s := range states {
		for label := range n.trans[s] {
			if label == Epsilon || seen[label] {
				continue
			}
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}
