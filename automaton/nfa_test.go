package automaton

import "testing"

func TestToDFATieBreakLabelledOverDefault(t *testing.T) {
	// s0 --'a'--> s1 (final), s0 --ANY--> s2 (not final)
	nfa := NewNFA(0)
	nfa.AddTransition(0, 'a', 1)
	nfa.AddTransition(0, Any, 2)
	nfa.AddFinal(1)

	dfa := nfa.ToDFA()
	if !dfa.Accepts([]rune("a")) {
		t.Error("expected labelled edge for 'a' to be taken over the default")
	}
	if dfa.Accepts([]rune("b")) {
		t.Error("expected 'b' to fall through the default to a non-final state")
	}
}

func TestEpsilonClosureReachesFinalThroughEpsilon(t *testing.T) {
	nfa := NewNFA(0)
	nfa.AddTransition(0, Epsilon, 1)
	nfa.AddFinal(1)

	dfa := nfa.ToDFA()
	if !dfa.Accepts(nil) {
		t.Error("expected the empty string to be accepted via an epsilon-only path")
	}
}
