package automaton

import "testing"

// bruteLevenshtein is a reference O(n*m) edit-distance implementation
// used only by tests, independent of the automaton machinery it checks.
func bruteLevenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur := make([]int, len(b)+1)
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev = cur
	}
	return prev[len(b)]
}

// TestLevenshteinDFAAcceptsMatchesBruteForce checks that the k=2 DFA
// accepts s iff edit distance(term, s) <= 2, for every
// candidate within a small alphabet neighborhood of the term.
func TestLevenshteinDFAAcceptsMatchesBruteForce(t *testing.T) {
	term := []rune("tellina")
	dfa := BuildLevenshtein(term, 2).ToDFA()

	alphabet := []rune("abcdeilnrst")
	candidates := []string{
		"tellina", "telina", "tellna", "telna", "tellinaa", "tellinaaa",
		"atellina", "tellino", "tellimo", "xxxxxxx", "telli", "tellinas",
	}
	for _, alpha := range alphabet {
		candidates = append(candidates, "tellin"+string(alpha))
	}

	for _, c := range candidates {
		got := dfa.Accepts([]rune(c))
		want := bruteLevenshtein(term, []rune(c)) <= 2
		if got != want {
			t.Errorf("Accepts(%q) = %v, want %v (edit distance check)", c, got, want)
		}
	}
}

func TestLevenshteinDFAExactMatch(t *testing.T) {
	dfa := BuildLevenshtein([]rune("cat"), 2).ToDFA()
	if !dfa.Accepts([]rune("cat")) {
		t.Error("expected exact match to be accepted")
	}
}

func TestLevenshteinDFARejectsFarStrings(t *testing.T) {
	dfa := BuildLevenshtein([]rune("cat"), 2).ToDFA()
	if dfa.Accepts([]rune("elephant")) {
		t.Error("expected distant string to be rejected")
	}
}
