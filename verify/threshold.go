// Package verify implements the per-word-part edit-budget post-filter
// that every matcher strategy applies to a candidate key surfaced by
// the automaton/index intersection walk. The DFA already
// bounds total edit distance to 2; this verifier additionally requires
// each word part to stay within a budget scaled by that part's length,
// and handles queries and candidates with differing word-part counts by
// trying every way of gluing the extra parts together.
package verify

// Levenshtein computes the classical edit distance between a and b.
func Levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	if len(ar) == 0 {
		return len(br)
	}
	prev := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, ca := range ar {
		cur := make([]int, len(br)+1)
		cur[0] = i + 1
		for j, cb := range br {
			cost := 1
			if ca == cb {
				cost = 0
			}
			insertions := prev[j+1] + 1
			deletions := cur[j] + 1
			substitutions := prev[j] + cost
			m := insertions
			if deletions < m {
				m = deletions
			}
			if substitutions < m {
				m = substitutions
			}
			cur[j+1] = m
		}
		prev = cur
	}
	return prev[len(br)]
}

// Budget returns the number of edits allowed for a word part of the
// given (input) length.
func Budget(partLen int) int {
	switch {
	case partLen < 6:
		return 0
	case partLen < 11:
		return 1
	default:
		return 2
	}
}

// MatchingThreshold reports whether candidate c is an acceptable match
// for query q under the per-part edit budget. The budget for each
// aligned part is always computed from q's part length, even when q
// and c have different lengths at that position — this asymmetry is
// intentional, not an oversight.
func MatchingThreshold(q, c string) bool {
	qParts := splitParts(q)
	cParts := splitParts(c)

	if len(qParts) == len(cParts) {
		spaceEdits := make([]int, len(qParts))
		return helper(qParts, cParts, spaceEdits)
	}

	longParts, shortParts := qParts, cParts
	queryIsLong := true
	if len(cParts) > len(qParts) {
		longParts, shortParts = cParts, qParts
		queryIsLong = false
	}

	for _, split := range partitions(len(longParts)-1, len(shortParts)-1) {
		glued, spaceEdits := glue(longParts, split)
		var qGlued, cGlued []string
		if queryIsLong {
			qGlued, cGlued = glued, shortParts
		} else {
			qGlued, cGlued = shortParts, glued
		}
		if helper(qGlued, cGlued, spaceEdits) {
			return true
		}
	}
	return false
}

// helper checks already part-aligned slices, charging each position's
// spaceEdits[i] (extra edits from folding multiple parts together)
// against that position's budget.
func helper(qParts, cParts []string, spaceEdits []int) bool {
	if len(qParts) != len(cParts) || len(qParts) != len(spaceEdits) {
		panic("verify: mismatched part/space-edit counts")
	}
	for i := range qParts {
		budget := Budget(len(qParts[i]))
		actual := Levenshtein(qParts[i], cParts[i])
		if actual+spaceEdits[i] > budget {
			return false
		}
	}
	return true
}

// partitions enumerates every way to choose k integers from
// {0, ..., n-1} in increasing order — i.e. every way to choose
// |short|-1 split points among |long|-1 internal gaps. Each result
// names the index, within longParts, of the last part belonging to
// each of the first k groups (the last group takes the rest); see glue.
func partitions(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	comb := make([]int, k)
	for i := range comb {
		comb[i] = i
	}
	for {
		out = append(out, append([]int(nil), comb...))
		i := k - 1
		for i >= 0 && comb[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		comb[i]++
		for j := i + 1; j < k; j++ {
			comb[j] = comb[j-1] + 1
		}
	}
	return out
}

// glue concatenates longParts into len(split)+1 contiguous groups, the
// split points being the gap indices in split (each in [0, len(longParts)-2]).
// It returns the glued groups and, for each group, the number of spaces
// removed forming it (group size - 1) — charged against that group's
// edit budget as a space edit.
func glue(longParts []string, split []int) ([]string, []int) {
	groups := make([]string, 0, len(split)+1)
	spaceEdits := make([]int, 0, len(split)+1)

	start := 0
	for _, gap := range split {
		end := gap + 1 // gap is an internal-gap index; parts[start:end] form one group
		groups = append(groups, joinParts(longParts[start:end]))
		spaceEdits = append(spaceEdits, end-start-1)
		start = end
	}
	groups = append(groups, joinParts(longParts[start:]))
	spaceEdits = append(spaceEdits, len(longParts)-start-1)

	return groups, spaceEdits
}

func joinParts(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
}

func splitParts(s string) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if r == ' ' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}
