// Package stemmer implements the deterministic Latin suffix stripper
// used by the stemmed matching strategy. It has no exceptions that
// depend on context beyond the word itself: the same input always
// produces the same (stem, suffix) pair.
package stemmer

import "strings"

// queExceptions lists words ending in "que" that are not the enclitic
// conjunction "-que" and must not be stripped.
var queExceptions = map[string]bool{
	"atque": true, "quoque": true, "neque": true, "itaque": true, "absque": true,
	"apsque": true, "abusque": true, "adaeque": true, "adusque": true, "denique": true,
	"deque": true, "susque": true, "oblique": true, "peraeque": true, "plenisque": true,
	"quandoque": true, "quisque": true, "quaeque": true, "cuiusque": true, "cuique": true,
	"quemque": true, "quamque": true, "quaque": true, "quique": true, "quorumque": true,
	"quarumque": true, "quibusque": true, "quosque": true, "quasque": true,
	"quotusquisque": true, "quousque": true, "ubique": true, "undique": true,
	"usque": true, "uterque": true, "utique": true, "utroque": true, "utribique": true,
	"torque": true, "coque": true, "concoque": true, "contorque": true, "detorque": true,
	"decoque": true, "excoque": true, "extorque": true, "obtorque": true, "optorque": true,
	"retorque": true, "recoque": true, "attorque": true, "incoque": true, "intorque": true,
	"praetorque": true,
}

// nounSuffixes is checked in order, longest-first where it matters, so
// "ibus" is stripped before the shorter "us" could otherwise match.
var nounSuffixes = []string{
	"ibus", "ius",
	"ae", "am", "as", "em", "es", "ia", "is", "nt", "os", "ud", "um", "us",
	"a", "e", "i", "o", "u",
}

// fold applies the two Latin orthographic substitutions this module
// performs (j -> i, v -> u); it is also reused by the verbatim and
// genus-only matcher transforms.
func fold(word string) string {
	word = strings.ReplaceAll(word, "j", "i")
	word = strings.ReplaceAll(word, "v", "u")
	return word
}

// Fold exports the orthographic fold step for callers that need it
// without the rest of the stemming pipeline (e.g. the verbatim and
// genus-only strategies).
func Fold(word string) string {
	return fold(word)
}

// Stem reduces word to its Latin noun stem and the suffix that was
// removed, or returns (word, "") if no rule applied. Only the first
// matching suffix in nounSuffixes order is considered: if it fails the
// minimum-remaining-length check, word is returned unstripped rather
// than falling through to a shorter suffix that might otherwise match.
func Stem(word string) (stem, suffix string) {
	word = fold(word)

	if strings.HasSuffix(word, "que") {
		if queExceptions[word] {
			return word, ""
		}
		word = word[:len(word)-3]
	}

	for _, suf := range nounSuffixes {
		if !strings.HasSuffix(word, suf) {
			continue
		}
		if len(word)-len(suf) >= 2 {
			return word[:len(word)-len(suf)], suf
		}
		return word, ""
	}
	return word, ""
}

// StemPhrase stems every word of a space-separated phrase except the
// first, which is the genus and is kept verbatim — lowercased only, not
// orthographically folded ("eury tellina" must not fold its genus the
// way a stemmed part would). A single-word phrase is returned
// lowercased and unstemmed.
func StemPhrase(phrase string) string {
	phrase = strings.ToLower(phrase)
	parts := strings.Split(phrase, " ")
	if len(parts) < 2 {
		return phrase
	}
	out := make([]string, len(parts))
	out[0] = parts[0]
	for i := 1; i < len(parts); i++ {
		stem, _ := Stem(parts[i])
		out[i] = stem
	}
	return strings.Join(out, " ")
}
