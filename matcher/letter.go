package matcher

import "strings"

// VerifyLetter reports whether q's genus is abbreviated to a single
// initial followed by a period, e.g. "H. sapiens".
func VerifyLetter(q string) bool {
	parts := strings.SplitN(strings.TrimSpace(q), " ", 2)
	first := parts[0]
	return len(first) == 2 && first[1] == '.'
}

// SplitLetterBucket splits a full name into its first-letter bucket
// key and the remainder of the name: the Letter strategy groups
// dictionary entries by the lowercased first character of their
// genus, then delegates the rest of the name to a nested Finder. ok
// is false for single-word names, which have no remainder to delegate.
func SplitLetterBucket(full string) (letter, rest string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	if len(parts) < 2 || parts[0] == "" {
		return "", "", false
	}
	return strings.ToLower(parts[0][:1]), parts[1], true
}

// QueryLetterAndRest splits a query the same way SplitLetterBucket
// splits a dictionary name, for use once VerifyLetter(q) holds.
func QueryLetterAndRest(q string) (letter, rest string) {
	parts := strings.SplitN(strings.TrimSpace(q), " ", 2)
	letter = strings.ToLower(strings.TrimSuffix(parts[0], "."))
	if len(parts) == 2 {
		rest = parts[1]
	}
	return letter, rest
}
