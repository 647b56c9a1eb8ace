// Package matcher implements the context-free matcher strategies a
// Finder dispatches a query to: GenusOnly, Stem, and Verbatim. The
// fourth strategy, Letter, recurses into a nested Finder
// per first-character bucket and therefore lives in package finder,
// which already depends on this package for its transform/verify
// helpers and can avoid an import cycle that way.
package matcher

import (
	"strings"

	"github.com/globalnames/taxamatch/automaton"
	"github.com/globalnames/taxamatch/config"
	"github.com/globalnames/taxamatch/index"
	"github.com/globalnames/taxamatch/stemmer"
	"github.com/globalnames/taxamatch/verify"
)

// Dictionary maps a full dictionary name to the set of data-source ids
// it was observed under.
type Dictionary = map[string]map[string]struct{}

// Strategy is the common contract every matcher strategy satisfies:
// Match returns the transformed keys this query's Levenshtein DFA
// accepts and that also pass the edit-budget verifier and data-source
// filter; Lookup expands a transformed key back to the full dictionary
// names that produced it.
type Strategy interface {
	Transform(full string) string
	Match(query string, dataSources map[string]struct{}) []string
	Lookup(key string) map[string]struct{}
}

// fuzzy is the shared implementation behind Stem and Verbatim: both
// build a sorted index of one transform over the dictionary, then run
// the Levenshtein-DFA/sorted-index intersection walk on every query,
// verifying each candidate with the edit-budget threshold and an
// optional data-source filter.
type fuzzy struct {
	transform func(string) string
	idx       *index.Sorted
	dict      Dictionary
	probes    *int64
}

func newFuzzy(dict Dictionary, transform func(string) string, probes *int64, logger config.BuildLogger) *fuzzy {
	idx := index.NewSorted()
	total := len(dict)
	done := 0
	for full := range dict {
		idx.Add(transform(full), full)
		done++
		logger.ReportProgress(done, total)
	}
	idx.Freeze()
	return &fuzzy{transform: transform, idx: idx, dict: dict, probes: probes}
}

func (f *fuzzy) Transform(full string) string { return f.transform(full) }

func (f *fuzzy) Lookup(key string) map[string]struct{} { return f.idx.FullNames(key) }

func (f *fuzzy) Match(query string, dataSources map[string]struct{}) []string {
	qt := f.transform(query)
	dfa := automaton.BuildLevenshtein([]rune(qt), 2).ToDFA()

	return index.Intersect(dfa, f.idx, f.probes, func(candidate string) bool {
		if !verify.MatchingThreshold(qt, candidate) {
			return false
		}
		return f.hasDataSource(candidate, dataSources)
	})
}

func (f *fuzzy) hasDataSource(key string, dataSources map[string]struct{}) bool {
	if len(dataSources) == 0 {
		return true
	}
	for full := range f.idx.FullNames(key) {
		for ds := range f.dict[full] {
			if _, ok := dataSources[ds]; ok {
				return true
			}
		}
	}
	return false
}

// fold lowercases and applies the two Latin orthographic substitutions
// (j -> i, v -> u) used by both the Verbatim and GenusOnly transforms.
func fold(word string) string {
	return stemmer.Fold(strings.ToLower(word))
}
