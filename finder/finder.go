// Package finder implements the public query API: Finder dispatches a
// normalised query to one of four matcher strategies in a fixed order,
// expanding the winning strategy's transformed keys back to full
// dictionary names and capitalising the result at the root.
package finder

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/globalnames/taxamatch/config"
	"github.com/globalnames/taxamatch/matcher"
)

// Finder is the engine's entry point. It is immutable and safe to use
// concurrently from multiple goroutines once constructed: FindAllMatches
// performs no writes other than atomic increments of the probe counter.
type Finder struct {
	dict matcher.Dictionary
	cfg  config.Config

	genusOnly *matcher.GenusOnly
	stem      *matcher.Stem
	verbatim  *matcher.Verbatim
	letters   map[string]*letterBucket

	// isLetterBucket disables GenusOnly, Letter dispatch and further
	// letter-bucket nesting to avoid infinite recursion.
	isLetterBucket bool

	probes int64
}

// letterBucket holds one first-letter group for the Letter strategy: a
// nested Finder that matches against the rest-of-name only, plus the
// map needed to expand its rest-of-name results back to full dictionary
// names.
type letterBucket struct {
	finder     *Finder
	restToFull map[string]map[string]struct{}
}

// New builds a Finder over dictionary, a map from full dictionary name
// to the set of data-source ids it was observed under, using
// config.DefaultConfig(). Construction eagerly indexes every strategy;
// queries afterwards touch only read-only state. It panics if the
// dictionary exceeds the default config's MaxDictionarySize —
// construction failures propagate rather than being swallowed.
func New(dictionary map[string]map[string]struct{}) *Finder {
	f, err := NewWithConfig(dictionary, config.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return f
}

// NewWithConfig builds a Finder the way New does, but honors cfg: it
// rejects oversized dictionaries up front and may disable the
// GenusOnly, Letter, or Stem strategies entirely.
func NewWithConfig(dictionary map[string]map[string]struct{}, cfg config.Config) (*Finder, error) {
	if cfg.MaxDictionarySize > 0 && len(dictionary) > cfg.MaxDictionarySize {
		return nil, fmt.Errorf("%w: has %d names, limit is %d", ErrDictionaryTooLarge, len(dictionary), cfg.MaxDictionarySize)
	}
	return newFinder(dictionary, cfg, false), nil
}

func newFinder(dictionary map[string]map[string]struct{}, cfg config.Config, isLetterBucket bool) *Finder {
	f := &Finder{dict: dictionary, cfg: cfg, isLetterBucket: isLetterBucket}
	f.stem = matcher.NewStem(dictionary, &f.probes, cfg.BuildLogger)
	f.verbatim = matcher.NewVerbatim(dictionary, &f.probes, cfg.BuildLogger)
	if isLetterBucket {
		return f
	}

	if cfg.EnableGenusOnlyStrategy {
		f.genusOnly = matcher.NewGenusOnly(dictionary, cfg.BuildLogger)
	}
	if !cfg.EnableLetterStrategy {
		return f
	}

	// restDict collects, per letter, a word_rest -> data_sources
	// dictionary to feed the nested Finder; restToFull tracks which
	// full names folded to each word_rest so results can be expanded
	// back.
	restDict := make(map[string]map[string]map[string]struct{})
	restToFull := make(map[string]map[string]map[string]struct{})
	for full, sources := range dictionary {
		letter, rest, ok := matcher.SplitLetterBucket(full)
		if !ok {
			continue
		}
		if restDict[letter] == nil {
			restDict[letter] = make(map[string]map[string]struct{})
			restToFull[letter] = make(map[string]map[string]struct{})
		}
		merged := restDict[letter][rest]
		if merged == nil {
			merged = make(map[string]struct{})
			restDict[letter][rest] = merged
		}
		for ds := range sources {
			merged[ds] = struct{}{}
		}
		if restToFull[letter][rest] == nil {
			restToFull[letter][rest] = make(map[string]struct{})
		}
		restToFull[letter][rest][full] = struct{}{}
	}
	f.letters = make(map[string]*letterBucket, len(restDict))
	for letter, sub := range restDict {
		f.letters[letter] = &letterBucket{
			finder:     newFinder(sub, cfg, true),
			restToFull: restToFull[letter],
		}
	}
	return f
}

// Probes returns the number of sorted-index Ceil probes performed
// across every strategy this Finder (and its letter-bucket children)
// owns. It has no semantic effect and exists purely for observability.
func (f *Finder) Probes() int64 {
	total := atomic.LoadInt64(&f.probes)
	for _, bucket := range f.letters {
		total += bucket.finder.Probes()
	}
	return total
}

// FindAllMatches returns the full dictionary names matching query
// under the active strategy, filtered by dataSources when non-empty.
// It never returns an error: any internal panic is recovered and
// swallowed, yielding an empty result.
func (f *Finder) FindAllMatches(query string, dataSources map[string]struct{}) (result []string) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()

	q := normalize(query)
	if q == "" {
		return nil
	}

	result = f.dispatch(q, dataSources)
	if !f.isLetterBucket {
		result = capitalize(result)
	}
	return result
}

func (f *Finder) dispatch(q string, dataSources map[string]struct{}) []string {
	if !f.isLetterBucket {
		if f.genusOnly != nil && matcher.VerifyGenusOnly(q) {
			return f.genusOnly.Match(q, dataSources)
		}
		if f.letters != nil && matcher.VerifyLetter(q) {
			return f.matchLetter(q, dataSources)
		}
	}

	if f.cfg.EnableStemStrategy {
		if keys := f.stem.Match(q, dataSources); len(keys) > 0 {
			return expand(f.stem, keys)
		}
	}
	return expand(f.verbatim, f.verbatim.Match(q, dataSources))
}

// matchLetter delegates to the bucket's nested Finder on the
// rest-of-name, then expands its rest-of-name results back to full
// dictionary names and re-applies the data-source filter: the nested
// Finder already filtered by data source once against its own
// rest-of-name dictionary, but that dictionary merges sources across
// every full name sharing a rest-of-name, so the filter has to run
// again here against each individual full name.
func (f *Finder) matchLetter(q string, dataSources map[string]struct{}) []string {
	letter, rest := matcher.QueryLetterAndRest(q)
	bucket, ok := f.letters[letter]
	if !ok || rest == "" {
		return nil
	}
	matches := bucket.finder.FindAllMatches(rest, dataSources)
	var out []string
	for _, r := range matches {
		for full := range bucket.restToFull[r] {
			out = append(out, full)
		}
	}
	if len(dataSources) == 0 {
		return out
	}
	filtered := out[:0]
	for _, full := range out {
		for ds := range f.dict[full] {
			if _, in := dataSources[ds]; in {
				filtered = append(filtered, full)
				break
			}
		}
	}
	return filtered
}

func expand(s matcher.Strategy, keys []string) []string {
	var out []string
	for _, key := range keys {
		for full := range s.Lookup(key) {
			out = append(out, full)
		}
	}
	return out
}

// normalize strips leading/trailing whitespace, collapses internal
// whitespace runs to a single space, and lowercases.
func normalize(q string) string {
	fields := strings.Fields(q)
	return strings.ToLower(strings.Join(fields, " "))
}

// capitalize upper-cases the first letter of each result, matching the
// conventional presentation of a scientific name; callers that don't
// need this may ignore the casing.
func capitalize(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = capitalizeOne(n)
	}
	return out
}

func capitalizeOne(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
