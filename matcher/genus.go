package matcher

import (
	"strings"

	"github.com/globalnames/taxamatch/config"
)

// GenusOnly is the exact-match strategy for single-word queries: no
// automaton is built, it just buckets dictionary entries by their
// folded, lowercased genus and looks the query up directly.
type GenusOnly struct {
	dict    Dictionary
	buckets map[string]map[string]struct{}
}

// NewGenusOnly indexes every single-word entry of dict; multi-word
// entries are skipped, since GenusOnly only ever resolves single-word
// queries. logger, if non-nil, is called periodically to report
// indexing progress.
func NewGenusOnly(dict Dictionary, logger config.BuildLogger) *GenusOnly {
	g := &GenusOnly{dict: dict, buckets: make(map[string]map[string]struct{})}
	total := len(dict)
	done := 0
	for full := range dict {
		t := g.Transform(full)
		done++
		logger.ReportProgress(done, total)
		if strings.Contains(t, " ") {
			continue
		}
		if g.buckets[t] == nil {
			g.buckets[t] = make(map[string]struct{})
		}
		g.buckets[t][full] = struct{}{}
	}
	return g
}

// Transform folds and lowercases a name; for GenusOnly this is only
// ever applied to single words.
func (g *GenusOnly) Transform(full string) string {
	return fold(full)
}

// VerifyGenusOnly reports whether q is eligible for the GenusOnly
// strategy at all: it must be a single word.
func VerifyGenusOnly(q string) bool {
	return !strings.Contains(strings.TrimSpace(q), " ")
}

// Match returns the full dictionary names whose genus bucket exactly
// matches query's transform, filtered by data source. Unlike Stem and
// Verbatim, GenusOnly returns full names directly rather than
// transformed keys: there is no DFA expansion step to invert, since
// the lookup was already exact.
func (g *GenusOnly) Match(query string, dataSources map[string]struct{}) []string {
	qt := g.Transform(query)
	names := g.buckets[qt]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	for full := range names {
		if len(dataSources) > 0 {
			found := false
			for ds := range g.dict[full] {
				if _, ok := dataSources[ds]; ok {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, full)
	}
	return out
}
