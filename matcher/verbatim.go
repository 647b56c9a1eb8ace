package matcher

import "github.com/globalnames/taxamatch/config"

// Verbatim is the fallback matcher strategy: it indexes dictionary
// names under the bare orthographic fold, with no stemming at all. It
// is tried whenever Stem yields nothing, since folding alone can
// still accept a name Stem's suffix stripping distorted.
type Verbatim struct {
	*fuzzy
}

// NewVerbatim indexes dict under the plain fold transform, reporting
// construction progress through logger (a nil logger is a no-op).
func NewVerbatim(dict Dictionary, probes *int64, logger config.BuildLogger) *Verbatim {
	return &Verbatim{fuzzy: newFuzzy(dict, fold, probes, logger)}
}
