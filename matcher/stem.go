package matcher

import (
	"github.com/globalnames/taxamatch/config"
	"github.com/globalnames/taxamatch/stemmer"
)

// Stem is the matcher strategy that transforms every word part except
// the genus to its Latin noun stem before building the fuzzy index.
type Stem struct {
	*fuzzy
}

// NewStem indexes dict under stemmer.StemPhrase, reporting construction
// progress through logger (a nil logger is a no-op).
func NewStem(dict Dictionary, probes *int64, logger config.BuildLogger) *Stem {
	return &Stem{fuzzy: newFuzzy(dict, stemmer.StemPhrase, probes, logger)}
}
