// Package config defines the tunables for building a finder.Finder,
// grounded on meta.Config/meta.DefaultConfig's shape: a flat struct of
// named fields, each with a doc comment stating its default.
package config

// Config controls which matcher strategies a Finder enables and bounds
// the dictionary it is allowed to build from.
//
// Example:
//
//	cfg := config.DefaultConfig()
//	cfg.EnableLetterStrategy = false // never abbreviate genus to a letter
type Config struct {
	// EnableGenusOnlyStrategy allows single-word queries to resolve via
	// the exact-match genus bucket.
	// Default: true
	EnableGenusOnlyStrategy bool

	// EnableLetterStrategy allows queries with an abbreviated genus
	// ("H. sapiens") to delegate to a nested per-letter Finder.
	// Default: true
	EnableLetterStrategy bool

	// EnableStemStrategy allows the stemmed fuzzy strategy to run
	// before falling back to Verbatim.
	// Default: true
	EnableStemStrategy bool

	// MaxDictionarySize caps the number of full names a Finder will
	// index; construction fails past this limit rather than silently
	// truncating the dictionary.
	// Default: 10_000_000
	MaxDictionarySize int

	// BuildLogger, if non-nil, is called periodically while a strategy
	// indexes the dictionary, reporting how many of the total entries
	// have been processed so far. This keeps the core dependency-free
	// with respect to any particular logging library while still
	// letting a caller (cmd/taxamatch's gologger wiring) surface
	// build-progress for multi-million-row dictionaries.
	// Default: nil (no progress reporting)
	BuildLogger BuildLogger
}

// BuildLogger receives periodic progress reports during index
// construction; done is the number of dictionary entries processed so
// far and total is the dictionary's size.
type BuildLogger func(done, total int)

// logEvery is how often a BuildLogger is invoked during construction.
const logEvery = 100_000

// ReportProgress calls logger every logEvery entries and unconditionally
// on the final entry; a nil logger is a no-op.
func (logger BuildLogger) ReportProgress(done, total int) {
	if logger == nil {
		return
	}
	if done%logEvery == 0 || done == total {
		logger(done, total)
	}
}

// DefaultConfig returns a configuration with every strategy enabled,
// a generous dictionary size cap, and no build-progress logging.
func DefaultConfig() Config {
	return Config{
		EnableGenusOnlyStrategy: true,
		EnableLetterStrategy:    true,
		EnableStemStrategy:      true,
		MaxDictionarySize:       10_000_000,
	}
}
