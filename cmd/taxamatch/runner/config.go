// Package runner parses CLI flags and an optional YAML config file
// into the options taxamatch's main.go needs to build and query a
// Finder, grounded on alterx's internal/runner.ParseFlags idiom.
package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"gopkg.in/yaml.v3"

	"github.com/globalnames/taxamatch/config"
)

// Options holds everything a taxamatch invocation needs: where to load
// the dictionary from, what to query it with, and which strategies are
// enabled.
type Options struct {
	Dictionary  string
	Query       string
	DataSources goflags.StringSlice
	ConfigFile  string
	Verbose     bool
	Silent      bool

	Engine config.Config
}

// fileConfig is the shape of the optional YAML config file, grounded
// on alterx's Config/NewConfig pair.
type fileConfig struct {
	Dictionary              string `yaml:"dictionary"`
	EnableGenusOnlyStrategy *bool  `yaml:"enable_genus_only_strategy"`
	EnableLetterStrategy    *bool  `yaml:"enable_letter_strategy"`
	EnableStemStrategy      *bool  `yaml:"enable_stem_strategy"`
	MaxDictionarySize       int    `yaml:"max_dictionary_size"`
}

// ParseFlags parses os.Args into an Options, merging in an optional
// YAML config file named by -config.
func ParseFlags() *Options {
	opts := &Options{Engine: config.DefaultConfig()}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Approximate scientific-name matching against a dictionary, tolerant of up to two edits per word part.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Dictionary, "dictionary", "d", "", "dictionary CSV file (full_name,source_id[;source_id...])"),
		flagSet.StringVarP(&opts.Query, "query", "q", "", "scientific name to search for"),
		flagSet.StringSliceVarP(&opts.DataSources, "sources", "s", nil, "restrict matches to these data-source ids (comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.ConfigFile, "config", "", "taxamatch YAML config file"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.ConfigFile != "" {
		if err := opts.mergeConfigFile(opts.ConfigFile); err != nil {
			gologger.Error().Msgf("failed to read config file: %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Dictionary == "" {
		gologger.Fatal().Msgf("taxamatch: no dictionary file given (-dictionary)")
	}
	if opts.Query == "" {
		gologger.Fatal().Msgf("taxamatch: no query given (-query)")
	}

	return opts
}

func (o *Options) mergeConfigFile(path string) error {
	bin, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(bin, &fc); err != nil {
		return err
	}
	if fc.Dictionary != "" && o.Dictionary == "" {
		o.Dictionary = fc.Dictionary
	}
	if fc.EnableGenusOnlyStrategy != nil {
		o.Engine.EnableGenusOnlyStrategy = *fc.EnableGenusOnlyStrategy
	}
	if fc.EnableLetterStrategy != nil {
		o.Engine.EnableLetterStrategy = *fc.EnableLetterStrategy
	}
	if fc.EnableStemStrategy != nil {
		o.Engine.EnableStemStrategy = *fc.EnableStemStrategy
	}
	if fc.MaxDictionarySize > 0 {
		o.Engine.MaxDictionarySize = fc.MaxDictionarySize
	}
	return nil
}
