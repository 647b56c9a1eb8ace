package main

import (
	"fmt"

	"github.com/projectdiscovery/gologger"

	"github.com/globalnames/taxamatch/cmd/taxamatch/runner"
	"github.com/globalnames/taxamatch/finder"
	"github.com/globalnames/taxamatch/internal/dictfile"
)

func main() {
	opts := runner.ParseFlags()

	dict, count, err := dictfile.Load(opts.Dictionary)
	if err != nil {
		gologger.Fatal().Msgf("failed to load dictionary %v: %v", opts.Dictionary, err)
	}
	gologger.Info().Msgf("loaded %d names from %s", count, opts.Dictionary)

	opts.Engine.BuildLogger = func(done, total int) {
		gologger.Info().Msgf("indexed %d/%d names", done, total)
	}

	f, err := finder.NewWithConfig(dict, opts.Engine)
	if err != nil {
		gologger.Fatal().Msgf("failed to build finder: %v", err)
	}

	var dataSources map[string]struct{}
	if len(opts.DataSources) > 0 {
		dataSources = make(map[string]struct{}, len(opts.DataSources))
		for _, ds := range opts.DataSources {
			dataSources[ds] = struct{}{}
		}
	}

	matches := f.FindAllMatches(opts.Query, dataSources)
	gologger.Info().Msgf("%d match(es) for %q (probes=%d)", len(matches), opts.Query, f.Probes())
	for _, m := range matches {
		fmt.Println(m)
	}
}
