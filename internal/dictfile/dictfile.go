// Package dictfile loads the name dictionary a Finder is built from.
// It is CLI-host scaffolding for dictionary materialisation; the core
// matching packages never import it.
package dictfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// logEvery controls how often Load reports construction progress.
const logEvery = 100_000

// Load reads a dictionary CSV file and returns a map from full name to
// the set of data-source ids it was observed under, plus the number of
// rows read.
//
// Each row is `full_name,source_id[;source_id...]`; a row with no
// second column is treated as belonging to no data source. Stdlib
// encoding/csv is the right tool here — no third-party CSV parser
// appears anywhere in the retrieved pack, and the format has no
// quoting complexity beyond what encoding/csv already handles.
func Load(path string) (map[string]map[string]struct{}, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrOpenDictionary, path, err)
	}
	defer f.Close()

	dict := make(map[string]map[string]struct{})
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, count, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, count+1, err)
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		fullName := record[0]
		sources := dict[fullName]
		if sources == nil {
			sources = make(map[string]struct{})
			dict[fullName] = sources
		}
		if len(record) > 1 {
			for _, id := range strings.Split(record[1], ";") {
				id = strings.TrimSpace(id)
				if id != "" {
					sources[id] = struct{}{}
				}
			}
		}

		count++
		if count%logEvery == 0 {
			gologger.Info().Msgf("dictfile: loaded %d names from %s", count, path)
		}
	}

	gologger.Info().Msgf("dictfile: finished loading %d names from %s", count, path)
	return dict, count, nil
}
