package finder

import (
	"errors"
	"sort"
	"testing"

	"github.com/globalnames/taxamatch/config"
)

func testDictionary() map[string]map[string]struct{} {
	return map[string]map[string]struct{}{
		"Homo sapiens":        {"col": {}},
		"Homo sapien":         {"gbif": {}},
		"Pomatomus":           {"col": {}},
		"Eurytellina complex": {"col": {}},
	}
}

func contains(haystack []string, want string) bool {
	for _, h := range haystack {
		if h == want {
			return true
		}
	}
	return false
}

func TestFindAllMatchesGenusOnlyPath(t *testing.T) {
	f := New(testDictionary())
	got := f.FindAllMatches("Pomatomus", nil)
	if len(got) != 1 || got[0] != "Pomatomus" {
		t.Fatalf("FindAllMatches(Pomatomus) = %v, want [Pomatomus]", got)
	}
}

func TestFindAllMatchesStemFuzzyNeighbor(t *testing.T) {
	f := New(testDictionary())
	got := f.FindAllMatches("Homo sapiens", nil)
	if !contains(got, "Homo sapien") {
		t.Errorf("expected Homo sapiens to surface the near neighbor Homo sapien, got %v", got)
	}
}

func TestFindAllMatchesLetterBucketDelegates(t *testing.T) {
	f := New(testDictionary())
	got := f.FindAllMatches("H. sapiens", nil)
	sort.Strings(got)
	if !contains(got, "Homo sapiens") {
		t.Errorf("expected H. sapiens to resolve through the letter bucket to Homo sapiens, got %v", got)
	}
}

func TestFindAllMatchesEmptyQueryReturnsEmpty(t *testing.T) {
	f := New(testDictionary())
	if got := f.FindAllMatches("   ", nil); got != nil {
		t.Errorf("expected whitespace-only query to return nil, got %v", got)
	}
}

func TestFindAllMatchesDataSourceFilterExcludesUnmatchedSource(t *testing.T) {
	f := New(testDictionary())
	got := f.FindAllMatches("Homo sapiens", map[string]struct{}{"gbif": {}})
	if contains(got, "Homo sapiens") {
		t.Errorf("Homo sapiens was only observed under col; it should be excluded when filtering to gbif, got %v", got)
	}
}

func TestFindAllMatchesResultsCapitalized(t *testing.T) {
	f := New(testDictionary())
	got := f.FindAllMatches("pomatomus", nil)
	if len(got) != 1 || got[0] != "Pomatomus" {
		t.Fatalf("expected root-level results to be capitalized, got %v", got)
	}
}

func TestFindAllMatchesNoPanicOnUnusualInput(t *testing.T) {
	f := New(testDictionary())
	got := f.FindAllMatches("!!! %%% ???", nil)
	if got != nil {
		t.Errorf("expected no matches for punctuation-only input, got %v", got)
	}
}

func TestNewWithConfigRejectsOversizedDictionary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxDictionarySize = 1
	if _, err := NewWithConfig(testDictionary(), cfg); !errors.Is(err, ErrDictionaryTooLarge) {
		t.Errorf("expected ErrDictionaryTooLarge when the dictionary exceeds MaxDictionarySize, got %v", err)
	}
}

func TestNewWithConfigDisabledGenusOnlyFallsThroughToStem(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.EnableGenusOnlyStrategy = false
	f, err := NewWithConfig(testDictionary(), cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	got := f.FindAllMatches("Pomatomus", nil)
	if !contains(got, "Pomatomus") {
		t.Errorf("expected Pomatomus to still resolve via Stem/Verbatim with GenusOnly disabled, got %v", got)
	}
}

func TestProbesIncrementsAcrossQueries(t *testing.T) {
	f := New(testDictionary())
	before := f.Probes()
	f.FindAllMatches("Homo sapiens", nil)
	if f.Probes() <= before {
		t.Errorf("expected Probes() to increase after a fuzzy query, before=%d after=%d", before, f.Probes())
	}
}

func TestNewWithConfigReportsBuildProgress(t *testing.T) {
	cfg := config.DefaultConfig()
	reported := false
	cfg.BuildLogger = func(done, total int) {
		reported = true
	}
	if _, err := NewWithConfig(testDictionary(), cfg); err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if !reported {
		t.Error("expected BuildLogger to be invoked during construction")
	}
}
