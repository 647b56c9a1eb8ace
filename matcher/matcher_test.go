package matcher

import (
	"testing"

	"github.com/globalnames/taxamatch/config"
)

func testDict() Dictionary {
	return Dictionary{
		"Homo sapiens":        {"col": {}},
		"Homo sapien":         {"gbif": {}},
		"Rosa alba":           {"col": {}},
		"Eurytellina complex": {"col": {}},
		"Pomatomus":           {"col": {}},
	}
}

func TestGenusOnlyExactMatchFiltersByDataSource(t *testing.T) {
	g := NewGenusOnly(testDict(), nil)
	got := g.Match("Pomatomus", nil)
	if len(got) != 1 || got[0] != "Pomatomus" {
		t.Fatalf("Match(Pomatomus) = %v, want [Pomatomus]", got)
	}
	if got := g.Match("Pomatomus", map[string]struct{}{"gbif": {}}); len(got) != 0 {
		t.Errorf("expected no match restricted to a data source Pomatomus was never observed under, got %v", got)
	}
}

func TestGenusOnlyRejectsMultiWordBucket(t *testing.T) {
	g := NewGenusOnly(testDict(), nil)
	if got := g.Match("Rosa alba", nil); len(got) != 0 {
		t.Errorf("multi-word names must not be indexed by GenusOnly, got %v", got)
	}
}

func TestVerifyGenusOnly(t *testing.T) {
	if !VerifyGenusOnly("Pomatomus") {
		t.Error("single word should be eligible for GenusOnly")
	}
	if VerifyGenusOnly("Homo sapiens") {
		t.Error("two words should not be eligible for GenusOnly")
	}
}

func TestStemMatchFindsFuzzyNeighbor(t *testing.T) {
	s := NewStem(testDict(), nil, nil)
	keys := s.Match("Homo sapiens", nil)
	found := false
	for _, k := range keys {
		for full := range s.Lookup(k) {
			if full == "Homo sapien" {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected Stem matching to surface Homo sapien as a neighbor of Homo sapiens, keys=%v", keys)
	}
}

func TestVerbatimMatchExact(t *testing.T) {
	v := NewVerbatim(testDict(), nil, nil)
	keys := v.Match("Pomatomus", nil)
	if len(keys) != 1 || keys[0] != "pomatomus" {
		t.Fatalf("Verbatim.Match(Pomatomus) = %v, want [pomatomus]", keys)
	}
}

func TestVerifyLetterAndSplit(t *testing.T) {
	if !VerifyLetter("H. sapiens") {
		t.Error("expected H. sapiens to be eligible for the Letter strategy")
	}
	if VerifyLetter("Homo sapiens") {
		t.Error("expected Homo sapiens (full genus) not to be eligible for the Letter strategy")
	}
	letter, rest := QueryLetterAndRest("H. sapiens")
	if letter != "h" || rest != "sapiens" {
		t.Errorf("QueryLetterAndRest(H. sapiens) = (%q, %q), want (h, sapiens)", letter, rest)
	}
}

func TestNewStemReportsBuildProgress(t *testing.T) {
	dict := testDict()
	finalDone := 0
	logger := config.BuildLogger(func(done, total int) {
		finalDone = done
		if total != len(dict) {
			t.Errorf("total = %d, want %d", total, len(dict))
		}
	})
	NewStem(dict, nil, logger)
	if finalDone != len(dict) {
		t.Errorf("expected a final progress report with done == len(dict), got %d", finalDone)
	}
}

func TestSplitLetterBucket(t *testing.T) {
	letter, rest, ok := SplitLetterBucket("Homo sapiens")
	if !ok || letter != "h" || rest != "sapiens" {
		t.Errorf("SplitLetterBucket(Homo sapiens) = (%q, %q, %v), want (h, sapiens, true)", letter, rest, ok)
	}
	if _, _, ok := SplitLetterBucket("Pomatomus"); ok {
		t.Error("single-word names should have no letter-bucket remainder")
	}
}
