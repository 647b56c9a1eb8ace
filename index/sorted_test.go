package index

import "testing"

func TestSortedCeil(t *testing.T) {
	idx := NewSorted()
	for _, k := range []string{"banana", "apple", "cherry"} {
		idx.Add(k, k)
	}
	idx.Freeze()

	tests := []struct {
		w    string
		want string
		ok   bool
	}{
		{"a", "apple", true},
		{"apple", "apple", true},
		{"b", "banana", true},
		{"bz", "cherry", true},
		{"d", "", false},
	}
	for _, tt := range tests {
		got, ok := idx.Ceil(tt.w)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Ceil(%q) = (%q, %v), want (%q, %v)", tt.w, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSortedFullNamesBucketsMultipleNames(t *testing.T) {
	idx := NewSorted()
	idx.Add("homo sapien", "homo sapiens")
	idx.Add("homo sapien", "Homo Sapien")
	idx.Freeze()

	names := idx.FullNames("homo sapien")
	if len(names) != 2 {
		t.Fatalf("expected 2 full names bucketed under one key, got %d", len(names))
	}
}
