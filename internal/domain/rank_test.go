package domain

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func candidates(paths ...string) []Candidate {
	out := make([]Candidate, len(paths))
	for i, p := range paths {
		out[i] = NewCandidate(p)
	}
	return out
}

func names(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}
	return out
}

func TestRank_PrefixFirst(t *testing.T) {
	cs := candidates("/bin/xab", "/bin/abx", "/bin/cab")

	got := names(Rank(slices.Values(cs), "ab", MaxResults))

	want := []string{"abx", "cab", "xab"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_EmptyQueryIsCaseInsensitiveLexicographic(t *testing.T) {
	cs := candidates("/bin/Zeta", "/bin/alpha", "/bin/Beta")

	got := names(Rank(slices.Values(cs), "", MaxResults))

	want := []string{"alpha", "Beta", "Zeta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_CapsResults(t *testing.T) {
	var paths []string
	for i := 25; i > 0; i-- {
		paths = append(paths, fmt.Sprintf("/bin/tool%02d", i))
	}

	got := Rank(slices.Values(candidates(paths...)), "tool", MaxResults)

	if len(got) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(got))
	}
	if got[0].Name() != "tool01" || got[9].Name() != "tool10" {
		t.Errorf("unexpected window: %v", names(got))
	}
}

func TestRank_MatchesFullSort(t *testing.T) {
	paths := []string{
		"/a/gamma", "/b/Git", "/c/agit", "/d/git-lfs", "/e/legit",
		"/f/gitk", "/g/GITX", "/h/digit", "/i/git", "/j/gitea",
		"/k/tig", "/l/gitui", "/m/magit", "/n/gitg", "/o/git",
	}
	query := "git"

	full := candidates(paths...)
	sort.SliceStable(full, func(i, j int) bool {
		return CompareCandidates(full[i], full[j], query) < 0
	})

	for _, n := range []int{1, 3, 10, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			want := full[:min(n, len(full))]
			got := Rank(slices.Values(candidates(paths...)), query, n)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Rank() differs from full sort (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRank_DuplicateNamesOrderedByPath(t *testing.T) {
	cs := candidates("/opt/z/run", "/opt/a/run", "/opt/m/run")

	got := Rank(slices.Values(cs), "run", MaxResults)

	var dirs []string
	for _, c := range got {
		dirs = append(dirs, filepath.Dir(c.Path))
	}
	want := []string{"/opt/a", "/opt/m", "/opt/z"}
	if diff := cmp.Diff(want, dirs); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_ZeroLimit(t *testing.T) {
	consumed := 0
	seq := func(yield func(Candidate) bool) {
		for _, c := range candidates("/bin/a", "/bin/b") {
			consumed++
			if !yield(c) {
				return
			}
		}
	}

	if got := Rank(seq, "", 0); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if consumed != 2 {
		t.Errorf("expected sequence to be drained, consumed %d", consumed)
	}
}

func TestCompareCandidates_PrefixIsCaseInsensitive(t *testing.T) {
	a := NewCandidate("/bin/ABtool")
	b := NewCandidate("/bin/aab")

	if CompareCandidates(a, b, strings.ToLower("ab")) >= 0 {
		t.Error("expected prefix match to sort first")
	}
}
