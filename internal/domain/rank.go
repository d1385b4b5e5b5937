package domain

import (
	"iter"
	"slices"
	"strings"
)

// MaxResults is the number of results returned for a query
const MaxResults = 10

type rankKey struct {
	notPrefix bool
	name      string
	path      string
}

func newRankKey(c Candidate, query string) rankKey {
	name := strings.ToLower(c.Name())
	return rankKey{
		notPrefix: !strings.HasPrefix(name, query),
		name:      name,
		path:      c.Path,
	}
}

func compareKeys(a, b rankKey) int {
	if a.notPrefix != b.notPrefix {
		if !a.notPrefix {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	return strings.Compare(a.path, b.path)
}

// CompareCandidates orders candidates for a query: filenames starting with the
// query first, then by lowercase filename, then by full path.
func CompareCandidates(a, b Candidate, query string) int {
	return compareKeys(newRankKey(a, query), newRankKey(b, query))
}

// Rank consumes every candidate in seq and returns the first n of the full
// ordering. Only a window of n entries is held in memory.
func Rank(seq iter.Seq[Candidate], query string, n int) []Candidate {
	if n <= 0 {
		for range seq {
		}
		return nil
	}

	type entry struct {
		key       rankKey
		candidate Candidate
	}
	window := make([]entry, 0, n)

	for c := range seq {
		e := entry{key: newRankKey(c, query), candidate: c}
		if len(window) == n && compareKeys(e.key, window[n-1].key) >= 0 {
			continue
		}
		i, _ := slices.BinarySearchFunc(window, e, func(a, b entry) int {
			return compareKeys(a.key, b.key)
		})
		if len(window) == n {
			window = window[:n-1]
		}
		window = slices.Insert(window, i, e)
	}

	ranked := make([]Candidate, len(window))
	for i, e := range window {
		ranked[i] = e.candidate
	}
	return ranked
}
