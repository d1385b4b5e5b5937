package commands

import (
	"context"
	"iter"
	"path/filepath"

	"execlauncher/internal/domain"
)

// fakeScanner serves a fixed set of executables keyed by root
type fakeScanner struct {
	files      map[string][]string // root -> paths
	dirs       map[string]bool
	launchable map[string]bool
	scans      int
}

func (f *fakeScanner) Scan(ctx context.Context, roots []string, query string, filterLibraries bool) iter.Seq[domain.Candidate] {
	f.scans++
	return func(yield func(domain.Candidate) bool) {
		for _, root := range roots {
			for _, path := range f.files[root] {
				if !domain.MatchesQuery(filepath.Base(path), query) {
					continue
				}
				if filterLibraries && domain.IsLibraryLike(filepath.Base(path), filepath.Base(filepath.Dir(path))) {
					continue
				}
				if !yield(domain.NewCandidate(path)) {
					return
				}
			}
		}
	}
}

func (f *fakeScanner) IsDir(path string) bool {
	return f.dirs[path]
}

func (f *fakeScanner) IsLaunchable(path string, filterLibraries bool) bool {
	return f.launchable[path]
}

type fakeLauncher struct {
	launched []string
	err      error
}

func (f *fakeLauncher) Launch(path string) error {
	if f.err != nil {
		return f.err
	}
	f.launched = append(f.launched, path)
	return nil
}
