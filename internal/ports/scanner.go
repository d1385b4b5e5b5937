package ports

import (
	"context"
	"iter"

	"execlauncher/internal/domain"
)

// ExecutableScanner discovers launch candidates on disk
type ExecutableScanner interface {
	// Scan lazily yields every file below roots whose name contains query
	// and which passes classification. Order is unspecified.
	Scan(ctx context.Context, roots []string, query string, filterLibraries bool) iter.Seq[domain.Candidate]

	// IsDir reports whether path is an existing directory
	IsDir(path string) bool

	// IsLaunchable classifies a single path
	IsLaunchable(path string, filterLibraries bool) bool
}
