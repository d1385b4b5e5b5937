package filesystem

import (
	"context"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"

	"execlauncher/internal/domain"
	"execlauncher/internal/ports"
)

// Scanner implements ports.ExecutableScanner by walking the filesystem
type Scanner struct {
	logger *log.Logger
}

// Ensure Scanner implements ExecutableScanner
var _ ports.ExecutableScanner = (*Scanner)(nil)

// NewScanner creates a new filesystem scanner
func NewScanner(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scanner{logger: logger}
}

// Scan walks every root depth-first and yields accepted candidates
func (s *Scanner) Scan(ctx context.Context, roots []string, query string, filterLibraries bool) iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		for _, root := range roots {
			if !IsDir(root) {
				s.logger.Debug("skipping missing root", "root", root)
				continue
			}
			if !s.walk(ctx, root, query, filterLibraries, yield) {
				return
			}
		}
	}
}

// IsDir reports whether path exists and is a directory
func (s *Scanner) IsDir(path string) bool {
	return IsDir(path)
}

// IsLaunchable classifies a single path
func (s *Scanner) IsLaunchable(path string, filterLibraries bool) bool {
	return Classify(path, filterLibraries)
}

// walk returns false when the consumer stopped or ctx was cancelled
func (s *Scanner) walk(ctx context.Context, root, query string, filterLibraries bool, yield func(domain.Candidate) bool) bool {
	stopped := false

	// A trailing separator makes WalkDir follow a symlinked root
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			stopped = true
			return fs.SkipAll
		}
		if err != nil {
			s.logger.Debug("skipping unreadable entry", "path", path, "err", err)
			return nil // Continue walking
		}
		if d.IsDir() {
			return nil
		}

		// Name filter first: no disk access for non-matching files
		if !domain.MatchesQuery(d.Name(), query) {
			return nil
		}

		if !Classify(path, filterLibraries) {
			return nil
		}

		if !yield(domain.NewCandidate(path)) {
			stopped = true
			return fs.SkipAll
		}
		return nil
	})

	return !stopped
}

// Classify reports whether path is a launchable executable
func Classify(path string, filterLibraries bool) bool {
	name := filepath.Base(path)
	folder := filepath.Base(filepath.Dir(path))

	info, err := os.Stat(path)
	regular := err == nil && info.Mode().IsRegular()
	executable := regular && isExecutable(path)

	switch domain.Classify(name, folder, regular, executable, filterLibraries) {
	case domain.Accept:
		return true
	case domain.NeedsSniff:
		return hasELFHeader(path)
	default:
		return false
	}
}

// IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isExecutable checks execute permission for the current user
func isExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

// hasELFHeader reads the first bytes of path; any error counts as a mismatch
func hasELFHeader(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, len(domain.ELFMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return domain.HasELFMagic(header)
}
