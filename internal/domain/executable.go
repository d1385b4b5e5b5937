package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Candidate is a path discovered during a scan that passed classification
type Candidate struct {
	Path string // Absolute path to the file
}

// NewCandidate creates a Candidate for the given path
func NewCandidate(path string) Candidate {
	return Candidate{Path: path}
}

// Name returns the base filename
func (c Candidate) Name() string {
	return filepath.Base(c.Path)
}

// Folder returns the basename of the containing directory
func (c Candidate) Folder() string {
	return filepath.Base(filepath.Dir(c.Path))
}

// Ext returns the filename extension including the dot, or "" if there is none.
// Leading dots of hidden files are not treated as an extension.
func (c Candidate) Ext() string {
	name := c.Name()
	return filepath.Ext(strings.TrimLeft(name, "."))
}

// DisplayName returns the filename with its extension stripped
func (c Candidate) DisplayName() string {
	name := c.Name()
	return name[:len(name)-len(c.Ext())]
}

// ResultItem is a presentation-ready match
type ResultItem struct {
	Name        string `json:"name"`        // Filename without extension
	Description string `json:"description"` // e.g. "Launch htop (in ../bin)"
	Path        string `json:"path"`        // Launch payload
}

// NewResultItem maps a candidate to its presentation form
func NewResultItem(c Candidate) ResultItem {
	name := c.DisplayName()
	return ResultItem{
		Name:        name,
		Description: FormatDescription(name, c.Folder()),
		Path:        c.Path,
	}
}

// FormatDescription builds the result description for an executable
func FormatDescription(name, folder string) string {
	return fmt.Sprintf("Launch %s (in ../%s)", name, folder)
}

// NormalizeQuery lowercases user input. Whitespace is significant.
func NormalizeQuery(raw string) string {
	return strings.ToLower(raw)
}

// MatchesQuery reports whether a filename contains the normalized query.
// An empty query matches everything.
func MatchesQuery(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), query)
}
