package domain

import (
	"bytes"
	"strings"
)

// Decision is the outcome of classifying a path by its metadata
type Decision int

const (
	Reject Decision = iota
	Accept
	NeedsSniff // Content must be checked for the ELF header
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case NeedsSniff:
		return "needs-sniff"
	default:
		return "reject"
	}
}

// ShellScriptSuffix marks files accepted without a header check
const ShellScriptSuffix = ".sh"

// ELFMagic is the header of ELF binaries
var ELFMagic = []byte{0x7F, 'E', 'L', 'F'}

// Classify decides whether a file is a launch candidate using only cheap
// metadata. Callers must sniff the header when NeedsSniff is returned.
func Classify(name, folder string, regular, executable, filterLibraries bool) Decision {
	if !regular || !executable {
		return Reject
	}
	if IsShellScript(name) {
		return Accept
	}
	if filterLibraries && IsLibraryLike(name, folder) {
		return Reject
	}
	return NeedsSniff
}

// IsShellScript reports whether name ends in the shell script suffix
func IsShellScript(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ShellScriptSuffix)
}

// IsLibraryLike reports whether a file looks like a shared library artifact.
// Any "lib" in the file or parent folder name counts, so "libreoffice" is
// rejected too.
func IsLibraryLike(name, folder string) bool {
	name = strings.ToLower(name)
	folder = strings.ToLower(folder)
	return strings.Contains(name, "lib") ||
		strings.Contains(name, ".so") ||
		strings.Contains(folder, "lib")
}

// HasELFMagic reports whether header starts with the ELF magic bytes
func HasELFMagic(header []byte) bool {
	return len(header) >= len(ELFMagic) && bytes.Equal(header[:len(ELFMagic)], ELFMagic)
}
