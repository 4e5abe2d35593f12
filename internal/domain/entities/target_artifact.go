package entities

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	lineEndingLF   = "\n"
	lineEndingCRLF = "\r\n"
)

// lineBreakPattern splits on both LF and CRLF terminators.
var lineBreakPattern = regexp.MustCompile(`\r?\n`)

// TargetArtifact is the in-memory view of the file being patched. It is built from a fresh
// read on every invocation and never cached.
type TargetArtifact struct {
	Path       string
	Content    string
	Lines      []string
	LineEnding string
}

// NewTargetArtifact splits content into lines and detects the line ending convention.
func NewTargetArtifact(path, content string) *TargetArtifact {
	return &TargetArtifact{
		Path:       path,
		Content:    content,
		Lines:      lineBreakPattern.Split(content, -1),
		LineEnding: DetectLineEnding(content),
	}
}

// DetectLineEnding returns CRLF when the first terminator in content is CRLF, LF otherwise.
func DetectLineEnding(content string) string {
	idx := strings.Index(content, lineEndingLF)
	if idx > 0 && content[idx-1] == '\r' {
		return lineEndingCRLF
	}
	return lineEndingLF
}

// Line returns the 1-based line n.
func (a *TargetArtifact) Line(n int) (string, error) {
	if n < 1 || n > len(a.Lines) {
		return "", fmt.Errorf(
			"%w: line %d is out of range (%s has %d lines)",
			ErrPatchPrecondition, n, a.Path, len(a.Lines),
		)
	}
	return a.Lines[n-1], nil
}

// ReplaceLine returns the full text with the 1-based line n replaced, every other line kept
// byte-identical and joined with the detected line ending.
func (a *TargetArtifact) ReplaceLine(n int, replacement string) (string, error) {
	if _, err := a.Line(n); err != nil {
		return "", err
	}

	lines := make([]string, len(a.Lines))
	copy(lines, a.Lines)
	lines[n-1] = replacement

	return strings.Join(lines, a.LineEnding), nil
}
