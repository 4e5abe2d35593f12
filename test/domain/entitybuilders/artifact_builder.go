//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultLineCount  = 5
	defaultTargetLine = 3
	defaultTargetText = "foo(importer.includes('node_modules'))bar"
)

// ArtifactBuilder helps create the text of a compiled chunk with one designated line.
type ArtifactBuilder struct {
	*testkit.BaseBuilder
	lineCount  int
	targetLine int
	targetText string
	lineEnding string
}

// NewArtifactBuilder creates a new artifact builder with sensible defaults.
func NewArtifactBuilder() *ArtifactBuilder {
	return &ArtifactBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		lineCount:   defaultLineCount,
		targetLine:  defaultTargetLine,
		targetText:  defaultTargetText,
		lineEnding:  "\n",
	}
}

// WithLineCount sets the number of lines in the artifact.
func (b *ArtifactBuilder) WithLineCount(count int) *ArtifactBuilder {
	b.lineCount = count
	return b
}

// WithTargetLine sets the 1-based line number holding the target text.
func (b *ArtifactBuilder) WithTargetLine(line int) *ArtifactBuilder {
	b.targetLine = line
	return b
}

// WithTargetText sets the text of the designated line.
func (b *ArtifactBuilder) WithTargetText(text string) *ArtifactBuilder {
	b.targetText = text
	return b
}

// WithCRLF switches the line terminator to CRLF.
func (b *ArtifactBuilder) WithCRLF() *ArtifactBuilder {
	b.lineEnding = "\r\n"
	return b
}

// Build creates the artifact content (satisfies testkit.Builder interface).
func (b *ArtifactBuilder) Build() interface{} {
	return b.BuildContent()
}

// BuildLines returns the artifact lines without terminators.
func (b *ArtifactBuilder) BuildLines() []string {
	lines := make([]string, b.lineCount)
	for i := range lines {
		lines[i] = fmt.Sprintf("const line%d = %d;", i+1, i+1)
	}
	if b.targetLine >= 1 && b.targetLine <= b.lineCount {
		lines[b.targetLine-1] = b.targetText
	}
	return lines
}

// BuildContent joins the lines with the configured terminator.
func (b *ArtifactBuilder) BuildContent() string {
	return strings.Join(b.BuildLines(), b.lineEnding)
}

// Reset clears the builder state, allowing it to be reused.
func (b *ArtifactBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.lineCount = defaultLineCount
	b.targetLine = defaultTargetLine
	b.targetText = defaultTargetText
	b.lineEnding = "\n"
	return b
}

// Clone creates a deep copy of the ArtifactBuilder.
func (b *ArtifactBuilder) Clone() testkit.Builder {
	return &ArtifactBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		lineCount:   b.lineCount,
		targetLine:  b.targetLine,
		targetText:  b.targetText,
		lineEnding:  b.lineEnding,
	}
}
