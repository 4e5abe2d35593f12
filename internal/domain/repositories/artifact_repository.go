package repositories

// ArtifactRepository reads and overwrites the text of a target artifact.
type ArtifactRepository interface {
	// Read returns the full UTF-8 content of path.
	Read(path string) (string, error)

	// Write replaces the full content of path in a single operation. A failed write
	// leaves the previous content in place.
	Write(path, content string) error
}
