//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/vitepatch/internal/domain/repositories"
)

// SpyArtifactRepository implements repositories.ArtifactRepository over an in-memory map
// and records every read and write.
type SpyArtifactRepository struct {
	// --- Read ---
	Files   map[string]string // path -> content
	ReadErr error
	// spy: paths read
	ReadPaths []string

	// --- Write ---
	WriteErr error
	// spy: content written per path, in call order
	Writes []ArtifactWrite
}

// ArtifactWrite records one Write call.
type ArtifactWrite struct {
	Path    string
	Content string
}

var _ repositories.ArtifactRepository = (*SpyArtifactRepository)(nil)

func (s *SpyArtifactRepository) Read(path string) (string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return "", s.ReadErr
	}
	content, ok := s.Files[path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return content, nil
}

func (s *SpyArtifactRepository) Write(path, content string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Writes = append(s.Writes, ArtifactWrite{Path: path, Content: content})
	if s.Files == nil {
		s.Files = make(map[string]string)
	}
	s.Files[path] = content
	return nil
}
