package repositories

import (
	"fmt"
	"os"
	"path/filepath"

	domainRepos "github.com/rios0rios0/vitepatch/internal/domain/repositories"
)

const defaultFileMode = 0o644

// FileArtifactRepository reads and overwrites artifacts on the local filesystem.
type FileArtifactRepository struct{}

var _ domainRepos.ArtifactRepository = (*FileArtifactRepository)(nil)

// NewFileArtifactRepository creates a new FileArtifactRepository.
func NewFileArtifactRepository() *FileArtifactRepository {
	return &FileArtifactRepository{}
}

// Read returns the full content of path.
func (it *FileArtifactRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write stages content in a temp file next to path and renames it over path, keeping the
// original file mode.
func (it *FileArtifactRepository) Write(path, content string) error {
	mode := os.FileMode(defaultFileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, mode); chmodErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %q: %w", path, renameErr)
	}

	return nil
}
