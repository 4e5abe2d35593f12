//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"path"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
	"github.com/rios0rios0/vitepatch/internal/domain/repositories"
)

// StubDependencyRepository is a stub implementation of repositories.DependencyRepository.
type StubDependencyRepository struct {
	// --- Locate ---
	Dependency *entities.Dependency
	LocateErr  error
	// spy: lookups received
	Lookups []entities.Lookup

	// --- ResolveFile ---
	ResolveErr error
	// spy: relative paths requested
	ResolvedPaths []string
}

var _ repositories.DependencyRepository = (*StubDependencyRepository)(nil)

func (s *StubDependencyRepository) Locate(
	_ context.Context,
	lookup entities.Lookup,
	_ string,
) (*entities.Dependency, error) {
	s.Lookups = append(s.Lookups, lookup)
	if s.LocateErr != nil {
		return nil, s.LocateErr
	}
	return s.Dependency, nil
}

func (s *StubDependencyRepository) ResolveFile(
	dependency *entities.Dependency,
	relPath string,
) (string, error) {
	s.ResolvedPaths = append(s.ResolvedPaths, relPath)
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	return path.Join(dependency.Root, relPath), nil
}
