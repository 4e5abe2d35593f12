package repositories

import (
	domainRepos "github.com/rios0rios0/vitepatch/internal/domain/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewNodeDependencyRepository); err != nil {
		return err
	}
	if err := container.Provide(NewFileArtifactRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *NodeDependencyRepository) domainRepos.DependencyRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *FileArtifactRepository) domainRepos.ArtifactRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
