package repositories

import (
	"context"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// DependencyRepository resolves installed packages the way the host module loader does.
type DependencyRepository interface {
	// Locate resolves the package descriptor of name, decodes its declared version and returns
	// the install root. It fails with entities.ErrDependencyNotFound when nothing is installed.
	Locate(ctx context.Context, lookup entities.Lookup, name string) (*entities.Dependency, error)

	// ResolveFile returns the absolute path of relPath inside the dependency's install root.
	// It fails with entities.ErrTargetNotFound when the file does not exist.
	ResolveFile(dependency *entities.Dependency, relPath string) (string, error)
}
