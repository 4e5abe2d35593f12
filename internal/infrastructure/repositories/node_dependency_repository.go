package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
	domainRepos "github.com/rios0rios0/vitepatch/internal/domain/repositories"
)

const (
	nodeModulesDir = "node_modules"
	descriptorFile = "package.json"
)

// packageDescriptor is the subset of package.json read by the lookup.
type packageDescriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// NodeDependencyRepository resolves packages the way Node's require.resolve does for a
// bare specifier: every node_modules directory from the project up to the filesystem
// root, then the NODE_PATH directories.
type NodeDependencyRepository struct{}

var _ domainRepos.DependencyRepository = (*NodeDependencyRepository)(nil)

// NewNodeDependencyRepository creates a new NodeDependencyRepository.
func NewNodeDependencyRepository() *NodeDependencyRepository {
	return &NodeDependencyRepository{}
}

// Locate returns the first installed copy of name found in the lookup order.
func (it *NodeDependencyRepository) Locate(
	ctx context.Context,
	lookup entities.Lookup,
	name string,
) (*entities.Dependency, error) {
	candidates, err := lookupDirectories(lookup)
	if err != nil {
		return nil, err
	}

	for _, dir := range candidates {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		root := filepath.Join(dir, name)
		descriptorPath := filepath.Join(root, descriptorFile)
		data, readErr := os.ReadFile(descriptorPath)
		if readErr != nil {
			if !errors.Is(readErr, fs.ErrNotExist) {
				logger.Debugf("Skipping %s: %v", descriptorPath, readErr)
			}
			continue
		}

		var descriptor packageDescriptor
		if decodeErr := json.Unmarshal(data, &descriptor); decodeErr != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", descriptorPath, decodeErr)
		}

		dependencyName := descriptor.Name
		if dependencyName == "" {
			dependencyName = name
		}

		return &entities.Dependency{
			Name:           dependencyName,
			Version:        descriptor.Version,
			Root:           root,
			DescriptorPath: descriptorPath,
		}, nil
	}

	return nil, fmt.Errorf(
		"%w: cannot resolve %q from %s",
		entities.ErrDependencyNotFound, name+"/"+descriptorFile, lookup.ProjectDir,
	)
}

// ResolveFile joins relPath to the install root and requires a regular file there.
func (it *NodeDependencyRepository) ResolveFile(
	dependency *entities.Dependency,
	relPath string,
) (string, error) {
	path := filepath.Join(dependency.Root, filepath.FromSlash(relPath))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", entities.ErrTargetNotFound, path)
		}
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", entities.ErrTargetNotFound, path)
	}

	return path, nil
}

// lookupDirectories lists node_modules directories from the project directory upwards,
// followed by the extra lookup paths.
func lookupDirectories(lookup entities.Lookup) ([]string, error) {
	projectDir := lookup.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	dir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("invalid project directory %q: %w", projectDir, err)
	}

	var dirs []string
	for {
		if filepath.Base(dir) != nodeModulesDir {
			dirs = append(dirs, filepath.Join(dir, nodeModulesDir))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for _, extra := range lookup.NodePath {
		abs, absErr := filepath.Abs(extra)
		if absErr != nil {
			return nil, fmt.Errorf("invalid lookup path %q: %w", extra, absErr)
		}
		dirs = append(dirs, abs)
	}

	return dirs, nil
}
