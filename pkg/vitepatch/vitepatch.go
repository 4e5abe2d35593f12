// Package vitepatch lets a dependent build process check for and apply the vite
// import.meta.glob workaround without shelling out to the CLI.
package vitepatch

import (
	"context"

	"github.com/rios0rios0/vitepatch/internal/domain/commands"
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
	"github.com/rios0rios0/vitepatch/internal/infrastructure/repositories"
)

// Error kinds, re-exported for errors.Is checks by callers.
var (
	ErrDependencyNotFound = entities.ErrDependencyNotFound
	ErrTargetNotFound     = entities.ErrTargetNotFound
	ErrPatchPrecondition  = entities.ErrPatchPrecondition
	ErrPatchNotApplied    = entities.ErrPatchNotApplied
	ErrVersionMismatch    = entities.ErrVersionMismatch
)

// VersionMismatchError is re-exported for errors.As checks by callers.
type VersionMismatchError = entities.VersionMismatchError

// Options configures Apply.
type Options struct {
	NodePath    []string // extra lookup directories searched after the node_modules walk
	DryRun      bool     // report without writing
	InstallHook bool     // demote an unsupported vite version to a warning
}

// IsInstalled reports whether the vite package resolved from projectDir is patched.
// An unsupported vite version is returned as an error.
func IsInstalled(projectDir string) (bool, error) {
	result := newAssertCommand().Execute(context.Background(), entities.Lookup{ProjectDir: projectDir})
	if result.Outcome == entities.OutcomeNotPatched {
		return false, nil
	}
	if result.Err != nil {
		return false, result.Err
	}
	return result.Patched(), nil
}

// Assert returns an error unless the supported vite version is installed and patched.
// It never writes and never logs.
func Assert(projectDir string) error {
	result := newAssertCommand().Execute(context.Background(), entities.Lookup{ProjectDir: projectDir})
	return commands.AssertPolicy(result)
}

// Apply patches the vite package resolved from projectDir.
func Apply(projectDir string, opts Options) error {
	result := newCommand().Execute(context.Background(), entities.PatchOptions{
		Lookup: entities.Lookup{ProjectDir: projectDir, NodePath: opts.NodePath},
		DryRun: opts.DryRun,
	})
	if opts.InstallHook {
		return commands.InstallHookPolicy(result)
	}
	return commands.InteractivePolicy(result)
}

func newAssertCommand() *commands.AssertCommand {
	return commands.NewAssertCommand(newCommand())
}

func newCommand() *commands.PatchCommand {
	return commands.NewPatchCommand(
		entities.ViteIssue2390,
		repositories.NewNodeDependencyRepository(),
		repositories.NewFileArtifactRepository(),
	)
}
