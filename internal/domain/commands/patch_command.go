package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
	"github.com/rios0rios0/vitepatch/internal/domain/repositories"
)

// Patch is the interface for the core patch operation shared by every entry point.
type Patch interface {
	Execute(ctx context.Context, opts entities.PatchOptions) entities.PatchResult
}

// PatchCommand applies a PatchSignature to the installed dependency. It reads the artifact
// fresh on every call and writes it at most once.
type PatchCommand struct {
	signature    entities.PatchSignature
	dependencies repositories.DependencyRepository
	artifacts    repositories.ArtifactRepository
}

// NewPatchCommand creates a new PatchCommand.
func NewPatchCommand(
	signature entities.PatchSignature,
	dependencies repositories.DependencyRepository,
	artifacts repositories.ArtifactRepository,
) *PatchCommand {
	return &PatchCommand{
		signature:    signature,
		dependencies: dependencies,
		artifacts:    artifacts,
	}
}

// Execute walks UNCHECKED -> VERSION_OK | VERSION_MISMATCH and, from VERSION_OK, ends in
// ALREADY_PATCHED, PATCH_APPLIED or PATCH_FAILED. With DryRun set the artifact is never
// written and a patchable file ends in OutcomeWouldApply.
func (it *PatchCommand) Execute(ctx context.Context, opts entities.PatchOptions) entities.PatchResult {
	result := it.inspect(ctx, opts.Lookup)
	if result.Outcome != "" {
		return result
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.Outcome = entities.OutcomeFailed
		result.Err = ctxErr
		return result
	}

	if applyErr := it.ApplyPatch(result.File, opts.DryRun); applyErr != nil {
		result.Outcome = entities.OutcomeFailed
		result.Err = applyErr
		return result
	}

	result.Outcome = entities.OutcomeApplied
	if opts.DryRun {
		result.Outcome = entities.OutcomeWouldApply
	}
	return result
}

// inspect runs the read-only steps shared with AssertCommand: locate, version check, target
// resolution and the idempotence check. The returned result has an empty Outcome when the
// supported version is installed and the artifact is not patched yet.
func (it *PatchCommand) inspect(ctx context.Context, lookup entities.Lookup) entities.PatchResult {
	dependency, err := it.Locate(ctx, lookup)
	if err != nil {
		return entities.PatchResult{Outcome: entities.OutcomeFailed, Err: err}
	}
	logger.Debugf("Resolved %s %s at %s", dependency.Name, dependency.Version, dependency.Root)

	result := entities.PatchResult{Version: dependency.Version}

	if mismatch := it.CheckVersion(dependency.Version); mismatch != nil {
		result.Outcome = entities.OutcomeVersionMismatch
		result.Err = mismatch
		return result
	}

	target, err := it.ResolveTarget(dependency)
	if err != nil {
		result.Outcome = entities.OutcomeFailed
		result.Err = err
		return result
	}
	result.File = target.File
	logger.Debugf("Patch target: %s", target.File)

	artifact, err := it.ReadTarget(target.File)
	if err != nil {
		result.Outcome = entities.OutcomeFailed
		result.Err = err
		return result
	}

	if it.IsAlreadyPatched(artifact.Content) {
		result.Outcome = entities.OutcomeAlreadyPatched
	}
	return result
}

// Locate resolves the installed dependency through the Node-style lookup.
func (it *PatchCommand) Locate(ctx context.Context, lookup entities.Lookup) (*entities.Dependency, error) {
	return it.dependencies.Locate(ctx, lookup, it.signature.Dependency)
}

// ResolveTarget maps a missing artifact to entities.ErrTargetNotFound with the operator hint.
func (it *PatchCommand) ResolveTarget(dependency *entities.Dependency) (*entities.Target, error) {
	file, err := it.dependencies.ResolveFile(dependency, it.signature.File)
	if err != nil {
		if errors.Is(err, entities.ErrTargetNotFound) {
			return nil, fmt.Errorf("%w. %s", err, entities.PatchErrorHint)
		}
		return nil, err
	}
	return &entities.Target{Dependency: *dependency, File: file}, nil
}

// ReadTarget loads the full artifact text and splits it into lines.
func (it *PatchCommand) ReadTarget(path string) (*entities.TargetArtifact, error) {
	content, err := it.artifacts.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return entities.NewTargetArtifact(path, content), nil
}

// IsAlreadyPatched reports whether the new condition is present anywhere in text.
func (it *PatchCommand) IsAlreadyPatched(text string) bool {
	return strings.Contains(text, it.signature.NewCondition)
}

// CheckVersion returns a *entities.VersionMismatchError when version is not exactly the
// supported one, nil otherwise.
func (it *PatchCommand) CheckVersion(version string) error {
	if version == it.signature.SupportedVersion {
		return nil
	}
	return &entities.VersionMismatchError{
		Dependency: it.signature.Dependency,
		Supported:  it.signature.SupportedVersion,
		Installed:  version,
	}
}

// ApplyPatch re-reads path, conjoins the new condition with the single occurrence of the old
// condition on the designated line and overwrites the file. Nothing is written when
// dryRun is set or when any precondition fails.
func (it *PatchCommand) ApplyPatch(path string, dryRun bool) error {
	artifact, err := it.ReadTarget(path)
	if err != nil {
		return err
	}

	line, err := artifact.Line(it.signature.Line)
	if err != nil {
		return fmt.Errorf("%w. %s", err, entities.PatchErrorHint)
	}

	if !strings.Contains(line, it.signature.OldCondition) {
		return fmt.Errorf(
			"%w: line %d of %s does not contain %q. %s",
			entities.ErrPatchPrecondition, it.signature.Line, path,
			it.signature.OldCondition, entities.PatchErrorHint,
		)
	}

	parts := strings.Split(line, it.signature.OldCondition)
	if len(parts) != 2 { //nolint:mnd // exactly one occurrence
		return fmt.Errorf(
			"%w: line %d of %s contains %q %d times. %s",
			entities.ErrPatchPrecondition, it.signature.Line, path,
			it.signature.OldCondition, len(parts)-1, entities.PatchErrorHint,
		)
	}

	patched := parts[0] + it.signature.PatchedCondition() + parts[1]
	content, err := artifact.ReplaceLine(it.signature.Line, patched)
	if err != nil {
		return err
	}

	if dryRun {
		return nil
	}

	if writeErr := it.artifacts.Write(path, content); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return nil
}
