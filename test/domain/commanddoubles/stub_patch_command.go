//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/vitepatch/internal/domain/commands"
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// StubPatchCommand is a stub implementation of commands.Patch.
type StubPatchCommand struct {
	ExecuteCallCount int
	Result           entities.PatchResult
	LastOpts         entities.PatchOptions
}

var _ commands.Patch = (*StubPatchCommand)(nil)

func (s *StubPatchCommand) Execute(
	_ context.Context,
	opts entities.PatchOptions,
) entities.PatchResult {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result
}
