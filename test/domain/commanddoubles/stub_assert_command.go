//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/vitepatch/internal/domain/commands"
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// StubAssertCommand is a stub implementation of commands.Assert.
type StubAssertCommand struct {
	ExecuteCallCount int
	Result           entities.PatchResult
	LastLookup       entities.Lookup
}

var _ commands.Assert = (*StubAssertCommand)(nil)

func (s *StubAssertCommand) Execute(
	_ context.Context,
	lookup entities.Lookup,
) entities.PatchResult {
	s.ExecuteCallCount++
	s.LastLookup = lookup
	return s.Result
}
