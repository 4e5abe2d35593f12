package commands

import (
	"context"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// Assert is the interface for the read-only pre-flight check.
type Assert interface {
	Execute(ctx context.Context, lookup entities.Lookup) entities.PatchResult
}

// AssertCommand checks that the supported version is installed and already patched. It only
// looks for the new condition and never inspects the designated line, so a file that is not
// patched ends in OutcomeNotPatched even when the line no longer matches.
type AssertCommand struct {
	patch *PatchCommand
}

// NewAssertCommand creates a new AssertCommand.
func NewAssertCommand(patch *PatchCommand) *AssertCommand {
	return &AssertCommand{patch: patch}
}

// Execute never writes and never logs above debug level.
func (it *AssertCommand) Execute(ctx context.Context, lookup entities.Lookup) entities.PatchResult {
	result := it.patch.inspect(ctx, lookup)
	if result.Outcome == "" {
		result.Outcome = entities.OutcomeNotPatched
	}
	return result
}
