package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/vitepatch/internal/domain/commands"
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// ApplyController handles the "apply" subcommand and the bare root command.
type ApplyController struct {
	command commands.Patch
}

// NewApplyController creates a new ApplyController.
func NewApplyController(command commands.Patch) *ApplyController {
	return &ApplyController{command: command}
}

// GetBind returns the Cobra command metadata for the apply controller.
func (it *ApplyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "apply",
		Short: "Patch the installed vite package",
		Long: `Patch the installed vite package if it is not patched yet.
Fails when the installed vite version is not supported or when the
target line no longer matches what the patch expects.`,
	}
}

// Execute runs the patch and reports it interactively.
func (it *ApplyController) Execute(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	result := it.command.Execute(context.Background(), opts)
	return commands.InteractivePolicy(result)
}
