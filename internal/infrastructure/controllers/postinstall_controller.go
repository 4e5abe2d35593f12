package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/vitepatch/internal/domain/commands"
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// PostinstallController handles the "postinstall" subcommand run by the package manager.
type PostinstallController struct {
	command commands.Patch
}

// NewPostinstallController creates a new PostinstallController.
func NewPostinstallController(command commands.Patch) *PostinstallController {
	return &PostinstallController{command: command}
}

// GetBind returns the Cobra command metadata for the postinstall controller.
func (it *PostinstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "postinstall",
		Short: "Patch vite from a package installation hook",
		Long: `Patch the installed vite package from a postinstall script.
An unsupported vite version only prints a warning and exits successfully,
so the host installation is not aborted.`,
	}
}

// Execute runs the patch with the install-hook reporting policy.
func (it *PostinstallController) Execute(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	result := it.command.Execute(context.Background(), opts)
	return commands.InstallHookPolicy(result)
}
