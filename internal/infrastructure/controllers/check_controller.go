package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/vitepatch/internal/domain/commands"
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// CheckController handles the "check" subcommand (pre-flight assertion).
type CheckController struct {
	command commands.Assert
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Assert) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Fail unless the installed vite package is patched",
		Long: `Verify that the supported vite version is installed and already patched.
Intended to run before a dependent build; it never modifies any file.`,
	}
}

// Execute asserts the patch is present without writing.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	result := it.command.Execute(context.Background(), opts.Lookup)
	if assertErr := commands.AssertPolicy(result); assertErr != nil {
		return assertErr
	}

	logger.Infof("Vite %s is patched.", result.Version)
	return nil
}
