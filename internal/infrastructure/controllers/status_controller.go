package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/vitepatch/internal/domain/commands"
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Patch
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Patch) *StatusController {
	return &StatusController{command: command}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status",
		Short: "Show the patch state of the installed vite package",
		Long:  `Resolve the installed vite package and report whether it can be or already is patched.`,
	}
}

// Execute logs the dry-run result. It only fails when the state cannot be determined.
func (it *StatusController) Execute(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	opts.DryRun = true

	result := it.command.Execute(context.Background(), opts)
	fields := logger.Fields{
		"outcome": result.Outcome,
		"version": result.Version,
		"file":    result.File,
	}

	switch result.Outcome {
	case entities.OutcomeFailed:
		return result.Err
	case entities.OutcomeVersionMismatch:
		logger.WithFields(fields).Warn(result.Err)
	default:
		logger.WithFields(fields).Infof("Patched: %v", result.Patched())
	}
	return nil
}
