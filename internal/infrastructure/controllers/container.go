package controllers

import (
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewApplyController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewPostinstallController); err != nil {
		return err
	}
	if err := container.Provide(NewStatusController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	applyController *ApplyController,
	checkController *CheckController,
	postinstallController *PostinstallController,
	statusController *StatusController,
) *[]entities.Controller {
	return &[]entities.Controller{
		applyController,
		checkController,
		postinstallController,
		statusController,
	}
}
