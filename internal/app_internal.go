package internal

import (
	"github.com/rios0rios0/vitepatch/internal/domain/entities"
	"github.com/rios0rios0/vitepatch/internal/infrastructure/controllers"
)

// AppInternal holds every controller exposed on the command line.
type AppInternal struct {
	controllers     []entities.Controller
	applyController *controllers.ApplyController
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(
	controllerList *[]entities.Controller,
	applyController *controllers.ApplyController,
) *AppInternal {
	return &AppInternal{
		controllers:     *controllerList,
		applyController: applyController,
	}
}

// GetControllers returns the controllers bound as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetApplyController returns the controller run by the bare root command.
func (it *AppInternal) GetApplyController() *controllers.ApplyController {
	return it.applyController
}
