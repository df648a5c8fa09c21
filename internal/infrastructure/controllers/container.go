package controllers

import (
	"github.com/rios0rios0/changesets/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewAddController); err != nil {
		return err
	}
	if err := container.Provide(NewStatusController); err != nil {
		return err
	}
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewParseController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	addController *AddController,
	statusController *StatusController,
	versionController *VersionController,
	parseController *ParseController,
) *[]entities.Controller {
	return &[]entities.Controller{
		addController,
		statusController,
		versionController,
		parseController,
	}
}
