//go:build wireinject
// +build wireinject

package di

import (
	"SADE/pkg/config"
	"SADE/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideSeriesSource,
		ProvideSnapshotStore,

		// Use cases
		ProvideIndicatorService,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
