//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/notes-assistant/internal/bootstrap"
	"github.com/yanqian/notes-assistant/internal/domain/notes"
	"github.com/yanqian/notes-assistant/internal/infra/config"
	httpiface "github.com/yanqian/notes-assistant/internal/interface/http"
	"github.com/yanqian/notes-assistant/pkg/metrics"
)

var serviceSet = wire.NewSet(
	config.Load,
	provideLogger,
	provideNotesConfig,
	provideGenerator,
	metrics.NewRecorder,
	notes.NewService,
)

func initializeApp(path config.Path) (*bootstrap.App, error) {
	wire.Build(
		serviceSet,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

func initializeService(path config.Path) (notes.Service, error) {
	wire.Build(serviceSet)
	return nil, nil
}
