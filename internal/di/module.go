package di

import (
	"github.com/polkiloo/attivita/internal/app"
	"github.com/polkiloo/attivita/internal/config"
	"github.com/polkiloo/attivita/internal/logger"
	"github.com/polkiloo/attivita/internal/pkg/auth"
	"github.com/polkiloo/attivita/internal/server/http/handlers"
	"github.com/polkiloo/attivita/internal/server/http/router"
	"github.com/polkiloo/attivita/internal/storage/postgres"
	"github.com/polkiloo/attivita/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.PlannerFacade) handlers.PlannerFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
