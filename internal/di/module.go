package di

import (
	"go.uber.org/fx"

	"github.com/vitrine/catalog/internal/app"
	"github.com/vitrine/catalog/internal/config"
	"github.com/vitrine/catalog/internal/logger"
	"github.com/vitrine/catalog/internal/pkg/auth"
	"github.com/vitrine/catalog/internal/server/http/handlers"
	"github.com/vitrine/catalog/internal/server/http/router"
	"github.com/vitrine/catalog/internal/storage/postgres"
	"github.com/vitrine/catalog/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.CatalogFacade) handlers.CatalogFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
