package router

import (
	app "github.com/shoppy/storefront/internal/application"
	"github.com/shoppy/storefront/internal/container"
	pginfra "github.com/shoppy/storefront/internal/infrastructure/postgres"
	handlers "github.com/shoppy/storefront/internal/interface/http"
	"github.com/shoppy/storefront/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)

	userSvc := app.NewUserService(
		userRepo,
		container.GetTokens(),
		container.GetRabbitPub(),
		logger,
		cfg.CartSeedSize,
		cfg.MailSendEnabled,
	)
	cartSvc := app.NewCartService(userRepo, logger)
	productSvc := app.NewProductService(productRepo, logger, container.GetES(), cfg.ESProductsIndex)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, logger), container.GetTokens()))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, logger)))
	r.Add(modules.NewUploadModule(handlers.NewUploadHandler(container.GetGCS(), cfg.GCSBucket, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
