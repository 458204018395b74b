package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/gestion-stock/docs"
	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/report"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gestion-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-stock/internal/interfaces/http"
	"github.com/jhoicas/gestion-stock/pkg/config"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

// repositories agrupa la persistencia elegida por DB_DRIVER.
type repositories struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
	sales      repository.SaleRepository
	stats      repository.StatsRepository
	txRunner   inventory.TxRunner
	health     func(ctx context.Context) error
	close      func()
}

// @title                       Gestión de Stock API
// @version                     1.0
// @description                 Inventario por usuario: categorías, proveedores, productos y ventas.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer repos.close()

	userUC := usecase.NewUserUseCase(repos.users)
	categoryUC := usecase.NewCategoryUseCase(repos.categories)
	supplierUC := usecase.NewSupplierUseCase(repos.suppliers)
	productUC := usecase.NewProductUseCase(repos.products, repos.categories, repos.suppliers)
	saleLedger := inventory.NewSaleLedgerUseCase(repos.txRunner, repos.sales)
	movementUC := inventory.NewMovementUseCase(repos.products, repos.sales)
	statsUC := appanalytics.NewStatsUseCase(repos.stats)
	reportUC := report.NewStockReportUseCase(repos.products, repos.users, infrapdf.NewMarotoStockReportGenerator(cfg.App.Locale))

	errs := httpRouter.NewErrorMapper(log, cfg.App.IsProduction())
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: errs.FiberErrorHandler(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Gestión de Stock API",
		}))
	} else {
		app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
			doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
			if err != nil {
				return err
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(doc)
		})
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:      userUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		SaleLedger:  saleLedger,
		Movements:   movementUC,
		Stats:       statsUC,
		Report:      reportUC,
		Errors:      errs,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		HealthCheck: repos.health,
		AppName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repositories{
			users:      memory.NewUserRepository(store),
			categories: memory.NewCategoryRepository(store),
			suppliers:  memory.NewSupplierRepository(store),
			products:   memory.NewProductRepository(store),
			sales:      memory.NewSaleRepository(store),
			stats:      memory.NewStatsRepository(store),
			txRunner:   memory.NewTxRunner(store),
			close:      func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &repositories{
		users:      postgres.NewUserRepository(pool),
		categories: postgres.NewCategoryRepository(pool),
		suppliers:  postgres.NewSupplierRepository(pool),
		products:   postgres.NewProductRepository(pool),
		sales:      postgres.NewSaleRepository(pool),
		stats:      postgres.NewStatsRepository(pool),
		txRunner:   postgres.NewTxRunner(pool),
		health:     pool.Ping,
		close:      pool.Close,
	}, nil
}
