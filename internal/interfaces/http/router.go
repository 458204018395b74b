package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/report"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	SaleLedger *inventory.SaleLedgerUseCase
	Movements  *inventory.MovementUseCase
	Stats      *appanalytics.StatsUseCase
	Report     *report.StockReportUseCase
	Errors     *ErrorMapper
	JWTSecret  string
	JWTIssuer  string
	// HealthCheck verifica la BD en /health; nil = siempre sano.
	HealthCheck func(ctx context.Context) error
	AppName     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	errs := deps.Errors
	if errs == nil {
		errs = NewErrorMapper(nil, false)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": deps.AppName})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")
	authenticated := AuthMiddleware(deps.JWTSecret, deps.JWTIssuer)

	// /users/sync solo requiere token. Se registra antes del grupo protegido: su handler
	// responde sin llamar a Next, así que el middleware de sincronización no llega a ejecutarse.
	userHandler := NewUserHandler(deps.UserUC, errs)
	api.Post("/users/sync", authenticated, userHandler.Sync)

	// Rutas protegidas (Bearer Token + usuario sincronizado)
	protected := api.Group("", authenticated, RequireSyncedUser(deps.UserUC, errs))

	protected.Get("/users/me", userHandler.Me)
	protected.Put("/users/me", userHandler.UpdateMe)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, errs)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/", categoryHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, errs)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Delete("/", supplierHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, errs)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/overview", productHandler.Overview)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleLedger, errs)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Delete("/:id", saleHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.Stats, deps.Movements, errs)
	protected.Get("/stats", dashboardHandler.Stats)
	protected.Get("/movements", dashboardHandler.Movements)

	reportHandler := NewReportHandler(deps.Report, errs)
	protected.Get("/reports/stock", reportHandler.Stock)
}
