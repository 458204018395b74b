package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
)

// DashboardHandler endpoints de solo lectura del panel: estadísticas e historial de movimientos.
type DashboardHandler struct {
	stats     *appanalytics.StatsUseCase
	movements *inventory.MovementUseCase
	errs      *ErrorMapper
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(stats *appanalytics.StatsUseCase, movements *inventory.MovementUseCase, errs *ErrorMapper) *DashboardHandler {
	return &DashboardHandler{stats: stats, movements: movements, errs: errs}
}

// Stats godoc
// @Summary      Estadísticas del inventario
// @Description  totalProducts, lowStock (stock <= 5), recentMovements (ventas + altas de los últimos 30 días) y stockValue.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.Compute(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos
// @Description  Compras (alta de producto) y ventas, más recientes primero. No se persisten.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *DashboardHandler) Movements(c *fiber.Ctx) error {
	out, err := h.movements.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(out)
}
