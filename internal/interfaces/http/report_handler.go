package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-stock/internal/application/report"
)

// ReportHandler descarga de reportes en PDF.
type ReportHandler struct {
	uc   *report.StockReportUseCase
	errs *ErrorMapper
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockReportUseCase, errs *ErrorMapper) *ReportHandler {
	return &ReportHandler{uc: uc, errs: errs}
}

// Stock godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Download(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
