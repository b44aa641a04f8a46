package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itael/inventory-products-api/internal/application/usecase"
)

// DashboardHandler resumen de conteos del panel principal (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Conteos del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}
