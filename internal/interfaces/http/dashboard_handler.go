package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/stats"
)

// DashboardHandler expone los indicadores financieros del mes.
type DashboardHandler struct {
	uc *stats.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *stats.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
