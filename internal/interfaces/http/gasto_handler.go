package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// GastoHandler maneja las peticiones HTTP de gastos generales.
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Create POST /api/gastos
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	gasto, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(gasto)
}

// List GET /api/gastos?fecha_desde=&fecha_hasta=&buscar=&tipo=&limit=&offset=
func (h *GastoHandler) List(c *fiber.Ctx) error {
	var in dto.FiltroGastosRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.List(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/gastos/:id
func (h *GastoHandler) GetByID(c *fiber.Ctx) error {
	gasto, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if gasto == nil {
		return notFound(c, "gasto no encontrado")
	}
	return c.JSON(gasto)
}

// Update PUT /api/gastos/:id
func (h *GastoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	gasto, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if gasto == nil {
		return notFound(c, "gasto no encontrado")
	}
	return c.JSON(gasto)
}

// Delete DELETE /api/gastos/:id
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
