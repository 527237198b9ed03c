package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// TrabajadorHandler maneja el catálogo de trabajadores.
type TrabajadorHandler struct {
	uc *usecase.TrabajadorUseCase
}

// NewTrabajadorHandler construye el handler.
func NewTrabajadorHandler(uc *usecase.TrabajadorUseCase) *TrabajadorHandler {
	return &TrabajadorHandler{uc: uc}
}

// Create POST /api/trabajadores
func (h *TrabajadorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrabajadorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	trabajador, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(trabajador)
}

// List GET /api/trabajadores
func (h *TrabajadorHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/trabajadores/:id
func (h *TrabajadorHandler) GetByID(c *fiber.Ctx) error {
	trabajador, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if trabajador == nil {
		return notFound(c, "trabajador no encontrado")
	}
	return c.JSON(trabajador)
}

// Update PUT /api/trabajadores/:id
func (h *TrabajadorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTrabajadorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	trabajador, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if trabajador == nil {
		return notFound(c, "trabajador no encontrado")
	}
	return c.JSON(trabajador)
}

// Delete DELETE /api/trabajadores/:id
func (h *TrabajadorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
