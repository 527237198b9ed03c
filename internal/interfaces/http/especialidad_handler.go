package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// EspecialidadHandler maneja el catálogo de especialidades.
type EspecialidadHandler struct {
	uc *usecase.EspecialidadUseCase
}

// NewEspecialidadHandler construye el handler.
func NewEspecialidadHandler(uc *usecase.EspecialidadUseCase) *EspecialidadHandler {
	return &EspecialidadHandler{uc: uc}
}

// Create POST /api/especialidades
func (h *EspecialidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEspecialidadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	especialidad, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(especialidad)
}

// List GET /api/especialidades
func (h *EspecialidadHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"items": list})
}

// GetByID GET /api/especialidades/:id
func (h *EspecialidadHandler) GetByID(c *fiber.Ctx) error {
	especialidad, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if especialidad == nil {
		return notFound(c, "especialidad no encontrada")
	}
	return c.JSON(especialidad)
}

// Update PUT /api/especialidades/:id
func (h *EspecialidadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEspecialidadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	especialidad, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if especialidad == nil {
		return notFound(c, "especialidad no encontrada")
	}
	return c.JSON(especialidad)
}

// Delete DELETE /api/especialidades/:id
func (h *EspecialidadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
