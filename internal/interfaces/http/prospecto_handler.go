package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// ProspectoHandler maneja las peticiones HTTP de prospectos, sus notas y la
// conversión a proyecto.
type ProspectoHandler struct {
	uc *usecase.ProspectoUseCase
}

// NewProspectoHandler construye el handler.
func NewProspectoHandler(uc *usecase.ProspectoUseCase) *ProspectoHandler {
	return &ProspectoHandler{uc: uc}
}

// Create POST /api/prospectos
func (h *ProspectoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProspectoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	prospecto, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(prospecto)
}

// List GET /api/prospectos?estado=&cliente=&buscar=&limit=&offset=
func (h *ProspectoHandler) List(c *fiber.Ctx) error {
	var in dto.FiltroProspectosRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.List(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/prospectos/:id
func (h *ProspectoHandler) GetByID(c *fiber.Ctx) error {
	prospecto, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if prospecto == nil {
		return notFound(c, "prospecto no encontrado")
	}
	return c.JSON(prospecto)
}

// Update PUT /api/prospectos/:id
func (h *ProspectoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProspectoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	prospecto, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if prospecto == nil {
		return notFound(c, "prospecto no encontrado")
	}
	return c.JSON(prospecto)
}

// Delete DELETE /api/prospectos/:id
func (h *ProspectoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddNota POST /api/prospectos/:id/notas
func (h *ProspectoHandler) AddNota(c *fiber.Ctx) error {
	var in dto.CreateNotaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	prospecto, err := h.uc.AddNota(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if prospecto == nil {
		return notFound(c, "prospecto no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(prospecto)
}

// DeleteNota DELETE /api/prospectos/:id/notas/:notaId
func (h *ProspectoHandler) DeleteNota(c *fiber.Ctx) error {
	if err := h.uc.DeleteNota(c.Params("id"), c.Params("notaId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Convertir POST /api/prospectos/:id/convertir
func (h *ProspectoHandler) Convertir(c *fiber.Ctx) error {
	prospecto, err := h.uc.ConvertirAProyecto(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if prospecto == nil {
		return notFound(c, "prospecto no encontrado")
	}
	return c.JSON(prospecto)
}
