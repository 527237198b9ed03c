package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// ProyectoHandler maneja las peticiones HTTP de proyectos y sus pagos.
type ProyectoHandler struct {
	uc *usecase.ProyectoUseCase
}

// NewProyectoHandler construye el handler.
func NewProyectoHandler(uc *usecase.ProyectoUseCase) *ProyectoHandler {
	return &ProyectoHandler{uc: uc}
}

// Create POST /api/proyectos
func (h *ProyectoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	proyecto, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proyecto)
}

// List GET /api/proyectos?limit=20&offset=0
func (h *ProyectoHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/proyectos/:id
func (h *ProyectoHandler) GetByID(c *fiber.Ctx) error {
	proyecto, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if proyecto == nil {
		return notFound(c, "proyecto no encontrado")
	}
	return c.JSON(proyecto)
}

// Update PUT /api/proyectos/:id
func (h *ProyectoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	proyecto, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if proyecto == nil {
		return notFound(c, "proyecto no encontrado")
	}
	return c.JSON(proyecto)
}

// Delete DELETE /api/proyectos/:id
func (h *ProyectoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPago POST /api/proyectos/:id/pagos
func (h *ProyectoHandler) AddPago(c *fiber.Ctx) error {
	var in dto.CreatePagoProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	proyecto, err := h.uc.AddPago(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if proyecto == nil {
		return notFound(c, "proyecto no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(proyecto)
}

// DeletePago DELETE /api/proyectos/:id/pagos/:pagoId
func (h *ProyectoHandler) DeletePago(c *fiber.Ctx) error {
	if err := h.uc.DeletePago(c.Params("id"), c.Params("pagoId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AsignarTrabajador POST /api/proyectos/:id/trabajadores/:trabajadorId
func (h *ProyectoHandler) AsignarTrabajador(c *fiber.Ctx) error {
	if err := h.uc.AsignarTrabajador(c.Params("id"), c.Params("trabajadorId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoverTrabajador DELETE /api/proyectos/:id/trabajadores/:trabajadorId
func (h *ProyectoHandler) RemoverTrabajador(c *fiber.Ctx) error {
	if err := h.uc.RemoverTrabajador(c.Params("id"), c.Params("trabajadorId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
