package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// ConceptoHandler maneja las peticiones HTTP de conceptos de obra y sus pagos.
type ConceptoHandler struct {
	uc *usecase.ConceptoUseCase
}

// NewConceptoHandler construye el handler.
func NewConceptoHandler(uc *usecase.ConceptoUseCase) *ConceptoHandler {
	return &ConceptoHandler{uc: uc}
}

// Create POST /api/conceptos
func (h *ConceptoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConceptoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	concepto, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(concepto)
}

// ListByContratistaYProyecto GET /api/conceptos?contratista_id=&proyecto_id=
func (h *ConceptoHandler) ListByContratistaYProyecto(c *fiber.Ctx) error {
	contratistaID := c.Query("contratista_id")
	proyectoID := c.Query("proyecto_id")
	if contratistaID == "" || proyectoID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contratista_id y proyecto_id son requeridos"})
	}
	list, err := h.uc.ListByContratistaYProyecto(contratistaID, proyectoID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"items": list})
}

// GetByID GET /api/conceptos/:id
func (h *ConceptoHandler) GetByID(c *fiber.Ctx) error {
	concepto, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if concepto == nil {
		return notFound(c, "concepto no encontrado")
	}
	return c.JSON(concepto)
}

// Update PUT /api/conceptos/:id
func (h *ConceptoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConceptoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	concepto, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if concepto == nil {
		return notFound(c, "concepto no encontrado")
	}
	return c.JSON(concepto)
}

// Delete DELETE /api/conceptos/:id
func (h *ConceptoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPago POST /api/conceptos/:id/pagos
func (h *ConceptoHandler) AddPago(c *fiber.Ctx) error {
	var in dto.CreatePagoConceptoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	concepto, err := h.uc.AddPago(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if concepto == nil {
		return notFound(c, "concepto no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(concepto)
}

// DeletePago DELETE /api/conceptos/:id/pagos/:pagoId
func (h *ConceptoHandler) DeletePago(c *fiber.Ctx) error {
	if err := h.uc.DeletePago(c.Params("id"), c.Params("pagoId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
