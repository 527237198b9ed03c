package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// NominaHandler maneja las peticiones HTTP de nómina semanal: consulta,
// generación de años, cierre y pagos.
type NominaHandler struct {
	uc *usecase.NominaUseCase
}

// NewNominaHandler construye el handler.
func NewNominaHandler(uc *usecase.NominaUseCase) *NominaHandler {
	return &NominaHandler{uc: uc}
}

// List GET /api/nominas?anio=&numero_semana=&trabajador_id=&estado=
func (h *NominaHandler) List(c *fiber.Ctx) error {
	var in dto.FiltroNominasRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.List(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// Actual GET /api/nominas/actual
func (h *NominaHandler) Actual(c *fiber.Ctx) error {
	nomina, err := h.uc.Actual()
	if err != nil {
		return responderError(c, err)
	}
	if nomina == nil {
		return notFound(c, "no hay semana generada para la fecha actual")
	}
	return c.JSON(nomina)
}

// GetByID GET /api/nominas/:id
func (h *NominaHandler) GetByID(c *fiber.Ctx) error {
	nomina, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if nomina == nil {
		return notFound(c, "semana de nómina no encontrada")
	}
	return c.JSON(nomina)
}

// Cerrar POST /api/nominas/:id/cerrar
func (h *NominaHandler) Cerrar(c *fiber.Ctx) error {
	nomina, err := h.uc.Cerrar(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if nomina == nil {
		return notFound(c, "semana de nómina no encontrada")
	}
	return c.JSON(nomina)
}

// Reabrir POST /api/nominas/:id/reabrir
func (h *NominaHandler) Reabrir(c *fiber.Ctx) error {
	nomina, err := h.uc.Reabrir(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if nomina == nil {
		return notFound(c, "semana de nómina no encontrada")
	}
	return c.JSON(nomina)
}

// Anios GET /api/nominas/anios
func (h *NominaHandler) Anios(c *fiber.Ctx) error {
	anios, err := h.uc.AniosDisponibles()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(anios)
}

// GenerarAnio POST /api/nominas/anios/:anio
func (h *NominaHandler) GenerarAnio(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Params("anio"))
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año inválido"})
	}
	resp, err := h.uc.GenerarSemanas(c.Context(), anio)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// EliminarAnio DELETE /api/nominas/anios/:anio
func (h *NominaHandler) EliminarAnio(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Params("anio"))
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año inválido"})
	}
	if err := h.uc.EliminarAnio(c.Context(), anio); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPago POST /api/nominas/:id/pagos
func (h *NominaHandler) AddPago(c *fiber.Ctx) error {
	var in dto.CreatePagoNominaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	nomina, err := h.uc.AddPago(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if nomina == nil {
		return notFound(c, "semana de nómina no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(nomina)
}

// UpdatePago PUT /api/nominas/:id/pagos/:pagoId
func (h *NominaHandler) UpdatePago(c *fiber.Ctx) error {
	var in dto.UpdatePagoNominaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	nomina, err := h.uc.UpdatePago(c.Params("id"), c.Params("pagoId"), in)
	if err != nil {
		return responderError(c, err)
	}
	if nomina == nil {
		return notFound(c, "semana de nómina no encontrada")
	}
	return c.JSON(nomina)
}

// DeletePago DELETE /api/nominas/:id/pagos/:pagoId
func (h *NominaHandler) DeletePago(c *fiber.Ctx) error {
	if err := h.uc.DeletePago(c.Params("id"), c.Params("pagoId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
