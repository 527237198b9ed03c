package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/reportes"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// ReporteHandler genera los reportes descargables en PDF y XML. Trabaja
// directo contra los repositorios porque los reportes necesitan la entidad
// completa con sus pagos.
type ReporteHandler struct {
	nominas   repository.NominaRepository
	proyectos repository.ProyectoRepository
}

// NewReporteHandler construye el handler.
func NewReporteHandler(nominas repository.NominaRepository, proyectos repository.ProyectoRepository) *ReporteHandler {
	return &ReporteHandler{nominas: nominas, proyectos: proyectos}
}

// ReporteNomina GET /api/nominas/:id/reporte.pdf
func (h *ReporteHandler) ReporteNomina(c *fiber.Ctx) error {
	nomina, err := h.nominas.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if nomina == nil {
		return notFound(c, "semana de nómina no encontrada")
	}

	pdf, err := reportes.GenerarReporteNomina(nomina)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"nomina-%d-S%02d.pdf\"", nomina.Anio, nomina.NumeroSemana))
	return c.Send(pdf)
}

// EstadoCuenta GET /api/proyectos/:id/estado-cuenta.pdf
func (h *ReporteHandler) EstadoCuenta(c *fiber.Ctx) error {
	proyecto, err := h.proyectos.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if proyecto == nil {
		return notFound(c, "proyecto no encontrado")
	}

	pdf, err := reportes.GenerarEstadoCuenta(proyecto)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=\"estado-cuenta.pdf\"")
	return c.Send(pdf)
}

// PagosXML GET /api/proyectos/:id/pagos.xml
func (h *ReporteHandler) PagosXML(c *fiber.Ctx) error {
	proyecto, err := h.proyectos.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if proyecto == nil {
		return notFound(c, "proyecto no encontrado")
	}

	xml, err := reportes.ExportarPagosXML(proyecto)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(xml)
}
