package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// ContratistaHandler maneja las peticiones HTTP de contratistas.
type ContratistaHandler struct {
	uc        *usecase.ContratistaUseCase
	archivoUC *usecase.ArchivoUseCase
}

// NewContratistaHandler construye el handler.
func NewContratistaHandler(uc *usecase.ContratistaUseCase, archivoUC *usecase.ArchivoUseCase) *ContratistaHandler {
	return &ContratistaHandler{uc: uc, archivoUC: archivoUC}
}

// Create POST /api/contratistas
func (h *ContratistaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContratistaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	contratista, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contratista)
}

// List GET /api/contratistas?limit=20&offset=0
func (h *ContratistaHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/contratistas/:id
func (h *ContratistaHandler) GetByID(c *fiber.Ctx) error {
	contratista, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if contratista == nil {
		return notFound(c, "contratista no encontrado")
	}
	return c.JSON(contratista)
}

// GetDetalle GET /api/contratistas/:id/detalle
// Devuelve el contratista con sus conceptos agrupados por proyecto asignado.
func (h *ContratistaHandler) GetDetalle(c *fiber.Ctx) error {
	contratista, conceptos, err := h.uc.GetDetalle(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if contratista == nil {
		return notFound(c, "contratista no encontrado")
	}
	return c.JSON(fiber.Map{
		"contratista":            contratista,
		"conceptos_por_proyecto": conceptos,
	})
}

// Update PUT /api/contratistas/:id
func (h *ContratistaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContratistaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	contratista, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	if contratista == nil {
		return notFound(c, "contratista no encontrado")
	}
	return c.JSON(contratista)
}

// Delete DELETE /api/contratistas/:id
func (h *ContratistaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AsignarProyecto POST /api/contratistas/:id/proyectos/:proyectoId
func (h *ContratistaHandler) AsignarProyecto(c *fiber.Ctx) error {
	if err := h.uc.AsignarProyecto(c.Params("id"), c.Params("proyectoId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoverProyecto DELETE /api/contratistas/:id/proyectos/:proyectoId
func (h *ContratistaHandler) RemoverProyecto(c *fiber.Ctx) error {
	if err := h.uc.RemoverProyecto(c.Params("id"), c.Params("proyectoId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SubirDocumento POST /api/contratistas/:id/documentos (multipart, campo "archivo")
func (h *ContratistaHandler) SubirDocumento(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se requiere el archivo multipart 'archivo'"})
	}
	f, err := fh.Open()
	if err != nil {
		return responderError(c, err)
	}
	defer f.Close()
	doc, err := h.archivoUC.Subir(usecase.SubirArchivoInput{
		ContratistaID: c.Params("id"),
		Nombre:        fh.Filename,
		ContentType:   fh.Header.Get("Content-Type"),
		Tamano:        fh.Size,
		Contenido:     f,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ListDocumentos GET /api/contratistas/:id/documentos
func (h *ContratistaHandler) ListDocumentos(c *fiber.Ctx) error {
	docs, err := h.archivoUC.ListByContratista(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"items": docs})
}

// DeleteDocumento DELETE /api/contratistas/:id/documentos/:docId
func (h *ContratistaHandler) DeleteDocumento(c *fiber.Ctx) error {
	if err := h.archivoUC.EliminarDeContratista(c.Params("id"), c.Params("docId")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
