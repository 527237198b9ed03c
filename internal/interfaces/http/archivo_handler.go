package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

// ArchivoHandler maneja el administrador de archivos generales. Los documentos
// de contratista se exponen en ContratistaHandler.
type ArchivoHandler struct {
	uc *usecase.ArchivoUseCase
}

// NewArchivoHandler construye el handler.
func NewArchivoHandler(uc *usecase.ArchivoUseCase) *ArchivoHandler {
	return &ArchivoHandler{uc: uc}
}

// Subir POST /api/archivos (multipart, campo "archivo")
func (h *ArchivoHandler) Subir(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "falta el campo multipart 'archivo'",
		})
	}
	f, err := fh.Open()
	if err != nil {
		return responderError(c, err)
	}
	defer f.Close()

	doc, err := h.uc.Subir(usecase.SubirArchivoInput{
		Nombre:      fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Tamano:      fh.Size,
		Contenido:   f,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// Buscar GET /api/archivos?buscar=&limit=&offset=
func (h *ArchivoHandler) Buscar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.Buscar(c.Query("buscar"), page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(list)
}

// Descargar GET /api/archivos/:id/descargar
func (h *ArchivoHandler) Descargar(c *fiber.Ctx) error {
	doc, rc, err := h.uc.Descargar(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}

	ct := doc.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", strconv.Quote(doc.Nombre)))
	return c.SendStream(rc, int(doc.Tamano))
}

// Eliminar DELETE /api/archivos/:id
func (h *ArchivoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
