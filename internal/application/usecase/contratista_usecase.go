package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// ContratistaUseCase casos de uso para contratistas: CRUD, asignación de
// proyectos y el detalle compuesto (conceptos por proyecto asignado).
type ContratistaUseCase struct {
	repo      repository.ContratistaRepository
	conceptos repository.ConceptoRepository
	txRunner  ContratistaTxRunner
}

// NewContratistaUseCase construye el caso de uso.
func NewContratistaUseCase(
	repo repository.ContratistaRepository,
	conceptos repository.ConceptoRepository,
	txRunner ContratistaTxRunner,
) *ContratistaUseCase {
	return &ContratistaUseCase{repo: repo, conceptos: conceptos, txRunner: txRunner}
}

// Create da de alta un contratista. Nombre, RFC y teléfono son obligatorios.
func (uc *ContratistaUseCase) Create(in dto.CreateContratistaRequest) (*dto.ContratistaResponse, error) {
	if in.Nombre == "" || in.RFC == "" || in.Telefono == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Contratista{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		RFC:            in.RFC,
		Telefono:       in.Telefono,
		EspecialidadID: in.EspecialidadID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toContratistaResponse(c), nil
}

// GetByID obtiene un contratista con especialidad, documentos y proyectos.
func (uc *ContratistaUseCase) GetByID(id string) (*dto.ContratistaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toContratistaResponse(c), nil
}

// GetDetalle devuelve el contratista más sus conceptos agrupados por proyecto
// asignado: una consulta de conceptos por cada proyecto, fusionadas en un mapa
// con el ID del proyecto como llave.
func (uc *ContratistaUseCase) GetDetalle(id string) (*dto.ContratistaResponse, map[string][]dto.ConceptoResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, nil
	}
	porProyecto := make(map[string][]dto.ConceptoResponse, len(c.Proyectos))
	for _, pr := range c.Proyectos {
		conceptos, err := uc.conceptos.ListByContratistaYProyecto(id, pr.ID)
		if err != nil {
			return nil, nil, err
		}
		items := make([]dto.ConceptoResponse, 0, len(conceptos))
		for _, con := range conceptos {
			items = append(items, *toConceptoResponse(con))
		}
		porProyecto[pr.ID] = items
	}
	return toContratistaResponse(c), porProyecto, nil
}

// Update actualiza un contratista.
func (uc *ContratistaUseCase) Update(id string, in dto.UpdateContratistaRequest) (*dto.ContratistaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Nombre = *in.Nombre
	}
	if in.RFC != nil {
		if *in.RFC == "" {
			return nil, domain.ErrInvalidInput
		}
		c.RFC = *in.RFC
	}
	if in.Telefono != nil {
		if *in.Telefono == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Telefono = *in.Telefono
	}
	if in.EspecialidadID != nil {
		c.EspecialidadID = *in.EspecialidadID
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toContratistaResponse(c), nil
}

// List lista contratistas con paginación.
func (uc *ContratistaUseCase) List(limit, offset int) (*dto.ContratistaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContratistaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContratistaResponse(c))
	}
	return &dto.ContratistaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina el contratista y, en la misma transacción, sus conceptos con
// sus pagos. O todo se borra o nada.
func (uc *ContratistaUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunContratista(ctx, func(
		contratistas repository.ContratistaRepository,
		conceptos repository.ConceptoRepository,
	) error {
		if err := conceptos.DeleteByContratista(id); err != nil {
			return err
		}
		return contratistas.Delete(id)
	})
}

// AsignarProyecto asigna el contratista a un proyecto.
func (uc *ContratistaUseCase) AsignarProyecto(contratistaID, proyectoID string) error {
	return uc.repo.AsignarProyecto(contratistaID, proyectoID)
}

// RemoverProyecto quita al contratista de un proyecto.
func (uc *ContratistaUseCase) RemoverProyecto(contratistaID, proyectoID string) error {
	return uc.repo.RemoverProyecto(contratistaID, proyectoID)
}

func toContratistaResponse(c *entity.Contratista) *dto.ContratistaResponse {
	if c == nil {
		return nil
	}
	docs := make([]dto.DocumentoResponse, 0, len(c.Documentos))
	for _, d := range c.Documentos {
		docs = append(docs, toDocumentoResponse(&d))
	}
	proyectos := make([]dto.ProyectoAsignadoDTO, 0, len(c.Proyectos))
	for _, p := range c.Proyectos {
		proyectos = append(proyectos, dto.ProyectoAsignadoDTO{
			ID:                p.ID,
			Nombre:            p.Nombre,
			FechaInicio:       p.FechaInicio,
			FechaFinalizacion: p.FechaFinalizacion,
		})
	}
	return &dto.ContratistaResponse{
		ID:             c.ID,
		Nombre:         c.Nombre,
		RFC:            c.RFC,
		Telefono:       c.Telefono,
		EspecialidadID: c.EspecialidadID,
		Especialidad:   toEspecialidadResponse(c.Especialidad),
		Documentos:     docs,
		Proyectos:      proyectos,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
