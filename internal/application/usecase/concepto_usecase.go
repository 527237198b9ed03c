package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// ConceptoUseCase casos de uso para conceptos de obra y sus abonos.
type ConceptoUseCase struct {
	repo repository.ConceptoRepository
}

// NewConceptoUseCase construye el caso de uso.
func NewConceptoUseCase(repo repository.ConceptoRepository) *ConceptoUseCase {
	return &ConceptoUseCase{repo: repo}
}

// Create crea un concepto para un contratista dentro de un proyecto.
func (uc *ConceptoUseCase) Create(in dto.CreateConceptoRequest) (*dto.ConceptoResponse, error) {
	if in.Descripcion == "" || in.ContratistaID == "" || in.ProyectoID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Concepto{
		ID:            uuid.New().String(),
		ContratistaID: in.ContratistaID,
		ProyectoID:    in.ProyectoID,
		Descripcion:   in.Descripcion,
		MontoTotal:    in.MontoTotal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toConceptoResponse(c), nil
}

// GetByID obtiene un concepto con sus pagos y resumen.
func (uc *ConceptoUseCase) GetByID(id string) (*dto.ConceptoResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toConceptoResponse(c), nil
}

// Update actualiza descripción y/o monto total de un concepto.
func (uc *ConceptoUseCase) Update(id string, in dto.UpdateConceptoRequest) (*dto.ConceptoResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	if in.MontoTotal != nil {
		c.MontoTotal = *in.MontoTotal
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toConceptoResponse(c), nil
}

// ListByContratistaYProyecto lista los conceptos de un contratista en un proyecto.
func (uc *ConceptoUseCase) ListByContratistaYProyecto(contratistaID, proyectoID string) ([]dto.ConceptoResponse, error) {
	list, err := uc.repo.ListByContratistaYProyecto(contratistaID, proyectoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConceptoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConceptoResponse(c))
	}
	return items, nil
}

// Delete elimina un concepto por ID (los pagos caen en cascada en DB).
func (uc *ConceptoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// AddPago registra un abono contra el concepto.
func (uc *ConceptoUseCase) AddPago(conceptoID string, in dto.CreatePagoConceptoRequest) (*dto.ConceptoResponse, error) {
	c, err := uc.repo.GetByID(conceptoID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	pago := &entity.PagoConcepto{
		ID:         uuid.New().String(),
		ConceptoID: conceptoID,
		Monto:      in.Monto,
		Fecha:      fecha,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.AddPago(pago); err != nil {
		return nil, err
	}
	// Releer para devolver el concepto con el resumen ya recalculado
	return uc.GetByID(conceptoID)
}

// DeletePago elimina un abono del concepto.
func (uc *ConceptoUseCase) DeletePago(conceptoID, pagoID string) error {
	pago, err := uc.repo.GetPago(conceptoID, pagoID)
	if err != nil {
		return err
	}
	if pago == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeletePago(conceptoID, pagoID)
}

func toConceptoResponse(c *entity.Concepto) *dto.ConceptoResponse {
	if c == nil {
		return nil
	}
	pagos := make([]dto.PagoConceptoResponse, 0, len(c.Pagos))
	for _, p := range c.Pagos {
		pagos = append(pagos, dto.PagoConceptoResponse{ID: p.ID, Monto: p.Monto, Fecha: p.Fecha})
	}
	resumen := c.Resumen()
	return &dto.ConceptoResponse{
		ID:               c.ID,
		ContratistaID:    c.ContratistaID,
		ProyectoID:       c.ProyectoID,
		Descripcion:      c.Descripcion,
		MontoTotal:       c.MontoTotal,
		Pagos:            pagos,
		Resumen:          toResumenDTO(resumen),
		PorcentajePagado: finanzas.PorcentajeParaMostrar(resumen.PorcentajePagado),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
