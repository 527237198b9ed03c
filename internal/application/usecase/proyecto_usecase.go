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

// ProyectoUseCase casos de uso para proyectos, sus pagos y sus asignaciones.
type ProyectoUseCase struct {
	repo repository.ProyectoRepository
}

// NewProyectoUseCase construye el caso de uso.
func NewProyectoUseCase(repo repository.ProyectoRepository) *ProyectoUseCase {
	return &ProyectoUseCase{repo: repo}
}

// Create crea un proyecto.
func (uc *ProyectoUseCase) Create(in dto.CreateProyectoRequest) (*dto.ProyectoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	fechaInicio := in.FechaInicio
	if fechaInicio.IsZero() {
		fechaInicio = time.Now()
	}
	now := time.Now()
	p := &entity.Proyecto{
		ID:                uuid.New().String(),
		Nombre:            in.Nombre,
		MontoTotal:        in.MontoTotal,
		IVA:               in.IVA,
		Anticipo:          in.Anticipo,
		FechaInicio:       fechaInicio,
		FechaFinalizacion: in.FechaFinalizacion,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProyectoResponse(p), nil
}

// GetByID obtiene un proyecto con pagos, contratistas, trabajadores y resumen.
func (uc *ProyectoUseCase) GetByID(id string) (*dto.ProyectoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProyectoResponse(p), nil
}

// Update actualiza un proyecto.
func (uc *ProyectoUseCase) Update(id string, in dto.UpdateProyectoRequest) (*dto.ProyectoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.MontoTotal != nil {
		p.MontoTotal = *in.MontoTotal
	}
	if in.IVA != nil {
		p.IVA = *in.IVA
	}
	if in.Anticipo != nil {
		p.Anticipo = *in.Anticipo
	}
	if in.FechaInicio != nil {
		p.FechaInicio = *in.FechaInicio
	}
	if in.FechaFinalizacion != nil {
		p.FechaFinalizacion = in.FechaFinalizacion
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProyectoResponse(p), nil
}

// List lista proyectos con paginación.
func (uc *ProyectoUseCase) List(limit, offset int) (*dto.ProyectoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProyectoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProyectoResponse(p))
	}
	return &dto.ProyectoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proyecto por ID.
func (uc *ProyectoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// AddPago registra un pago contra el proyecto. El tipo debe pertenecer a la
// enumeración cerrada; no se infiere de valores en uso.
func (uc *ProyectoUseCase) AddPago(proyectoID string, in dto.CreatePagoProyectoRequest) (*dto.ProyectoResponse, error) {
	tipo := finanzas.TipoPago(in.Tipo)
	if !tipo.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(proyectoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	pago := &entity.PagoProyecto{
		ID:         uuid.New().String(),
		ProyectoID: proyectoID,
		Tipo:       tipo,
		Monto:      in.Monto,
		Fecha:      fecha,
		Concepto:   in.Concepto,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.AddPago(pago); err != nil {
		return nil, err
	}
	return uc.GetByID(proyectoID)
}

// DeletePago elimina un pago del proyecto.
func (uc *ProyectoUseCase) DeletePago(proyectoID, pagoID string) error {
	pago, err := uc.repo.GetPago(proyectoID, pagoID)
	if err != nil {
		return err
	}
	if pago == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeletePago(proyectoID, pagoID)
}

// AsignarTrabajador asigna un trabajador al proyecto.
func (uc *ProyectoUseCase) AsignarTrabajador(proyectoID, trabajadorID string) error {
	return uc.repo.AsignarTrabajador(proyectoID, trabajadorID)
}

// RemoverTrabajador quita un trabajador del proyecto.
func (uc *ProyectoUseCase) RemoverTrabajador(proyectoID, trabajadorID string) error {
	return uc.repo.RemoverTrabajador(proyectoID, trabajadorID)
}

func toProyectoResponse(p *entity.Proyecto) *dto.ProyectoResponse {
	if p == nil {
		return nil
	}
	pagos := make([]dto.PagoProyectoResponse, 0, len(p.Pagos))
	for _, pg := range p.Pagos {
		pagos = append(pagos, dto.PagoProyectoResponse{
			ID:       pg.ID,
			Tipo:     string(pg.Tipo),
			Monto:    pg.Monto,
			Fecha:    pg.Fecha,
			Concepto: pg.Concepto,
		})
	}
	contratistas := make([]dto.ContratistaResponse, 0, len(p.Contratistas))
	for i := range p.Contratistas {
		contratistas = append(contratistas, *toContratistaResponse(&p.Contratistas[i]))
	}
	trabajadores := make([]dto.TrabajadorResponse, 0, len(p.Trabajadores))
	for i := range p.Trabajadores {
		trabajadores = append(trabajadores, *toTrabajadorResponse(&p.Trabajadores[i]))
	}
	return &dto.ProyectoResponse{
		ID:                p.ID,
		Nombre:            p.Nombre,
		MontoTotal:        p.MontoTotal,
		IVA:               p.IVA,
		Anticipo:          p.Anticipo,
		FechaInicio:       p.FechaInicio,
		FechaFinalizacion: p.FechaFinalizacion,
		Contratistas:      contratistas,
		Trabajadores:      trabajadores,
		Pagos:             pagos,
		Resumen:           toResumenDTO(p.Resumen()),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
