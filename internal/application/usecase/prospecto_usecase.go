package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// ProspectoUseCase casos de uso para prospectos: CRUD con IVA derivado, notas
// de seguimiento y conversión a proyecto.
type ProspectoUseCase struct {
	repo     repository.ProspectoRepository
	txRunner ConversionTxRunner
}

// NewProspectoUseCase construye el caso de uso.
func NewProspectoUseCase(repo repository.ProspectoRepository, txRunner ConversionTxRunner) *ProspectoUseCase {
	return &ProspectoUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un prospecto en estado pendiente. El IVA se deriva siempre de
// montoTotal y porcentajeIva; nunca se acepta capturado.
func (uc *ProspectoUseCase) Create(in dto.CreateProspectoRequest) (*dto.ProspectoResponse, error) {
	if in.Nombre == "" || in.Cliente == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Prospecto{
		ID:                  uuid.New().String(),
		Nombre:              in.Nombre,
		Cliente:             in.Cliente,
		Ubicacion:           in.Ubicacion,
		PresupuestoEstimado: in.PresupuestoEstimado,
		Estado:              entity.ProspectoPendiente,
		MontoTotal:          in.MontoTotal,
		PorcentajeIVA:       in.PorcentajeIVA,
		IVA:                 finanzas.CalcularIVA(in.MontoTotal, in.PorcentajeIVA),
		Anticipo:            in.Anticipo,
		FechaFinalizacion:   in.FechaFinalizacion,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProspectoResponse(p), nil
}

// GetByID obtiene un prospecto con sus notas.
func (uc *ProspectoUseCase) GetByID(id string) (*dto.ProspectoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProspectoResponse(p), nil
}

// Update actualiza un prospecto. Cualquier cambio a montoTotal o porcentajeIva
// recalcula el IVA con la misma función que todos los demás sitios.
func (uc *ProspectoUseCase) Update(id string, in dto.UpdateProspectoRequest) (*dto.ProspectoResponse, error) {
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
	if in.Cliente != nil {
		p.Cliente = *in.Cliente
	}
	if in.Ubicacion != nil {
		p.Ubicacion = *in.Ubicacion
	}
	if in.PresupuestoEstimado != nil {
		p.PresupuestoEstimado = *in.PresupuestoEstimado
	}
	if in.Estado != nil {
		estado := entity.EstadoProspecto(*in.Estado)
		if !estado.Valid() {
			return nil, domain.ErrInvalidInput
		}
		p.Estado = estado
	}
	recalcular := false
	if in.MontoTotal != nil {
		p.MontoTotal = *in.MontoTotal
		recalcular = true
	}
	if in.PorcentajeIVA != nil {
		p.PorcentajeIVA = *in.PorcentajeIVA
		recalcular = true
	}
	if recalcular {
		p.IVA = finanzas.CalcularIVA(p.MontoTotal, p.PorcentajeIVA)
	}
	if in.Anticipo != nil {
		p.Anticipo = *in.Anticipo
	}
	if in.FechaFinalizacion != nil {
		p.FechaFinalizacion = in.FechaFinalizacion
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProspectoResponse(p), nil
}

// List busca prospectos con los criterios dados.
func (uc *ProspectoUseCase) List(in dto.FiltroProspectosRequest) (*dto.ProspectoListResponse, error) {
	in.DefaultPage()
	filtro := repository.FiltroProspectos{
		Cliente: in.Cliente,
		Texto:   in.Texto,
		Limit:   in.Limit,
		Offset:  in.Offset,
	}
	if in.Estado != "" {
		estado := entity.EstadoProspecto(in.Estado)
		if !estado.Valid() {
			return nil, domain.ErrInvalidInput
		}
		filtro.Estado = estado
	}
	list, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProspectoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProspectoResponse(p))
	}
	return &dto.ProspectoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Delete elimina un prospecto por ID (las notas caen en cascada en DB).
func (uc *ProspectoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// AddNota agrega una nota de seguimiento.
func (uc *ProspectoUseCase) AddNota(prospectoID string, in dto.CreateNotaRequest) (*dto.ProspectoResponse, error) {
	if in.Contenido == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(prospectoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	nota := &entity.NotaProspecto{
		ID:          uuid.New().String(),
		ProspectoID: prospectoID,
		Contenido:   in.Contenido,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.AddNota(nota); err != nil {
		return nil, err
	}
	return uc.GetByID(prospectoID)
}

// DeleteNota elimina una nota de seguimiento.
func (uc *ProspectoUseCase) DeleteNota(prospectoID, notaID string) error {
	return uc.repo.DeleteNota(prospectoID, notaID)
}

// ConvertirAProyecto crea el proyecto a partir del prospecto, en una sola
// transacción. Solo procede con estado "convertido"; un prospecto ya ligado a
// proyecto no se convierte dos veces.
func (uc *ProspectoUseCase) ConvertirAProyecto(ctx context.Context, prospectoID string) (*dto.ProspectoResponse, error) {
	p, err := uc.repo.GetByID(prospectoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if p.Estado != entity.ProspectoConvertido {
		return nil, domain.ErrEstadoInvalido
	}
	if p.ProyectoID != "" {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	proyecto := &entity.Proyecto{
		ID:                uuid.New().String(),
		Nombre:            p.Nombre,
		MontoTotal:        p.MontoTotal,
		IVA:               finanzas.CalcularIVA(p.MontoTotal, p.PorcentajeIVA),
		Anticipo:          p.Anticipo,
		FechaInicio:       now,
		FechaFinalizacion: p.FechaFinalizacion,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.txRunner.RunConversion(ctx, func(
		prospectos repository.ProspectoRepository,
		proyectos repository.ProyectoRepository,
	) error {
		if err := proyectos.Create(proyecto); err != nil {
			return err
		}
		p.ProyectoID = proyecto.ID
		p.UpdatedAt = now
		return prospectos.Update(p)
	})
	if err != nil {
		return nil, err
	}
	return toProspectoResponse(p), nil
}

func toProspectoResponse(p *entity.Prospecto) *dto.ProspectoResponse {
	if p == nil {
		return nil
	}
	notas := make([]dto.NotaResponse, 0, len(p.Notas))
	for _, n := range p.Notas {
		notas = append(notas, dto.NotaResponse{ID: n.ID, Contenido: n.Contenido, CreatedAt: n.CreatedAt})
	}
	return &dto.ProspectoResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Cliente:             p.Cliente,
		Ubicacion:           p.Ubicacion,
		PresupuestoEstimado: p.PresupuestoEstimado,
		Estado:              string(p.Estado),
		MontoTotal:          p.MontoTotal,
		PorcentajeIVA:       p.PorcentajeIVA,
		IVA:                 p.IVA,
		Anticipo:            p.Anticipo,
		FechaFinalizacion:   p.FechaFinalizacion,
		ProyectoID:          p.ProyectoID,
		Notas:               notas,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
