package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// GastoUseCase casos de uso CRUD y búsqueda para gastos generales.
type GastoUseCase struct {
	repo repository.GastoRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(repo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{repo: repo}
}

// Create registra un gasto. El tipo debe pertenecer a la enumeración cerrada.
func (uc *GastoUseCase) Create(in dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	tipo := entity.TipoGasto(in.Tipo)
	if !tipo.Valid() {
		return nil, domain.ErrInvalidInput
	}
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	now := time.Now()
	g := &entity.GastoGeneral{
		ID:          uuid.New().String(),
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		Fecha:       fecha,
		Tipo:        tipo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toGastoResponse(g), nil
}

// GetByID obtiene un gasto por ID.
func (uc *GastoUseCase) GetByID(id string) (*dto.GastoResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toGastoResponse(g), nil
}

// Update actualiza un gasto.
func (uc *GastoUseCase) Update(id string, in dto.UpdateGastoRequest) (*dto.GastoResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	if in.Descripcion != nil {
		g.Descripcion = *in.Descripcion
	}
	if in.Monto != nil {
		g.Monto = *in.Monto
	}
	if in.Fecha != nil {
		g.Fecha = *in.Fecha
	}
	if in.Tipo != nil {
		tipo := entity.TipoGasto(*in.Tipo)
		if !tipo.Valid() {
			return nil, domain.ErrInvalidInput
		}
		g.Tipo = tipo
	}
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(g); err != nil {
		return nil, err
	}
	return toGastoResponse(g), nil
}

// List busca gastos con los criterios dados (round-trip al servidor, no filtro
// en memoria) y devuelve además la suma del filtro aplicado.
func (uc *GastoUseCase) List(in dto.FiltroGastosRequest) (*dto.GastoListResponse, error) {
	in.DefaultPage()
	filtro := repository.FiltroGastos{
		Descripcion: in.Descripcion,
		Limit:       in.Limit,
		Offset:      in.Offset,
	}
	if in.Tipo != "" {
		tipo := entity.TipoGasto(in.Tipo)
		if !tipo.Valid() {
			return nil, domain.ErrInvalidInput
		}
		filtro.Tipo = tipo
	}
	if in.FechaDesde != "" {
		desde, err := parseFecha(in.FechaDesde)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filtro.FechaDesde = &desde
	}
	if in.FechaHasta != "" {
		hasta, err := parseFecha(in.FechaHasta)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filtro.FechaHasta = &hasta
	}

	list, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GastoResponse, 0, len(list))
	total := decimal.Zero
	for _, g := range list {
		items = append(items, *toGastoResponse(g))
		total = total.Add(g.Monto)
	}
	return &dto.GastoListResponse{
		Items:      items,
		TotalMonto: total,
		Page:       dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Delete elimina un gasto por ID.
func (uc *GastoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// parseFecha acepta RFC 3339 o fecha simple YYYY-MM-DD.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toGastoResponse(g *entity.GastoGeneral) *dto.GastoResponse {
	if g == nil {
		return nil
	}
	return &dto.GastoResponse{
		ID:          g.ID,
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		Fecha:       g.Fecha,
		Tipo:        string(g.Tipo),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
