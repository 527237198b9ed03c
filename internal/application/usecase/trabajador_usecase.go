package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// TrabajadorUseCase casos de uso CRUD para trabajadores de obra.
type TrabajadorUseCase struct {
	repo repository.TrabajadorRepository
}

// NewTrabajadorUseCase construye el caso de uso.
func NewTrabajadorUseCase(repo repository.TrabajadorRepository) *TrabajadorUseCase {
	return &TrabajadorUseCase{repo: repo}
}

// Create da de alta un trabajador.
func (uc *TrabajadorUseCase) Create(in dto.CreateTrabajadorRequest) (*dto.TrabajadorResponse, error) {
	now := time.Now()
	t := &entity.Trabajador{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Telefono:       in.Telefono,
		Puesto:         in.Puesto,
		SalarioSemanal: in.SalarioSemanal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTrabajadorResponse(t), nil
}

// GetByID obtiene un trabajador por ID.
func (uc *TrabajadorUseCase) GetByID(id string) (*dto.TrabajadorResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTrabajadorResponse(t), nil
}

// Update actualiza un trabajador.
func (uc *TrabajadorUseCase) Update(id string, in dto.UpdateTrabajadorRequest) (*dto.TrabajadorResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		t.Nombre = *in.Nombre
	}
	if in.Telefono != nil {
		t.Telefono = *in.Telefono
	}
	if in.Puesto != nil {
		t.Puesto = *in.Puesto
	}
	if in.SalarioSemanal != nil {
		t.SalarioSemanal = *in.SalarioSemanal
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTrabajadorResponse(t), nil
}

// List lista trabajadores con paginación.
func (uc *TrabajadorUseCase) List(limit, offset int) (*dto.TrabajadorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrabajadorResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTrabajadorResponse(t))
	}
	return &dto.TrabajadorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un trabajador por ID.
func (uc *TrabajadorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTrabajadorResponse(t *entity.Trabajador) *dto.TrabajadorResponse {
	if t == nil {
		return nil
	}
	return &dto.TrabajadorResponse{
		ID:             t.ID,
		Nombre:         t.Nombre,
		Telefono:       t.Telefono,
		Puesto:         t.Puesto,
		SalarioSemanal: t.SalarioSemanal,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
