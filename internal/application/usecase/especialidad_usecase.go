package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// EspecialidadUseCase casos de uso CRUD para el catálogo de especialidades.
type EspecialidadUseCase struct {
	repo repository.EspecialidadRepository
}

// NewEspecialidadUseCase construye el caso de uso.
func NewEspecialidadUseCase(repo repository.EspecialidadRepository) *EspecialidadUseCase {
	return &EspecialidadUseCase{repo: repo}
}

// Create crea una especialidad.
func (uc *EspecialidadUseCase) Create(in dto.CreateEspecialidadRequest) (*dto.EspecialidadResponse, error) {
	now := time.Now()
	e := &entity.Especialidad{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEspecialidadResponse(e), nil
}

// GetByID obtiene una especialidad por ID.
func (uc *EspecialidadUseCase) GetByID(id string) (*dto.EspecialidadResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEspecialidadResponse(e), nil
}

// Update actualiza una especialidad.
func (uc *EspecialidadUseCase) Update(id string, in dto.UpdateEspecialidadRequest) (*dto.EspecialidadResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		e.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		e.Descripcion = *in.Descripcion
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEspecialidadResponse(e), nil
}

// List lista todas las especialidades.
func (uc *EspecialidadUseCase) List() ([]dto.EspecialidadResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EspecialidadResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEspecialidadResponse(e))
	}
	return items, nil
}

// Delete elimina una especialidad por ID.
func (uc *EspecialidadUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEspecialidadResponse(e *entity.Especialidad) *dto.EspecialidadResponse {
	if e == nil {
		return nil
	}
	return &dto.EspecialidadResponse{
		ID:          e.ID,
		Nombre:      e.Nombre,
		Descripcion: e.Descripcion,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
