package repository

import "github.com/jhoicas/constructora-api/internal/domain/entity"

// EspecialidadRepository define el puerto de persistencia para el catálogo Especialidad.
type EspecialidadRepository interface {
	Create(e *entity.Especialidad) error
	GetByID(id string) (*entity.Especialidad, error)
	Update(e *entity.Especialidad) error
	Delete(id string) error
	List() ([]*entity.Especialidad, error)
}
