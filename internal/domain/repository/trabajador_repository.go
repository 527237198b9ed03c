package repository

import "github.com/jhoicas/constructora-api/internal/domain/entity"

// TrabajadorRepository define el puerto de persistencia para Trabajador (DIP).
type TrabajadorRepository interface {
	Create(t *entity.Trabajador) error
	GetByID(id string) (*entity.Trabajador, error)
	Update(t *entity.Trabajador) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Trabajador, error)
}
