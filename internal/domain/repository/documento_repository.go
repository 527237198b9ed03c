package repository

import "github.com/jhoicas/constructora-api/internal/domain/entity"

// DocumentoRepository define el puerto de persistencia para metadatos de archivos.
// Los bytes viven en el almacenamiento local (infrastructure/storage).
type DocumentoRepository interface {
	Create(d *entity.Documento) error
	GetByID(id string) (*entity.Documento, error)
	Delete(id string) error
	ListByContratista(contratistaID string) ([]*entity.Documento, error)
	// Buscar lista archivos generales (sin contratista) filtrando por nombre
	// (ILIKE %texto%); texto vacío lista todo.
	Buscar(texto string, limit, offset int) ([]*entity.Documento, error)
}
