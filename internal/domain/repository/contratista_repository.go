package repository

import "github.com/jhoicas/constructora-api/internal/domain/entity"

// ContratistaRepository define el puerto de persistencia para Contratista (DIP).
type ContratistaRepository interface {
	Create(c *entity.Contratista) error
	// GetByID devuelve el contratista con especialidad, documentos y proyectos
	// asignados cargados. nil, nil si no existe.
	GetByID(id string) (*entity.Contratista, error)
	Update(c *entity.Contratista) error
	// Delete elimina el contratista. Los conceptos y pagos dependientes caen en
	// cascada; se invoca dentro de una transacción (TxRunner).
	Delete(id string) error
	List(limit, offset int) ([]*entity.Contratista, error)

	AsignarProyecto(contratistaID, proyectoID string) error
	RemoverProyecto(contratistaID, proyectoID string) error
}
