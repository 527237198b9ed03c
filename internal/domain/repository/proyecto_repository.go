package repository

import "github.com/jhoicas/constructora-api/internal/domain/entity"

// ProyectoRepository define el puerto de persistencia para Proyecto (DIP).
type ProyectoRepository interface {
	Create(p *entity.Proyecto) error
	// GetByID devuelve el proyecto con pagos, contratistas y trabajadores
	// cargados. nil, nil si no existe.
	GetByID(id string) (*entity.Proyecto, error)
	Update(p *entity.Proyecto) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Proyecto, error)

	AddPago(pago *entity.PagoProyecto) error
	GetPago(proyectoID, pagoID string) (*entity.PagoProyecto, error)
	DeletePago(proyectoID, pagoID string) error

	AsignarTrabajador(proyectoID, trabajadorID string) error
	RemoverTrabajador(proyectoID, trabajadorID string) error
}
