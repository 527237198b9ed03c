package repository

import "github.com/jhoicas/constructora-api/internal/domain/entity"

// ConceptoRepository define el puerto de persistencia para Concepto (DIP).
type ConceptoRepository interface {
	Create(c *entity.Concepto) error
	// GetByID devuelve el concepto con sus pagos cargados. nil, nil si no existe.
	GetByID(id string) (*entity.Concepto, error)
	Update(c *entity.Concepto) error
	Delete(id string) error
	// ListByContratistaYProyecto lista los conceptos (con pagos) de un
	// contratista dentro de un proyecto.
	ListByContratistaYProyecto(contratistaID, proyectoID string) ([]*entity.Concepto, error)
	// DeleteByContratista elimina todos los conceptos de un contratista
	// (cascada al borrar el contratista, dentro de transacción).
	DeleteByContratista(contratistaID string) error

	AddPago(pago *entity.PagoConcepto) error
	GetPago(conceptoID, pagoID string) (*entity.PagoConcepto, error)
	DeletePago(conceptoID, pagoID string) error
}
