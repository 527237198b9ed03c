package repository

import (
	"time"

	"github.com/jhoicas/constructora-api/internal/domain/entity"
)

// FiltroNominas criterios de búsqueda server-side para semanas de nómina.
type FiltroNominas struct {
	Anio         int // 0 = sin filtro
	NumeroSemana int // 0 = sin filtro
	TrabajadorID string
	EstadoPago   entity.EstadoPagoNomina
	Limit        int
	Offset       int
}

// NominaRepository define el puerto de persistencia para NominaSemanal (DIP).
type NominaRepository interface {
	// GetByID devuelve la semana con sus pagos cargados. nil, nil si no existe.
	GetByID(id string) (*entity.NominaSemanal, error)
	List(filtro FiltroNominas) ([]*entity.NominaSemanal, error)
	// GetPorFecha devuelve la semana que contiene la fecha dada (la "actual").
	GetPorFecha(fecha time.Time) (*entity.NominaSemanal, error)
	SetCerrada(id string, cerrada bool) error

	// AniosDisponibles devuelve los años con semanas generadas, descendente.
	AniosDisponibles() ([]int, error)
	// ExisteAnio indica si el año ya tiene semanas generadas.
	ExisteAnio(anio int) (bool, error)
	// CrearSemanas inserta el lote de semanas de un año (dentro de transacción).
	CrearSemanas(semanas []*entity.NominaSemanal) error
	// EliminarAnio borra las semanas del año y sus pagos (dentro de transacción).
	EliminarAnio(anio int) error

	AddPago(pago *entity.PagoNomina) error
	GetPago(nominaID, pagoID string) (*entity.PagoNomina, error)
	UpdatePago(pago *entity.PagoNomina) error
	DeletePago(nominaID, pagoID string) error
}
