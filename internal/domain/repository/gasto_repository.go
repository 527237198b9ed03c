package repository

import (
	"time"

	"github.com/jhoicas/constructora-api/internal/domain/entity"
)

// FiltroGastos criterios de búsqueda server-side para gastos generales.
// Punteros nil y cadenas vacías no filtran.
type FiltroGastos struct {
	FechaDesde  *time.Time
	FechaHasta  *time.Time
	Descripcion string // ILIKE %texto%
	Tipo        entity.TipoGasto
	Limit       int
	Offset      int
}

// GastoRepository define el puerto de persistencia para GastoGeneral (DIP).
type GastoRepository interface {
	Create(g *entity.GastoGeneral) error
	GetByID(id string) (*entity.GastoGeneral, error)
	Update(g *entity.GastoGeneral) error
	Delete(id string) error
	List(filtro FiltroGastos) ([]*entity.GastoGeneral, error)
}
