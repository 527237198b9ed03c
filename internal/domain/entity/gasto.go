package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoGasto enumeración cerrada de clasificación de gastos generales.
type TipoGasto string

const (
	GastoOperativo      TipoGasto = "operativo"
	GastoAdministrativo TipoGasto = "administrativo"
	GastoOtros          TipoGasto = "otros"
)

// Valid indica si el tipo pertenece a la enumeración.
func (t TipoGasto) Valid() bool {
	switch t {
	case GastoOperativo, GastoAdministrativo, GastoOtros:
		return true
	}
	return false
}

// GastoGeneral es un gasto de la empresa no ligado a un proyecto.
type GastoGeneral struct {
	ID          string
	Descripcion string
	Monto       decimal.Decimal
	Fecha       time.Time
	Tipo        TipoGasto
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
