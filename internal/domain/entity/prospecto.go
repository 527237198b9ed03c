package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoProspecto enumeración cerrada del ciclo de vida de un prospecto.
type EstadoProspecto string

const (
	ProspectoPendiente     EstadoProspecto = "pendiente"
	ProspectoEnSeguimiento EstadoProspecto = "en_seguimiento"
	ProspectoConvertido    EstadoProspecto = "convertido"
	ProspectoCancelado     EstadoProspecto = "cancelado"
)

// Valid indica si el estado pertenece a la enumeración.
func (e EstadoProspecto) Valid() bool {
	switch e {
	case ProspectoPendiente, ProspectoEnSeguimiento, ProspectoConvertido, ProspectoCancelado:
		return true
	}
	return false
}

// Prospecto es una obra potencial aún no contratada. IVA siempre se deriva de
// MontoTotal y PorcentajeIVA vía finanzas.CalcularIVA; nunca se captura a mano.
type Prospecto struct {
	ID                  string
	Nombre              string
	Cliente             string
	Ubicacion           string
	PresupuestoEstimado decimal.Decimal
	Estado              EstadoProspecto
	MontoTotal          decimal.Decimal
	PorcentajeIVA       decimal.Decimal
	IVA                 decimal.Decimal
	Anticipo            decimal.Decimal
	FechaFinalizacion   *time.Time
	ProyectoID          string // proyecto creado al convertir; vacío si no se ha convertido
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Notas []NotaProspecto
}

// NotaProspecto es una nota de seguimiento del prospecto.
type NotaProspecto struct {
	ID          string
	ProspectoID string
	Contenido   string
	CreatedAt   time.Time
}
