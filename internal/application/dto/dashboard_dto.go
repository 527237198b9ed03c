package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO totales pre-agregados para las tarjetas del dashboard.
// Los campos *Formateado usan formato de moneda MXN (compacto en montos grandes).
type DashboardStatsDTO struct {
	ProyectosActivos            int             `json:"proyectos_activos"`
	MontoContratado             decimal.Decimal `json:"monto_contratado"`
	PagadoClientesMes           decimal.Decimal `json:"pagado_clientes_mes"`
	GastosMes                   decimal.Decimal `json:"gastos_mes"`
	NominaPendiente             decimal.Decimal `json:"nomina_pendiente"`
	MontoContratadoFormateado   string          `json:"monto_contratado_formateado"`
	PagadoClientesMesFormateado string          `json:"pagado_clientes_mes_formateado"`
	GastosMesFormateado         string          `json:"gastos_mes_formateado"`
	NominaPendienteFormateado   string          `json:"nomina_pendiente_formateado"`
	Periodo                     string          `json:"periodo"` // etiqueta legible, ej. "Septiembre 2026"
}
