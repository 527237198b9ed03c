package usecase

import (
	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain/finanzas"
	"github.com/jhoicas/constructora-api/pkg/moneda"
)

// toResumenDTO convierte el resumen de dominio a DTO, añadiendo los montos
// formateados en MXN para las tarjetas. Los valores crudos no se tocan.
func toResumenDTO(r finanzas.Resumen) *dto.ResumenFinancieroDTO {
	return &dto.ResumenFinancieroDTO{
		Total:               r.Total,
		Pagado:              r.Pagado,
		Pendiente:           r.Pendiente,
		PorcentajePagado:    r.PorcentajePagado,
		TotalFormateado:     moneda.FormatearCompacto(r.Total),
		PagadoFormateado:    moneda.FormatearCompacto(r.Pagado),
		PendienteFormateado: moneda.FormatearCompacto(r.Pendiente),
	}
}
