// Package stats contiene el caso de uso del dashboard de estadísticas del
// negocio: proyectos activos, cobranza del mes, gastos y nómina pendiente.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
	"github.com/jhoicas/constructora-api/pkg/moneda"
)

// DashboardUseCase genera los totales pre-agregados de las tarjetas del
// dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only). No recorre entidades
// en memoria; la agregación vive en SQL.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsDTO del mes en curso.
//
// Cuatro consultas en paralelo:
//  1. GetResumenProyectos        → ProyectosActivos + MontoContratado
//  2. GetTotalPagadoClientes(mes) → PagadoClientesMes
//  3. GetGastos(mes)             → GastosMes
//  4. GetNominaPendiente         → NominaPendiente
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	type proyectosResult struct {
		activos int
		monto   decimal.Decimal
		err     error
	}
	type sumaResult struct {
		total decimal.Decimal
		err   error
	}

	proyectosCh := make(chan proyectosResult, 1)
	pagadoCh := make(chan sumaResult, 1)
	gastosCh := make(chan sumaResult, 1)
	nominaCh := make(chan sumaResult, 1)

	go func() {
		activos, monto, err := uc.statsRepo.GetResumenProyectos(ctx)
		proyectosCh <- proyectosResult{activos, monto, err}
	}()
	go func() {
		total, err := uc.statsRepo.GetTotalPagadoClientes(ctx, monthStart, monthEnd)
		pagadoCh <- sumaResult{total, err}
	}()
	go func() {
		total, err := uc.statsRepo.GetGastos(ctx, monthStart, monthEnd)
		gastosCh <- sumaResult{total, err}
	}()
	go func() {
		total, err := uc.statsRepo.GetNominaPendiente(ctx)
		nominaCh <- sumaResult{total, err}
	}()

	proyectos := <-proyectosCh
	pagado := <-pagadoCh
	gastos := <-gastosCh
	nomina := <-nominaCh

	if proyectos.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de proyectos: %w", proyectos.err)
	}
	if pagado.err != nil {
		return nil, fmt.Errorf("dashboard: pagado por clientes: %w", pagado.err)
	}
	if gastos.err != nil {
		return nil, fmt.Errorf("dashboard: gastos del mes: %w", gastos.err)
	}
	if nomina.err != nil {
		return nil, fmt.Errorf("dashboard: nómina pendiente: %w", nomina.err)
	}

	return &dto.DashboardStatsDTO{
		ProyectosActivos:            proyectos.activos,
		MontoContratado:             proyectos.monto.Round(2),
		PagadoClientesMes:           pagado.total.Round(2),
		GastosMes:                   gastos.total.Round(2),
		NominaPendiente:             nomina.total.Round(2),
		MontoContratadoFormateado:   moneda.FormatearCompacto(proyectos.monto),
		PagadoClientesMesFormateado: moneda.FormatearCompacto(pagado.total),
		GastosMesFormateado:         moneda.FormatearCompacto(gastos.total),
		NominaPendienteFormateado:   moneda.FormatearCompacto(nomina.total),
		Periodo:                     monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Septiembre 2026".
func monthLabel(t time.Time) string {
	meses := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}
