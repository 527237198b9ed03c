package stats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/constructora-api/internal/application/stats"
)

// fakeStatsRepo devuelve totales fijos y registra los rangos de fecha con los
// que se le consulta.
type fakeStatsRepo struct {
	activos         int
	montoContratado decimal.Decimal
	pagadoClientes  decimal.Decimal
	gastos          decimal.Decimal
	nominaPendiente decimal.Decimal

	pagadoDesde, pagadoHasta time.Time

	errProyectos error
	errNomina    error
}

func (f *fakeStatsRepo) GetResumenProyectos(context.Context) (int, decimal.Decimal, error) {
	return f.activos, f.montoContratado, f.errProyectos
}

func (f *fakeStatsRepo) GetTotalPagadoClientes(_ context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	f.pagadoDesde, f.pagadoHasta = desde, hasta
	return f.pagadoClientes, nil
}

func (f *fakeStatsRepo) GetGastos(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return f.gastos, nil
}

func (f *fakeStatsRepo) GetNominaPendiente(context.Context) (decimal.Decimal, error) {
	return f.nominaPendiente, f.errNomina
}

func TestGetStats_AgregaLasCuatroConsultas(t *testing.T) {
	repo := &fakeStatsRepo{
		activos:         3,
		montoContratado: decimal.NewFromInt(5_200_000),
		pagadoClientes:  decimal.NewFromInt(850_000),
		gastos:          decimal.NewFromFloat(42_300.555),
		nominaPendiente: decimal.NewFromInt(18_500),
	}
	uc := stats.NewDashboardUseCase(repo)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.ProyectosActivos)
	assert.True(t, decimal.NewFromInt(5_200_000).Equal(out.MontoContratado))
	assert.True(t, decimal.NewFromInt(850_000).Equal(out.PagadoClientesMes))
	assert.True(t, decimal.NewFromFloat(42_300.56).Equal(out.GastosMes),
		"los totales salen redondeados a 2 decimales")
	assert.True(t, decimal.NewFromInt(18_500).Equal(out.NominaPendiente))

	// Montos grandes se abrevian para las tarjetas.
	assert.Equal(t, "MX$ 5.2M", out.MontoContratadoFormateado)
	assert.Equal(t, "MX$ 18.5k", out.NominaPendienteFormateado)
	assert.NotEmpty(t, out.Periodo)
}

func TestGetStats_RangoDelMesEnCurso(t *testing.T) {
	repo := &fakeStatsRepo{}
	uc := stats.NewDashboardUseCase(repo)

	_, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, 1, repo.pagadoDesde.Day(), "el rango arranca el día 1 del mes")
	assert.Equal(t, now.Month(), repo.pagadoDesde.Month())
	assert.Equal(t, now.Day(), repo.pagadoHasta.Day(), "el rango cierra hoy")
}

func TestGetStats_PropagaErrores(t *testing.T) {
	errDB := errors.New("conexión rechazada")

	uc := stats.NewDashboardUseCase(&fakeStatsRepo{errProyectos: errDB})
	_, err := uc.GetStats(context.Background())
	assert.ErrorIs(t, err, errDB)

	uc = stats.NewDashboardUseCase(&fakeStatsRepo{errNomina: errDB})
	_, err = uc.GetStats(context.Background())
	assert.ErrorIs(t, err, errDB)
}
