package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria de NominaRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeNominaRepo struct {
	semanas map[string]*entity.NominaSemanal
}

func newFakeNominaRepo() *fakeNominaRepo {
	return &fakeNominaRepo{semanas: make(map[string]*entity.NominaSemanal)}
}

func (f *fakeNominaRepo) GetByID(id string) (*entity.NominaSemanal, error) {
	n, ok := f.semanas[id]
	if !ok {
		return nil, nil
	}
	copia := *n
	return &copia, nil
}

func (f *fakeNominaRepo) List(filtro repository.FiltroNominas) ([]*entity.NominaSemanal, error) {
	var out []*entity.NominaSemanal
	for _, n := range f.semanas {
		if filtro.Anio != 0 && n.Anio != filtro.Anio {
			continue
		}
		if filtro.NumeroSemana != 0 && n.NumeroSemana != filtro.NumeroSemana {
			continue
		}
		copia := *n
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeNominaRepo) GetPorFecha(fecha time.Time) (*entity.NominaSemanal, error) {
	for _, n := range f.semanas {
		if !fecha.Before(n.FechaInicio) && !fecha.After(n.FechaFin.AddDate(0, 0, 1)) {
			copia := *n
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeNominaRepo) SetCerrada(id string, cerrada bool) error {
	n, ok := f.semanas[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.Cerrada = cerrada
	return nil
}

func (f *fakeNominaRepo) AniosDisponibles() ([]int, error) {
	vistos := map[int]bool{}
	var anios []int
	for _, n := range f.semanas {
		if !vistos[n.Anio] {
			vistos[n.Anio] = true
			anios = append(anios, n.Anio)
		}
	}
	return anios, nil
}

func (f *fakeNominaRepo) ExisteAnio(anio int) (bool, error) {
	for _, n := range f.semanas {
		if n.Anio == anio {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNominaRepo) CrearSemanas(semanas []*entity.NominaSemanal) error {
	for _, s := range semanas {
		copia := *s
		f.semanas[s.ID] = &copia
	}
	return nil
}

func (f *fakeNominaRepo) EliminarAnio(anio int) error {
	for id, n := range f.semanas {
		if n.Anio == anio {
			delete(f.semanas, id)
		}
	}
	return nil
}

func (f *fakeNominaRepo) AddPago(pago *entity.PagoNomina) error {
	n, ok := f.semanas[pago.NominaID]
	if !ok {
		return domain.ErrNotFound
	}
	n.Pagos = append(n.Pagos, *pago)
	return nil
}

func (f *fakeNominaRepo) GetPago(nominaID, pagoID string) (*entity.PagoNomina, error) {
	n, ok := f.semanas[nominaID]
	if !ok {
		return nil, nil
	}
	for _, p := range n.Pagos {
		if p.ID == pagoID {
			copia := p
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeNominaRepo) UpdatePago(pago *entity.PagoNomina) error {
	n, ok := f.semanas[pago.NominaID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range n.Pagos {
		if n.Pagos[i].ID == pago.ID {
			n.Pagos[i] = *pago
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNominaRepo) DeletePago(nominaID, pagoID string) error {
	n, ok := f.semanas[nominaID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range n.Pagos {
		if n.Pagos[i].ID == pagoID {
			n.Pagos = append(n.Pagos[:i], n.Pagos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeNominaTx ejecuta la función directamente contra el mismo repo, sin
// transacción real.
type fakeNominaTx struct {
	repo *fakeNominaRepo
}

func (f *fakeNominaTx) RunNomina(_ context.Context, fn func(repository.NominaRepository) error) error {
	return fn(f.repo)
}

func newNominaUC() (*usecase.NominaUseCase, *fakeNominaRepo) {
	repo := newFakeNominaRepo()
	return usecase.NewNominaUseCase(repo, &fakeNominaTx{repo: repo}), repo
}

func semanaDePrueba(id string, cerrada bool) *entity.NominaSemanal {
	inicio := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC) // lunes
	return &entity.NominaSemanal{
		ID:           id,
		NumeroSemana: 10,
		Anio:         2025,
		FechaInicio:  inicio,
		FechaFin:     inicio.AddDate(0, 0, 6),
		Cerrada:      cerrada,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación de años
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarSemanas_Anio52Semanas(t *testing.T) {
	uc, repo := newNominaUC()

	out, err := uc.GenerarSemanas(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, out.Anio)
	assert.Equal(t, 52, out.Semanas, "2025 tiene 52 semanas ISO")
	assert.Len(t, repo.semanas, 52)

	// Todas las semanas van de lunes a domingo.
	for _, s := range repo.semanas {
		assert.Equal(t, time.Monday, s.FechaInicio.Weekday())
		assert.Equal(t, time.Sunday, s.FechaFin.Weekday())
		assert.Equal(t, s.FechaInicio.AddDate(0, 0, 6), s.FechaFin)
	}
}

func TestGenerarSemanas_Anio53Semanas(t *testing.T) {
	// 2026 arranca en jueves, por lo que el año ISO tiene 53 semanas.
	uc, _ := newNominaUC()

	out, err := uc.GenerarSemanas(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, 53, out.Semanas)
}

func TestGenerarSemanas_AnioDuplicado(t *testing.T) {
	uc, _ := newNominaUC()
	_, err := uc.GenerarSemanas(context.Background(), 2025)
	require.NoError(t, err)

	_, err = uc.GenerarSemanas(context.Background(), 2025)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "regenerar el mismo año debe fallar")
}

func TestGenerarSemanas_AnioFueraDeRango(t *testing.T) {
	uc, _ := newNominaUC()
	_, err := uc.GenerarSemanas(context.Background(), 1999)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GenerarSemanas(context.Background(), 2101)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEliminarAnio_NoExiste(t *testing.T) {
	uc, _ := newNominaUC()
	err := uc.EliminarAnio(context.Background(), 2030)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarAnio_BorraTodasLasSemanas(t *testing.T) {
	uc, repo := newNominaUC()
	_, err := uc.GenerarSemanas(context.Background(), 2025)
	require.NoError(t, err)

	require.NoError(t, uc.EliminarAnio(context.Background(), 2025))
	assert.Empty(t, repo.semanas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Candado de semana cerrada
// ──────────────────────────────────────────────────────────────────────────────

func TestAddPago_SemanaCerrada(t *testing.T) {
	uc, repo := newNominaUC()
	repo.semanas["n1"] = semanaDePrueba("n1", true)

	_, err := uc.AddPago("n1", dto.CreatePagoNominaRequest{
		NombreReceptor: "Juan Pérez",
		Monto:          decimal.NewFromInt(1500),
	})
	assert.ErrorIs(t, err, domain.ErrNominaCerrada,
		"una semana cerrada no debe aceptar pagos")
}

func TestUpdatePago_SemanaCerrada(t *testing.T) {
	uc, repo := newNominaUC()
	n := semanaDePrueba("n1", true)
	n.Pagos = []entity.PagoNomina{{ID: "p1", NominaID: "n1", NombreReceptor: "Juan", Monto: decimal.NewFromInt(100)}}
	repo.semanas["n1"] = n

	nombre := "Pedro"
	_, err := uc.UpdatePago("n1", "p1", dto.UpdatePagoNominaRequest{NombreReceptor: &nombre})
	assert.ErrorIs(t, err, domain.ErrNominaCerrada)
}

func TestDeletePago_SemanaCerrada(t *testing.T) {
	uc, repo := newNominaUC()
	n := semanaDePrueba("n1", true)
	n.Pagos = []entity.PagoNomina{{ID: "p1", NominaID: "n1", NombreReceptor: "Juan", Monto: decimal.NewFromInt(100)}}
	repo.semanas["n1"] = n

	err := uc.DeletePago("n1", "p1")
	assert.ErrorIs(t, err, domain.ErrNominaCerrada)
}

func TestReabrir_PermiteMutarDeNuevo(t *testing.T) {
	uc, repo := newNominaUC()
	repo.semanas["n1"] = semanaDePrueba("n1", true)

	out, err := uc.Reabrir("n1")
	require.NoError(t, err)
	assert.False(t, out.Cerrada)

	_, err = uc.AddPago("n1", dto.CreatePagoNominaRequest{
		NombreReceptor: "Juan Pérez",
		Monto:          decimal.NewFromInt(1500),
	})
	assert.NoError(t, err, "tras reabrir deben aceptarse pagos")
}

func TestCerrar_Idempotente(t *testing.T) {
	uc, repo := newNominaUC()
	repo.semanas["n1"] = semanaDePrueba("n1", true)

	out, err := uc.Cerrar("n1")
	require.NoError(t, err)
	assert.True(t, out.Cerrada, "cerrar una semana ya cerrada es un no-op")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos de nómina
// ──────────────────────────────────────────────────────────────────────────────

func TestAddPago_CalculaTotal(t *testing.T) {
	uc, repo := newNominaUC()
	repo.semanas["n1"] = semanaDePrueba("n1", false)

	_, err := uc.AddPago("n1", dto.CreatePagoNominaRequest{
		NombreReceptor: "Juan Pérez",
		Monto:          decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	out, err := uc.AddPago("n1", dto.CreatePagoNominaRequest{
		NombreReceptor: "Ana López",
		Monto:          decimal.NewFromFloat(2250.50),
	})
	require.NoError(t, err)
	assert.Len(t, out.Pagos, 2)
	assert.True(t, decimal.NewFromFloat(3750.50).Equal(out.TotalPagos),
		"total esperado 3750.50, obtenido %s", out.TotalPagos)
}

func TestAddPago_Validaciones(t *testing.T) {
	uc, repo := newNominaUC()
	repo.semanas["n1"] = semanaDePrueba("n1", false)

	// Sin receptor.
	_, err := uc.AddPago("n1", dto.CreatePagoNominaRequest{Monto: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Monto cero.
	_, err = uc.AddPago("n1", dto.CreatePagoNominaRequest{NombreReceptor: "Juan"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Estado fuera de la enumeración.
	_, err = uc.AddPago("n1", dto.CreatePagoNominaRequest{
		NombreReceptor: "Juan",
		Monto:          decimal.NewFromInt(100),
		Estado:         "cancelado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddPago_EstadoPorDefectoPendiente(t *testing.T) {
	uc, repo := newNominaUC()
	repo.semanas["n1"] = semanaDePrueba("n1", false)

	out, err := uc.AddPago("n1", dto.CreatePagoNominaRequest{
		NombreReceptor: "Juan Pérez",
		Monto:          decimal.NewFromInt(1500),
	})
	require.NoError(t, err)
	require.Len(t, out.Pagos, 1)
	assert.Equal(t, string(entity.PagoNominaPendiente), out.Pagos[0].Estado)
}

func TestUpdatePago_Parcial(t *testing.T) {
	uc, repo := newNominaUC()
	n := semanaDePrueba("n1", false)
	n.Pagos = []entity.PagoNomina{{
		ID: "p1", NominaID: "n1", NombreReceptor: "Juan",
		Monto: decimal.NewFromInt(100), Estado: entity.PagoNominaPendiente,
	}}
	repo.semanas["n1"] = n

	estado := string(entity.PagoNominaPagado)
	out, err := uc.UpdatePago("n1", "p1", dto.UpdatePagoNominaRequest{Estado: &estado})
	require.NoError(t, err)
	require.Len(t, out.Pagos, 1)
	assert.Equal(t, "pagado", out.Pagos[0].Estado)
	assert.Equal(t, "Juan", out.Pagos[0].NombreReceptor, "los campos no enviados no cambian")
}

func TestUpdatePago_PagoInexistente(t *testing.T) {
	uc, repo := newNominaUC()
	repo.semanas["n1"] = semanaDePrueba("n1", false)

	nombre := "Pedro"
	_, err := uc.UpdatePago("n1", "no-existe", dto.UpdatePagoNominaRequest{NombreReceptor: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
