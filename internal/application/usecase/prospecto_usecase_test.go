package usecase_test

import (
	"context"
	"testing"

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
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProspectoRepo struct {
	prospectos map[string]*entity.Prospecto
}

func newFakeProspectoRepo() *fakeProspectoRepo {
	return &fakeProspectoRepo{prospectos: make(map[string]*entity.Prospecto)}
}

func (f *fakeProspectoRepo) Create(p *entity.Prospecto) error {
	copia := *p
	f.prospectos[p.ID] = &copia
	return nil
}

func (f *fakeProspectoRepo) GetByID(id string) (*entity.Prospecto, error) {
	p, ok := f.prospectos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProspectoRepo) Update(p *entity.Prospecto) error {
	if _, ok := f.prospectos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	f.prospectos[p.ID] = &copia
	return nil
}

func (f *fakeProspectoRepo) Delete(id string) error {
	delete(f.prospectos, id)
	return nil
}

func (f *fakeProspectoRepo) List(filtro repository.FiltroProspectos) ([]*entity.Prospecto, error) {
	var out []*entity.Prospecto
	for _, p := range f.prospectos {
		if filtro.Estado != "" && p.Estado != filtro.Estado {
			continue
		}
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeProspectoRepo) AddNota(nota *entity.NotaProspecto) error {
	p, ok := f.prospectos[nota.ProspectoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Notas = append(p.Notas, *nota)
	return nil
}

func (f *fakeProspectoRepo) DeleteNota(prospectoID, notaID string) error {
	p, ok := f.prospectos[prospectoID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range p.Notas {
		if p.Notas[i].ID == notaID {
			p.Notas = append(p.Notas[:i], p.Notas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeProyectoRepo registra los proyectos creados; el resto de la interfaz no
// se usa en estos tests.
type fakeProyectoRepo struct {
	proyectos map[string]*entity.Proyecto
}

func newFakeProyectoRepo() *fakeProyectoRepo {
	return &fakeProyectoRepo{proyectos: make(map[string]*entity.Proyecto)}
}

func (f *fakeProyectoRepo) Create(p *entity.Proyecto) error {
	copia := *p
	f.proyectos[p.ID] = &copia
	return nil
}

func (f *fakeProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	p, ok := f.proyectos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProyectoRepo) Update(p *entity.Proyecto) error { return nil }
func (f *fakeProyectoRepo) Delete(id string) error          { return nil }

func (f *fakeProyectoRepo) List(limit, offset int) ([]*entity.Proyecto, error) { return nil, nil }

func (f *fakeProyectoRepo) AddPago(pago *entity.PagoProyecto) error { return nil }
func (f *fakeProyectoRepo) GetPago(proyectoID, pagoID string) (*entity.PagoProyecto, error) {
	return nil, nil
}
func (f *fakeProyectoRepo) DeletePago(proyectoID, pagoID string) error { return nil }

func (f *fakeProyectoRepo) AsignarTrabajador(proyectoID, trabajadorID string) error { return nil }
func (f *fakeProyectoRepo) RemoverTrabajador(proyectoID, trabajadorID string) error { return nil }

type fakeConversionTx struct {
	prospectos *fakeProspectoRepo
	proyectos  *fakeProyectoRepo
}

func (f *fakeConversionTx) RunConversion(_ context.Context, fn func(
	prospectos repository.ProspectoRepository,
	proyectos repository.ProyectoRepository,
) error) error {
	return fn(f.prospectos, f.proyectos)
}

func newProspectoUC() (*usecase.ProspectoUseCase, *fakeProspectoRepo, *fakeProyectoRepo) {
	prospectos := newFakeProspectoRepo()
	proyectos := newFakeProyectoRepo()
	uc := usecase.NewProspectoUseCase(prospectos, &fakeConversionTx{
		prospectos: prospectos,
		proyectos:  proyectos,
	})
	return uc, prospectos, proyectos
}

// ──────────────────────────────────────────────────────────────────────────────
// IVA derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProspecto_DerivaIVA(t *testing.T) {
	uc, _, _ := newProspectoUC()

	out, err := uc.Create(dto.CreateProspectoRequest{
		Nombre:        "Residencial Las Palmas",
		Cliente:       "Inmobiliaria del Norte",
		MontoTotal:    decimal.NewFromInt(1_000_000),
		PorcentajeIVA: decimal.NewFromInt(16),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(160_000).Equal(out.IVA),
		"IVA esperado 160000, obtenido %s", out.IVA)
	assert.Equal(t, string(entity.ProspectoPendiente), out.Estado)
}

func TestUpdateProspecto_RecalculaIVAAlCambiarMonto(t *testing.T) {
	uc, _, _ := newProspectoUC()
	creado, err := uc.Create(dto.CreateProspectoRequest{
		Nombre:        "Bodega Industrial",
		Cliente:       "Logística MX",
		MontoTotal:    decimal.NewFromInt(500_000),
		PorcentajeIVA: decimal.NewFromInt(16),
	})
	require.NoError(t, err)

	nuevoMonto := decimal.NewFromInt(800_000)
	out, err := uc.Update(creado.ID, dto.UpdateProspectoRequest{MontoTotal: &nuevoMonto})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(128_000).Equal(out.IVA),
		"cambiar el monto debe recalcular el IVA con el porcentaje vigente")
}

func TestUpdateProspecto_RecalculaIVAAlCambiarPorcentaje(t *testing.T) {
	uc, _, _ := newProspectoUC()
	creado, err := uc.Create(dto.CreateProspectoRequest{
		Nombre:        "Bodega Industrial",
		Cliente:       "Logística MX",
		MontoTotal:    decimal.NewFromInt(500_000),
		PorcentajeIVA: decimal.NewFromInt(16),
	})
	require.NoError(t, err)

	cero := decimal.Zero
	out, err := uc.Update(creado.ID, dto.UpdateProspectoRequest{PorcentajeIVA: &cero})
	require.NoError(t, err)
	assert.True(t, out.IVA.IsZero(), "porcentaje 0 debe dejar IVA en 0")
}

func TestUpdateProspecto_SinCambioDeMontoNoTocaIVA(t *testing.T) {
	uc, _, _ := newProspectoUC()
	creado, err := uc.Create(dto.CreateProspectoRequest{
		Nombre:        "Bodega Industrial",
		Cliente:       "Logística MX",
		MontoTotal:    decimal.NewFromInt(500_000),
		PorcentajeIVA: decimal.NewFromInt(16),
	})
	require.NoError(t, err)

	ubicacion := "Monterrey"
	out, err := uc.Update(creado.ID, dto.UpdateProspectoRequest{Ubicacion: &ubicacion})
	require.NoError(t, err)
	assert.True(t, creado.IVA.Equal(out.IVA))
}

func TestCreateProspecto_Validaciones(t *testing.T) {
	uc, _, _ := newProspectoUC()

	_, err := uc.Create(dto.CreateProspectoRequest{Cliente: "Sin nombre"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProspectoRequest{Nombre: "Sin cliente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProspecto_EstadoInvalido(t *testing.T) {
	uc, _, _ := newProspectoUC()
	creado, err := uc.Create(dto.CreateProspectoRequest{
		Nombre:  "Obra",
		Cliente: "Cliente",
	})
	require.NoError(t, err)

	estado := "ganado"
	_, err = uc.Update(creado.ID, dto.UpdateProspectoRequest{Estado: &estado})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión prospecto → proyecto
// ──────────────────────────────────────────────────────────────────────────────

func prospectoConvertible(uc *usecase.ProspectoUseCase, t *testing.T) string {
	t.Helper()
	creado, err := uc.Create(dto.CreateProspectoRequest{
		Nombre:        "Plaza Comercial",
		Cliente:       "Grupo Carso",
		MontoTotal:    decimal.NewFromInt(2_000_000),
		PorcentajeIVA: decimal.NewFromInt(16),
		Anticipo:      decimal.NewFromInt(400_000),
	})
	require.NoError(t, err)

	estado := string(entity.ProspectoConvertido)
	_, err = uc.Update(creado.ID, dto.UpdateProspectoRequest{Estado: &estado})
	require.NoError(t, err)
	return creado.ID
}

func TestConvertir_CreaProyectoYLigaProspecto(t *testing.T) {
	uc, _, proyectos := newProspectoUC()
	id := prospectoConvertible(uc, t)

	out, err := uc.ConvertirAProyecto(context.Background(), id)
	require.NoError(t, err)
	require.NotEmpty(t, out.ProyectoID, "el prospecto debe quedar ligado al proyecto creado")

	proyecto, err := proyectos.GetByID(out.ProyectoID)
	require.NoError(t, err)
	require.NotNil(t, proyecto)
	assert.Equal(t, "Plaza Comercial", proyecto.Nombre)
	assert.True(t, decimal.NewFromInt(2_000_000).Equal(proyecto.MontoTotal))
	assert.True(t, decimal.NewFromInt(320_000).Equal(proyecto.IVA),
		"el proyecto hereda el IVA derivado del prospecto")
	assert.True(t, decimal.NewFromInt(400_000).Equal(proyecto.Anticipo))
}

func TestConvertir_EstadoNoConvertido(t *testing.T) {
	uc, _, _ := newProspectoUC()
	creado, err := uc.Create(dto.CreateProspectoRequest{
		Nombre:  "Obra",
		Cliente: "Cliente",
	})
	require.NoError(t, err)

	_, err = uc.ConvertirAProyecto(context.Background(), creado.ID)
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido,
		"solo un prospecto en estado convertido puede generar proyecto")
}

func TestConvertir_DosVecesFalla(t *testing.T) {
	uc, _, proyectos := newProspectoUC()
	id := prospectoConvertible(uc, t)

	_, err := uc.ConvertirAProyecto(context.Background(), id)
	require.NoError(t, err)

	_, err = uc.ConvertirAProyecto(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un prospecto ya ligado a proyecto no se convierte dos veces")
	assert.Len(t, proyectos.proyectos, 1, "no debe crearse un segundo proyecto")
}

func TestConvertir_ProspectoInexistente(t *testing.T) {
	uc, _, _ := newProspectoUC()
	out, err := uc.ConvertirAProyecto(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notas de seguimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestAddNota_YListar(t *testing.T) {
	uc, _, _ := newProspectoUC()
	creado, err := uc.Create(dto.CreateProspectoRequest{Nombre: "Obra", Cliente: "Cliente"})
	require.NoError(t, err)

	out, err := uc.AddNota(creado.ID, dto.CreateNotaRequest{Contenido: "Llamar al cliente el lunes"})
	require.NoError(t, err)
	require.Len(t, out.Notas, 1)
	assert.Equal(t, "Llamar al cliente el lunes", out.Notas[0].Contenido)
}

func TestAddNota_ContenidoVacio(t *testing.T) {
	uc, _, _ := newProspectoUC()
	creado, err := uc.Create(dto.CreateProspectoRequest{Nombre: "Obra", Cliente: "Cliente"})
	require.NoError(t, err)

	_, err = uc.AddNota(creado.ID, dto.CreateNotaRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
