package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/constructora-api/internal/application/usecase"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
	apphttp "github.com/jhoicas/constructora-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de NominaRepository para probar la capa HTTP completa (router +
// middlewares + mapeo de errores) sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type nominaRepoStub struct {
	semanas map[string]*entity.NominaSemanal
}

func newNominaRepoStub() *nominaRepoStub {
	return &nominaRepoStub{semanas: make(map[string]*entity.NominaSemanal)}
}

func (s *nominaRepoStub) GetByID(id string) (*entity.NominaSemanal, error) {
	n, ok := s.semanas[id]
	if !ok {
		return nil, nil
	}
	copia := *n
	return &copia, nil
}

func (s *nominaRepoStub) List(repository.FiltroNominas) ([]*entity.NominaSemanal, error) {
	var out []*entity.NominaSemanal
	for _, n := range s.semanas {
		copia := *n
		out = append(out, &copia)
	}
	return out, nil
}

func (s *nominaRepoStub) GetPorFecha(time.Time) (*entity.NominaSemanal, error) { return nil, nil }

func (s *nominaRepoStub) SetCerrada(id string, cerrada bool) error {
	if n, ok := s.semanas[id]; ok {
		n.Cerrada = cerrada
	}
	return nil
}

func (s *nominaRepoStub) AniosDisponibles() ([]int, error) {
	vistos := map[int]bool{}
	var anios []int
	for _, n := range s.semanas {
		if !vistos[n.Anio] {
			vistos[n.Anio] = true
			anios = append(anios, n.Anio)
		}
	}
	return anios, nil
}

func (s *nominaRepoStub) ExisteAnio(anio int) (bool, error) {
	for _, n := range s.semanas {
		if n.Anio == anio {
			return true, nil
		}
	}
	return false, nil
}

func (s *nominaRepoStub) CrearSemanas(semanas []*entity.NominaSemanal) error {
	for _, sem := range semanas {
		copia := *sem
		s.semanas[sem.ID] = &copia
	}
	return nil
}

func (s *nominaRepoStub) EliminarAnio(anio int) error {
	for id, n := range s.semanas {
		if n.Anio == anio {
			delete(s.semanas, id)
		}
	}
	return nil
}

func (s *nominaRepoStub) AddPago(pago *entity.PagoNomina) error {
	if n, ok := s.semanas[pago.NominaID]; ok {
		n.Pagos = append(n.Pagos, *pago)
	}
	return nil
}

func (s *nominaRepoStub) GetPago(nominaID, pagoID string) (*entity.PagoNomina, error) {
	n, ok := s.semanas[nominaID]
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

func (s *nominaRepoStub) UpdatePago(*entity.PagoNomina) error { return nil }

func (s *nominaRepoStub) DeletePago(nominaID, pagoID string) error { return nil }

type nominaTxStub struct{ repo repository.NominaRepository }

func (r nominaTxStub) RunNomina(_ context.Context, fn func(repository.NominaRepository) error) error {
	return fn(r.repo)
}

// buildNominaApp monta el router real con el repo fake detrás del caso de uso.
func buildNominaApp(repo *nominaRepoStub) *fiber.App {
	app := fiber.New()
	uc := usecase.NewNominaUseCase(repo, nominaTxStub{repo: repo})
	apphttp.Router(app, apphttp.RouterDeps{
		NominaUC:  uc,
		JWTSecret: testJWTSecret,
	})
	return app
}

func nominaRequest(t *testing.T, app *fiber.App, method, target, rol, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", tokenForRole(t, rol))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func semanaAbierta(id string) *entity.NominaSemanal {
	inicio := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	return &entity.NominaSemanal{
		ID:           id,
		NumeroSemana: 23,
		Anio:         2025,
		FechaInicio:  inicio,
		FechaFin:     inicio.AddDate(0, 0, 6),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores de dominio a HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestNominaHTTP_GetInexistente_404(t *testing.T) {
	app := buildNominaApp(newNominaRepoStub())

	resp := nominaRequest(t, app, http.MethodGet, "/api/nominas/no-existe", "admin", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNominaHTTP_PagoEnSemanaCerrada_409(t *testing.T) {
	repo := newNominaRepoStub()
	n := semanaAbierta("n1")
	n.Cerrada = true
	repo.semanas["n1"] = n
	app := buildNominaApp(repo)

	resp := nominaRequest(t, app, http.MethodPost, "/api/nominas/n1/pagos", "admin",
		`{"nombre_receptor":"Juan Pérez","monto":"1500"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOMINA_CERRADA", body["code"])
}

func TestNominaHTTP_PagoInvalido_422(t *testing.T) {
	repo := newNominaRepoStub()
	repo.semanas["n1"] = semanaAbierta("n1")
	app := buildNominaApp(repo)

	resp := nominaRequest(t, app, http.MethodPost, "/api/nominas/n1/pagos", "admin",
		`{"nombre_receptor":"","monto":"1500"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestNominaHTTP_AddPago_201(t *testing.T) {
	repo := newNominaRepoStub()
	repo.semanas["n1"] = semanaAbierta("n1")
	app := buildNominaApp(repo)

	resp := nominaRequest(t, app, http.MethodPost, "/api/nominas/n1/pagos", "capturista",
		`{"nombre_receptor":"Juan Pérez","monto":"1500.50"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Pagos      []map[string]interface{} `json:"pagos"`
		TotalPagos decimal.Decimal          `json:"total_pagos"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Pagos, 1)
	assert.True(t, decimal.NewFromFloat(1500.50).Equal(body.TotalPagos))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de años: precedencia sobre /:id y RBAC
// ──────────────────────────────────────────────────────────────────────────────

func TestNominaHTTP_AniosNoChocaConID(t *testing.T) {
	// /api/nominas/anios debe resolverse como lista de años, no como GetByID
	// con id="anios".
	repo := newNominaRepoStub()
	repo.semanas["n1"] = semanaAbierta("n1")
	app := buildNominaApp(repo)

	resp := nominaRequest(t, app, http.MethodGet, "/api/nominas/anios", "capturista", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Anios []int `json:"anios"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []int{2025}, body.Anios)
}

func TestNominaHTTP_GenerarAnio_SoloAdmin(t *testing.T) {
	app := buildNominaApp(newNominaRepoStub())

	resp := nominaRequest(t, app, http.MethodPost, "/api/nominas/anios/2025", "capturista", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"generar un año de nómina es operación de admin")
}

func TestNominaHTTP_GenerarAnio_Admin201(t *testing.T) {
	repo := newNominaRepoStub()
	app := buildNominaApp(repo)

	resp := nominaRequest(t, app, http.MethodPost, "/api/nominas/anios/2025", "admin", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Anio    int `json:"anio"`
		Semanas int `json:"semanas"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2025, body.Anio)
	assert.Equal(t, 52, body.Semanas)
	assert.Len(t, repo.semanas, 52)
}

func TestNominaHTTP_GenerarAnioInvalido_422(t *testing.T) {
	app := buildNominaApp(newNominaRepoStub())

	resp := nominaRequest(t, app, http.MethodPost, "/api/nominas/anios/abc", "admin", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestNominaHTTP_GenerarAnioDuplicado_409(t *testing.T) {
	repo := newNominaRepoStub()
	repo.semanas["n1"] = semanaAbierta("n1")
	app := buildNominaApp(repo)

	resp := nominaRequest(t, app, http.MethodPost, "/api/nominas/anios/2025", "admin", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestNominaHTTP_SinToken_401(t *testing.T) {
	app := buildNominaApp(newNominaRepoStub())

	req := httptest.NewRequest(http.MethodGet, "/api/nominas/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
