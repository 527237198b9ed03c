package usecase_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: metadatos y bytes
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocumentoRepo struct {
	docs map[string]*entity.Documento
}

func newFakeDocumentoRepo() *fakeDocumentoRepo {
	return &fakeDocumentoRepo{docs: make(map[string]*entity.Documento)}
}

func (f *fakeDocumentoRepo) Create(d *entity.Documento) error {
	copia := *d
	f.docs[d.ID] = &copia
	return nil
}

func (f *fakeDocumentoRepo) GetByID(id string) (*entity.Documento, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

func (f *fakeDocumentoRepo) Delete(id string) error {
	delete(f.docs, id)
	return nil
}

func (f *fakeDocumentoRepo) ListByContratista(contratistaID string) ([]*entity.Documento, error) {
	var out []*entity.Documento
	for _, d := range f.docs {
		if d.ContratistaID == contratistaID {
			copia := *d
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeDocumentoRepo) Buscar(texto string, limit, offset int) ([]*entity.Documento, error) {
	var out []*entity.Documento
	for _, d := range f.docs {
		if d.ContratistaID != "" {
			continue
		}
		if texto != "" && !strings.Contains(strings.ToLower(d.Nombre), strings.ToLower(texto)) {
			continue
		}
		copia := *d
		out = append(out, &copia)
	}
	return out, nil
}

// fakeStorage guarda los bytes en un mapa.
type fakeStorage struct {
	archivos map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{archivos: make(map[string][]byte)}
}

func (f *fakeStorage) Guardar(ruta string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.archivos[ruta] = data
	return int64(len(data)), nil
}

func (f *fakeStorage) Abrir(ruta string) (io.ReadCloser, error) {
	data, ok := f.archivos[ruta]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Eliminar(ruta string) error {
	delete(f.archivos, ruta)
	return nil
}

func newArchivoUC(limite int64) (*usecase.ArchivoUseCase, *fakeDocumentoRepo, *fakeStorage) {
	repo := newFakeDocumentoRepo()
	st := newFakeStorage()
	return usecase.NewArchivoUseCase(repo, st, limite), repo, st
}

func subirDePrueba(t *testing.T, uc *usecase.ArchivoUseCase, nombre, contenido string) *dto.DocumentoResponse {
	t.Helper()
	doc, err := uc.Subir(usecase.SubirArchivoInput{
		Nombre:      nombre,
		ContentType: "application/pdf",
		Tamano:      int64(len(contenido)),
		Contenido:   strings.NewReader(contenido),
	})
	require.NoError(t, err)
	return doc
}

// ──────────────────────────────────────────────────────────────────────────────
// Subida y límite de tamaño
// ──────────────────────────────────────────────────────────────────────────────

func TestSubir_GuardaBytesYMetadatos(t *testing.T) {
	uc, repo, st := newArchivoUC(1024)

	doc := subirDePrueba(t, uc, "contrato.pdf", "contenido del contrato")
	assert.Equal(t, "contrato.pdf", doc.Nombre)
	assert.Equal(t, int64(len("contenido del contrato")), doc.Tamano)
	assert.Equal(t, "/api/archivos/"+doc.ID+"/descargar", doc.URL)

	guardado, err := repo.GetByID(doc.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.Contains(t, st.archivos, guardado.Ruta)
	assert.Equal(t, ".pdf", guardado.Ruta[len(guardado.Ruta)-4:],
		"la ruta conserva la extensión original")
}

func TestSubir_TamanoDeclaradoExcedido(t *testing.T) {
	uc, _, st := newArchivoUC(10)

	_, err := uc.Subir(usecase.SubirArchivoInput{
		Nombre:    "grande.pdf",
		Tamano:    100,
		Contenido: strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, domain.ErrArchivoMuyGrande)
	assert.Empty(t, st.archivos, "no debe quedar nada escrito")
}

func TestSubir_TamanoRealExcedido(t *testing.T) {
	// El multipart declara menos de lo que trae: manda el tamaño real escrito.
	uc, repo, st := newArchivoUC(5)

	_, err := uc.Subir(usecase.SubirArchivoInput{
		Nombre:    "tramposo.pdf",
		Tamano:    3,
		Contenido: strings.NewReader("mucho más de cinco bytes"),
	})
	assert.ErrorIs(t, err, domain.ErrArchivoMuyGrande)
	assert.Empty(t, st.archivos, "los bytes escritos de más deben borrarse")
	assert.Empty(t, repo.docs)
}

func TestSubir_SinNombre(t *testing.T) {
	uc, _, _ := newArchivoUC(1024)
	_, err := uc.Subir(usecase.SubirArchivoInput{Contenido: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubir_ConContratistaUsaSubdirectorio(t *testing.T) {
	uc, repo, _ := newArchivoUC(1024)

	doc, err := uc.Subir(usecase.SubirArchivoInput{
		ContratistaID: "c1",
		Nombre:        "ine.jpg",
		Tamano:        1,
		Contenido:     strings.NewReader("x"),
	})
	require.NoError(t, err)

	guardado, err := repo.GetByID(doc.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(guardado.Ruta, "contratistas/c1/"),
		"los documentos de contratista viven bajo contratistas/<id>/")
}

// ──────────────────────────────────────────────────────────────────────────────
// Descarga, búsqueda y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestDescargar_DevuelveContenido(t *testing.T) {
	uc, _, _ := newArchivoUC(1024)
	doc := subirDePrueba(t, uc, "contrato.pdf", "contenido del contrato")

	d, rc, err := uc.Descargar(doc.ID)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "contenido del contrato", string(data))
	assert.Equal(t, "application/pdf", d.ContentType)
}

func TestDescargar_NoExiste(t *testing.T) {
	uc, _, _ := newArchivoUC(1024)
	_, _, err := uc.Descargar("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuscar_FiltraPorNombre(t *testing.T) {
	uc, _, _ := newArchivoUC(1024)
	subirDePrueba(t, uc, "contrato-2025.pdf", "a")
	subirDePrueba(t, uc, "plano-estructural.dwg", "b")

	out, err := uc.Buscar("contrato", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "contrato-2025.pdf", out.Items[0].Nombre)
}

func TestEliminar_BorraMetadatosYBytes(t *testing.T) {
	uc, repo, st := newArchivoUC(1024)
	doc := subirDePrueba(t, uc, "contrato.pdf", "contenido")

	require.NoError(t, uc.Eliminar(doc.ID))
	assert.Empty(t, repo.docs)
	assert.Empty(t, st.archivos)
}

func TestEliminarDeContratista_VerificaPertenencia(t *testing.T) {
	uc, _, _ := newArchivoUC(1024)
	doc, err := uc.Subir(usecase.SubirArchivoInput{
		ContratistaID: "c1",
		Nombre:        "ine.jpg",
		Tamano:        1,
		Contenido:     strings.NewReader("x"),
	})
	require.NoError(t, err)

	err = uc.EliminarDeContratista("otro-contratista", doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un documento ajeno no debe poder borrarse vía otro contratista")

	assert.NoError(t, uc.EliminarDeContratista("c1", doc.ID))
}
