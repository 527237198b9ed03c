package storage_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/constructora-api/internal/infrastructure/storage"
)

func newLocal(t *testing.T) *storage.Local {
	t.Helper()
	l, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	return l
}

func TestGuardarYAbrir(t *testing.T) {
	l := newLocal(t)

	n, err := l.Guardar("doc.pdf", strings.NewReader("contenido"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("contenido")), n)

	rc, err := l.Abrir("doc.pdf")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestGuardar_CreaSubdirectorios(t *testing.T) {
	dir := t.TempDir()
	l, err := storage.NewLocal(dir)
	require.NoError(t, err)

	_, err = l.Guardar("contratistas/c1/doc.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "contratistas", "c1", "doc.pdf"))
	assert.NoError(t, err)
}

func TestEliminar_InexistenteNoEsError(t *testing.T) {
	l := newLocal(t)
	assert.NoError(t, l.Eliminar("no-existe.pdf"))
}

func TestEliminar_BorraElArchivo(t *testing.T) {
	l := newLocal(t)
	_, err := l.Guardar("doc.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, l.Eliminar("doc.pdf"))
	_, err = l.Abrir("doc.pdf")
	assert.Error(t, err)
}

func TestRutasInvalidas(t *testing.T) {
	l := newLocal(t)

	casos := []string{
		"../fuera.txt",
		"sub/../../fuera.txt",
		"/etc/passwd",
		".",
		"",
	}
	for _, ruta := range casos {
		_, err := l.Guardar(ruta, strings.NewReader("x"))
		assert.Error(t, err, "la ruta %q debe rechazarse", ruta)

		_, err = l.Abrir(ruta)
		assert.Error(t, err, "la ruta %q debe rechazarse", ruta)
	}
}
