// Package storage implementa el almacenamiento de archivos en disco local.
// Los metadatos viven en PostgreSQL (documentos); aquí solo van los bytes.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/constructora-api/internal/application/usecase"
)

var _ usecase.ArchivoStorage = (*Local)(nil)

// Local guarda archivos bajo un directorio raíz. Las rutas que recibe son
// relativas a ese directorio; nunca se acepta una ruta que escape de él.
type Local struct {
	dir string
}

// NewLocal crea el almacenamiento y asegura que el directorio raíz exista.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Guardar escribe el contenido en la ruta relativa dada y devuelve los bytes escritos.
func (l *Local) Guardar(ruta string, r io.Reader) (int64, error) {
	abs, err := l.resolver(ruta)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return 0, fmt.Errorf("storage: crear subdirectorio: %w", err)
	}
	f, err := os.Create(abs)
	if err != nil {
		return 0, fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer f.Close()
	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(abs)
		return 0, fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return n, nil
}

// Abrir abre el archivo para lectura. El caller debe cerrar el reader.
func (l *Local) Abrir(ruta string) (io.ReadCloser, error) {
	abs, err := l.resolver(ruta)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir archivo: %w", err)
	}
	return f, nil
}

// Eliminar borra el archivo. Borrar un archivo inexistente no es error.
func (l *Local) Eliminar(ruta string) error {
	abs, err := l.resolver(ruta)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: eliminar archivo: %w", err)
	}
	return nil
}

// resolver convierte la ruta relativa en absoluta, rechazando traversal.
func (l *Local) resolver(ruta string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(ruta))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("storage: ruta inválida %q", ruta)
	}
	return filepath.Join(l.dir, clean), nil
}
