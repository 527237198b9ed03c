package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación de DocumentoRepository (usable con pool o tx).
type DocumentoRepo struct {
	q Querier
}

// NewDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentoRepository(q Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Create persiste los metadatos de un archivo subido.
func (r *DocumentoRepo) Create(d *entity.Documento) error {
	query := `
		INSERT INTO documentos (id, contratista_id, nombre, ruta, tamano, content_type, fecha_subida)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, nullIfEmpty(d.ContratistaID), d.Nombre, d.Ruta, d.Tamano, d.ContentType, d.FechaSubida,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. nil, nil si no existe.
func (r *DocumentoRepo) GetByID(id string) (*entity.Documento, error) {
	query := `
		SELECT id, COALESCE(contratista_id::text, ''), nombre, ruta, tamano, content_type, fecha_subida
		FROM documentos WHERE id = $1`
	var d entity.Documento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.ContratistaID, &d.Nombre, &d.Ruta, &d.Tamano, &d.ContentType, &d.FechaSubida,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return &d, nil
}

// Delete elimina los metadatos de un documento.
func (r *DocumentoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM documentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByContratista lista los documentos de un contratista.
func (r *DocumentoRepo) ListByContratista(contratistaID string) ([]*entity.Documento, error) {
	query := `
		SELECT id, COALESCE(contratista_id::text, ''), nombre, ruta, tamano, content_type, fecha_subida
		FROM documentos WHERE contratista_id = $1 ORDER BY fecha_subida DESC`
	return r.queryDocumentos(query, contratistaID)
}

// Buscar lista archivos generales (sin contratista) filtrando por nombre.
func (r *DocumentoRepo) Buscar(texto string, limit, offset int) ([]*entity.Documento, error) {
	query := `
		SELECT id, COALESCE(contratista_id::text, ''), nombre, ruta, tamano, content_type, fecha_subida
		FROM documentos
		WHERE contratista_id IS NULL AND nombre ILIKE $1
		ORDER BY fecha_subida DESC LIMIT $2 OFFSET $3`
	return r.queryDocumentos(query, "%"+texto+"%", limit, offset)
}

func (r *DocumentoRepo) queryDocumentos(query string, args ...any) ([]*entity.Documento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		var d entity.Documento
		if err := rows.Scan(&d.ID, &d.ContratistaID, &d.Nombre, &d.Ruta, &d.Tamano, &d.ContentType, &d.FechaSubida); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
