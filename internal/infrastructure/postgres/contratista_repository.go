package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

var _ repository.ContratistaRepository = (*ContratistaRepo)(nil)

// ContratistaRepo implementación de ContratistaRepository (usable con pool o tx).
type ContratistaRepo struct {
	q Querier
}

// NewContratistaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContratistaRepository(q Querier) *ContratistaRepo {
	return &ContratistaRepo{q: q}
}

// Create persiste un nuevo contratista.
func (r *ContratistaRepo) Create(c *entity.Contratista) error {
	query := `
		INSERT INTO contratistas (id, nombre, rfc, telefono, especialidad_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.RFC, c.Telefono, nullIfEmpty(c.EspecialidadID), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert contratista: %w", err)
	}
	return nil
}

// GetByID obtiene un contratista con especialidad, documentos y proyectos asignados.
func (r *ContratistaRepo) GetByID(id string) (*entity.Contratista, error) {
	ctx := context.Background()
	query := `
		SELECT c.id, c.nombre, c.rfc, c.telefono, COALESCE(c.especialidad_id::text, ''), c.created_at, c.updated_at,
		       e.id, e.nombre, e.descripcion, e.created_at, e.updated_at
		FROM contratistas c
		LEFT JOIN especialidades e ON e.id = c.especialidad_id
		WHERE c.id = $1`
	var c entity.Contratista
	var espID, espNombre, espDescripcion *string
	var espCreated, espUpdated *time.Time
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Nombre, &c.RFC, &c.Telefono, &c.EspecialidadID, &c.CreatedAt, &c.UpdatedAt,
		&espID, &espNombre, &espDescripcion, &espCreated, &espUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contratista: %w", err)
	}
	if espID != nil {
		c.Especialidad = &entity.Especialidad{ID: *espID}
		if espNombre != nil {
			c.Especialidad.Nombre = *espNombre
		}
		if espDescripcion != nil {
			c.Especialidad.Descripcion = *espDescripcion
		}
		if espCreated != nil {
			c.Especialidad.CreatedAt = *espCreated
		}
		if espUpdated != nil {
			c.Especialidad.UpdatedAt = *espUpdated
		}
	}

	if err := r.cargarDocumentos(ctx, &c); err != nil {
		return nil, err
	}
	if err := r.cargarProyectos(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContratistaRepo) cargarDocumentos(ctx context.Context, c *entity.Contratista) error {
	query := `
		SELECT id, COALESCE(contratista_id::text, ''), nombre, ruta, tamano, content_type, fecha_subida
		FROM documentos WHERE contratista_id = $1 ORDER BY fecha_subida DESC`
	rows, err := r.q.Query(ctx, query, c.ID)
	if err != nil {
		return fmt.Errorf("list documentos de contratista: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.Documento
		if err := rows.Scan(&d.ID, &d.ContratistaID, &d.Nombre, &d.Ruta, &d.Tamano, &d.ContentType, &d.FechaSubida); err != nil {
			return fmt.Errorf("scan documento: %w", err)
		}
		c.Documentos = append(c.Documentos, d)
	}
	return rows.Err()
}

func (r *ContratistaRepo) cargarProyectos(ctx context.Context, c *entity.Contratista) error {
	query := `
		SELECT p.id, p.nombre, p.fecha_inicio, p.fecha_finalizacion
		FROM proyectos p
		JOIN contratista_proyectos cp ON cp.proyecto_id = p.id
		WHERE cp.contratista_id = $1
		ORDER BY p.fecha_inicio DESC`
	rows, err := r.q.Query(ctx, query, c.ID)
	if err != nil {
		return fmt.Errorf("list proyectos de contratista: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.ProyectoAsignado
		if err := rows.Scan(&p.ID, &p.Nombre, &p.FechaInicio, &p.FechaFinalizacion); err != nil {
			return fmt.Errorf("scan proyecto asignado: %w", err)
		}
		c.Proyectos = append(c.Proyectos, p)
	}
	return rows.Err()
}

// Update actualiza un contratista.
func (r *ContratistaRepo) Update(c *entity.Contratista) error {
	query := `
		UPDATE contratistas SET nombre = $2, rfc = $3, telefono = $4, especialidad_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.RFC, c.Telefono, nullIfEmpty(c.EspecialidadID), c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update contratista: %w", err)
	}
	return nil
}

// Delete elimina un contratista por ID.
func (r *ContratistaRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM contratistas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contratista: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista contratistas con paginación (sin colecciones anidadas).
func (r *ContratistaRepo) List(limit, offset int) ([]*entity.Contratista, error) {
	query := `
		SELECT id, nombre, rfc, telefono, COALESCE(especialidad_id::text, ''), created_at, updated_at
		FROM contratistas ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contratistas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contratista
	for rows.Next() {
		var c entity.Contratista
		if err := rows.Scan(&c.ID, &c.Nombre, &c.RFC, &c.Telefono, &c.EspecialidadID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contratista: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// AsignarProyecto liga un contratista a un proyecto.
func (r *ContratistaRepo) AsignarProyecto(contratistaID, proyectoID string) error {
	query := `
		INSERT INTO contratista_proyectos (contratista_id, proyecto_id)
		VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, contratistaID, proyectoID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("asignar proyecto a contratista: %w", err)
	}
	return nil
}

// RemoverProyecto quita la asignación contratista-proyecto.
func (r *ContratistaRepo) RemoverProyecto(contratistaID, proyectoID string) error {
	query := `DELETE FROM contratista_proyectos WHERE contratista_id = $1 AND proyecto_id = $2`
	tag, err := r.q.Exec(context.Background(), query, contratistaID, proyectoID)
	if err != nil {
		return fmt.Errorf("remover proyecto de contratista: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
