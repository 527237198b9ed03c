package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/constructora-api/internal/application/usecase"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

var _ usecase.ConversionTxRunner = (*TxRunner)(nil)
var _ usecase.NominaTxRunner = (*TxRunner)(nil)
var _ usecase.ContratistaTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConversion inicia una transacción con repos de prospectos y proyectos
// (conversión prospecto→proyecto) y hace Commit o Rollback.
func (r *TxRunner) RunConversion(ctx context.Context, fn func(
	prospectos repository.ProspectoRepository,
	proyectos repository.ProyectoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProspectoRepository(tx), NewProyectoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunNomina inicia una transacción con el repo de nóminas (generar o eliminar
// el lote de semanas de un año).
func (r *TxRunner) RunNomina(ctx context.Context, fn func(nominas repository.NominaRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewNominaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunContratista inicia una transacción con repos de contratistas y conceptos
// (borrado en cascada del contratista).
func (r *TxRunner) RunContratista(ctx context.Context, fn func(
	contratistas repository.ContratistaRepository,
	conceptos repository.ConceptoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewContratistaRepository(tx), NewConceptoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
