package usecase

import (
	"context"

	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// ConversionTxRunner ejecuta la conversión prospecto→proyecto dentro de una
// transacción, con repos atados a la misma tx.
type ConversionTxRunner interface {
	RunConversion(ctx context.Context, fn func(
		prospectos repository.ProspectoRepository,
		proyectos repository.ProyectoRepository,
	) error) error
}

// NominaTxRunner ejecuta el ciclo de vida de años de nómina (generar/eliminar
// semanas en lote) dentro de una transacción.
type NominaTxRunner interface {
	RunNomina(ctx context.Context, fn func(nominas repository.NominaRepository) error) error
}

// ContratistaTxRunner ejecuta el borrado en cascada de un contratista
// (conceptos, documentos y asignaciones) dentro de una transacción.
type ContratistaTxRunner interface {
	RunContratista(ctx context.Context, fn func(
		contratistas repository.ContratistaRepository,
		conceptos repository.ConceptoRepository,
	) error) error
}
