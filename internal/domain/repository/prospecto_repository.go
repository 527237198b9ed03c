package repository

import "github.com/jhoicas/constructora-api/internal/domain/entity"

// FiltroProspectos criterios de búsqueda server-side para prospectos.
// Campos nil/vacíos no filtran.
type FiltroProspectos struct {
	Estado  entity.EstadoProspecto
	Cliente string
	Texto   string // busca en nombre y ubicación
	Limit   int
	Offset  int
}

// ProspectoRepository define el puerto de persistencia para Prospecto (DIP).
type ProspectoRepository interface {
	Create(p *entity.Prospecto) error
	// GetByID devuelve el prospecto con sus notas cargadas. nil, nil si no existe.
	GetByID(id string) (*entity.Prospecto, error)
	Update(p *entity.Prospecto) error
	Delete(id string) error
	List(filtro FiltroProspectos) ([]*entity.Prospecto, error)

	AddNota(nota *entity.NotaProspecto) error
	DeleteNota(prospectoID, notaID string) error
}
