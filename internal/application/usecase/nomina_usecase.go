package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// NominaUseCase casos de uso de nómina semanal: consulta, generación de años,
// cierre de semanas y pagos. Toda mutación de pagos verifica que la semana no
// esté cerrada; la regla vive aquí, no en la interfaz.
type NominaUseCase struct {
	repo     repository.NominaRepository
	txRunner NominaTxRunner
}

// NewNominaUseCase construye el caso de uso.
func NewNominaUseCase(repo repository.NominaRepository, txRunner NominaTxRunner) *NominaUseCase {
	return &NominaUseCase{repo: repo, txRunner: txRunner}
}

// GetByID obtiene una semana con sus pagos.
func (uc *NominaUseCase) GetByID(id string) (*dto.NominaResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return toNominaResponse(n), nil
}

// List busca semanas con los criterios dados.
func (uc *NominaUseCase) List(in dto.FiltroNominasRequest) (*dto.NominaListResponse, error) {
	in.DefaultPage()
	filtro := repository.FiltroNominas{
		Anio:         in.Anio,
		NumeroSemana: in.NumeroSemana,
		TrabajadorID: in.TrabajadorID,
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	if in.EstadoPago != "" {
		estado := entity.EstadoPagoNomina(in.EstadoPago)
		if !estado.Valid() {
			return nil, domain.ErrInvalidInput
		}
		filtro.EstadoPago = estado
	}
	list, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NominaResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNominaResponse(n))
	}
	return &dto.NominaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Actual devuelve la semana que contiene la fecha de hoy.
func (uc *NominaUseCase) Actual() (*dto.NominaResponse, error) {
	n, err := uc.repo.GetPorFecha(time.Now())
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return toNominaResponse(n), nil
}

// Cerrar marca la semana como cerrada. Cerrar una semana ya cerrada es un no-op.
func (uc *NominaUseCase) Cerrar(id string) (*dto.NominaResponse, error) {
	return uc.setCerrada(id, true)
}

// Reabrir quita el candado de una semana cerrada.
func (uc *NominaUseCase) Reabrir(id string) (*dto.NominaResponse, error) {
	return uc.setCerrada(id, false)
}

func (uc *NominaUseCase) setCerrada(id string, cerrada bool) (*dto.NominaResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	if n.Cerrada != cerrada {
		if err := uc.repo.SetCerrada(id, cerrada); err != nil {
			return nil, err
		}
		n.Cerrada = cerrada
	}
	return toNominaResponse(n), nil
}

// AniosDisponibles devuelve los años con semanas generadas.
func (uc *NominaUseCase) AniosDisponibles() (*dto.AniosResponse, error) {
	anios, err := uc.repo.AniosDisponibles()
	if err != nil {
		return nil, err
	}
	return &dto.AniosResponse{Anios: anios}, nil
}

// GenerarSemanas genera todas las semanas ISO del año en una transacción. Si el
// año ya existe devuelve ErrDuplicate: la operación es idempotente por año.
func (uc *NominaUseCase) GenerarSemanas(ctx context.Context, anio int) (*dto.GenerarSemanasResponse, error) {
	if anio < 2000 || anio > 2100 {
		return nil, domain.ErrInvalidInput
	}
	existe, err := uc.repo.ExisteAnio(anio)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrDuplicate
	}

	semanas := generarSemanasISO(anio)
	err = uc.txRunner.RunNomina(ctx, func(nominas repository.NominaRepository) error {
		existe, err := nominas.ExisteAnio(anio)
		if err != nil {
			return err
		}
		if existe {
			return domain.ErrDuplicate
		}
		return nominas.CrearSemanas(semanas)
	})
	if err != nil {
		return nil, err
	}
	return &dto.GenerarSemanasResponse{Anio: anio, Semanas: len(semanas)}, nil
}

// EliminarAnio borra las semanas del año y sus pagos en una transacción.
func (uc *NominaUseCase) EliminarAnio(ctx context.Context, anio int) error {
	existe, err := uc.repo.ExisteAnio(anio)
	if err != nil {
		return err
	}
	if !existe {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunNomina(ctx, func(nominas repository.NominaRepository) error {
		return nominas.EliminarAnio(anio)
	})
}

// AddPago registra un pago en la semana. Falla con ErrNominaCerrada si la
// semana está cerrada.
func (uc *NominaUseCase) AddPago(nominaID string, in dto.CreatePagoNominaRequest) (*dto.NominaResponse, error) {
	n, err := uc.semanaAbierta(nominaID)
	if err != nil || n == nil {
		return nil, err
	}
	if in.NombreReceptor == "" || !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	estado := entity.PagoNominaPendiente
	if in.Estado != "" {
		estado = entity.EstadoPagoNomina(in.Estado)
		if !estado.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	pago := &entity.PagoNomina{
		ID:             uuid.New().String(),
		NominaID:       nominaID,
		TrabajadorID:   in.TrabajadorID,
		NombreReceptor: in.NombreReceptor,
		Monto:          in.Monto,
		FechaPago:      in.FechaPago,
		Estado:         estado,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.AddPago(pago); err != nil {
		return nil, err
	}
	return uc.GetByID(nominaID)
}

// UpdatePago actualiza un pago de la semana (parcial). Mismas reglas de candado
// que AddPago.
func (uc *NominaUseCase) UpdatePago(nominaID, pagoID string, in dto.UpdatePagoNominaRequest) (*dto.NominaResponse, error) {
	n, err := uc.semanaAbierta(nominaID)
	if err != nil || n == nil {
		return nil, err
	}
	pago, err := uc.repo.GetPago(nominaID, pagoID)
	if err != nil {
		return nil, err
	}
	if pago == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreReceptor != nil {
		if *in.NombreReceptor == "" {
			return nil, domain.ErrInvalidInput
		}
		pago.NombreReceptor = *in.NombreReceptor
	}
	if in.Monto != nil {
		if !in.Monto.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		pago.Monto = *in.Monto
	}
	if in.FechaPago != nil {
		pago.FechaPago = in.FechaPago
	}
	if in.Estado != nil {
		estado := entity.EstadoPagoNomina(*in.Estado)
		if !estado.Valid() {
			return nil, domain.ErrInvalidInput
		}
		pago.Estado = estado
	}
	pago.UpdatedAt = time.Now()
	if err := uc.repo.UpdatePago(pago); err != nil {
		return nil, err
	}
	return uc.GetByID(nominaID)
}

// DeletePago elimina un pago de la semana. Mismas reglas de candado.
func (uc *NominaUseCase) DeletePago(nominaID, pagoID string) error {
	n, err := uc.semanaAbierta(nominaID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	pago, err := uc.repo.GetPago(nominaID, pagoID)
	if err != nil {
		return err
	}
	if pago == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeletePago(nominaID, pagoID)
}

// semanaAbierta carga la semana y falla si está cerrada. nil, nil si no existe.
func (uc *NominaUseCase) semanaAbierta(id string) (*entity.NominaSemanal, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	if n.Cerrada {
		return nil, domain.ErrNominaCerrada
	}
	return n, nil
}

// generarSemanasISO construye las semanas ISO-8601 del año (52 o 53), cada una
// de lunes a domingo.
func generarSemanasISO(anio int) []*entity.NominaSemanal {
	// Lunes de la semana ISO 1: la semana que contiene el 4 de enero.
	cuatroEnero := time.Date(anio, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(cuatroEnero.Weekday()) + 6) % 7 // lunes=0 ... domingo=6
	lunes := cuatroEnero.AddDate(0, 0, -offset)

	now := time.Now()
	var semanas []*entity.NominaSemanal
	for {
		y, w := lunes.ISOWeek()
		if y > anio {
			break
		}
		semanas = append(semanas, &entity.NominaSemanal{
			ID:           uuid.New().String(),
			NumeroSemana: w,
			Anio:         anio,
			FechaInicio:  lunes,
			FechaFin:     lunes.AddDate(0, 0, 6),
			Cerrada:      false,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		lunes = lunes.AddDate(0, 0, 7)
	}
	return semanas
}

func toNominaResponse(n *entity.NominaSemanal) *dto.NominaResponse {
	pagos := make([]dto.PagoNominaResponse, 0, len(n.Pagos))
	for _, p := range n.Pagos {
		pagos = append(pagos, dto.PagoNominaResponse{
			ID:             p.ID,
			TrabajadorID:   p.TrabajadorID,
			NombreReceptor: p.NombreReceptor,
			Monto:          p.Monto,
			FechaPago:      p.FechaPago,
			Estado:         string(p.Estado),
		})
	}
	return &dto.NominaResponse{
		ID:           n.ID,
		NumeroSemana: n.NumeroSemana,
		Anio:         n.Anio,
		FechaInicio:  n.FechaInicio,
		FechaFin:     n.FechaFin,
		Cerrada:      n.Cerrada,
		Pagos:        pagos,
		TotalPagos:   n.TotalPagos(),
	}
}
