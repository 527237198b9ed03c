package usecase

import (
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/constructora-api/internal/application/dto"
	"github.com/jhoicas/constructora-api/internal/domain"
	"github.com/jhoicas/constructora-api/internal/domain/entity"
	"github.com/jhoicas/constructora-api/internal/domain/repository"
)

// ArchivoStorage puerto hacia el almacenamiento de bytes; la implementación en
// disco vive en infrastructure/storage.
type ArchivoStorage interface {
	Guardar(ruta string, r io.Reader) (int64, error)
	Abrir(ruta string) (io.ReadCloser, error)
	Eliminar(ruta string) error
}

// SubirArchivoInput entrada para subir un archivo. ContratistaID vacío sube al
// administrador de archivos general.
type SubirArchivoInput struct {
	ContratistaID string
	Nombre        string
	ContentType   string
	Tamano        int64
	Contenido     io.Reader
}

// ArchivoUseCase casos de uso del administrador de archivos y documentos de
// contratista. Los metadatos van a la base; los bytes al almacenamiento local.
type ArchivoUseCase struct {
	repo        repository.DocumentoRepository
	storage     ArchivoStorage
	limiteBytes int64
}

// NewArchivoUseCase construye el caso de uso con el límite de tamaño en bytes.
func NewArchivoUseCase(repo repository.DocumentoRepository, storage ArchivoStorage, limiteBytes int64) *ArchivoUseCase {
	return &ArchivoUseCase{repo: repo, storage: storage, limiteBytes: limiteBytes}
}

// Subir guarda el archivo y registra sus metadatos. Falla con
// ErrArchivoMuyGrande si excede el límite configurado.
func (uc *ArchivoUseCase) Subir(in SubirArchivoInput) (*dto.DocumentoResponse, error) {
	if in.Nombre == "" || in.Contenido == nil {
		return nil, domain.ErrInvalidInput
	}
	if uc.limiteBytes > 0 && in.Tamano > uc.limiteBytes {
		return nil, domain.ErrArchivoMuyGrande
	}

	id := uuid.New().String()
	ruta := id + path.Ext(in.Nombre)
	if in.ContratistaID != "" {
		ruta = path.Join("contratistas", in.ContratistaID, ruta)
	}
	escritos, err := uc.storage.Guardar(ruta, in.Contenido)
	if err != nil {
		return nil, err
	}
	if uc.limiteBytes > 0 && escritos > uc.limiteBytes {
		// El multipart puede declarar menos de lo que trae; el tamaño real manda.
		_ = uc.storage.Eliminar(ruta)
		return nil, domain.ErrArchivoMuyGrande
	}

	d := &entity.Documento{
		ID:            id,
		ContratistaID: in.ContratistaID,
		Nombre:        in.Nombre,
		Ruta:          ruta,
		Tamano:        escritos,
		ContentType:   in.ContentType,
		FechaSubida:   time.Now(),
	}
	if err := uc.repo.Create(d); err != nil {
		_ = uc.storage.Eliminar(ruta)
		return nil, err
	}
	resp := toDocumentoResponse(d)
	return &resp, nil
}

// Buscar lista archivos generales filtrando por nombre.
func (uc *ArchivoUseCase) Buscar(texto string, page dto.PageRequest) (*dto.DocumentoListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.Buscar(texto, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentoResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDocumentoResponse(d))
	}
	return &dto.DocumentoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Descargar abre el contenido del archivo. El caller debe cerrar el reader.
func (uc *ArchivoUseCase) Descargar(id string) (*entity.Documento, io.ReadCloser, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, domain.ErrNotFound
	}
	rc, err := uc.storage.Abrir(d.Ruta)
	if err != nil {
		return nil, nil, err
	}
	return d, rc, nil
}

// Eliminar borra metadatos y bytes del archivo.
func (uc *ArchivoUseCase) Eliminar(id string) error {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.storage.Eliminar(d.Ruta)
}

// ListByContratista lista los documentos de un contratista.
func (uc *ArchivoUseCase) ListByContratista(contratistaID string) ([]dto.DocumentoResponse, error) {
	list, err := uc.repo.ListByContratista(contratistaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentoResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDocumentoResponse(d))
	}
	return items, nil
}

// EliminarDeContratista borra un documento verificando que pertenezca al
// contratista indicado.
func (uc *ArchivoUseCase) EliminarDeContratista(contratistaID, docID string) error {
	d, err := uc.repo.GetByID(docID)
	if err != nil {
		return err
	}
	if d == nil || d.ContratistaID != contratistaID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(docID); err != nil {
		return err
	}
	return uc.storage.Eliminar(d.Ruta)
}

func toDocumentoResponse(d *entity.Documento) dto.DocumentoResponse {
	return dto.DocumentoResponse{
		ID:          d.ID,
		Nombre:      d.Nombre,
		URL:         "/api/archivos/" + d.ID + "/descargar",
		Tamano:      d.Tamano,
		ContentType: d.ContentType,
		FechaSubida: d.FechaSubida,
	}
}
