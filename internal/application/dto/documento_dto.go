package dto

import "time"

// DocumentoResponse salida de un documento o archivo subido.
// URL es la ruta de descarga servida por esta API.
type DocumentoResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	URL         string    `json:"url"`
	Tamano      int64     `json:"tamano"`
	ContentType string    `json:"content_type"`
	FechaSubida time.Time `json:"fechaSubida"`
}

// DocumentoListResponse lista paginada de archivos.
type DocumentoListResponse struct {
	Items []DocumentoResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
