package entity

import "time"

// Documento es un archivo subido: documento de contratista (ContratistaID con
// valor) o archivo general del administrador de archivos (ContratistaID vacío).
type Documento struct {
	ID            string
	ContratistaID string
	Nombre        string
	Ruta          string // ruta relativa dentro del directorio de archivos
	Tamano        int64  // bytes
	ContentType   string
	FechaSubida   time.Time
}
