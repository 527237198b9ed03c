package entity

import "time"

// Especialidad es el catálogo de clasificación de contratistas.
type Especialidad struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
