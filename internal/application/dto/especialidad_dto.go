package dto

import "time"

// CreateEspecialidadRequest entrada para crear una especialidad del catálogo.
type CreateEspecialidadRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion"`
}

// UpdateEspecialidadRequest entrada para actualizar una especialidad (parcial).
type UpdateEspecialidadRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// EspecialidadResponse salida de una especialidad.
type EspecialidadResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
