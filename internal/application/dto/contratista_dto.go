package dto

import "time"

// CreateContratistaRequest entrada para dar de alta un contratista.
type CreateContratistaRequest struct {
	Nombre         string `json:"nombre" validate:"required,min=1,max=200"`
	RFC            string `json:"rfc" validate:"required,min=12,max=13"`
	Telefono       string `json:"telefono" validate:"required"`
	EspecialidadID string `json:"especialidad_id" validate:"omitempty,uuid"`
}

// UpdateContratistaRequest entrada para actualizar un contratista (parcial).
type UpdateContratistaRequest struct {
	Nombre         *string `json:"nombre"`
	RFC            *string `json:"rfc"`
	Telefono       *string `json:"telefono"`
	EspecialidadID *string `json:"especialidad_id"`
}

// ContratistaResponse salida de un contratista con sus colecciones anidadas.
type ContratistaResponse struct {
	ID             string                `json:"id"`
	Nombre         string                `json:"nombre"`
	RFC            string                `json:"rfc"`
	Telefono       string                `json:"telefono"`
	EspecialidadID string                `json:"especialidad_id,omitempty"`
	Especialidad   *EspecialidadResponse `json:"especialidad,omitempty"`
	Documentos     []DocumentoResponse   `json:"documentos,omitempty"`
	Proyectos      []ProyectoAsignadoDTO `json:"proyectos,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ProyectoAsignadoDTO vista resumida de un proyecto asignado al contratista.
type ProyectoAsignadoDTO struct {
	ID                string     `json:"id"`
	Nombre            string     `json:"nombre"`
	FechaInicio       time.Time  `json:"fechaInicio"`
	FechaFinalizacion *time.Time `json:"fechaFinalizacion,omitempty"`
}

// ContratistaListResponse lista paginada de contratistas.
type ContratistaListResponse struct {
	Items []ContratistaResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
