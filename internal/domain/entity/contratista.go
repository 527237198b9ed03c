package entity

import "time"

// Contratista representa a un contratista dado de alta en la constructora.
// Sus conceptos de obra viven por proyecto asignado (tabla contratista_proyectos).
type Contratista struct {
	ID             string
	Nombre         string
	RFC            string
	Telefono       string
	EspecialidadID string // lookup Especialidad; vacío = sin clasificar
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Colecciones anidadas (se cargan en el detalle, no en listados)
	Especialidad *Especialidad
	Documentos   []Documento
	Proyectos    []ProyectoAsignado
}

// ProyectoAsignado es la vista resumida de un proyecto dentro del detalle de contratista.
type ProyectoAsignado struct {
	ID                string
	Nombre            string
	FechaInicio       time.Time
	FechaFinalizacion *time.Time
}
