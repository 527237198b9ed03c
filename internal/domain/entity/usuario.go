package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RolAdmin      = "admin"
	RolCapturista = "capturista"
)

// Usuario es una cuenta de acceso a la aplicación.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string // "admin" | "capturista"
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
