package dto

import "time"

// UserAdminResponse fila del listado de usuarios para SUPER_ADMIN.
// Rol trae el centinela "SIN ROL" cuando el usuario no tiene rol asignado.
type UserAdminResponse struct {
	ID       string            `json:"id"`
	Nombre   string            `json:"nombre"`
	Email    string            `json:"email"`
	Rol      string            `json:"rol"`
	Comercio *ComercioResponse `json:"comercio,omitempty"`
}

// PagoAdminResponse fila del listado de pagos de suscripción.
type PagoAdminResponse struct {
	ID             string    `json:"id"`
	ComercioID     string    `json:"comercio_id"`
	ComercioNombre string    `json:"comercio_nombre"`
	Meses          int       `json:"meses"`
	Fecha          time.Time `json:"fecha"`
}
