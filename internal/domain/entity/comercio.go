package entity

import "time"

// Comercio representa un negocio (tenant) de la plataforma. Todas las entidades
// operativas (productos, ventas, gastos, cierres) pertenecen a un comercio.
type Comercio struct {
	ID        string
	Name      string
	Slug      string // único, se usa en URLs del frontend
	Active    bool
	ExpiresAt *time.Time // vencimiento de la suscripción; nil = sin fecha
	CreatedAt time.Time
	UpdatedAt time.Time
}
