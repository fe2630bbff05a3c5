package entity

import "time"

// MetodoPago método de pago configurado por un comercio (efectivo, pago móvil, etc.).
// Las ventas lo referencian; la FK impide borrarlo mientras existan ventas asociadas.
type MetodoPago struct {
	ID         string
	ComercioID string
	Name       string
	CreatedAt  time.Time
}
