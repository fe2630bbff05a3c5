package entity

import "time"

// PagoSuscripcion pago de suscripción de un comercio a la plataforma.
// Al eliminarlo, el vencimiento del comercio retrocede Meses meses en la
// misma transacción (el vencimiento nunca refleja un pago que ya no existe).
type PagoSuscripcion struct {
	ID         string
	ComercioID string
	Meses      int
	Fecha      time.Time
}
