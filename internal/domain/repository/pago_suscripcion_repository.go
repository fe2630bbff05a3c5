package repository

import (
	"time"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// PagoAdminRow fila denormalizada del listado de pagos de suscripción.
type PagoAdminRow struct {
	ID           string
	ComercioID   string
	ComercioName string
	Meses        int
	Fecha        time.Time
}

// PagoSuscripcionRepository puerto de persistencia para pagos de suscripción.
type PagoSuscripcionRepository interface {
	GetByID(id string) (*entity.PagoSuscripcion, error)
	Delete(id string) error
	// ListAll devuelve todos los pagos con el nombre del comercio, más recientes primero.
	ListAll() ([]PagoAdminRow, error)
}
