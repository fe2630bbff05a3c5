package repository

import (
	"time"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// ComercioRepository puerto de persistencia para comercios (tenants).
type ComercioRepository interface {
	GetByID(id string) (*entity.Comercio, error)
	// UpdateExpiry actualiza solo el vencimiento de suscripción del comercio.
	UpdateExpiry(id string, expiresAt *time.Time) error
}
