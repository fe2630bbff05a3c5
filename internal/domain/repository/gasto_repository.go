package repository

import (
	"time"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// GastoRepository puerto de persistencia para gastos de caja.
type GastoRepository interface {
	Create(gasto *entity.Gasto) error
	// ListDesde lista los gastos con fecha estrictamente mayor a desde,
	// ordenados por fecha ascendente.
	ListDesde(comercioID string, desde time.Time) ([]*entity.Gasto, error)
}
