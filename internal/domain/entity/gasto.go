package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto egreso de caja registrado por el comercio durante el período abierto.
type Gasto struct {
	ID          string
	ComercioID  string
	Descripcion string
	Monto       decimal.Decimal
	Fecha       time.Time
}
