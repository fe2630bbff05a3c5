package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un comercio.
// Stock es decimal para soportar productos vendidos por peso (kg fraccionales).
// El stock puede quedar negativo si se sobrevende; no hay guardia por regla de negocio.
type Product struct {
	ID           string
	ComercioID   string
	Name         string // único por comercio, comparación case-insensitive
	Price        decimal.Decimal
	SoldByWeight bool
	Stock        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
