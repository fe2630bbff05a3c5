package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta cabecera de una venta. Total en moneda principal (USD) y su equivalente
// en moneda secundaria (Bs) calculado con la tasa de cambio del momento.
type Venta struct {
	ID           string
	ComercioID   string
	MetodoPagoID string
	Total        decimal.Decimal
	TotalBs      decimal.Decimal
	Tasa         decimal.Decimal // tasa de cambio usada; 0 si no se informó
	Fecha        time.Time
}

// VentaItem línea de una venta. Inmutable una vez creada: copia cantidad/peso
// y los precios unitarios en ambas monedas al momento de la venta.
type VentaItem struct {
	ID               string
	VentaID          string
	ProductoID       string
	Cantidad         decimal.Decimal
	Peso             *decimal.Decimal // nil si el producto no se vende por peso
	PrecioUnitario   decimal.Decimal
	PrecioUnitarioBs decimal.Decimal
}
