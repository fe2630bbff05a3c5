package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetodoTotal total de ventas de un método de pago dentro de un período de caja.
type MetodoTotal struct {
	MetodoPagoID string          `json:"metodo_pago_id"`
	Nombre       string          `json:"nombre"`
	Total        decimal.Decimal `json:"total"`
}

// CierreCaja snapshot de la conciliación de caja de un período. Append-only:
// su fecha es la frontera del siguiente período (fecha > último cierre).
// Diferencia = TotalReal (contado físicamente) - TotalSistema (calculado).
type CierreCaja struct {
	ID            string
	ComercioID    string
	TotalVentas   decimal.Decimal
	TotalGastos   decimal.Decimal
	TotalSistema  decimal.Decimal
	TotalReal     decimal.Decimal
	Diferencia    decimal.Decimal
	Detalle       []MetodoTotal // desglose por método de pago (JSONB en la DB)
	Observaciones string
	Fecha         time.Time
}
