package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetodoTotalDTO desglose de ventas por método de pago.
type MetodoTotalDTO struct {
	MetodoPagoID string          `json:"metodo_pago_id"`
	Nombre       string          `json:"nombre"`
	Total        decimal.Decimal `json:"total"`
}

// GastoRequest cuerpo para registrar un gasto de caja.
type GastoRequest struct {
	Descripcion string           `json:"descripcion"`
	Monto       *decimal.Decimal `json:"monto"`
}

// GastoResponse representación JSON de un gasto.
type GastoResponse struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
}

// ResumenResponse resumen del período abierto desde el último cierre.
// TotalEnCaja = TotalVentas - TotalGastos.
type ResumenResponse struct {
	Desde       *time.Time       `json:"desde"` // nil si el comercio nunca cerró caja
	TotalVentas decimal.Decimal  `json:"total_ventas"`
	TotalGastos decimal.Decimal  `json:"total_gastos"`
	TotalEnCaja decimal.Decimal  `json:"total_en_caja"`
	PorMetodo   []MetodoTotalDTO `json:"por_metodo"`
	Gastos      []GastoResponse  `json:"gastos"`
}

// CerrarCajaRequest totales reportados por el cliente al cerrar caja.
// El servidor calcula Diferencia = TotalReal - TotalSistema.
type CerrarCajaRequest struct {
	TotalVentas   decimal.Decimal  `json:"total_ventas"`
	TotalGastos   decimal.Decimal  `json:"total_gastos"`
	TotalSistema  decimal.Decimal  `json:"total_sistema"`
	TotalReal     *decimal.Decimal `json:"total_real"`
	Detalle       []MetodoTotalDTO `json:"detalle"`
	Observaciones string           `json:"observaciones"`
}

// CierreResponse representación JSON de un cierre de caja.
type CierreResponse struct {
	ID            string           `json:"id"`
	TotalVentas   decimal.Decimal  `json:"total_ventas"`
	TotalGastos   decimal.Decimal  `json:"total_gastos"`
	TotalSistema  decimal.Decimal  `json:"total_sistema"`
	TotalReal     decimal.Decimal  `json:"total_real"`
	Diferencia    decimal.Decimal  `json:"diferencia"`
	Detalle       []MetodoTotalDTO `json:"detalle"`
	Observaciones string           `json:"observaciones,omitempty"`
	Fecha         time.Time        `json:"fecha"`
}

// HistorialResponse listado paginado de cierres (página fija de 30).
type HistorialResponse struct {
	Items []CierreResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
