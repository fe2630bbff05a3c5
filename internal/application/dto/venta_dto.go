package dto

import "github.com/shopspring/decimal"

// VentaItemRequest línea de venta enviada por el POS. Peso solo viene
// para productos vendidos por peso; en ese caso prevalece sobre Cantidad.
type VentaItemRequest struct {
	ProductoID     string           `json:"producto_id"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	Peso           *decimal.Decimal `json:"peso"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
}

// CreateVentaRequest cuerpo para registrar una venta.
type CreateVentaRequest struct {
	Items        []VentaItemRequest `json:"items"`
	MetodoPagoID string             `json:"metodo_pago_id"`
	Total        decimal.Decimal    `json:"total"`
	Tasa         decimal.Decimal    `json:"tasa"` // tasa de cambio; 0 si no se informa
}

// CreateVentaResponse identificador de la venta creada.
type CreateVentaResponse struct {
	ID string `json:"id"`
}
