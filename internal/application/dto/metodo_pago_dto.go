package dto

// CreateMetodoPagoRequest cuerpo para crear un método de pago.
type CreateMetodoPagoRequest struct {
	Nombre string `json:"nombre"`
}

// MetodoPagoResponse representación JSON de un método de pago.
type MetodoPagoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
