package repository

import "github.com/tu-usuario/pos-comercios/internal/domain/entity"

// MetodoPagoRepository puerto de persistencia para métodos de pago.
type MetodoPagoRepository interface {
	Create(metodo *entity.MetodoPago) error
	GetByID(comercioID, id string) (*entity.MetodoPago, error)
	ListByComercio(comercioID string) ([]*entity.MetodoPago, error)
	// Delete elimina el método del comercio. Retorna domain.ErrConflict si
	// todavía hay ventas que lo referencian (FK) y domain.ErrNotFound si no existe.
	Delete(comercioID, id string) error
}
