package repository

import "github.com/tu-usuario/pos-comercios/internal/domain/entity"

// CierreCajaRepository puerto de persistencia para cierres de caja (append-only).
type CierreCajaRepository interface {
	Create(cierre *entity.CierreCaja) error
	// GetLatest devuelve el cierre más reciente del comercio o nil si nunca cerró.
	GetLatest(comercioID string) (*entity.CierreCaja, error)
	GetByID(comercioID, id string) (*entity.CierreCaja, error)
	// ListByComercio lista cierres por fecha descendente con paginación.
	ListByComercio(comercioID string, limit, offset int) ([]*entity.CierreCaja, error)
	CountByComercio(comercioID string) (int, error)
}
