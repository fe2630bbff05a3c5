package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByComercioAndName busca por nombre con comparación case-insensitive.
	GetByComercioAndName(comercioID, name string) (*entity.Product, error)
	// ListByComercio lista alfabéticamente; search filtra por substring
	// case-insensitive sobre el nombre (vacío = sin filtro).
	ListByComercio(comercioID, search string, limit, offset int) ([]*entity.Product, error)
	CountByComercio(comercioID, search string) (int, error)
	// DecrementStock resta qty al stock del producto, acotado al comercio
	// (update relativo). Producto inexistente o de otro comercio: ErrNotFound.
	DecrementStock(comercioID, id string, qty decimal.Decimal) error
}
