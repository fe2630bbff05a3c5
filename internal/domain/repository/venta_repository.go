package repository

import "github.com/tu-usuario/pos-comercios/internal/domain/entity"

// VentaRepository puerto de persistencia para ventas y sus líneas.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	CreateItem(item *entity.VentaItem) error
}
