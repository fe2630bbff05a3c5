package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, comercio_id, metodo_pago_id, total, total_bs, tasa, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ComercioID, venta.MetodoPagoID,
		venta.Total, venta.TotalBs, venta.Tasa, venta.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *VentaRepo) CreateItem(item *entity.VentaItem) error {
	query := `
		INSERT INTO venta_items (id, venta_id, producto_id, cantidad, peso, precio_unitario, precio_unitario_bs)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VentaID, item.ProductoID,
		item.Cantidad, item.Peso, item.PrecioUnitario, item.PrecioUnitarioBs,
	)
	if err != nil {
		return fmt.Errorf("insert venta item: %w", err)
	}
	return nil
}
