package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.CajaRepository = (*CajaRepo)(nil)

// CajaRepo consultas de agregación de solo lectura para el resumen de caja.
// Todas las consultas cubren el período abierto: fecha estrictamente mayor a desde.
// Usa COALESCE para devolver cero si no hay filas (período sin movimientos).
type CajaRepo struct {
	pool *pgxpool.Pool
}

// NewCajaRepository construye el adaptador de agregación de caja.
func NewCajaRepository(pool *pgxpool.Pool) *CajaRepo {
	return &CajaRepo{pool: pool}
}

// TotalVentasDesde suma el total de las ventas del período abierto.
func (r *CajaRepo) TotalVentasDesde(ctx context.Context, comercioID string, desde time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0)
		FROM ventas WHERE comercio_id = $1 AND fecha > $2`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, comercioID, desde).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("caja.TotalVentasDesde: %w", err)
	}
	return total, nil
}

// TotalGastosDesde suma los gastos del período abierto.
func (r *CajaRepo) TotalGastosDesde(ctx context.Context, comercioID string, desde time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(monto), 0)
		FROM gastos WHERE comercio_id = $1 AND fecha > $2`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, comercioID, desde).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("caja.TotalGastosDesde: %w", err)
	}
	return total, nil
}

// VentasPorMetodoDesde agrupa lo vendido por método de pago en el período abierto.
func (r *CajaRepo) VentasPorMetodoDesde(ctx context.Context, comercioID string, desde time.Time) ([]entity.MetodoTotal, error) {
	const query = `
		SELECT m.id, m.name, COALESCE(SUM(v.total), 0)
		FROM ventas v
		JOIN metodos_pago m ON m.id = v.metodo_pago_id
		WHERE v.comercio_id = $1 AND v.fecha > $2
		GROUP BY m.id, m.name
		ORDER BY m.name ASC`
	rows, err := r.pool.Query(ctx, query, comercioID, desde)
	if err != nil {
		return nil, fmt.Errorf("caja.VentasPorMetodoDesde: %w", err)
	}
	defer rows.Close()
	var results []entity.MetodoTotal
	for rows.Next() {
		var row entity.MetodoTotal
		if err := rows.Scan(&row.MetodoPagoID, &row.Nombre, &row.Total); err != nil {
			return nil, fmt.Errorf("caja.VentasPorMetodoDesde scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
