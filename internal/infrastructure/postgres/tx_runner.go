package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-comercios/internal/application/admin"
	"github.com/tu-usuario/pos-comercios/internal/application/ventas"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

// Ensure TxRunner implements ventas.TxRunner and admin.TxRunner.
var _ ventas.TxRunner = (*TxRunner)(nil)
var _ admin.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunVenta inicia una transacción con repos de ventas y productos atados a la
// tx y hace Commit o Rollback (venta + líneas + descuentos de stock, todo o nada).
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVentaRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPago inicia una transacción con repos de pagos y comercios (baja del pago
// de suscripción + retroceso del vencimiento, todo o nada).
func (r *TxRunner) RunPago(ctx context.Context, fn func(
	pagoRepo repository.PagoSuscripcionRepository,
	comercioRepo repository.ComercioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPagoSuscripcionRepository(tx), NewComercioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
