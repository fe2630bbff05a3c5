package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// CajaRepository consultas de agregación de solo lectura para el resumen de caja.
// Todas las sumas cubren el período abierto: fecha estrictamente mayor a desde.
type CajaRepository interface {
	TotalVentasDesde(ctx context.Context, comercioID string, desde time.Time) (decimal.Decimal, error)
	TotalGastosDesde(ctx context.Context, comercioID string, desde time.Time) (decimal.Decimal, error)
	// VentasPorMetodoDesde agrupa el total vendido por método de pago.
	VentasPorMetodoDesde(ctx context.Context, comercioID string, desde time.Time) ([]entity.MetodoTotal, error)
}
