package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación del puerto GastoRepository sobre PostgreSQL.
type GastoRepo struct {
	pool *pgxpool.Pool
}

// NewGastoRepository construye el adaptador de persistencia para gastos.
func NewGastoRepository(pool *pgxpool.Pool) *GastoRepo {
	return &GastoRepo{pool: pool}
}

// Create persiste un nuevo gasto.
func (r *GastoRepo) Create(gasto *entity.Gasto) error {
	query := `
		INSERT INTO gastos (id, comercio_id, descripcion, monto, fecha)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		gasto.ID, gasto.ComercioID, gasto.Descripcion, gasto.Monto, gasto.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// ListDesde lista gastos con fecha estrictamente mayor a desde, ascendente.
func (r *GastoRepo) ListDesde(comercioID string, desde time.Time) ([]*entity.Gasto, error) {
	query := `
		SELECT id, comercio_id, descripcion, monto, fecha
		FROM gastos WHERE comercio_id = $1 AND fecha > $2 ORDER BY fecha ASC`
	rows, err := r.pool.Query(context.Background(), query, comercioID, desde)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.ComercioID, &g.Descripcion, &g.Monto, &g.Fecha); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
