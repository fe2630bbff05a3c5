package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.CierreCajaRepository = (*CierreCajaRepo)(nil)

// CierreCajaRepo implementación del puerto CierreCajaRepository sobre PostgreSQL.
// El desglose por método se guarda como JSONB tipado ([]entity.MetodoTotal).
type CierreCajaRepo struct {
	pool *pgxpool.Pool
}

// NewCierreCajaRepository construye el adaptador de persistencia para cierres.
func NewCierreCajaRepository(pool *pgxpool.Pool) *CierreCajaRepo {
	return &CierreCajaRepo{pool: pool}
}

// Create persiste un nuevo cierre (append-only; no hay update ni delete).
func (r *CierreCajaRepo) Create(cierre *entity.CierreCaja) error {
	detalle, err := json.Marshal(cierre.Detalle)
	if err != nil {
		return fmt.Errorf("marshal detalle: %w", err)
	}
	query := `
		INSERT INTO cierres_caja (id, comercio_id, total_ventas, total_gastos, total_sistema, total_real, diferencia, detalle, observaciones, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.pool.Exec(context.Background(), query,
		cierre.ID, cierre.ComercioID, cierre.TotalVentas, cierre.TotalGastos,
		cierre.TotalSistema, cierre.TotalReal, cierre.Diferencia,
		detalle, cierre.Observaciones, cierre.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert cierre: %w", err)
	}
	return nil
}

const cierreSelect = `
	SELECT id, comercio_id, total_ventas, total_gastos, total_sistema, total_real, diferencia, detalle, observaciones, fecha
	FROM cierres_caja`

// GetLatest devuelve el cierre más reciente del comercio o nil si nunca cerró.
func (r *CierreCajaRepo) GetLatest(comercioID string) (*entity.CierreCaja, error) {
	query := cierreSelect + ` WHERE comercio_id = $1 ORDER BY fecha DESC LIMIT 1`
	return scanCierre(r.pool.QueryRow(context.Background(), query, comercioID))
}

// GetByID obtiene un cierre por ID, acotado al comercio.
func (r *CierreCajaRepo) GetByID(comercioID, id string) (*entity.CierreCaja, error) {
	query := cierreSelect + ` WHERE comercio_id = $1 AND id = $2`
	return scanCierre(r.pool.QueryRow(context.Background(), query, comercioID, id))
}

func scanCierre(row pgx.Row) (*entity.CierreCaja, error) {
	var c entity.CierreCaja
	var detalle []byte
	err := row.Scan(
		&c.ID, &c.ComercioID, &c.TotalVentas, &c.TotalGastos, &c.TotalSistema,
		&c.TotalReal, &c.Diferencia, &detalle, &c.Observaciones, &c.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cierre: %w", err)
	}
	if len(detalle) > 0 {
		if err := json.Unmarshal(detalle, &c.Detalle); err != nil {
			return nil, fmt.Errorf("unmarshal detalle: %w", err)
		}
	}
	return &c, nil
}

// ListByComercio lista cierres por fecha descendente. limit <= 0 devuelve todos (export).
func (r *CierreCajaRepo) ListByComercio(comercioID string, limit, offset int) ([]*entity.CierreCaja, error) {
	query := cierreSelect + ` WHERE comercio_id = $1 ORDER BY fecha DESC`
	args := []any{comercioID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cierres: %w", err)
	}
	defer rows.Close()
	var list []*entity.CierreCaja
	for rows.Next() {
		var c entity.CierreCaja
		var detalle []byte
		if err := rows.Scan(&c.ID, &c.ComercioID, &c.TotalVentas, &c.TotalGastos, &c.TotalSistema,
			&c.TotalReal, &c.Diferencia, &detalle, &c.Observaciones, &c.Fecha); err != nil {
			return nil, fmt.Errorf("scan cierre: %w", err)
		}
		if len(detalle) > 0 {
			if err := json.Unmarshal(detalle, &c.Detalle); err != nil {
				return nil, fmt.Errorf("unmarshal detalle: %w", err)
			}
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByComercio cuenta los cierres del comercio.
func (r *CierreCajaRepo) CountByComercio(comercioID string) (int, error) {
	var total int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM cierres_caja WHERE comercio_id = $1`, comercioID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count cierres: %w", err)
	}
	return total, nil
}
