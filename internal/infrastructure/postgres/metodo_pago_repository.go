package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.MetodoPagoRepository = (*MetodoPagoRepo)(nil)

// MetodoPagoRepo implementación del puerto MetodoPagoRepository sobre PostgreSQL.
type MetodoPagoRepo struct {
	pool *pgxpool.Pool
}

// NewMetodoPagoRepository construye el adaptador de persistencia para métodos de pago.
func NewMetodoPagoRepository(pool *pgxpool.Pool) *MetodoPagoRepo {
	return &MetodoPagoRepo{pool: pool}
}

// Create persiste un nuevo método de pago.
func (r *MetodoPagoRepo) Create(metodo *entity.MetodoPago) error {
	query := `
		INSERT INTO metodos_pago (id, comercio_id, name, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		metodo.ID, metodo.ComercioID, metodo.Name, metodo.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert metodo de pago: %w", err)
	}
	return nil
}

// GetByID obtiene un método por ID, acotado al comercio.
func (r *MetodoPagoRepo) GetByID(comercioID, id string) (*entity.MetodoPago, error) {
	query := `
		SELECT id, comercio_id, name, created_at
		FROM metodos_pago WHERE comercio_id = $1 AND id = $2`
	var m entity.MetodoPago
	err := r.pool.QueryRow(context.Background(), query, comercioID, id).Scan(
		&m.ID, &m.ComercioID, &m.Name, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get metodo de pago: %w", err)
	}
	return &m, nil
}

// ListByComercio lista los métodos del comercio en orden alfabético.
func (r *MetodoPagoRepo) ListByComercio(comercioID string) ([]*entity.MetodoPago, error) {
	query := `
		SELECT id, comercio_id, name, created_at
		FROM metodos_pago WHERE comercio_id = $1 ORDER BY name ASC`
	rows, err := r.pool.Query(context.Background(), query, comercioID)
	if err != nil {
		return nil, fmt.Errorf("list metodos de pago: %w", err)
	}
	defer rows.Close()
	var list []*entity.MetodoPago
	for rows.Next() {
		var m entity.MetodoPago
		if err := rows.Scan(&m.ID, &m.ComercioID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan metodo de pago: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un método del comercio. La FK de ventas lo protege: si hay
// ventas que lo referencian retorna ErrConflict y no se borra nada.
func (r *MetodoPagoRepo) Delete(comercioID, id string) error {
	cmd, err := r.pool.Exec(context.Background(),
		`DELETE FROM metodos_pago WHERE comercio_id = $1 AND id = $2`,
		comercioID, id,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete metodo de pago: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
