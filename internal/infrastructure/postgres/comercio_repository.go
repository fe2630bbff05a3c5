package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.ComercioRepository = (*ComercioRepo)(nil)

// ComercioRepo implementación del puerto ComercioRepository sobre PostgreSQL (usable con pool o tx).
type ComercioRepo struct {
	q Querier
}

// NewComercioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComercioRepository(q Querier) *ComercioRepo {
	return &ComercioRepo{q: q}
}

// GetByID obtiene un comercio por ID.
func (r *ComercioRepo) GetByID(id string) (*entity.Comercio, error) {
	query := `
		SELECT id, name, slug, active, expires_at, created_at, updated_at
		FROM comercios WHERE id = $1`
	var c entity.Comercio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Active, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comercio: %w", err)
	}
	return &c, nil
}

// UpdateExpiry actualiza solo el vencimiento de suscripción del comercio.
func (r *ComercioRepo) UpdateExpiry(id string, expiresAt *time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE comercios SET expires_at = $2, updated_at = now() WHERE id = $1`,
		id, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("update comercio expiry: %w", err)
	}
	return nil
}
