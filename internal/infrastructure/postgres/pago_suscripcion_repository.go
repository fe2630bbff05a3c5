package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.PagoSuscripcionRepository = (*PagoSuscripcionRepo)(nil)

// PagoSuscripcionRepo implementación de PagoSuscripcionRepository (usable con pool o tx).
type PagoSuscripcionRepo struct {
	q Querier
}

// NewPagoSuscripcionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoSuscripcionRepository(q Querier) *PagoSuscripcionRepo {
	return &PagoSuscripcionRepo{q: q}
}

// GetByID obtiene un pago por ID.
func (r *PagoSuscripcionRepo) GetByID(id string) (*entity.PagoSuscripcion, error) {
	query := `
		SELECT id, comercio_id, meses, fecha
		FROM pagos_suscripcion WHERE id = $1`
	var p entity.PagoSuscripcion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ComercioID, &p.Meses, &p.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	return &p, nil
}

// Delete elimina un pago por ID. Si el pago ya no existe (borrado concurrente
// entre la lectura y la transacción) retorna ErrNotFound para abortar la tx.
func (r *PagoSuscripcionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM pagos_suscripcion WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll lista todos los pagos con el nombre del comercio, más recientes primero.
func (r *PagoSuscripcionRepo) ListAll() ([]repository.PagoAdminRow, error) {
	query := `
		SELECT p.id, p.comercio_id, c.name, p.meses, p.fecha
		FROM pagos_suscripcion p
		JOIN comercios c ON c.id = p.comercio_id
		ORDER BY p.fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	var list []repository.PagoAdminRow
	for rows.Next() {
		var row repository.PagoAdminRow
		if err := rows.Scan(&row.ID, &row.ComercioID, &row.ComercioName, &row.Meses, &row.Fecha); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
