package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByID obtiene un usuario por ID con el nombre del rol denormalizado.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := userSelect + ` WHERE u.id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id))
}

// FindByEmail obtiene un usuario por email (único en toda la plataforma).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := userSelect + ` WHERE u.email = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, email))
}

const userSelect = `
	SELECT u.id, u.comercio_id, u.email, u.password_hash, u.name, u.role_id, COALESCE(r.name, ''),
	       u.created_at, u.updated_at
	FROM users u
	LEFT JOIN roles r ON r.id = u.role_id`

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.ComercioID, &u.Email, &u.PasswordHash, &u.Name, &u.RoleID, &u.RoleName,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpdatePassword reemplaza el hash de contraseña del usuario.
func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

// ListAll lista todos los usuarios de la plataforma por nombre, con rol y
// comercio denormalizados (los LEFT JOIN toleran usuarios sin rol o sin comercio).
func (r *UserRepo) ListAll() ([]repository.UserAdminRow, error) {
	query := `
		SELECT u.id, u.name, u.email, r.name, c.name, c.slug, c.active
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		LEFT JOIN comercios c ON c.id = u.comercio_id
		ORDER BY u.name ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []repository.UserAdminRow
	for rows.Next() {
		var row repository.UserAdminRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.RoleName,
			&row.ComercioName, &row.ComercioSlug, &row.ComercioActive); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
