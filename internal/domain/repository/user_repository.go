package repository

import "github.com/tu-usuario/pos-comercios/internal/domain/entity"

// UserAdminRow fila denormalizada del listado de usuarios para administración:
// incluye nombre del rol y datos del comercio (nil si el usuario no tiene comercio).
type UserAdminRow struct {
	ID             string
	Name           string
	Email          string
	RoleName       *string // nil si el usuario no tiene rol asignado
	ComercioName   *string
	ComercioSlug   *string
	ComercioActive *bool
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
	// ListAll devuelve todos los usuarios de la plataforma ordenados por nombre,
	// con rol y comercio denormalizados (solo SUPER_ADMIN).
	ListAll() ([]UserAdminRow, error)
}
