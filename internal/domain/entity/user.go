package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleUsuario    = "USUARIO"
)

// Role dato de referencia estático (tabla roles).
type Role struct {
	ID   string
	Name string // SUPER_ADMIN, USUARIO
}

// User representa un usuario del sistema. ComercioID es nil para SUPER_ADMIN
// (los administradores de plataforma no pertenecen a ningún comercio).
type User struct {
	ID           string
	ComercioID   *string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	RoleID       *string
	RoleName     string // denormalizado al leer; "" si el usuario no tiene rol
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
