package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse perfil del usuario autenticado.
type UserResponse struct {
	ID       string            `json:"id"`
	Nombre   string            `json:"nombre"`
	Email    string            `json:"email"`
	Rol      string            `json:"rol"`
	Comercio *ComercioResponse `json:"comercio,omitempty"` // nil para SUPER_ADMIN
}

// ComercioResponse datos del comercio del usuario.
type ComercioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Slug   string `json:"slug"`
	Activo bool   `json:"activo"`
}

// LoginResponse token JWT + perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest cuerpo para cambio de contraseña propia.
type ChangePasswordRequest struct {
	PasswordActual string `json:"password_actual"`
	PasswordNueva  string `json:"password_nueva"`
}
