package auth

import (
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
	"github.com/tu-usuario/pos-comercios/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: login, perfil y cambio de contraseña.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	comercioRepo repository.ComercioRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, comercioRepo repository.ComercioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, comercioRepo: comercioRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt, genera JWT y retorna token + perfil.
// Un comercio desactivado bloquea el acceso de todos sus usuarios.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	var comercio *entity.Comercio
	if user.ComercioID != nil {
		comercio, err = uc.comercioRepo.GetByID(*user.ComercioID)
		if err != nil {
			return nil, err
		}
		if comercio != nil && !comercio.Active {
			return nil, domain.ErrForbidden
		}
	}
	comercioID := ""
	if user.ComercioID != nil {
		comercioID = *user.ComercioID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, comercioID, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user, comercio),
	}, nil
}

// CurrentUser devuelve el perfil del usuario autenticado (con su comercio si tiene).
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	var comercio *entity.Comercio
	if user.ComercioID != nil {
		comercio, err = uc.comercioRepo.GetByID(*user.ComercioID)
		if err != nil {
			return nil, err
		}
	}
	return toUserResponse(user, comercio), nil
}

// ChangePassword verifica la contraseña actual y persiste el hash de la nueva.
// Retorna ErrWrongPassword (403) si la actual no coincide.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if in.PasswordActual == "" || in.PasswordNueva == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.PasswordActual)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PasswordNueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(userID, string(hash))
}

func toUserResponse(u *entity.User, c *entity.Comercio) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:     u.ID,
		Nombre: u.Name,
		Email:  u.Email,
		Rol:    u.RoleName,
	}
	if c != nil {
		resp.Comercio = &dto.ComercioResponse{
			ID:     c.ID,
			Nombre: c.Name,
			Slug:   c.Slug,
			Activo: c.Active,
		}
	}
	return resp
}
