package admin

import (
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

// Centinela para usuarios sin rol asignado (no se falla el listado por un rol faltante).
const sinRol = "SIN ROL"

// UsuariosUseCase listado de usuarios de toda la plataforma (solo SUPER_ADMIN).
type UsuariosUseCase struct {
	userRepo repository.UserRepository
}

// NewUsuariosUseCase construye el caso de uso.
func NewUsuariosUseCase(userRepo repository.UserRepository) *UsuariosUseCase {
	return &UsuariosUseCase{userRepo: userRepo}
}

// Listar devuelve todos los usuarios ordenados por nombre, con rol y comercio
// denormalizados en cada fila.
func (uc *UsuariosUseCase) Listar() ([]dto.UserAdminResponse, error) {
	rows, err := uc.userRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserAdminResponse, 0, len(rows))
	for _, row := range rows {
		item := dto.UserAdminResponse{
			ID:     row.ID,
			Nombre: row.Name,
			Email:  row.Email,
			Rol:    sinRol,
		}
		if row.RoleName != nil && *row.RoleName != "" {
			item.Rol = *row.RoleName
		}
		if row.ComercioName != nil {
			item.Comercio = &dto.ComercioResponse{
				Nombre: *row.ComercioName,
			}
			if row.ComercioSlug != nil {
				item.Comercio.Slug = *row.ComercioSlug
			}
			if row.ComercioActive != nil {
				item.Comercio.Activo = *row.ComercioActive
			}
		}
		out = append(out, item)
	}
	return out, nil
}
