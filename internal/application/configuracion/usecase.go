package configuracion

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

// MetodosPagoUseCase CRUD de métodos de pago del comercio.
type MetodosPagoUseCase struct {
	repo repository.MetodoPagoRepository
}

// NewMetodosPagoUseCase construye el caso de uso.
func NewMetodosPagoUseCase(repo repository.MetodoPagoRepository) *MetodosPagoUseCase {
	return &MetodosPagoUseCase{repo: repo}
}

// Listar lista los métodos de pago del comercio en orden alfabético.
func (uc *MetodosPagoUseCase) Listar(comercioID string) ([]dto.MetodoPagoResponse, error) {
	list, err := uc.repo.ListByComercio(comercioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MetodoPagoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MetodoPagoResponse{ID: m.ID, Nombre: m.Name})
	}
	return out, nil
}

// Crear da de alta un método de pago. El nombre es obligatorio.
func (uc *MetodosPagoUseCase) Crear(comercioID string, in dto.CreateMetodoPagoRequest) (*dto.MetodoPagoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	metodo := &entity.MetodoPago{
		ID:         uuid.New().String(),
		ComercioID: comercioID,
		Name:       nombre,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(metodo); err != nil {
		return nil, err
	}
	return &dto.MetodoPagoResponse{ID: metodo.ID, Nombre: metodo.Name}, nil
}

// Eliminar borra un método del comercio. Si todavía hay ventas que lo
// referencian, el repositorio retorna ErrConflict (la FK lo impide) y el
// método y sus ventas quedan intactos.
func (uc *MetodosPagoUseCase) Eliminar(comercioID, id string) error {
	return uc.repo.Delete(comercioID, id)
}
