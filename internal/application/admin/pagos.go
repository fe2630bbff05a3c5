package admin

import (
	"context"

	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

// TxRunner contrato mínimo para ejecutar la baja del pago y el ajuste del
// vencimiento del comercio en una transacción. Lo implementa postgres.TxRunner.
type TxRunner interface {
	RunPago(ctx context.Context, fn func(
		pagoRepo repository.PagoSuscripcionRepository,
		comercioRepo repository.ComercioRepository,
	) error) error
}

// PagosUseCase administración de pagos de suscripción (solo SUPER_ADMIN).
type PagosUseCase struct {
	txRunner TxRunner
	pagoRepo repository.PagoSuscripcionRepository
}

// NewPagosUseCase construye el caso de uso.
func NewPagosUseCase(txRunner TxRunner, pagoRepo repository.PagoSuscripcionRepository) *PagosUseCase {
	return &PagosUseCase{txRunner: txRunner, pagoRepo: pagoRepo}
}

// Listar devuelve todos los pagos de suscripción con el comercio denormalizado.
func (uc *PagosUseCase) Listar() ([]dto.PagoAdminResponse, error) {
	rows, err := uc.pagoRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagoAdminResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.PagoAdminResponse{
			ID:             row.ID,
			ComercioID:     row.ComercioID,
			ComercioNombre: row.ComercioName,
			Meses:          row.Meses,
			Fecha:          row.Fecha,
		})
	}
	return out, nil
}

// Eliminar borra un pago y retrocede el vencimiento del comercio los meses
// registrados, en una sola transacción: el vencimiento nunca queda reflejando
// un pago que ya no existe. Pagos con meses 0 no tocan el vencimiento.
func (uc *PagosUseCase) Eliminar(ctx context.Context, pagoID string) error {
	pago, err := uc.pagoRepo.GetByID(pagoID)
	if err != nil {
		return err
	}
	if pago == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.RunPago(ctx, func(
		pagoRepo repository.PagoSuscripcionRepository,
		comercioRepo repository.ComercioRepository,
	) error {
		if pago.Meses > 0 {
			comercio, err := comercioRepo.GetByID(pago.ComercioID)
			if err != nil {
				return err
			}
			if comercio != nil && comercio.ExpiresAt != nil {
				nueva := comercio.ExpiresAt.AddDate(0, -pago.Meses, 0)
				if err := comercioRepo.UpdateExpiry(comercio.ID, &nueva); err != nil {
					return err
				}
			}
		}
		return pagoRepo.Delete(pago.ID)
	})
}
