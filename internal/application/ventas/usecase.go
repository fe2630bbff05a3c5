package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
)

// TxRunner contrato mínimo para ejecutar la creación de la venta en una
// transacción con repos atados a la tx. Lo implementa postgres.TxRunner.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CrearVentaUseCase registra una venta y descuenta el stock en una sola transacción:
// o se persisten la cabecera, todas las líneas y todos los descuentos de stock, o nada.
type CrearVentaUseCase struct {
	txRunner   TxRunner
	metodoRepo repository.MetodoPagoRepository
}

// NewCrearVentaUseCase construye el caso de uso.
func NewCrearVentaUseCase(txRunner TxRunner, metodoRepo repository.MetodoPagoRepository) *CrearVentaUseCase {
	return &CrearVentaUseCase{txRunner: txRunner, metodoRepo: metodoRepo}
}

// Crear valida la venta y la persiste. Por cada línea descuenta del stock el
// peso si viene informado, si no la cantidad. Retorna el ID de la venta creada.
func (uc *CrearVentaUseCase) Crear(ctx context.Context, comercioID string, in dto.CreateVentaRequest) (*dto.CreateVentaResponse, error) {
	if len(in.Items) == 0 || in.MetodoPagoID == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductoID == "" {
			return nil, domain.ErrInvalidInput
		}
		if item.Peso == nil && item.Cantidad.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar que el método de pago exista y sea del comercio (fuera de la tx, solo lectura)
	metodo, err := uc.metodoRepo.GetByID(comercioID, in.MetodoPagoID)
	if err != nil {
		return nil, err
	}
	if metodo == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	venta := &entity.Venta{
		ID:           uuid.New().String(),
		ComercioID:   comercioID,
		MetodoPagoID: in.MetodoPagoID,
		Total:        in.Total,
		TotalBs:      in.Total.Mul(in.Tasa),
		Tasa:         in.Tasa,
		Fecha:        now,
	}

	err = uc.txRunner.RunVenta(ctx, func(
		ventaRepo repository.VentaRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := ventaRepo.Create(venta); err != nil {
			return err
		}
		for _, item := range in.Items {
			linea := &entity.VentaItem{
				ID:               uuid.New().String(),
				VentaID:          venta.ID,
				ProductoID:       item.ProductoID,
				Cantidad:         item.Cantidad,
				Peso:             item.Peso,
				PrecioUnitario:   item.PrecioUnitario,
				PrecioUnitarioBs: item.PrecioUnitario.Mul(in.Tasa),
			}
			if err := ventaRepo.CreateItem(linea); err != nil {
				return err
			}
			descuento := item.Cantidad
			if item.Peso != nil {
				descuento = *item.Peso
			}
			if err := productRepo.DecrementStock(comercioID, item.ProductoID, descuento); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateVentaResponse{ID: venta.ID}, nil
}
