package catalogo

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
	"github.com/tu-usuario/pos-comercios/internal/domain"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/domain/repository"
	"golang.org/x/text/unicode/norm"
)

// Tamaño de página por defecto del listado de productos.
const defaultPageSize = 30

// ProductoUseCase casos de uso del catálogo: listado/búsqueda y alta de productos.
type ProductoUseCase struct {
	productRepo repository.ProductRepository
	metodoRepo  repository.MetodoPagoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productRepo repository.ProductRepository, metodoRepo repository.MetodoPagoRepository) *ProductoUseCase {
	return &ProductoUseCase{productRepo: productRepo, metodoRepo: metodoRepo}
}

// Crear da de alta un producto. El nombre se recorta y se normaliza a NFC
// (entradas desde distintos teclados producen la misma forma de "Café").
// Un nombre duplicado en el mismo comercio (case-insensitive) retorna ErrDuplicate.
func (uc *ProductoUseCase) Crear(comercioID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	nombre := norm.NFC.String(strings.TrimSpace(in.Nombre))
	if nombre == "" || in.Precio == nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByComercioAndName(comercioID, nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	stock := decimal.Zero
	if in.Stock != nil {
		stock = *in.Stock
	}
	porPeso := in.PorPeso != nil && *in.PorPeso
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		ComercioID:   comercioID,
		Name:         nombre,
		Price:        *in.Precio,
		SoldByWeight: porPeso,
		Stock:        stock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductoResponse(product), nil
}

// Listar lista productos del comercio alfabéticamente, con búsqueda opcional
// por substring case-insensitive y paginación (limit por defecto 30, máximo 100).
func (uc *ProductoUseCase) Listar(comercioID, search string, page, limit int) (*dto.ProductoListResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > 100 {
		limit = 100
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	total, err := uc.productRepo.CountByComercio(comercioID, search)
	if err != nil {
		return nil, err
	}
	list, err := uc.productRepo.ListByComercio(comercioID, search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page, limit, total),
	}, nil
}

// ListaPOS devuelve el catálogo completo y los métodos de pago para la pantalla de venta.
func (uc *ProductoUseCase) ListaPOS(comercioID string) (*dto.ListaPOSResponse, error) {
	productos, err := uc.productRepo.ListByComercio(comercioID, "", 0, 0)
	if err != nil {
		return nil, err
	}
	metodos, err := uc.metodoRepo.ListByComercio(comercioID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListaPOSResponse{
		Productos:   make([]dto.ProductoResponse, 0, len(productos)),
		MetodosPago: make([]dto.MetodoPagoResponse, 0, len(metodos)),
	}
	for _, p := range productos {
		resp.Productos = append(resp.Productos, *toProductoResponse(p))
	}
	for _, m := range metodos {
		resp.MetodosPago = append(resp.MetodosPago, dto.MetodoPagoResponse{ID: m.ID, Nombre: m.Name})
	}
	return resp, nil
}

func toProductoResponse(p *entity.Product) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:        p.ID,
		Nombre:    p.Name,
		Precio:    p.Price,
		Stock:     p.Stock,
		PorPeso:   p.SoldByWeight,
		CreatedAt: p.CreatedAt,
	}
}
