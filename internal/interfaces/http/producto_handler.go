package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-comercios/internal/application/catalogo"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
)

// ProductoHandler maneja las peticiones HTTP del catálogo (protegido, tenant).
type ProductoHandler struct {
	uc *catalogo.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *catalogo.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos del comercio
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre (substring, case-insensitive)"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño de página"  default(30)
// @Success      200     {object}  dto.ProductoListResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(GetComercioID(c), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/nuevo [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(GetComercioID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListaPOS godoc
// @Summary      Catálogo completo + métodos de pago para la pantalla de venta
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListaPOSResponse
// @Router       /api/lista-productos [get]
func (h *ProductoHandler) ListaPOS(c *fiber.Ctx) error {
	out, err := h.uc.ListaPOS(GetComercioID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
