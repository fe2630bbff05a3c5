package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-comercios/internal/application/configuracion"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
)

// ConfiguracionHandler maneja los métodos de pago del comercio (protegido, tenant).
type ConfiguracionHandler struct {
	uc *configuracion.MetodosPagoUseCase
}

// NewConfiguracionHandler construye el handler.
func NewConfiguracionHandler(uc *configuracion.MetodosPagoUseCase) *ConfiguracionHandler {
	return &ConfiguracionHandler{uc: uc}
}

// ListMetodos godoc
// @Summary      Listar métodos de pago
// @Tags         configuracion
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MetodoPagoResponse
// @Router       /api/configuracion/metodos-pago [get]
func (h *ConfiguracionHandler) ListMetodos(c *fiber.Ctx) error {
	out, err := h.uc.Listar(GetComercioID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CreateMetodo godoc
// @Summary      Crear método de pago
// @Tags         configuracion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMetodoPagoRequest  true  "Nombre del método"
// @Success      201   {object}  dto.MetodoPagoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/configuracion/metodos-pago [post]
func (h *ConfiguracionHandler) CreateMetodo(c *fiber.Ctx) error {
	var in dto.CreateMetodoPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(GetComercioID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteMetodo godoc
// @Summary      Eliminar método de pago
// @Tags         configuracion
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del método"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configuracion/metodos-pago/{id} [delete]
func (h *ConfiguracionHandler) DeleteMetodo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.Eliminar(GetComercioID(c), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "método de pago eliminado"})
}
