package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-comercios/internal/application/admin"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
)

// AdminHandler endpoints de plataforma, solo SUPER_ADMIN.
type AdminHandler struct {
	usuariosUC *admin.UsuariosUseCase
	pagosUC    *admin.PagosUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(usuariosUC *admin.UsuariosUseCase, pagosUC *admin.PagosUseCase) *AdminHandler {
	return &AdminHandler{usuariosUC: usuariosUC, pagosUC: pagosUC}
}

// ListUsuarios godoc
// @Summary      Listar todos los usuarios de la plataforma
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserAdminResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios [get]
func (h *AdminHandler) ListUsuarios(c *fiber.Ctx) error {
	out, err := h.usuariosUC.Listar()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListPagos godoc
// @Summary      Listar pagos de suscripción
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.PagoAdminResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/pagos [get]
func (h *AdminHandler) ListPagos(c *fiber.Ctx) error {
	out, err := h.pagosUC.Listar()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeletePago godoc
// @Summary      Eliminar pago y retroceder el vencimiento del comercio
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/pagos/{id} [delete]
func (h *AdminHandler) DeletePago(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.pagosUC.Eliminar(c.Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "pago eliminado"})
}
