package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-comercios/internal/application/caja"
	"github.com/tu-usuario/pos-comercios/internal/application/dto"
)

// CajaHandler maneja resumen, gastos, cierre e historial de caja (protegido, tenant).
type CajaHandler struct {
	uc *caja.CajaUseCase
}

// NewCajaHandler construye el handler.
func NewCajaHandler(uc *caja.CajaUseCase) *CajaHandler {
	return &CajaHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen del período abierto desde el último cierre
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenResponse
// @Router       /api/caja/resumen [get]
func (h *CajaHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Context(), GetComercioID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Cerrar godoc
// @Summary      Cerrar caja
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CerrarCajaRequest  true  "Totales del cierre"
// @Success      201   {object}  dto.CierreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caja/cerrar [post]
func (h *CajaHandler) Cerrar(c *fiber.Ctx) error {
	var in dto.CerrarCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Cerrar(GetComercioID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarGasto godoc
// @Summary      Registrar gasto de caja
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GastoRequest  true  "Descripción y monto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caja/gastos [post]
func (h *CajaHandler) RegistrarGasto(c *fiber.Ctx) error {
	var in dto.GastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarGasto(GetComercioID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Historial godoc
// @Summary      Historial de cierres (páginas fijas de 30)
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200   {object}  dto.HistorialResponse
// @Router       /api/caja/historial [get]
func (h *CajaHandler) Historial(c *fiber.Ctx) error {
	out, err := h.uc.Historial(GetComercioID(c), c.QueryInt("page", 1))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CierrePDF godoc
// @Summary      Comprobante PDF de un cierre
// @Tags         caja
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del cierre"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/historial/{id}/pdf [get]
func (h *CajaHandler) CierrePDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	out, err := h.uc.CierrePDF(c.Context(), GetComercioID(c), id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cierre-`+id+`.pdf"`)
	return c.Send(out)
}

// ExportarXML godoc
// @Summary      Exportar el historial de cierres como XML
// @Tags         caja
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/historial/export.xml [get]
func (h *CajaHandler) ExportarXML(c *fiber.Ctx) error {
	out, err := h.uc.ExportarXML(GetComercioID(c))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cierres.xml"`)
	return c.Send(out)
}
