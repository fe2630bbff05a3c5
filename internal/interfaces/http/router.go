package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-comercios/internal/application/admin"
	"github.com/tu-usuario/pos-comercios/internal/application/auth"
	"github.com/tu-usuario/pos-comercios/internal/application/caja"
	"github.com/tu-usuario/pos-comercios/internal/application/catalogo"
	"github.com/tu-usuario/pos-comercios/internal/application/configuracion"
	"github.com/tu-usuario/pos-comercios/internal/application/ventas"
	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductoUC      *catalogo.ProductoUseCase
	CrearVenta      *ventas.CrearVentaUseCase
	CajaUC          *caja.CajaUseCase
	MetodosPagoUC   *configuracion.MetodosPagoUseCase
	AdminUsuariosUC *admin.UsuariosUseCase
	AdminPagosUC    *admin.PagosUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión (cualquier usuario autenticado)
	protected.Get("/datos-usuario", authHandler.DatosUsuario)
	protected.Put("/configuracion/password", authHandler.ChangePassword)

	// Rutas de tenant (requieren comercio en el token)
	tenant := protected.Group("/", RequireComercio())

	// Catálogo
	productoHandler := NewProductoHandler(deps.ProductoUC)
	tenant.Get("/productos", productoHandler.List)
	tenant.Post("/productos/nuevo", productoHandler.Create)
	tenant.Get("/lista-productos", productoHandler.ListaPOS)

	// Ventas
	ventaHandler := NewVentaHandler(deps.CrearVenta)
	tenant.Post("/ventas", ventaHandler.Create)

	// Caja. La ruta estática export.xml va antes que :id/pdf.
	cajaHandler := NewCajaHandler(deps.CajaUC)
	cajaGroup := tenant.Group("/caja")
	cajaGroup.Get("/resumen", cajaHandler.Resumen)
	cajaGroup.Post("/cerrar", cajaHandler.Cerrar)
	cajaGroup.Post("/gastos", cajaHandler.RegistrarGasto)
	cajaGroup.Get("/historial", cajaHandler.Historial)
	cajaGroup.Get("/historial/export.xml", cajaHandler.ExportarXML)
	cajaGroup.Get("/historial/:id/pdf", cajaHandler.CierrePDF)

	// Configuración: métodos de pago
	configuracionHandler := NewConfiguracionHandler(deps.MetodosPagoUC)
	tenant.Get("/metodos-pago", configuracionHandler.ListMetodos)
	tenant.Get("/configuracion/metodos-pago", configuracionHandler.ListMetodos)
	tenant.Post("/configuracion/metodos-pago", configuracionHandler.CreateMetodo)
	tenant.Delete("/configuracion/metodos-pago/:id", configuracionHandler.DeleteMetodo)

	// Administración de plataforma (solo SUPER_ADMIN)
	adminHandler := NewAdminHandler(deps.AdminUsuariosUC, deps.AdminPagosUC)
	adminGroup := protected.Group("/admin", RequireRole(entity.RoleSuperAdmin))
	adminGroup.Get("/usuarios", adminHandler.ListUsuarios)
	adminGroup.Get("/pagos", adminHandler.ListPagos)
	adminGroup.Delete("/pagos/:id", adminHandler.DeletePago)
}
