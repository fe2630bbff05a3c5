package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/pos-comercios/internal/application/admin"
	"github.com/tu-usuario/pos-comercios/internal/application/auth"
	appcaja "github.com/tu-usuario/pos-comercios/internal/application/caja"
	"github.com/tu-usuario/pos-comercios/internal/application/catalogo"
	"github.com/tu-usuario/pos-comercios/internal/application/configuracion"
	"github.com/tu-usuario/pos-comercios/internal/application/ventas"
	infrapdf "github.com/tu-usuario/pos-comercios/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-comercios/internal/infrastructure/postgres"
	"github.com/tu-usuario/pos-comercios/internal/infrastructure/xmlreport"
	httpRouter "github.com/tu-usuario/pos-comercios/internal/interfaces/http"
	"github.com/tu-usuario/pos-comercios/pkg/config"
	"github.com/tu-usuario/pos-comercios/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	comercioRepo := postgres.NewComercioRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	metodoRepo := postgres.NewMetodoPagoRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	cierreRepo := postgres.NewCierreCajaRepository(pool)
	cajaRepo := postgres.NewCajaRepository(pool)
	pagoRepo := postgres.NewPagoSuscripcionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlExporter := xmlreport.NewEtreeExporter()

	authUC := auth.NewAuthUseCase(userRepo, comercioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productoUC := catalogo.NewProductoUseCase(productRepo, metodoRepo)
	crearVentaUC := ventas.NewCrearVentaUseCase(txRunner, metodoRepo)
	cajaUC := appcaja.NewCajaUseCase(cierreRepo, cajaRepo, gastoRepo, comercioRepo, pdfGenerator, xmlExporter)
	metodosPagoUC := configuracion.NewMetodosPagoUseCase(metodoRepo)
	adminUsuariosUC := admin.NewUsuariosUseCase(userRepo)
	adminPagosUC := admin.NewPagosUseCase(txRunner, pagoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Comercios API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductoUC:      productoUC,
		CrearVenta:      crearVentaUC,
		CajaUC:          cajaUC,
		MetodosPagoUC:   metodosPagoUC,
		AdminUsuariosUC: adminUsuariosUC,
		AdminPagosUC:    adminPagosUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
