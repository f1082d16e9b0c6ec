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

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventories"
	"github.com/jhoicas/Inventario-dashboard/internal/application/movements"
	"github.com/jhoicas/Inventario-dashboard/internal/application/reports"
	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	backendClient := backend.NewClient(cfg.Backend, log)
	productGW := backend.NewProductGateway(backendClient)
	inventoryGW := backend.NewInventoryGateway(backendClient)
	movementGW := backend.NewMovementGateway(backendClient)
	authGW := backend.NewAuthGateway(backendClient)

	coordinator := snapshot.NewCoordinator(productGW, inventoryGW, movementGW, log)

	authUC := auth.NewUseCase(authGW, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	movementsUC := movements.NewUseCase(coordinator, log)
	dashboardUC := analytics.NewDashboardUseCase(coordinator, log)
	inventoryUC := inventories.NewUseCase(coordinator)

	// PDF: reporte tabular de los movimientos filtrados
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewPDFUseCase(coordinator, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		MovementsUC: movementsUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		InventoryUC: inventoryUC,
		JWTSecret:   cfg.JWT.Secret,
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
