package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventories"
	"github.com/jhoicas/Inventario-dashboard/internal/application/movements"
	"github.com/jhoicas/Inventario-dashboard/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	MovementsUC *movements.UseCase
	ReportUC    *reports.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	InventoryUC *inventories.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Movimientos reconciliados (protegido)
	movGroup := protected.Group("/movements")
	movementsHandler := NewMovementsHandler(deps.MovementsUC, deps.ReportUC)
	movGroup.Get("/", movementsHandler.List)
	movGroup.Get("/report", movementsHandler.Report)

	// Dashboard (protegido)
	dashGroup := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashGroup.Get("/summary", dashboardHandler.Summary)

	// Inventarios (protegido)
	invGroup := protected.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
}
