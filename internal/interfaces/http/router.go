package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaro/inventory-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Recorder   *inventory.RecordMovementUseCase
	Restock    *inventory.RestockUseCase
	OrderStock *inventory.OrderStockUseCase
	Alerts     *inventory.AlertUseCase
	History    *inventory.HistoryUseCase
	Summary    *inventory.SummaryUseCase
	SKU        *inventory.SKUUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo requiere Bearer Token; el
// scoping por vendedor sale de los claims, y las rutas de órdenes y de
// corrección masiva exigen rol de servicio o admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario del vendedor (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Recorder, deps.Restock)
	reportsHandler := NewReportsHandler(deps.Alerts, deps.History, deps.Summary)
	settingsHandler := NewProductSettingsHandler(deps.SKU)

	inv.Post("/movements", RequireRole("seller", "admin"), inventoryHandler.RecordMovement)
	inv.Get("/movements", RequireRole("seller", "admin"), reportsHandler.GetMovementHistory)
	inv.Get("/alerts", RequireRole("seller", "admin"), reportsHandler.GetLowStockAlerts)
	inv.Get("/summary", RequireRole("seller", "admin"), reportsHandler.GetInventorySummary)

	inv.Post("/products/:id/restock", RequireRole("seller", "admin"), inventoryHandler.Restock)
	inv.Post("/products/:id/adjust", RequireRole("seller", "admin"), inventoryHandler.Adjust)
	inv.Get("/products/:id/movements", RequireRole("seller", "admin"), reportsHandler.GetProductMovements)
	inv.Put("/products/:id/sku", RequireRole("seller", "admin"), settingsHandler.UpdateSKU)
	inv.Put("/products/:id/threshold", RequireRole("seller", "admin"), settingsHandler.UpdateThreshold)

	// Corrección masiva: herramienta de administración
	inv.Post("/bulk-adjust", RequireRole("admin"), inventoryHandler.BulkUpdate)

	// Débito/crédito por orden: lo consume el servicio de órdenes
	orders := protected.Group("/orders")
	orderHandler := NewOrderStockHandler(deps.OrderStock)
	orders.Post("/:orderId/deduct", RequireRole("service", "admin"), orderHandler.Deduct)
	orders.Post("/:orderId/restore", RequireRole("service", "admin"), orderHandler.Restore)
}
