package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fabrica-api/internal/application/auth"
	"github.com/tu-usuario/fabrica-api/internal/application/ledger"
	"github.com/tu-usuario/fabrica-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC    *usecase.MaterialUseCase
	MaterialLogUC *usecase.MaterialLogUseCase
	UsageUC       *usecase.UsageLogUseCase
	BatchUC       *usecase.BatchUseCase
	SettingsUC    *usecase.SettingsUseCase
	DashboardUC   *usecase.DashboardUseCase
	HistoryUC     *ledger.HistoryUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
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

	// Materials (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.MaterialLogUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/low-stock", materialHandler.ListLowStock)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Patch("/:id/stock", materialHandler.UpdateStock)
	materials.Delete("/:id", materialHandler.Delete)
	materials.Get("/:id/logs", materialHandler.ListLogs)

	// Historial de movimientos por material (protegido)
	ledgerHandler := NewLedgerHandler(deps.HistoryUC)
	materials.Get("/:id/history", ledgerHandler.History)
	materials.Get("/:id/history/pdf", ledgerHandler.ExportPDF)
	materials.Post("/:id/additions", ledgerHandler.AddStock)

	// Usage logs (protegido)
	usageLogs := protected.Group("/usage-logs")
	usageHandler := NewUsageLogHandler(deps.UsageUC)
	usageLogs.Post("/", usageHandler.Create)
	usageLogs.Get("/", usageHandler.List)
	usageLogs.Get("/:id", usageHandler.GetByID)
	usageLogs.Delete("/:id", usageHandler.Delete)

	// Batches (protegido)
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Put("/:id", batchHandler.Update)
	batches.Delete("/:id", batchHandler.Delete)
	batches.Post("/:id/materials", batchHandler.AddMaterial)
	batches.Get("/:id/materials", batchHandler.ListMaterials)
	protected.Delete("/batch-materials/:id", batchHandler.RemoveMaterial)

	// Material logs (protegido, auditoría global)
	materialLogs := protected.Group("/material-logs")
	materialLogHandler := NewMaterialLogHandler(deps.MaterialLogUC)
	materialLogs.Get("/", materialLogHandler.List)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.List)
	settings.Get("/:key", settingsHandler.Get)
	settings.Put("/:key", settingsHandler.Set)
	settings.Delete("/:key", settingsHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
