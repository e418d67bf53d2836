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
	_ "github.com/tu-usuario/fabrica-api/docs"
	"github.com/tu-usuario/fabrica-api/internal/application/audit"
	"github.com/tu-usuario/fabrica-api/internal/application/auth"
	appledger "github.com/tu-usuario/fabrica-api/internal/application/ledger"
	"github.com/tu-usuario/fabrica-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/fabrica-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/fabrica-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/fabrica-api/internal/interfaces/http"
	"github.com/tu-usuario/fabrica-api/pkg/config"
	"github.com/tu-usuario/fabrica-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	usageRepo := postgres.NewUsageLogRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	materialLogRepo := postgres.NewMaterialLogRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	recorder := audit.NewMaterialRecorder(materialLogRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, usageRepo, materialLogRepo, recorder, log)
	materialLogUC := usecase.NewMaterialLogUseCase(materialLogRepo)
	usageUC := usecase.NewUsageLogUseCase(usageRepo, materialRepo)
	batchUC := usecase.NewBatchUseCase(batchRepo, materialRepo, usageRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := usecase.NewDashboardUseCase(materialRepo, dashboardRepo)

	// PDF: estado de cuenta del material (libro de movimientos)
	statementGen := infrapdf.NewMarotoLedgerGenerator()
	historyUC := appledger.NewHistoryUseCase(materialRepo, usageRepo, batchRepo, statementGen)

	authUC := auth.NewAuthUseCase(auth.Config{
		Pin:        cfg.Auth.Pin,
		PinHash:    cfg.Auth.PinHash,
		JWTSecret:  cfg.Auth.JWTSecret,
		JWTIssuer:  cfg.Auth.JWTIssuer,
		ExpMinutes: cfg.Auth.ExpMinutes,
	})

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
		Title:    "Fábrica API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:    materialUC,
		MaterialLogUC: materialLogUC,
		UsageUC:       usageUC,
		BatchUC:       batchUC,
		SettingsUC:    settingsUC,
		DashboardUC:   dashboardUC,
		HistoryUC:     historyUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.Auth.JWTSecret,
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
