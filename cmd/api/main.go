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
	"github.com/tu-usuario/warehouse-api/internal/application/audit"
	"github.com/tu-usuario/warehouse-api/internal/application/auth"
	appinventory "github.com/tu-usuario/warehouse-api/internal/application/inventory"
	"github.com/tu-usuario/warehouse-api/internal/application/scan"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/warehouse-api/internal/interfaces/http"
	"github.com/tu-usuario/warehouse-api/pkg/config"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
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

	dbLog := log.Component("postgres")
	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
		dbLog.Fatal().Err(err).Msg("migraciones")
	}
	dbLog.Info().Msg("esquema al día")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		dbLog.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)
	locationRepo := postgres.NewStorageLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	scanCodeRepo := postgres.NewScanCodeRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	logRepo := postgres.NewActivityLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	scanUC := scan.NewUseCase(scanCodeRepo, locationRepo, invRepo)
	adjustUC := appinventory.NewAdjustUseCase(txRunner, invRepo, locationRepo, productRepo, scanUC)
	auditUC := audit.NewUseCase(logRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, zoneRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, zoneRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	scanCodeUC := usecase.NewScanCodeUseCase(scanCodeRepo, locationRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
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
		Title:    "Warehouse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		WarehouseUC: warehouseUC,
		LocationUC:  locationUC,
		ProductUC:   productUC,
		ScanCodeUC:  scanCodeUC,
		AdjustUC:    adjustUC,
		ScanUC:      scanUC,
		AuditUC:     auditUC,
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
