package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/audit"
	"github.com/tu-usuario/warehouse-api/internal/application/auth"
	"github.com/tu-usuario/warehouse-api/internal/application/inventory"
	"github.com/tu-usuario/warehouse-api/internal/application/scan"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	WarehouseUC *usecase.WarehouseUseCase
	LocationUC  *usecase.LocationUseCase
	ProductUC   *usecase.ProductUseCase
	ScanCodeUC  *usecase.ScanCodeUseCase
	AdjustUC    *inventory.AdjustUseCase
	ScanUC      *scan.UseCase
	AuditUC     *audit.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Solo roles de gestión pueden tocar registros maestros y bitácora.
	managers := RequireRole(entity.RoleAdmin, entity.RoleInventorySpecialist)

	// Warehouses / zones / storage locations (protegido)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.LocationUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", managers, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/:id/zones", managers, warehouseHandler.CreateZone)
	warehouses.Get("/:id/zones", warehouseHandler.ListZones)

	zones := protected.Group("/zones")
	zones.Post("/:id/storage-locations", managers, warehouseHandler.CreateLocation)
	zones.Get("/:id/storage-locations", warehouseHandler.ListLocations)

	locations := protected.Group("/storage-locations")
	locations.Get("/:id", warehouseHandler.GetLocation)
	locations.Patch("/:id", managers, warehouseHandler.SetLocationActive)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", managers, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", managers, productHandler.Update)

	// Inventory ledger (protegido; la política por rol y signo del delta se
	// aplica en el use case, no aquí)
	inventoryHandler := NewInventoryHandler(deps.AdjustUC, deps.AuditUC)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/adjust", inventoryHandler.Adjust)
	invGroup.Post("/pick", inventoryHandler.Pick)
	invGroup.Get("/by-storage-location/:id", inventoryHandler.ByStorageLocation)
	invGroup.Get("/logs", managers, inventoryHandler.Logs)
	products.Get("/:productId/locations", inventoryHandler.ProductLocations)

	// Scan resolution (protegido, cualquier rol: es la ruta caliente del picker)
	scanHandler := NewScanHandler(deps.ScanUC)
	protected.Get("/scan/:code", scanHandler.Resolve)

	// Scan codes / etiquetas QR (protegido)
	scanCodes := protected.Group("/scan-codes")
	scanCodeHandler := NewScanCodeHandler(deps.ScanCodeUC)
	scanCodes.Post("/", managers, scanCodeHandler.Create)
	scanCodes.Get("/", scanCodeHandler.List)
	scanCodes.Get("/:id", scanCodeHandler.GetByID)
	scanCodes.Get("/:id/label", scanCodeHandler.Label)
	scanCodes.Patch("/:id", managers, scanCodeHandler.Update)
	scanCodes.Delete("/:id", RequireRole(entity.RoleAdmin), scanCodeHandler.Delete)
}
