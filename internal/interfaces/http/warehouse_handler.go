package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
)

// WarehouseHandler CRUD de la jerarquía bodega > zona > ubicación.
type WarehouseHandler struct {
	warehouseUC *usecase.WarehouseUseCase
	locationUC  *usecase.LocationUseCase
}

// NewWarehouseHandler construye el handler de bodegas.
func NewWarehouseHandler(warehouseUC *usecase.WarehouseUseCase, locationUC *usecase.LocationUseCase) *WarehouseHandler {
	return &WarehouseHandler{warehouseUC: warehouseUC, locationUC: locationUC}
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "name, address"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	warehouse, err := h.warehouseUC.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(warehouse)
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	warehouse, err := h.warehouseUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(warehouse)
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tope (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	warehouses, err := h.warehouseUC.List(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"warehouses": warehouses})
}

// CreateZone godoc
// @Summary      Crear zona dentro de una bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la bodega"
// @Param        body  body  dto.CreateZoneRequest  true  "name, description"
// @Success      201   {object}  dto.ZoneResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/zones [post]
func (h *WarehouseHandler) CreateZone(c *fiber.Ctx) error {
	var in dto.CreateZoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.WarehouseID = c.Params("id")
	zone, err := h.warehouseUC.CreateZone(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(zone)
}

// ListZones godoc
// @Summary      Listar zonas de una bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la bodega"
// @Param        limit   query  int     false  "Tope (default 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/warehouses/{id}/zones [get]
func (h *WarehouseHandler) ListZones(c *fiber.Ctx) error {
	zones, err := h.warehouseUC.ListZones(c.Context(), c.Params("id"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"zones": zones})
}

// CreateLocation godoc
// @Summary      Crear ubicación de almacenamiento dentro de una zona
// @Tags         storage-locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la zona"
// @Param        body  body  dto.CreateStorageLocationRequest  true  "address"
// @Success      201   {object}  dto.StorageLocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/zones/{id}/storage-locations [post]
func (h *WarehouseHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateStorageLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ZoneID = c.Params("id")
	loc, err := h.locationUC.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(loc)
}

// ListLocations godoc
// @Summary      Listar ubicaciones de una zona
// @Tags         storage-locations
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la zona"
// @Param        limit   query  int     false  "Tope (default 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/zones/{id}/storage-locations [get]
func (h *WarehouseHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.locationUC.ListByZone(c.Context(), c.Params("id"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"storage_locations": locations})
}

// GetLocation godoc
// @Summary      Obtener ubicación por ID
// @Tags         storage-locations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.StorageLocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storage-locations/{id} [get]
func (h *WarehouseHandler) GetLocation(c *fiber.Ctx) error {
	loc, err := h.locationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(loc)
}

// SetLocationActive godoc
// @Summary      Activar o desactivar una ubicación
// @Tags         storage-locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la ubicación"
// @Param        body  body  dto.UpdateScanCodeRequest  true  "active"
// @Success      200   {object}  dto.StorageLocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storage-locations/{id} [patch]
func (h *WarehouseHandler) SetLocationActive(c *fiber.Ctx) error {
	var in struct {
		Active *bool `json:"active"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el campo active es requerido"})
	}
	loc, err := h.locationUC.SetActive(c.Context(), c.Params("id"), *in.Active)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(loc)
}
