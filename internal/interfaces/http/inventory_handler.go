package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/audit"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/inventory"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP del ledger de inventario (protegido).
type InventoryHandler struct {
	adjust *inventory.AdjustUseCase
	audit  *audit.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjust *inventory.AdjustUseCase, auditUC *audit.UseCase) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, audit: auditUC}
}

// Adjust godoc
// @Summary      Ajustar cantidad de un producto en una ubicación
// @Description  delta > 0 agrega, delta < 0 retira. Con commit=false devuelve
//               un preview sin persistir ni registrar en bitácora.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustRequest  true  "location_id, product_id, delta, commit"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.adjust.Adjust(c.Context(), inventory.AdjustInput{
		LocationID: in.LocationID,
		ProductID:  in.ProductID,
		Delta:      in.Delta,
		Commit:     in.Commit,
		Actor:      GetActor(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	if result.Preview != nil {
		return c.JSON(fiber.Map{
			"preview": dto.PreviewResponse{
				CurrentQuantity:  result.Preview.CurrentQuantity,
				ProposedQuantity: result.Preview.ProposedQuantity,
				Delta:            result.Preview.Delta,
			},
			"message": "preview del ajuste (no persistido)",
		})
	}
	return c.JSON(fiber.Map{
		"entry":   toEntryResponse(result.Entry),
		"message": "ajuste aplicado",
	})
}

// Pick godoc
// @Summary      Retirar inventario vía código escaneado (flujo picker)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PickRequest  true  "scan_code, product_id, quantity (positiva)"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/pick [post]
func (h *InventoryHandler) Pick(c *fiber.Ctx) error {
	var in dto.PickRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.adjust.Pick(c.Context(), inventory.PickInput{
		ScanCode:  in.ScanCode,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Actor:     GetActor(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"entry":   toEntryResponse(result.Entry),
		"message": "pick aplicado e inventario actualizado",
	})
}

// ByStorageLocation godoc
// @Summary      Inventario de una ubicación (detalle de estantería)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/by-storage-location/{id} [get]
func (h *InventoryHandler) ByStorageLocation(c *fiber.Ctx) error {
	list, err := h.adjust.ListByLocation(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"inventory": toLocationInventoryResponses(list)})
}

// ProductLocations godoc
// @Summary      Ubicaciones con stock (> 0) de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products/{productId}/locations [get]
func (h *InventoryHandler) ProductLocations(c *fiber.Ctx) error {
	list, err := h.adjust.ListProductLocations(c.Context(), c.Params("productId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.ProductLocationResponse, 0, len(list))
	for _, pl := range list {
		items = append(items, dto.ProductLocationResponse{
			LocationID:      pl.LocationID,
			LocationAddress: pl.LocationAddress,
			LocationActive:  pl.LocationActive,
			ZoneID:          pl.ZoneID,
			Quantity:        pl.Quantity,
			LastUpdatedBy:   pl.LastUpdatedBy,
			UpdatedByName:   pl.UpdatedByName,
			UpdatedAt:       pl.UpdatedAt,
		})
	}
	return c.JSON(fiber.Map{"product_locations": items})
}

// Logs godoc
// @Summary      Consultar bitácora de mutaciones (filtrable)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        actor     query  string  false  "Filtrar por actor (UserID)"
// @Param        product   query  string  false  "Filtrar por producto"
// @Param        location  query  string  false  "Filtrar por ubicación"
// @Param        limit     query  int     false  "Tope de resultados (default 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventory/logs [get]
func (h *InventoryHandler) Logs(c *fiber.Ctx) error {
	filter := repository.ActivityLogFilter{
		ActorID:    c.Query("actor"),
		ProductID:  c.Query("product"),
		LocationID: c.Query("location"),
		Limit:      c.QueryInt("limit", audit.DefaultLimit),
	}
	logs, err := h.audit.Query(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, toActivityLogResponse(l))
	}
	return c.JSON(fiber.Map{"logs": items})
}

func toEntryResponse(e *entity.InventoryEntry) dto.EntryResponse {
	return dto.EntryResponse{
		LocationID:    e.LocationID,
		ProductID:     e.ProductID,
		Quantity:      e.Quantity,
		LastUpdatedBy: e.LastUpdatedBy,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toLocationInventoryResponses(list []*entity.LocationInventory) []dto.LocationInventoryResponse {
	items := make([]dto.LocationInventoryResponse, 0, len(list))
	for _, li := range list {
		items = append(items, dto.LocationInventoryResponse{
			EntryResponse: toEntryResponse(&li.InventoryEntry),
			Product: dto.ProductSummary{
				ID:       li.ProductID,
				Name:     li.ProductName,
				SKU:      li.ProductSKU,
				Category: li.ProductCategory,
			},
			UpdatedByName: li.UpdatedByName,
			UpdatedByRole: li.UpdatedByRole,
		})
	}
	return items
}

func toActivityLogResponse(l *entity.ActivityLog) dto.ActivityLogResponse {
	return dto.ActivityLogResponse{
		ID:     l.ID,
		Actor:  dto.ActorSummary{ID: l.ActorID, Name: l.ActorName, Role: l.ActorRole},
		Action: l.Action,
		Details: dto.ActivityDetails{
			LocationID:        l.LocationID,
			ProductID:         l.ProductID,
			Delta:             l.Delta,
			ResultingQuantity: l.ResultingQuantity,
		},
		Timestamp: l.Timestamp,
	}
}
