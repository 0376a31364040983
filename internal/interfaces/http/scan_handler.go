package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/scan"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// ScanHandler resuelve códigos escaneados (QR o dirección) a ubicaciones.
type ScanHandler struct {
	scanUC *scan.UseCase
}

// NewScanHandler construye el handler de escaneo.
func NewScanHandler(scanUC *scan.UseCase) *ScanHandler {
	return &ScanHandler{scanUC: scanUC}
}

// Resolve godoc
// @Summary      Resolver un código escaneado a su ubicación
// @Description  Intenta primero como internal_id de etiqueta QR, luego como
//               dirección literal. Devuelve la ubicación con su inventario
//               y sus etiquetas.
// @Tags         scan
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "internal_id de la etiqueta o dirección"
// @Success      200   {object}  dto.ScanResolveResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scan/{code} [get]
func (h *ScanHandler) Resolve(c *fiber.Ctx) error {
	detail, err := h.scanUC.ResolveDetail(c.Context(), c.Params("code"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toScanResolveResponse(detail))
}

func toScanResolveResponse(d *scan.Detail) dto.ScanResolveResponse {
	codes := make([]dto.ScanCodeResponse, 0, len(d.ScanCodes))
	for _, sc := range d.ScanCodes {
		codes = append(codes, toScanCodeDTO(sc))
	}
	return dto.ScanResolveResponse{
		Location:  toStorageLocationResponse(d.Location),
		Inventory: toLocationInventoryResponses(d.Inventory),
		ScanCodes: codes,
	}
}

func toScanCodeDTO(sc *entity.ScanCode) dto.ScanCodeResponse {
	return dto.ScanCodeResponse{
		ID:           sc.ID,
		LocationID:   sc.LocationID,
		InternalID:   sc.InternalID,
		LabelAddress: sc.LabelAddress,
		Active:       sc.Active,
		CreatedAt:    sc.CreatedAt,
	}
}

func toStorageLocationResponse(loc *entity.StorageLocation) dto.StorageLocationResponse {
	return dto.StorageLocationResponse{
		ID:        loc.ID,
		ZoneID:    loc.ZoneID,
		Address:   loc.Address,
		Active:    loc.Active,
		CreatedAt: loc.CreatedAt,
	}
}
