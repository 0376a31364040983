package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// ScanCodeHandler administra el ciclo de vida de etiquetas QR.
type ScanCodeHandler struct {
	scanCodeUC *usecase.ScanCodeUseCase
}

// NewScanCodeHandler construye el handler de etiquetas.
func NewScanCodeHandler(scanCodeUC *usecase.ScanCodeUseCase) *ScanCodeHandler {
	return &ScanCodeHandler{scanCodeUC: scanCodeUC}
}

// Create godoc
// @Summary      Generar una etiqueta QR para una ubicación
// @Tags         scan-codes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateScanCodeRequest  true  "location_id"
// @Success      201   {object}  dto.ScanCodeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scan-codes [post]
func (h *ScanCodeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScanCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	code, err := h.scanCodeUC.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(code)
}

// List godoc
// @Summary      Listar etiquetas QR
// @Tags         scan-codes
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "Filtrar por ubicación"
// @Param        active    query  bool    false  "Filtrar por estado"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/scan-codes [get]
func (h *ScanCodeHandler) List(c *fiber.Ctx) error {
	filter := repository.ScanCodeFilter{LocationID: c.Query("location")}
	if v := c.Query("active"); v != "" {
		active := v == "true"
		filter.Active = &active
	}
	codes, err := h.scanCodeUC.List(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"scan_codes": codes})
}

// GetByID godoc
// @Summary      Obtener una etiqueta por ID
// @Tags         scan-codes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.ScanCodeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scan-codes/{id} [get]
func (h *ScanCodeHandler) GetByID(c *fiber.Ctx) error {
	code, err := h.scanCodeUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(code)
}

// Update godoc
// @Summary      Activar o desactivar una etiqueta
// @Description  Una etiqueta inactiva sigue resolviendo escaneos; el flag es
//               informativo para la operación del almacén.
// @Tags         scan-codes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la etiqueta"
// @Param        body  body  dto.UpdateScanCodeRequest  true  "active"
// @Success      200   {object}  dto.ScanCodeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scan-codes/{id} [patch]
func (h *ScanCodeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateScanCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el campo active es requerido"})
	}
	code, err := h.scanCodeUC.SetActive(c.Context(), c.Params("id"), *in.Active)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(code)
}

// Delete godoc
// @Summary      Eliminar una etiqueta
// @Tags         scan-codes
// @Security     Bearer
// @Param        id  path  string  true  "ID de la etiqueta"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scan-codes/{id} [delete]
func (h *ScanCodeHandler) Delete(c *fiber.Ctx) error {
	if err := h.scanCodeUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Label godoc
// @Summary      Datos de impresión de una etiqueta
// @Description  El gráfico QR se genera en el cliente a partir de scan_payload.
// @Tags         scan-codes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.ScanCodeLabelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scan-codes/{id}/label [get]
func (h *ScanCodeHandler) Label(c *fiber.Ctx) error {
	label, err := h.scanCodeUC.Label(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(label)
}
