package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// ScanCodeUseCase ciclo de vida de etiquetas QR: crear para una ubicación,
// listar, activar/desactivar y datos de impresión. La resolución de escaneos
// vive en el paquete scan.
type ScanCodeUseCase struct {
	scanCodeRepo repository.ScanCodeRepository
	locationRepo repository.StorageLocationRepository
}

// NewScanCodeUseCase construye el caso de uso.
func NewScanCodeUseCase(scanCodeRepo repository.ScanCodeRepository, locationRepo repository.StorageLocationRepository) *ScanCodeUseCase {
	return &ScanCodeUseCase{scanCodeRepo: scanCodeRepo, locationRepo: locationRepo}
}

// Create genera una etiqueta para una ubicación existente. LabelAddress se
// copia de la dirección de la ubicación en este momento y no se resincroniza.
func (uc *ScanCodeUseCase) Create(ctx context.Context, in dto.CreateScanCodeRequest) (*dto.ScanCodeResponse, error) {
	if in.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	code := &entity.ScanCode{
		ID:           uuid.New().String(),
		LocationID:   loc.ID,
		InternalID:   uuid.New().String(),
		LabelAddress: loc.Address,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.scanCodeRepo.Create(ctx, code); err != nil {
		return nil, err
	}
	return toScanCodeResponse(code), nil
}

// List lista etiquetas con filtros opcionales por ubicación y estado.
func (uc *ScanCodeUseCase) List(ctx context.Context, filter repository.ScanCodeFilter) ([]dto.ScanCodeResponse, error) {
	list, err := uc.scanCodeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScanCodeResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toScanCodeResponse(c))
	}
	return items, nil
}

// GetByID obtiene una etiqueta por ID.
func (uc *ScanCodeUseCase) GetByID(ctx context.Context, id string) (*dto.ScanCodeResponse, error) {
	code, err := uc.scanCodeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, domain.ErrNotFound
	}
	return toScanCodeResponse(code), nil
}

// SetActive activa o desactiva una etiqueta (no la elimina; una etiqueta
// inactiva sigue resolviendo, ver scan.UseCase).
func (uc *ScanCodeUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.ScanCodeResponse, error) {
	code, err := uc.scanCodeRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, domain.ErrNotFound
	}
	return toScanCodeResponse(code), nil
}

// Delete elimina una etiqueta (solo Admin en el router).
func (uc *ScanCodeUseCase) Delete(ctx context.Context, id string) error {
	code, err := uc.scanCodeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if code == nil {
		return domain.ErrNotFound
	}
	return uc.scanCodeRepo.Delete(ctx, id)
}

// Label devuelve los datos para renderizar la etiqueta imprimible.
func (uc *ScanCodeUseCase) Label(ctx context.Context, id string) (*dto.ScanCodeLabelResponse, error) {
	code, err := uc.scanCodeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ScanCodeLabelResponse{
		InternalID:  code.InternalID,
		Address:     code.LabelAddress,
		Active:      code.Active,
		CreatedAt:   code.CreatedAt,
		ScanPayload: code.InternalID,
	}, nil
}

func toScanCodeResponse(c *entity.ScanCode) *dto.ScanCodeResponse {
	return &dto.ScanCodeResponse{
		ID:           c.ID,
		LocationID:   c.LocationID,
		InternalID:   c.InternalID,
		LabelAddress: c.LabelAddress,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
