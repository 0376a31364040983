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

// LocationUseCase casos de uso CRUD para ubicaciones de almacenamiento.
type LocationUseCase struct {
	locationRepo repository.StorageLocationRepository
	zoneRepo     repository.ZoneRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.StorageLocationRepository, zoneRepo repository.ZoneRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo, zoneRepo: zoneRepo}
}

// Create crea una ubicación dentro de una zona existente. La dirección es única.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateStorageLocationRequest) (*dto.StorageLocationResponse, error) {
	if in.ZoneID == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	zone, err := uc.zoneRepo.GetByID(ctx, in.ZoneID)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.locationRepo.GetByAddress(ctx, in.Address)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	loc := &entity.StorageLocation{
		ID:        uuid.New().String(),
		ZoneID:    in.ZoneID,
		Address:   in.Address,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.StorageLocationResponse, error) {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(loc), nil
}

// ListByZone lista ubicaciones de una zona con paginación.
func (uc *LocationUseCase) ListByZone(ctx context.Context, zoneID string, limit, offset int) ([]dto.StorageLocationResponse, error) {
	list, err := uc.locationRepo.ListByZone(ctx, zoneID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StorageLocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// SetActive activa o desactiva una ubicación.
func (uc *LocationUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.StorageLocationResponse, error) {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	loc.Active = active
	if err := uc.locationRepo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

func toLocationResponse(l *entity.StorageLocation) *dto.StorageLocationResponse {
	return &dto.StorageLocationResponse{
		ID:        l.ID,
		ZoneID:    l.ZoneID,
		Address:   l.Address,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
	}
}
