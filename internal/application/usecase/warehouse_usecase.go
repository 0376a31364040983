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

// WarehouseUseCase casos de uso CRUD para bodegas y zonas.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	zoneRepo      repository.ZoneRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, zoneRepo repository.ZoneRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, zoneRepo: zoneRepo}
}

// Create crea una nueva bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Metadata:  in.Metadata,
		CreatedAt: time.Now(),
	}
	if err := uc.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, limit, offset int) ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouseRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// CreateZone crea una zona dentro de una bodega existente.
func (uc *WarehouseUseCase) CreateZone(ctx context.Context, in dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	if in.WarehouseID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	zone := &entity.Zone{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}
	return toZoneResponse(zone), nil
}

// ListZones lista las zonas de una bodega.
func (uc *WarehouseUseCase) ListZones(ctx context.Context, warehouseID string, limit, offset int) ([]dto.ZoneResponse, error) {
	list, err := uc.zoneRepo.ListByWarehouse(ctx, warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		items = append(items, *toZoneResponse(z))
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		Metadata:  w.Metadata,
		CreatedAt: w.CreatedAt,
	}
}

func toZoneResponse(z *entity.Zone) *dto.ZoneResponse {
	return &dto.ZoneResponse{
		ID:          z.ID,
		WarehouseID: z.WarehouseID,
		Name:        z.Name,
		Description: z.Description,
		CreatedAt:   z.CreatedAt,
	}
}
