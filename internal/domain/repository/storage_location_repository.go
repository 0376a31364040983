package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// StorageLocationRepository puerto de persistencia de ubicaciones de almacenamiento.
type StorageLocationRepository interface {
	Create(ctx context.Context, loc *entity.StorageLocation) error
	GetByID(ctx context.Context, id string) (*entity.StorageLocation, error)
	// GetByAddress busca por dirección exacta (fallback del resolver de escaneo).
	GetByAddress(ctx context.Context, address string) (*entity.StorageLocation, error)
	ListByZone(ctx context.Context, zoneID string, limit, offset int) ([]*entity.StorageLocation, error)
	Update(ctx context.Context, loc *entity.StorageLocation) error
}
