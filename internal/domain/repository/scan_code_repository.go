package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// ScanCodeFilter filtros opcionales para listar etiquetas.
type ScanCodeFilter struct {
	LocationID string
	Active     *bool
}

// ScanCodeRepository puerto de persistencia de etiquetas QR.
type ScanCodeRepository interface {
	Create(ctx context.Context, code *entity.ScanCode) error
	GetByID(ctx context.Context, id string) (*entity.ScanCode, error)
	// GetByInternalID busca por el token opaco presentado por el escáner,
	// sin considerar el flag Active.
	GetByInternalID(ctx context.Context, internalID string) (*entity.ScanCode, error)
	ListByLocation(ctx context.Context, locationID string) ([]*entity.ScanCode, error)
	List(ctx context.Context, filter ScanCodeFilter) ([]*entity.ScanCode, error)
	SetActive(ctx context.Context, id string, active bool) (*entity.ScanCode, error)
	Delete(ctx context.Context, id string) error
}
