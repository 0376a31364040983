package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// ActivityLogFilter filtros opcionales para consultar la bitácora.
// Los filtros por producto/ubicación aplican sobre los campos desnormalizados
// del registro, no sobre el ledger.
type ActivityLogFilter struct {
	ActorID    string
	ProductID  string
	LocationID string
	Limit      int
}

// ActivityLogRepository puerto de la bitácora append-only. Los registros nunca
// se actualizan ni se eliminan.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	List(ctx context.Context, filter ActivityLogFilter) ([]*entity.ActivityLog, error)
}
