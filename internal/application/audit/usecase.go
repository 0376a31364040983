package audit

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// DefaultLimit tope de resultados cuando el caller no indica uno.
const DefaultLimit = 100

// UseCase consulta de solo lectura sobre la bitácora. La escritura ocurre
// únicamente dentro del commit del motor de ajustes.
type UseCase struct {
	logRepo repository.ActivityLogRepository
}

// NewUseCase construye el caso de uso de consulta de bitácora.
func NewUseCase(logRepo repository.ActivityLogRepository) *UseCase {
	return &UseCase{logRepo: logRepo}
}

// Query devuelve registros ordenados por timestamp descendente, con filtros
// opcionales por actor, producto y ubicación (sobre los campos desnormalizados).
func (uc *UseCase) Query(ctx context.Context, filter repository.ActivityLogFilter) ([]*entity.ActivityLog, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	return uc.logRepo.List(ctx, filter)
}
