package inventory

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del ledger y el
// registro de bitácora se persistan como unidad: ambos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		logRepo repository.ActivityLogRepository,
	) error) error
}

// LocationResolver resuelve un código escaneado a su ubicación de
// almacenamiento. Lo implementa scan.UseCase; la interfaz evita acoplar el
// motor al paquete de escaneo.
type LocationResolver interface {
	Resolve(ctx context.Context, code string) (*entity.StorageLocation, error)
}
