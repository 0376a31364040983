package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// InventoryRepository puerto del ledger de inventario: una fila por par
// (ubicación, producto) con restricción de unicidad.
type InventoryRepository interface {
	// Get devuelve la entrada existente o una entrada fresca en cero si no hay
	// fila persistida (la fila no se crea hasta un commit).
	Get(ctx context.Context, locationID, productID string) (*entity.InventoryEntry, error)

	// ApplyDelta aplica el cambio de cantidad como escritura condicional atómica
	// ("aplicar delta solo si la cantidad resultante >= 0"). Es el único punto de
	// serialización entre commits concurrentes sobre la misma clave. Devuelve
	// applied=false cuando la condición falla (fila ausente con delta negativo,
	// o cantidad insuficiente); la lectura previa en el motor solo sirve para
	// previews y mensajes.
	ApplyDelta(ctx context.Context, locationID, productID string, delta int64, actorID string, now time.Time) (entry *entity.InventoryEntry, applied bool, err error)

	// ListByLocation devuelve todas las entradas de una ubicación con resumen de
	// producto y último actor, ordenadas por updated_at descendente.
	ListByLocation(ctx context.Context, locationID string) ([]*entity.LocationInventory, error)

	// ListByProductInStock devuelve las ubicaciones con cantidad > 0 para un
	// producto, ordenadas por updated_at descendente.
	ListByProductInStock(ctx context.Context, productID string) ([]*entity.ProductLocation, error)
}
