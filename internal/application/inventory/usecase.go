package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/inventory"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// AdjustUseCase es el motor de ajustes del ledger: valida entrada y rol,
// calcula la cantidad candidata, rechaza resultados negativos y — solo si se
// pide commit — persiste la entrada y agrega exactamente un registro de
// bitácora, ambos dentro de una misma transacción.
type AdjustUseCase struct {
	txRunner     TxRunner
	invRepo      repository.InventoryRepository
	locationRepo repository.StorageLocationRepository
	productRepo  repository.ProductRepository
	resolver     LocationResolver
}

// NewAdjustUseCase construye el motor de ajustes.
func NewAdjustUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	locationRepo repository.StorageLocationRepository,
	productRepo repository.ProductRepository,
	resolver LocationResolver,
) *AdjustUseCase {
	return &AdjustUseCase{
		txRunner:     txRunner,
		invRepo:      invRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		resolver:     resolver,
	}
}

// Actor identidad del usuario autenticado que ejecuta la operación.
type Actor struct {
	ID   string
	Name string
	Role string
}

// AdjustInput entrada del ajuste general. Delta > 0 agrega, delta < 0 retira.
// Con Commit=false el resultado es un preview sin persistencia ni bitácora.
type AdjustInput struct {
	LocationID string
	ProductID  string
	Delta      int64
	Commit     bool
	Actor      Actor
}

// PickInput entrada del flujo de picking por código escaneado (siempre commit).
type PickInput struct {
	ScanCode  string
	ProductID string
	Quantity  int64
	Actor     Actor
}

// Preview resultado de un ajuste sin commit.
type Preview struct {
	CurrentQuantity  int64
	ProposedQuantity int64
	Delta            int64
}

// AdjustResult resultado de Adjust/Pick: Entry en commits, Preview en dry runs.
type AdjustResult struct {
	Entry   *entity.InventoryEntry
	Preview *Preview
}

// Adjust valida y aplica (o previsualiza) un cambio de cantidad sobre el par
// (ubicación, producto). La verificación de no-negatividad ocurre igual con o
// sin commit, de modo que el preview muestra el mismo rechazo que mostraría
// el commit.
func (uc *AdjustUseCase) Adjust(ctx context.Context, in AdjustInput) (*AdjustResult, error) {
	if in.Delta == 0 || in.LocationID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !inventory.MayApply(in.Actor.Role, in.Delta) {
		return nil, domain.ErrForbidden
	}

	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	entry, err := uc.invRepo.Get(ctx, loc.ID, product.ID)
	if err != nil {
		return nil, err
	}
	newQty := entry.Quantity + in.Delta
	if newQty < 0 {
		return nil, domain.ErrInvalidAdjustment
	}

	if !in.Commit {
		// Dry run: snapshot informativo, sin bloqueo ni escritura. No garantiza
		// que siga siendo exacto si otro commit llega antes del re-envío.
		return &AdjustResult{Preview: &Preview{
			CurrentQuantity:  entry.Quantity,
			ProposedQuantity: newQty,
			Delta:            in.Delta,
		}}, nil
	}

	committed, err := uc.commit(ctx, loc, product, in.Delta, in.Actor, domain.ErrInvalidAdjustment)
	if err != nil {
		return nil, err
	}
	return &AdjustResult{Entry: committed}, nil
}

// Pick resuelve el código escaneado a una ubicación y delega en el mismo núcleo
// de commit con delta = -Quantity. No existe modo preview para picking.
func (uc *AdjustUseCase) Pick(ctx context.Context, in PickInput) (*AdjustResult, error) {
	if in.ScanCode == "" || in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !inventory.MayApply(in.Actor.Role, -in.Quantity) {
		return nil, domain.ErrForbidden
	}

	loc, err := uc.resolver.Resolve(ctx, in.ScanCode)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	entry, err := uc.invRepo.Get(ctx, loc.ID, product.ID)
	if err != nil {
		return nil, err
	}
	if entry.Quantity <= 0 {
		return nil, domain.ErrNothingToPick
	}
	if entry.Quantity < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	committed, err := uc.commit(ctx, loc, product, -in.Quantity, in.Actor, domain.ErrInsufficientStock)
	if err != nil {
		return nil, err
	}
	return &AdjustResult{Entry: committed}, nil
}

// commit es el núcleo compartido de Adjust y Pick: dentro de una transacción
// aplica el delta como escritura condicional atómica y agrega el registro de
// bitácora. La condición del store re-valida la no-negatividad, de modo que dos
// commits concurrentes sobre la misma clave no pueden pasar ambos con una
// lectura obsoleta; condErr es el error a devolver si esa re-validación falla.
func (uc *AdjustUseCase) commit(
	ctx context.Context,
	loc *entity.StorageLocation,
	product *entity.Product,
	delta int64,
	actor Actor,
	condErr error,
) (*entity.InventoryEntry, error) {
	now := time.Now()
	var committed *entity.InventoryEntry

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		logRepo repository.ActivityLogRepository,
	) error {
		entry, applied, err := invRepo.ApplyDelta(ctx, loc.ID, product.ID, delta, actor.ID, now)
		if err != nil {
			return err
		}
		if !applied {
			return condErr
		}
		committed = entry

		verb := "Added"
		if delta < 0 {
			verb = "Removed"
		}
		abs := delta
		if abs < 0 {
			abs = -abs
		}
		action := fmt.Sprintf("%s %s %s x%d to/from %s", actor.Name, verb, product.Name, abs, loc.Address)
		return logRepo.Create(ctx, &entity.ActivityLog{
			ActorID:           actor.ID,
			Action:            action,
			LocationID:        loc.ID,
			ProductID:         product.ID,
			Delta:             delta,
			ResultingQuantity: entry.Quantity,
			Timestamp:         now,
		})
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

// ListByLocation devuelve el inventario de una ubicación (detalle de estantería).
func (uc *AdjustUseCase) ListByLocation(ctx context.Context, locationID string) ([]*entity.LocationInventory, error) {
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return uc.invRepo.ListByLocation(ctx, locationID)
}

// ListProductLocations devuelve dónde hay stock (> 0) de un producto.
func (uc *AdjustUseCase) ListProductLocations(ctx context.Context, productID string) ([]*entity.ProductLocation, error) {
	return uc.invRepo.ListByProductInStock(ctx, productID)
}
