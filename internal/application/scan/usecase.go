package scan

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// UseCase resuelve códigos presentados por un dispositivo de escaneo a
// ubicaciones de almacenamiento.
type UseCase struct {
	scanCodeRepo repository.ScanCodeRepository
	locationRepo repository.StorageLocationRepository
	invRepo      repository.InventoryRepository
}

// NewUseCase construye el resolver de escaneo.
func NewUseCase(
	scanCodeRepo repository.ScanCodeRepository,
	locationRepo repository.StorageLocationRepository,
	invRepo repository.InventoryRepository,
) *UseCase {
	return &UseCase{scanCodeRepo: scanCodeRepo, locationRepo: locationRepo, invRepo: invRepo}
}

// Resolve busca el código primero como InternalID de etiqueta QR (gana siempre,
// incluso si otra ubicación tiene ese mismo string como dirección, y sin
// importar el flag Active de la etiqueta); si no hay etiqueta, lo trata como
// dirección literal de ubicación. ErrNotFound si ninguna búsqueda acierta; un
// código vacío nunca acierta.
func (uc *UseCase) Resolve(ctx context.Context, code string) (*entity.StorageLocation, error) {
	if code == "" {
		return nil, domain.ErrNotFound
	}
	sc, err := uc.scanCodeRepo.GetByInternalID(ctx, code)
	if err != nil {
		return nil, err
	}
	if sc != nil {
		loc, err := uc.locationRepo.GetByID(ctx, sc.LocationID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			// Etiqueta huérfana: la ubicación referenciada ya no existe.
			return nil, domain.ErrNotFound
		}
		return loc, nil
	}
	loc, err := uc.locationRepo.GetByAddress(ctx, code)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return loc, nil
}

// Detail resultado completo de resolver un escaneo: la ubicación, todo su
// inventario y todas sus etiquetas.
type Detail struct {
	Location  *entity.StorageLocation
	Inventory []*entity.LocationInventory
	ScanCodes []*entity.ScanCode
}

// ResolveDetail resuelve el código y carga el inventario y las etiquetas de la
// ubicación (vista de estantería para el escáner).
func (uc *UseCase) ResolveDetail(ctx context.Context, code string) (*Detail, error) {
	loc, err := uc.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.invRepo.ListByLocation(ctx, loc.ID)
	if err != nil {
		return nil, err
	}
	codes, err := uc.scanCodeRepo.ListByLocation(ctx, loc.ID)
	if err != nil {
		return nil, err
	}
	return &Detail{Location: loc, Inventory: inventory, ScanCodes: codes}, nil
}
