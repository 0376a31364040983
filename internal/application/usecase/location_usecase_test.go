package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

type memZoneRepo struct {
	byID map[string]*entity.Zone
}

func (r *memZoneRepo) Create(_ context.Context, zone *entity.Zone) error {
	r.byID[zone.ID] = zone
	return nil
}
func (r *memZoneRepo) GetByID(_ context.Context, id string) (*entity.Zone, error) {
	return r.byID[id], nil
}
func (r *memZoneRepo) ListByWarehouse(_ context.Context, warehouseID string, _, _ int) ([]*entity.Zone, error) {
	var out []*entity.Zone
	for _, z := range r.byID {
		if z.WarehouseID == warehouseID {
			out = append(out, z)
		}
	}
	return out, nil
}

func newLocationUC() *usecase.LocationUseCase {
	locRepo := &memLocationRepo{byID: make(map[string]*entity.StorageLocation)}
	zoneRepo := &memZoneRepo{byID: map[string]*entity.Zone{
		"zone-1": {ID: "zone-1", WarehouseID: "wh-1", Name: "Recepción"},
	}}
	return usecase.NewLocationUseCase(locRepo, zoneRepo)
}

func TestLocationCreate_ActivaPorDefecto(t *testing.T) {
	uc := newLocationUC()
	loc, err := uc.Create(context.Background(), dto.CreateStorageLocationRequest{ZoneID: "zone-1", Address: "A-01-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, loc.ID)
	assert.True(t, loc.Active)
	assert.Equal(t, "A-01-01", loc.Address)
}

func TestLocationCreate_ZonaInexistente(t *testing.T) {
	uc := newLocationUC()
	_, err := uc.Create(context.Background(), dto.CreateStorageLocationRequest{ZoneID: "zone-x", Address: "A-01-01"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationCreate_DireccionDuplicada(t *testing.T) {
	uc := newLocationUC()
	_, err := uc.Create(context.Background(), dto.CreateStorageLocationRequest{ZoneID: "zone-1", Address: "A-01-01"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateStorageLocationRequest{ZoneID: "zone-1", Address: "A-01-01"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "la dirección es única en todo el almacén")
}

func TestLocationCreate_ValidaCamposRequeridos(t *testing.T) {
	uc := newLocationUC()
	_, err := uc.Create(context.Background(), dto.CreateStorageLocationRequest{ZoneID: "zone-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocationSetActive_Desactiva(t *testing.T) {
	uc := newLocationUC()
	loc, err := uc.Create(context.Background(), dto.CreateStorageLocationRequest{ZoneID: "zone-1", Address: "B-02-03"})
	require.NoError(t, err)

	updated, err := uc.SetActive(context.Background(), loc.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	got, err := uc.GetByID(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}
