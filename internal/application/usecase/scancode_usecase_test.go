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
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

type memScanCodeRepo struct {
	byID map[string]*entity.ScanCode
}

func newMemScanCodeRepo() *memScanCodeRepo {
	return &memScanCodeRepo{byID: make(map[string]*entity.ScanCode)}
}

func (r *memScanCodeRepo) Create(_ context.Context, code *entity.ScanCode) error {
	cp := *code
	r.byID[code.ID] = &cp
	return nil
}
func (r *memScanCodeRepo) GetByID(_ context.Context, id string) (*entity.ScanCode, error) {
	return r.byID[id], nil
}
func (r *memScanCodeRepo) GetByInternalID(_ context.Context, internalID string) (*entity.ScanCode, error) {
	for _, c := range r.byID {
		if c.InternalID == internalID {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memScanCodeRepo) ListByLocation(_ context.Context, locationID string) ([]*entity.ScanCode, error) {
	var out []*entity.ScanCode
	for _, c := range r.byID {
		if c.LocationID == locationID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memScanCodeRepo) List(_ context.Context, filter repository.ScanCodeFilter) ([]*entity.ScanCode, error) {
	var out []*entity.ScanCode
	for _, c := range r.byID {
		if filter.LocationID != "" && c.LocationID != filter.LocationID {
			continue
		}
		if filter.Active != nil && c.Active != *filter.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (r *memScanCodeRepo) SetActive(_ context.Context, id string, active bool) (*entity.ScanCode, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	c.Active = active
	return c, nil
}
func (r *memScanCodeRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type memLocationRepo struct {
	byID map[string]*entity.StorageLocation
}

func (r *memLocationRepo) Create(_ context.Context, loc *entity.StorageLocation) error {
	r.byID[loc.ID] = loc
	return nil
}
func (r *memLocationRepo) GetByID(_ context.Context, id string) (*entity.StorageLocation, error) {
	return r.byID[id], nil
}
func (r *memLocationRepo) GetByAddress(_ context.Context, address string) (*entity.StorageLocation, error) {
	for _, loc := range r.byID {
		if loc.Address == address {
			return loc, nil
		}
	}
	return nil, nil
}
func (r *memLocationRepo) ListByZone(_ context.Context, _ string, _, _ int) ([]*entity.StorageLocation, error) {
	return nil, nil
}
func (r *memLocationRepo) Update(_ context.Context, loc *entity.StorageLocation) error {
	r.byID[loc.ID] = loc
	return nil
}

func newScanCodeUC() (*usecase.ScanCodeUseCase, *memScanCodeRepo) {
	scanRepo := newMemScanCodeRepo()
	locRepo := &memLocationRepo{byID: map[string]*entity.StorageLocation{
		"loc-1": {ID: "loc-1", ZoneID: "zone-1", Address: "A-01-01", Active: true},
	}}
	return usecase.NewScanCodeUseCase(scanRepo, locRepo), scanRepo
}

func TestScanCodeCreate_CopiaDireccionYActivaPorDefecto(t *testing.T) {
	uc, _ := newScanCodeUC()
	code, err := uc.Create(context.Background(), dto.CreateScanCodeRequest{LocationID: "loc-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, code.ID)
	assert.NotEmpty(t, code.InternalID)
	assert.Equal(t, "A-01-01", code.LabelAddress, "la dirección se congela al crear la etiqueta")
	assert.True(t, code.Active)
}

func TestScanCodeCreate_UbicacionInexistente(t *testing.T) {
	uc, _ := newScanCodeUC()
	_, err := uc.Create(context.Background(), dto.CreateScanCodeRequest{LocationID: "loc-x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScanCodeCreate_VariasEtiquetasMismaUbicacion(t *testing.T) {
	uc, _ := newScanCodeUC()
	a, err := uc.Create(context.Background(), dto.CreateScanCodeRequest{LocationID: "loc-1"})
	require.NoError(t, err)
	b, err := uc.Create(context.Background(), dto.CreateScanCodeRequest{LocationID: "loc-1"})
	require.NoError(t, err)
	assert.NotEqual(t, a.InternalID, b.InternalID, "cada etiqueta lleva su propio token opaco")

	list, err := uc.List(context.Background(), repository.ScanCodeFilter{LocationID: "loc-1"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestScanCodeSetActive_YFiltroPorEstado(t *testing.T) {
	uc, _ := newScanCodeUC()
	code, err := uc.Create(context.Background(), dto.CreateScanCodeRequest{LocationID: "loc-1"})
	require.NoError(t, err)

	updated, err := uc.SetActive(context.Background(), code.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	inactive := false
	list, err := uc.List(context.Background(), repository.ScanCodeFilter{Active: &inactive})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, code.ID, list[0].ID)
}

func TestScanCodeSetActive_Inexistente(t *testing.T) {
	uc, _ := newScanCodeUC()
	_, err := uc.SetActive(context.Background(), "sc-x", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScanCodeLabel_PayloadEsInternalID(t *testing.T) {
	uc, _ := newScanCodeUC()
	code, err := uc.Create(context.Background(), dto.CreateScanCodeRequest{LocationID: "loc-1"})
	require.NoError(t, err)

	label, err := uc.Label(context.Background(), code.ID)
	require.NoError(t, err)
	assert.Equal(t, code.InternalID, label.ScanPayload,
		"el QR codifica el token opaco, no la dirección")
	assert.Equal(t, "A-01-01", label.Address)
}

func TestScanCodeDelete(t *testing.T) {
	uc, repo := newScanCodeUC()
	code, err := uc.Create(context.Background(), dto.CreateScanCodeRequest{LocationID: "loc-1"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), code.ID))
	assert.Empty(t, repo.byID)

	err = uc.Delete(context.Background(), code.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
