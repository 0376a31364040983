package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/tu-usuario/warehouse-api/internal/application/inventory"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (mutex por repo, ApplyDelta condicional y atómico como en
// el repositorio real)
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.InventoryEntry
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{entries: make(map[string]*entity.InventoryEntry)}
}

func invKey(locationID, productID string) string {
	return locationID + "|" + productID
}

func (r *fakeInventoryRepo) Get(_ context.Context, locationID, productID string) (*entity.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[invKey(locationID, productID)]; ok {
		cp := *e
		return &cp, nil
	}
	return &entity.InventoryEntry{LocationID: locationID, ProductID: productID}, nil
}

func (r *fakeInventoryRepo) ApplyDelta(_ context.Context, locationID, productID string, delta int64, actorID string, now time.Time) (*entity.InventoryEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := invKey(locationID, productID)
	e, ok := r.entries[key]
	if !ok {
		if delta < 0 {
			return nil, false, nil
		}
		e = &entity.InventoryEntry{LocationID: locationID, ProductID: productID}
		r.entries[key] = e
	}
	if e.Quantity+delta < 0 {
		return nil, false, nil
	}
	e.Quantity += delta
	e.LastUpdatedBy = actorID
	e.UpdatedAt = now
	cp := *e
	return &cp, true, nil
}

func (r *fakeInventoryRepo) ListByLocation(_ context.Context, locationID string) ([]*entity.LocationInventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.LocationInventory
	for _, e := range r.entries {
		if e.LocationID == locationID {
			out = append(out, &entity.LocationInventory{InventoryEntry: *e})
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) ListByProductInStock(_ context.Context, productID string) ([]*entity.ProductLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ProductLocation
	for _, e := range r.entries {
		if e.ProductID == productID && e.Quantity > 0 {
			out = append(out, &entity.ProductLocation{InventoryEntry: *e})
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	mu   sync.Mutex
	logs []*entity.ActivityLog
}

func (r *fakeLogRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeLogRepo) List(_ context.Context, _ repository.ActivityLogFilter) ([]*entity.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.ActivityLog(nil), r.logs...), nil
}

func (r *fakeLogRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.logs)
}

type fakeLocationRepo struct {
	byID map[string]*entity.StorageLocation
}

func (r *fakeLocationRepo) Create(_ context.Context, _ *entity.StorageLocation) error { return nil }
func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.StorageLocation, error) {
	return r.byID[id], nil
}
func (r *fakeLocationRepo) GetByAddress(_ context.Context, address string) (*entity.StorageLocation, error) {
	for _, loc := range r.byID {
		if loc.Address == address {
			return loc, nil
		}
	}
	return nil, nil
}
func (r *fakeLocationRepo) ListByZone(_ context.Context, _ string, _, _ int) ([]*entity.StorageLocation, error) {
	return nil, nil
}
func (r *fakeLocationRepo) Update(_ context.Context, _ *entity.StorageLocation) error { return nil }

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }

// fakeTxRunner ejecuta el closure sobre los mismos repos en memoria; la
// atomicidad de la escritura condicional la da el mutex de fakeInventoryRepo.
type fakeTxRunner struct {
	inv  *fakeInventoryRepo
	logs *fakeLogRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.InventoryRepository, repository.ActivityLogRepository) error) error {
	return fn(r.inv, r.logs)
}

// fakeResolver resuelve códigos de escaneo contra un mapa fijo.
type fakeResolver struct {
	byCode map[string]*entity.StorageLocation
}

func (r *fakeResolver) Resolve(_ context.Context, code string) (*entity.StorageLocation, error) {
	if loc, ok := r.byCode[code]; ok {
		return loc, nil
	}
	return nil, domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc   *appinventory.AdjustUseCase
	inv  *fakeInventoryRepo
	logs *fakeLogRepo
	loc  *entity.StorageLocation
	prod *entity.Product
}

func newFixture() *fixture {
	loc := &entity.StorageLocation{ID: "loc-1", ZoneID: "zone-1", Address: "A-01-01", Active: true}
	prod := &entity.Product{ID: "prod-1", SKU: "CON-0001", Name: "Consola Retro", Category: entity.CategoryConsole}

	inv := newFakeInventoryRepo()
	logs := &fakeLogRepo{}
	uc := appinventory.NewAdjustUseCase(
		&fakeTxRunner{inv: inv, logs: logs},
		inv,
		&fakeLocationRepo{byID: map[string]*entity.StorageLocation{loc.ID: loc}},
		&fakeProductRepo{byID: map[string]*entity.Product{prod.ID: prod}},
		&fakeResolver{byCode: map[string]*entity.StorageLocation{"qr-token-1": loc}},
	)
	return &fixture{uc: uc, inv: inv, logs: logs, loc: loc, prod: prod}
}

func admin() appinventory.Actor {
	return appinventory.Actor{ID: "user-1", Name: "Alice", Role: entity.RoleAdmin}
}

func picker() appinventory.Actor {
	return appinventory.Actor{ID: "user-2", Name: "Bob", Role: entity.RolePicker}
}

func (f *fixture) seed(t *testing.T, qty int64) {
	t.Helper()
	_, applied, err := f.inv.ApplyDelta(context.Background(), f.loc.ID, f.prod.ID, qty, "seed", time.Now())
	require.NoError(t, err)
	require.True(t, applied)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_CommitCreaEntradaYUnRegistro(t *testing.T) {
	f := newFixture()
	res, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: 10, Commit: true, Actor: admin(),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Entry)
	assert.Nil(t, res.Preview)
	assert.Equal(t, int64(10), res.Entry.Quantity)
	assert.Equal(t, "user-1", res.Entry.LastUpdatedBy)

	require.Equal(t, 1, f.logs.count(), "exactamente un registro de bitácora por commit")
	log := f.logs.logs[0]
	assert.Equal(t, "Alice Added Consola Retro x10 to/from A-01-01", log.Action)
	assert.Equal(t, int64(10), log.Delta)
	assert.Equal(t, int64(10), log.ResultingQuantity)
	assert.Equal(t, f.loc.ID, log.LocationID)
	assert.Equal(t, f.prod.ID, log.ProductID)
}

func TestAdjust_RetiroGeneraFraseRemoved(t *testing.T) {
	f := newFixture()
	f.seed(t, 8)

	res, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: -3, Commit: true, Actor: admin(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Entry.Quantity)
	assert.Equal(t, "Alice Removed Consola Retro x3 to/from A-01-01", f.logs.logs[0].Action)
	assert.Equal(t, int64(-3), f.logs.logs[0].Delta)
	assert.Equal(t, int64(5), f.logs.logs[0].ResultingQuantity)
}

func TestAdjust_PreviewNoPersisteNiRegistra(t *testing.T) {
	f := newFixture()
	f.seed(t, 4)

	for i := 0; i < 2; i++ {
		res, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
			LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: 6, Commit: false, Actor: admin(),
		})
		require.NoError(t, err, "intento %d", i)
		require.NotNil(t, res.Preview)
		assert.Nil(t, res.Entry)
		assert.Equal(t, int64(4), res.Preview.CurrentQuantity, "el preview repetido debe ver la misma cantidad")
		assert.Equal(t, int64(10), res.Preview.ProposedQuantity)
		assert.Equal(t, int64(6), res.Preview.Delta)
	}

	entry, err := f.inv.Get(context.Background(), f.loc.ID, f.prod.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), entry.Quantity, "el preview no debe mutar el ledger")
	assert.Equal(t, 0, f.logs.count(), "el preview no debe registrar en bitácora")
}

func TestAdjust_PreviewRechazaResultadoNegativo(t *testing.T) {
	f := newFixture()
	f.seed(t, 2)

	_, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: -5, Commit: false, Actor: admin(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment,
		"el preview debe rechazar lo mismo que rechazaría el commit")
}

func TestAdjust_ResultadoNegativoRechazadoSinMutacion(t *testing.T) {
	f := newFixture()
	f.seed(t, 2)

	_, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: -5, Commit: true, Actor: admin(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment)

	entry, _ := f.inv.Get(context.Background(), f.loc.ID, f.prod.ID)
	assert.Equal(t, int64(2), entry.Quantity)
	assert.Equal(t, 0, f.logs.count(), "un ajuste rechazado no deja rastro en bitácora")
}

func TestAdjust_PickerNoPuedeAgregar(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: 1, Commit: true, Actor: picker(),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 0, f.logs.count())
}

func TestAdjust_PickerPuedeRetirar(t *testing.T) {
	f := newFixture()
	f.seed(t, 3)

	res, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: -1, Commit: true, Actor: picker(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Entry.Quantity)
}

func TestAdjust_ValidacionDeEntrada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: 0, Commit: true, Actor: admin(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta cero")

	_, err = f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		ProductID: f.prod.ID, Delta: 1, Commit: true, Actor: admin(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ubicación vacía")
}

func TestAdjust_UbicacionOProductoInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: "loc-x", ProductID: f.prod.ID, Delta: 1, Commit: true, Actor: admin(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: "prod-x", Delta: 1, Commit: true, Actor: admin(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pick
// ──────────────────────────────────────────────────────────────────────────────

func TestPick_DescuentaYRegistra(t *testing.T) {
	f := newFixture()
	f.seed(t, 5)

	res, err := f.uc.Pick(context.Background(), appinventory.PickInput{
		ScanCode: "qr-token-1", ProductID: f.prod.ID, Quantity: 3, Actor: picker(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Entry.Quantity)

	require.Equal(t, 1, f.logs.count())
	assert.Equal(t, "Bob Removed Consola Retro x3 to/from A-01-01", f.logs.logs[0].Action)
	assert.Equal(t, int64(-3), f.logs.logs[0].Delta)
	assert.Equal(t, int64(2), f.logs.logs[0].ResultingQuantity)
}

func TestPick_SinStockDevuelveNothingToPick(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Pick(context.Background(), appinventory.PickInput{
		ScanCode: "qr-token-1", ProductID: f.prod.ID, Quantity: 1, Actor: picker(),
	})
	require.ErrorIs(t, err, domain.ErrNothingToPick)
	// ErrNothingToPick es un caso de ajuste inválido para el mapeo HTTP.
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment)
	assert.Equal(t, 0, f.logs.count())
}

func TestPick_StockInsuficienteNoMuta(t *testing.T) {
	f := newFixture()
	f.seed(t, 2)

	_, err := f.uc.Pick(context.Background(), appinventory.PickInput{
		ScanCode: "qr-token-1", ProductID: f.prod.ID, Quantity: 5, Actor: picker(),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	entry, _ := f.inv.Get(context.Background(), f.loc.ID, f.prod.ID)
	assert.Equal(t, int64(2), entry.Quantity, "un pick rechazado no debe descontar nada")
	assert.Equal(t, 0, f.logs.count())
}

func TestPick_CodigoDesconocido(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Pick(context.Background(), appinventory.PickInput{
		ScanCode: "qr-inexistente", ProductID: f.prod.ID, Quantity: 1, Actor: picker(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPick_CantidadNoPositiva(t *testing.T) {
	f := newFixture()
	for _, qty := range []int64{0, -2} {
		_, err := f.uc.Pick(context.Background(), appinventory.PickInput{
			ScanCode: "qr-token-1", ProductID: f.prod.ID, Quantity: qty, Actor: picker(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", qty)
	}
}

// Dos picks concurrentes sobre la última unidad: exactamente uno gana. La
// escritura condicional re-valida dentro de la transacción, así que el perdedor
// no puede dejar la cantidad en negativo por más que su lectura previa haya
// visto stock.
func TestPick_ConcurrenciaUltimaUnidad(t *testing.T) {
	f := newFixture()
	f.seed(t, 1)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := appinventory.Actor{ID: fmt.Sprintf("user-%d", i), Name: "Picker", Role: entity.RolePicker}
			_, errs[i] = f.uc.Pick(context.Background(), appinventory.PickInput{
				ScanCode: "qr-token-1", ProductID: f.prod.ID, Quantity: 1, Actor: actor,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.True(t,
				errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrNothingToPick),
				"error inesperado del perdedor: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactamente un pick debe ganar la última unidad")

	entry, _ := f.inv.Get(context.Background(), f.loc.ID, f.prod.ID)
	assert.Equal(t, int64(0), entry.Quantity)
	assert.Equal(t, 1, f.logs.count(), "solo el ganador registra en bitácora")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByLocation_UbicacionInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.ListByLocation(context.Background(), "loc-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProductLocations_SoloConStock(t *testing.T) {
	f := newFixture()
	f.seed(t, 3)

	list, err := f.uc.ListProductLocations(context.Background(), f.prod.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].Quantity)

	// Vaciar la ubicación: desaparece del listado pero la fila sigue existiendo.
	_, err = f.uc.Adjust(context.Background(), appinventory.AdjustInput{
		LocationID: f.loc.ID, ProductID: f.prod.ID, Delta: -3, Commit: true, Actor: admin(),
	})
	require.NoError(t, err)

	list, err = f.uc.ListProductLocations(context.Background(), f.prod.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	entry, _ := f.inv.Get(context.Background(), f.loc.ID, f.prod.ID)
	assert.Equal(t, int64(0), entry.Quantity)
}
