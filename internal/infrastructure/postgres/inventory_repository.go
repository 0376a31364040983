package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la entrada actual de un producto en una ubicación. Si no hay fila
// devuelve una entrada fresca en cero, sin persistirla.
func (r *InventoryRepo) Get(ctx context.Context, locationID, productID string) (*entity.InventoryEntry, error) {
	query := `
		SELECT location_id, product_id, quantity, COALESCE(last_updated_by::text, ''), updated_at
		FROM inventory_entries WHERE location_id = $1 AND product_id = $2`
	var e entity.InventoryEntry
	err := r.q.QueryRow(ctx, query, locationID, productID).Scan(
		&e.LocationID, &e.ProductID, &e.Quantity, &e.LastUpdatedBy, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryEntry{LocationID: locationID, ProductID: productID, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get inventory entry: %w", err)
	}
	return &e, nil
}

// ApplyDelta aplica el delta en una sola sentencia condicional: la base re-valida
// la no-negatividad, así que dos commits concurrentes sobre la misma clave no
// pueden dejar la cantidad negativa aunque ambos hayan leído el mismo valor.
// Con delta negativo no hay inserción: una fila ausente cuenta como condición
// fallida (applied=false), igual que una cantidad insuficiente.
func (r *InventoryRepo) ApplyDelta(ctx context.Context, locationID, productID string, delta int64, actorID string, now time.Time) (*entity.InventoryEntry, bool, error) {
	var query string
	if delta >= 0 {
		query = `
			INSERT INTO inventory_entries (location_id, product_id, quantity, last_updated_by, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (location_id, product_id)
			DO UPDATE SET quantity = inventory_entries.quantity + $3, last_updated_by = $4, updated_at = $5
			RETURNING quantity`
	} else {
		query = `
			UPDATE inventory_entries
			SET quantity = quantity + $3, last_updated_by = $4, updated_at = $5
			WHERE location_id = $1 AND product_id = $2 AND quantity + $3 >= 0
			RETURNING quantity`
	}
	var quantity int64
	err := r.q.QueryRow(ctx, query, locationID, productID, delta, actorID, now).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("apply delta: %w", err)
	}
	return &entity.InventoryEntry{
		LocationID:    locationID,
		ProductID:     productID,
		Quantity:      quantity,
		LastUpdatedBy: actorID,
		UpdatedAt:     now,
	}, true, nil
}

// ListByLocation lista las entradas de una ubicación con resumen de producto y
// último actor, ordenadas por updated_at descendente.
func (r *InventoryRepo) ListByLocation(ctx context.Context, locationID string) ([]*entity.LocationInventory, error) {
	query := `
		SELECT e.location_id, e.product_id, e.quantity, COALESCE(e.last_updated_by::text, ''), e.updated_at,
		       p.name, p.sku, p.category,
		       COALESCE(u.name, ''), COALESCE(u.role, '')
		FROM inventory_entries e
		JOIN products p ON p.id = e.product_id
		LEFT JOIN users u ON u.id = e.last_updated_by
		WHERE e.location_id = $1
		ORDER BY e.updated_at DESC`
	rows, err := r.q.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list by location: %w", err)
	}
	defer rows.Close()
	var list []*entity.LocationInventory
	for rows.Next() {
		var li entity.LocationInventory
		if err := rows.Scan(
			&li.LocationID, &li.ProductID, &li.Quantity, &li.LastUpdatedBy, &li.UpdatedAt,
			&li.ProductName, &li.ProductSKU, &li.ProductCategory,
			&li.UpdatedByName, &li.UpdatedByRole,
		); err != nil {
			return nil, fmt.Errorf("scan location inventory: %w", err)
		}
		list = append(list, &li)
	}
	return list, rows.Err()
}

// ListByProductInStock lista las ubicaciones con cantidad > 0 para un producto,
// ordenadas por updated_at descendente.
func (r *InventoryRepo) ListByProductInStock(ctx context.Context, productID string) ([]*entity.ProductLocation, error) {
	query := `
		SELECT e.location_id, e.product_id, e.quantity, COALESCE(e.last_updated_by::text, ''), e.updated_at,
		       l.address, l.active, l.zone_id,
		       COALESCE(u.name, '')
		FROM inventory_entries e
		JOIN storage_locations l ON l.id = e.location_id
		LEFT JOIN users u ON u.id = e.last_updated_by
		WHERE e.product_id = $1 AND e.quantity > 0
		ORDER BY e.updated_at DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductLocation
	for rows.Next() {
		var pl entity.ProductLocation
		if err := rows.Scan(
			&pl.LocationID, &pl.ProductID, &pl.Quantity, &pl.LastUpdatedBy, &pl.UpdatedAt,
			&pl.LocationAddress, &pl.LocationActive, &pl.ZoneID,
			&pl.UpdatedByName,
		); err != nil {
			return nil, fmt.Errorf("scan product location: %w", err)
		}
		list = append(list, &pl)
	}
	return list, rows.Err()
}
