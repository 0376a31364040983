package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.StorageLocationRepository = (*StorageLocationRepo)(nil)

// StorageLocationRepo implementación de ubicaciones sobre PostgreSQL.
type StorageLocationRepo struct {
	q Querier
}

// NewStorageLocationRepository construye el adaptador de ubicaciones.
func NewStorageLocationRepository(q Querier) *StorageLocationRepo {
	return &StorageLocationRepo{q: q}
}

// Create persiste una ubicación nueva. La dirección es única.
func (r *StorageLocationRepo) Create(ctx context.Context, loc *entity.StorageLocation) error {
	query := `
		INSERT INTO storage_locations (id, zone_id, address, active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, loc.ID, loc.ZoneID, loc.Address, loc.Active, loc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert storage location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *StorageLocationRepo) GetByID(ctx context.Context, id string) (*entity.StorageLocation, error) {
	return r.getOne(ctx, `
		SELECT id, zone_id, address, active, created_at
		FROM storage_locations WHERE id = $1`, id)
}

// GetByAddress busca una ubicación por dirección exacta.
func (r *StorageLocationRepo) GetByAddress(ctx context.Context, address string) (*entity.StorageLocation, error) {
	return r.getOne(ctx, `
		SELECT id, zone_id, address, active, created_at
		FROM storage_locations WHERE address = $1`, address)
}

func (r *StorageLocationRepo) getOne(ctx context.Context, query string, arg any) (*entity.StorageLocation, error) {
	var l entity.StorageLocation
	err := r.q.QueryRow(ctx, query, arg).Scan(&l.ID, &l.ZoneID, &l.Address, &l.Active, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	return &l, nil
}

// ListByZone lista ubicaciones de una zona con paginación.
func (r *StorageLocationRepo) ListByZone(ctx context.Context, zoneID string, limit, offset int) ([]*entity.StorageLocation, error) {
	query := `
		SELECT id, zone_id, address, active, created_at
		FROM storage_locations WHERE zone_id = $1 ORDER BY address LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, zoneID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StorageLocation
	for rows.Next() {
		var l entity.StorageLocation
		if err := rows.Scan(&l.ID, &l.ZoneID, &l.Address, &l.Active, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza una ubicación existente (dirección y estado).
func (r *StorageLocationRepo) Update(ctx context.Context, loc *entity.StorageLocation) error {
	query := `
		UPDATE storage_locations SET address = $2, active = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, loc.ID, loc.Address, loc.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update storage location: %w", err)
	}
	return nil
}
