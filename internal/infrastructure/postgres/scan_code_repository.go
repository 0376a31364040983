package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.ScanCodeRepository = (*ScanCodeRepo)(nil)

// ScanCodeRepo implementación de etiquetas QR sobre PostgreSQL.
type ScanCodeRepo struct {
	q Querier
}

// NewScanCodeRepository construye el adaptador de etiquetas.
func NewScanCodeRepository(q Querier) *ScanCodeRepo {
	return &ScanCodeRepo{q: q}
}

const scanCodeColumns = `id, location_id, internal_id, label_address, active, created_at`

// Create persiste una etiqueta nueva.
func (r *ScanCodeRepo) Create(ctx context.Context, code *entity.ScanCode) error {
	query := `
		INSERT INTO scan_codes (id, location_id, internal_id, label_address, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		code.ID, code.LocationID, code.InternalID, code.LabelAddress, code.Active, code.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert scan code: %w", err)
	}
	return nil
}

// GetByID obtiene una etiqueta por ID.
func (r *ScanCodeRepo) GetByID(ctx context.Context, id string) (*entity.ScanCode, error) {
	return r.getOne(ctx, `SELECT `+scanCodeColumns+` FROM scan_codes WHERE id = $1`, id)
}

// GetByInternalID busca por el token presentado por el escáner (sin filtrar Active).
func (r *ScanCodeRepo) GetByInternalID(ctx context.Context, internalID string) (*entity.ScanCode, error) {
	return r.getOne(ctx, `SELECT `+scanCodeColumns+` FROM scan_codes WHERE internal_id = $1`, internalID)
}

func (r *ScanCodeRepo) getOne(ctx context.Context, query string, arg any) (*entity.ScanCode, error) {
	var c entity.ScanCode
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.LocationID, &c.InternalID, &c.LabelAddress, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scan code: %w", err)
	}
	return &c, nil
}

// ListByLocation lista todas las etiquetas de una ubicación.
func (r *ScanCodeRepo) ListByLocation(ctx context.Context, locationID string) ([]*entity.ScanCode, error) {
	return r.List(ctx, repository.ScanCodeFilter{LocationID: locationID})
}

// List lista etiquetas con filtros opcionales (ubicación, estado), más
// recientes primero.
func (r *ScanCodeRepo) List(ctx context.Context, filter repository.ScanCodeFilter) ([]*entity.ScanCode, error) {
	builder := sq.Select("id", "location_id", "internal_id", "label_address", "active", "created_at").
		From("scan_codes").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)
	if filter.LocationID != "" {
		builder = builder.Where(sq.Eq{"location_id": filter.LocationID})
	}
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"active": *filter.Active})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scan code query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scan codes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScanCode
	for rows.Next() {
		var c entity.ScanCode
		if err := rows.Scan(&c.ID, &c.LocationID, &c.InternalID, &c.LabelAddress, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan scan code: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SetActive actualiza el flag Active y devuelve la etiqueta resultante.
func (r *ScanCodeRepo) SetActive(ctx context.Context, id string, active bool) (*entity.ScanCode, error) {
	query := `
		UPDATE scan_codes SET active = $2 WHERE id = $1
		RETURNING ` + scanCodeColumns
	var c entity.ScanCode
	err := r.q.QueryRow(ctx, query, id, active).Scan(
		&c.ID, &c.LocationID, &c.InternalID, &c.LabelAddress, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update scan code: %w", err)
	}
	return &c, nil
}

// Delete elimina una etiqueta por ID.
func (r *ScanCodeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM scan_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scan code: %w", err)
	}
	return nil
}
