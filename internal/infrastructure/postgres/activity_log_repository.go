package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación de la bitácora sobre PostgreSQL (usable con
// pool o tx). Solo inserta y lista: los registros nunca se actualizan ni borran.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste un registro de bitácora.
func (r *ActivityLogRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO activity_logs (id, actor_id, action, location_id, product_id, delta, resulting_quantity, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.ActorID, log.Action, log.LocationID, log.ProductID,
		log.Delta, log.ResultingQuantity, log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}
	return nil
}

// List consulta la bitácora con filtros opcionales, ordenada por timestamp
// descendente. El SELECT se arma con squirrel según los filtros presentes;
// producto y ubicación filtran sobre las columnas desnormalizadas.
func (r *ActivityLogRepo) List(ctx context.Context, filter repository.ActivityLogFilter) ([]*entity.ActivityLog, error) {
	builder := sq.Select(
		"a.id", "a.actor_id", "a.action", "a.location_id", "a.product_id",
		"a.delta", "a.resulting_quantity", "a.timestamp",
		"COALESCE(u.name, '')", "COALESCE(u.role, '')",
	).
		From("activity_logs a").
		LeftJoin("users u ON u.id = a.actor_id").
		OrderBy("a.timestamp DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.ActorID != "" {
		builder = builder.Where(sq.Eq{"a.actor_id": filter.ActorID})
	}
	if filter.ProductID != "" {
		builder = builder.Where(sq.Eq{"a.product_id": filter.ProductID})
	}
	if filter.LocationID != "" {
		builder = builder.Where(sq.Eq{"a.location_id": filter.LocationID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity log query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(
			&l.ID, &l.ActorID, &l.Action, &l.LocationID, &l.ProductID,
			&l.Delta, &l.ResultingQuantity, &l.Timestamp,
			&l.ActorName, &l.ActorRole,
		); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
