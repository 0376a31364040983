package audit_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/audit"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// fakeLogRepo aplica filtros, orden descendente y límite como el repo real.
type fakeLogRepo struct {
	logs []*entity.ActivityLog
}

func (r *fakeLogRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeLogRepo) List(_ context.Context, filter repository.ActivityLogFilter) ([]*entity.ActivityLog, error) {
	var out []*entity.ActivityLog
	for _, l := range r.logs {
		if filter.ActorID != "" && l.ActorID != filter.ActorID {
			continue
		}
		if filter.ProductID != "" && l.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID != "" && l.LocationID != filter.LocationID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func seededUseCase(n int) *audit.UseCase {
	repo := &fakeLogRepo{}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		actor := "user-a"
		if i%2 == 1 {
			actor = "user-b"
		}
		repo.logs = append(repo.logs, &entity.ActivityLog{
			ActorID:    actor,
			ProductID:  "prod-1",
			LocationID: "loc-1",
			Delta:      1,
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	return audit.NewUseCase(repo)
}

func TestQuery_OrdenDescendentePorTimestamp(t *testing.T) {
	uc := seededUseCase(5)
	logs, err := uc.Query(context.Background(), repository.ActivityLogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 5)
	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].Timestamp.After(logs[i-1].Timestamp),
			"los registros deben venir del más reciente al más antiguo")
	}
}

func TestQuery_FiltraPorActor(t *testing.T) {
	uc := seededUseCase(6)
	logs, err := uc.Query(context.Background(), repository.ActivityLogFilter{ActorID: "user-b"})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	for _, l := range logs {
		assert.Equal(t, "user-b", l.ActorID)
	}
}

func TestQuery_AplicaLimiteDefault(t *testing.T) {
	uc := seededUseCase(audit.DefaultLimit + 20)
	logs, err := uc.Query(context.Background(), repository.ActivityLogFilter{})
	require.NoError(t, err)
	assert.Len(t, logs, audit.DefaultLimit)
}

func TestQuery_RespetaLimiteExplicito(t *testing.T) {
	uc := seededUseCase(10)
	logs, err := uc.Query(context.Background(), repository.ActivityLogFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}
