package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vitalmind/vitalmind/internal/domain/healthlog"
)

// In-memory log store with the same ordering contract as the postgres
// repo, used in tests that need a real store without a database.
type HealthLogsRepo struct {
	mu    sync.RWMutex
	items map[string]healthlog.HealthLog
}

func NewHealthLogsRepo() *HealthLogsRepo {
	return &HealthLogsRepo{
		items: make(map[string]healthlog.HealthLog),
	}
}

func (r *HealthLogsRepo) Create(ctx context.Context, req healthlog.CreateLogRequest) (healthlog.HealthLog, error) {
	now := time.Now().UTC()
	l := healthlog.HealthLog{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Date:        req.Date,
		SleepHours:  req.SleepHours,
		WaterIntake: req.WaterIntake,
		Meals:       req.Meals,
		Mood:        req.Mood,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.mu.Lock()
	r.items[l.ID] = l
	r.mu.Unlock()

	return l, nil
}

func (r *HealthLogsRepo) ListByUser(ctx context.Context, userID string) ([]healthlog.HealthLog, error) {
	r.mu.RLock()

	out := make([]healthlog.HealthLog, 0)

	for _, l := range r.items {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	r.mu.RUnlock()

	// same ordering the postgres repo promises: date desc, created_at desc
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
