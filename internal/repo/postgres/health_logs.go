package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitalmind/vitalmind/internal/domain/healthlog"
	"github.com/vitalmind/vitalmind/internal/observability"
)

type HealthLogsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewHealthLogsRepo(pool *pgxpool.Pool, prom *observability.Prom) *HealthLogsRepo {
	return &HealthLogsRepo{
		pool: pool,
		prom: prom,
	}
}

func (repo *HealthLogsRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
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

	err := r.observe("health_logs.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO health_logs(id, user_id, date, sleep_hours, water_intake, meals, mood, notes, created_at, updated_at)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			l.ID, l.UserID, l.Date, l.SleepHours, l.WaterIntake, l.Meals, l.Mood, l.Notes, l.CreatedAt, l.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return healthlog.HealthLog{}, err
	}

	return l, nil
}

// ListByUser returns the caller's whole history, date desc. created_at
// breaks ties so same-date duplicates keep a stable order.
func (r *HealthLogsRepo) ListByUser(ctx context.Context, userID string) ([]healthlog.HealthLog, error) {
	var output []healthlog.HealthLog

	err := r.observe("health_logs.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, user_id, date, sleep_hours, water_intake, meals, mood, notes, created_at, updated_at
			FROM health_logs
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC`,
			userID,
		)

		if err != nil {
			return err
		}

		defer rows.Close()

		output = make([]healthlog.HealthLog, 0)

		for rows.Next() {
			var l healthlog.HealthLog

			err = rows.Scan(&l.ID, &l.UserID, &l.Date, &l.SleepHours, &l.WaterIntake, &l.Meals, &l.Mood, &l.Notes, &l.CreatedAt, &l.UpdatedAt)

			if err != nil {
				return err
			}

			output = append(output, l)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}
