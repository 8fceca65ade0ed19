package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitalmind/vitalmind/internal/domain/suggestion"
	"github.com/vitalmind/vitalmind/internal/observability"
)

type SuggestionsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewSuggestionsRepo(pool *pgxpool.Pool, prom *observability.Prom) *SuggestionsRepo {
	return &SuggestionsRepo{
		pool: pool,
		prom: prom,
	}
}

func (repo *SuggestionsRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *SuggestionsRepo) Create(ctx context.Context, req suggestion.SaveSuggestionRequest) (suggestion.Suggestion, error) {
	now := time.Now().UTC()

	s := suggestion.Suggestion{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Week:      req.Week,
		Text:      req.Text,
		Fallback:  req.Fallback,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.observe("suggestions.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO suggestions(id, user_id, week, suggestion_text, fallback, created_at, updated_at)
			VALUES($1,$2,$3,$4,$5,$6,$7)`,
			s.ID, s.UserID, s.Week, s.Text, s.Fallback, s.CreatedAt, s.UpdatedAt,
		)
		return err
	})

	if err != nil {
		return suggestion.Suggestion{}, err
	}

	return s, nil
}

func (r *SuggestionsRepo) ListByUser(ctx context.Context, userID string) ([]suggestion.Suggestion, error) {
	var output []suggestion.Suggestion

	err := r.observe("suggestions.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, user_id, week, suggestion_text, fallback, created_at, updated_at
			FROM suggestions
			WHERE user_id = $1
			ORDER BY created_at DESC`,
			userID,
		)

		if err != nil {
			return err
		}

		defer rows.Close()

		output = make([]suggestion.Suggestion, 0)

		for rows.Next() {
			var s suggestion.Suggestion

			err = rows.Scan(&s.ID, &s.UserID, &s.Week, &s.Text, &s.Fallback, &s.CreatedAt, &s.UpdatedAt)

			if err != nil {
				return err
			}

			output = append(output, s)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}
