package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/vitalmind/vitalmind/internal/domain/healthlog"
	"github.com/vitalmind/vitalmind/internal/insights"
	"github.com/vitalmind/vitalmind/internal/repo/memory"
)

func TestHealthLogsRepo_ListOrdering(t *testing.T) {
	repo := memory.NewHealthLogsRepo()
	ctx := context.Background()

	dates := []string{"2026-08-26", "2026-08-28", "2026-08-27"}

	for _, d := range dates {
		_, err := repo.Create(ctx, healthlog.CreateLogRequest{
			Date:   d,
			UserID: "user-1",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	logs, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}

	want := []string{"2026-08-28", "2026-08-27", "2026-08-26"}
	for i, l := range logs {
		if l.Date != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, l.Date, want[i])
		}
	}
}

func TestHealthLogsRepo_ScopedByUser(t *testing.T) {
	repo := memory.NewHealthLogsRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, healthlog.CreateLogRequest{Date: "2026-08-28", UserID: "user-1"})
	_, _ = repo.Create(ctx, healthlog.CreateLogRequest{Date: "2026-08-28", UserID: "user-2"})

	logs, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].UserID != "user-1" {
		t.Fatalf("got log for user %s", logs[0].UserID)
	}
}

// End to end through the store: submitted days produce the summary the
// dashboard shows.
func TestHealthLogsRepo_FeedsInsights(t *testing.T) {
	repo := memory.NewHealthLogsRepo()
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, healthlog.CreateLogRequest{
			Date:        now.AddDate(0, 0, -i).Format("2006-01-02"),
			SleepHours:  8,
			WaterIntake: 2,
			UserID:      "user-1",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	logs, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	s := insights.BuildSummary(logs, now)

	if s.Streak != 3 {
		t.Fatalf("got streak %d, want 3", s.Streak)
	}
	if s.GoodDays != 3 {
		t.Fatalf("got goodDays %d, want 3", s.GoodDays)
	}
	if s.AvgSleep != 8 || s.AvgWater != 2 {
		t.Fatalf("unexpected averages: %+v", s)
	}
}
