package insights_test

import (
	"testing"
	"time"

	"github.com/vitalmind/vitalmind/internal/domain/healthlog"
	"github.com/vitalmind/vitalmind/internal/insights"
)

func day(now time.Time, daysAgo int) string {
	return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []int // days ago for each log entry
		want int
	}{
		{
			name: "empty",
			days: nil,
			want: 0,
		},
		{
			name: "today_only",
			days: []int{0},
			want: 1,
		},
		{
			name: "anchored_yesterday",
			days: []int{1, 2, 3},
			want: 3,
		},
		{
			name: "gap_breaks_run",
			days: []int{0, 1, 5},
			want: 2,
		},
		{
			name: "stale_history_no_streak",
			days: []int{3, 4, 5},
			want: 0,
		},
		{
			name: "duplicate_dates_count_once",
			days: []int{0, 0, 1, 1, 2},
			want: 3,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			logs := make([]healthlog.HealthLog, 0, len(tt.days))
			for _, d := range tt.days {
				logs = append(logs, healthlog.HealthLog{Date: day(now, d)})
			}

			got := insights.Streak(logs, now)

			if got != tt.want {
				t.Fatalf("got streak %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGoodDayCount(t *testing.T) {
	logs := []healthlog.HealthLog{
		{Date: "2026-08-25", SleepHours: 7, WaterIntake: 2},
		{Date: "2026-08-26", SleepHours: 6, WaterIntake: 3},
		{Date: "2026-08-27", SleepHours: 8, WaterIntake: 1},
	}

	// both thresholds must hold on the same entry
	if got := insights.GoodDayCount(logs); got != 1 {
		t.Fatalf("got %d good days, want 1", got)
	}
}

func TestBuildSummary_AveragesOverRecentSeven(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Ten entries; only the newest seven should shape the averages.
	// The three oldest carry extreme values to expose leakage.
	logs := make([]healthlog.HealthLog, 0, 10)

	for i := 0; i < 7; i++ {
		logs = append(logs, healthlog.HealthLog{
			Date:        day(now, i),
			SleepHours:  8,
			WaterIntake: 2,
		})
	}
	for i := 7; i < 10; i++ {
		logs = append(logs, healthlog.HealthLog{
			Date:        day(now, i),
			SleepHours:  0,
			WaterIntake: 20,
		})
	}

	s := insights.BuildSummary(logs, now)

	if s.AvgSleep != 8 {
		t.Fatalf("got avgSleep %v, want 8", s.AvgSleep)
	}
	if s.AvgWater != 2 {
		t.Fatalf("got avgWater %v, want 2", s.AvgWater)
	}
	if s.Streak != 7 {
		t.Fatalf("got streak %d, want 7", s.Streak)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	s := insights.BuildSummary(nil, now)

	if s.AvgSleep != 0 || s.AvgWater != 0 || s.GoodDays != 0 || s.Streak != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestBuildSummary_Rounding(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	logs := []healthlog.HealthLog{
		{Date: day(now, 0), SleepHours: 7, WaterIntake: 2},
		{Date: day(now, 1), SleepHours: 6, WaterIntake: 1},
		{Date: day(now, 2), SleepHours: 8, WaterIntake: 2},
	}

	s := insights.BuildSummary(logs, now)

	if s.AvgSleep != 7 {
		t.Fatalf("got avgSleep %v, want 7", s.AvgSleep)
	}
	// 5/3 rounds to one decimal
	if s.AvgWater != 1.7 {
		t.Fatalf("got avgWater %v, want 1.7", s.AvgWater)
	}
}

func TestSeries(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	logs := []healthlog.HealthLog{
		{Date: day(now, 0), SleepHours: 8, WaterIntake: 2, Mood: "Happy"},
		{Date: day(now, 2), SleepHours: 6, WaterIntake: 1, Mood: "Tired"},
		{Date: day(now, 1), SleepHours: 7, WaterIntake: 3, Mood: "Neutral"},
	}

	points := insights.Series(logs, 7)

	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}

	// oldest first for charting
	if points[0].Date != day(now, 2) || points[2].Date != day(now, 0) {
		t.Fatalf("points not oldest-first: %+v", points)
	}

	if points[0].MoodScore != 4 || points[1].MoodScore != 6 || points[2].MoodScore != 9 {
		t.Fatalf("unexpected mood scores: %+v", points)
	}
}

func TestMoodScore(t *testing.T) {
	tests := []struct {
		mood string
		want int
	}{
		{"Happy", 9},
		{"Excited", 9},
		{"Happy and Excited", 9},
		{"Neutral", 6},
		{"Anxious", 4},
		{"Tired", 4},
		{"Angry", 2},
		{"", 5},
		{"Confused", 5},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.mood, func(t *testing.T) {
			if got := insights.MoodScore(tt.mood); got != tt.want {
				t.Fatalf("MoodScore(%q) = %d, want %d", tt.mood, got, tt.want)
			}
		})
	}
}
