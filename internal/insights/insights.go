package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/vitalmind/vitalmind/internal/domain/healthlog"
)

const dateLayout = "2006-01-02"

// Thresholds for a "good day": both must hold on the same entry.
const (
	GoodDaySleepHours  = 7.0
	GoodDayWaterLiters = 2.0
)

type Summary struct {
	AvgSleep float64 `json:"avgSleep"`
	AvgWater float64 `json:"avgWater"`
	GoodDays int     `json:"goodDays"`
	Streak   int     `json:"streak"`
}

// One chart point. Derived on every fetch, never persisted.
type Point struct {
	Date        string  `json:"date"`
	SleepHours  float64 `json:"sleepHours"`
	WaterIntake float64 `json:"waterIntake"`
	MoodScore   int     `json:"moodScore"`
}

// BuildSummary computes the dashboard numbers from the caller's logs.
// now anchors the streak so tests can pin the clock.
func BuildSummary(logs []healthlog.HealthLog, now time.Time) Summary {
	recent := recentByDate(logs, 7)

	var sleepSum, waterSum float64

	for _, l := range recent {
		sleepSum += l.SleepHours
		waterSum += l.WaterIntake
	}

	s := Summary{
		GoodDays: GoodDayCount(logs),
		Streak:   Streak(logs, now),
	}

	if len(recent) > 0 {
		s.AvgSleep = round1(sleepSum / float64(len(recent)))
		s.AvgWater = round1(waterSum / float64(len(recent)))
	}

	return s
}

// GoodDayCount counts entries meeting both thresholds simultaneously.
func GoodDayCount(logs []healthlog.HealthLog) int {
	count := 0

	for _, l := range logs {
		if l.SleepHours >= GoodDaySleepHours && l.WaterIntake >= GoodDayWaterLiters {
			count++
		}
	}

	return count
}

// Streak counts consecutive logged calendar days anchored at today or
// yesterday. Same-date duplicates are skipped; any gap breaks the run.
func Streak(logs []healthlog.HealthLog, now time.Time) int {
	dates := sortedDatesDesc(logs)

	if len(dates) == 0 {
		return 0
	}

	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	if dates[0] != today && dates[0] != yesterday {
		return 0
	}

	streak := 1
	prev, err := time.Parse(dateLayout, dates[0])

	if err != nil {
		return 0
	}

	for _, d := range dates[1:] {
		curr, err := time.Parse(dateLayout, d)

		if err != nil {
			break
		}

		if prev.Sub(curr) != 24*time.Hour {
			break
		}

		streak++
		prev = curr
	}

	return streak
}

// Series returns the last n entries as chart points, oldest first.
func Series(logs []healthlog.HealthLog, n int) []Point {
	recent := recentByDate(logs, n)

	// recentByDate is newest-first; charts read left to right
	points := make([]Point, 0, len(recent))

	for i := len(recent) - 1; i >= 0; i-- {
		l := recent[i]
		points = append(points, Point{
			Date:        l.Date,
			SleepHours:  l.SleepHours,
			WaterIntake: l.WaterIntake,
			MoodScore:   MoodScore(l.Mood),
		})
	}

	return points
}

// MoodScore maps a mood value onto the 1-10 chart scale. The input form
// offers a fixed list but historic rows hold free text, so this stays a
// keyword match; it is the single scale every endpoint uses.
func MoodScore(mood string) int {
	if mood == "" {
		return 5
	}

	switch {
	case strings.Contains(mood, "Happy") || strings.Contains(mood, "Excited"):
		return 9
	case strings.Contains(mood, "Neutral"):
		return 6
	case strings.Contains(mood, "Anxious") || strings.Contains(mood, "Tired"):
		return 4
	case strings.Contains(mood, "Angry"):
		return 2
	default:
		return 5
	}
}

// recentByDate returns up to n logs, newest date first, duplicates kept.
func recentByDate(logs []healthlog.HealthLog, n int) []healthlog.HealthLog {
	sorted := make([]healthlog.HealthLog, len(logs))
	copy(sorted, logs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

// sortedDatesDesc returns distinct log dates, newest first.
func sortedDatesDesc(logs []healthlog.HealthLog) []string {
	seen := make(map[string]struct{}, len(logs))
	dates := make([]string, 0, len(logs))

	for _, l := range logs {
		if _, ok := seen[l.Date]; ok {
			continue
		}
		seen[l.Date] = struct{}{}
		dates = append(dates, l.Date)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	return dates
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
