package stats

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// DailyProgress maps ISO dates (YYYY-MM-DD) to repetition counts. The map is
// sparse: a missing date means nothing was recorded, and only recorded days
// with a count above zero contribute to completed-day totals.
type DailyProgress map[string]int

// WeeklyStats is derived on demand from DailyProgress over a 7-day window.
type WeeklyStats struct {
	WeekStart        time.Time
	WeekEnd          time.Time
	TotalCompletions int
	CompletedDays    int
	AveragePerDay    int
	BestDay          string
	BestDayCount     int
}

// MonthlyStats is derived over a calendar month. ImprovementRate is the
// percentage of days in the month with any recorded activity; the name is
// historical and downstream displays depend on this exact computation.
type MonthlyStats struct {
	Month            string
	TotalCompletions int
	CompletedDays    int
	AveragePerDay    int
	ImprovementRate  int
}

// Weekly aggregates the 7 consecutive dates of the week containing anchor,
// with the week starting on weekStartDay. A week with no activity reports an
// average of 0. Best-day ties keep the earliest date.
func Weekly(progress DailyProgress, anchor time.Time, weekStartDay time.Weekday) WeeklyStats {
	delta := (int(anchor.Weekday()) - int(weekStartDay) + 7) % 7
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location()).
		AddDate(0, 0, -delta)

	result := WeeklyStats{
		WeekStart: start,
		WeekEnd:   start.AddDate(0, 0, 6),
	}
	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day)
		count := progress[date.Format(dateLayout)]
		if count <= 0 {
			continue
		}
		result.TotalCompletions += count
		result.CompletedDays++
		if count > result.BestDayCount {
			result.BestDay = date.Format(dateLayout)
			result.BestDayCount = count
		}
	}
	result.AveragePerDay = averagePerDay(result.TotalCompletions, result.CompletedDays)
	return result
}

// Monthly aggregates every date of the calendar month containing anchor.
func Monthly(progress DailyProgress, anchor time.Time) MonthlyStats {
	year, month := anchor.Year(), anchor.Month()
	// day 0 of the next month is the last day of this month
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	result := MonthlyStats{
		Month: anchor.Format("2006-01"),
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		count := progress[date.Format(dateLayout)]
		if count <= 0 {
			continue
		}
		result.TotalCompletions += count
		result.CompletedDays++
	}
	result.AveragePerDay = averagePerDay(result.TotalCompletions, result.CompletedDays)
	result.ImprovementRate = int(math.Round(float64(result.CompletedDays) / float64(daysInMonth) * 100))
	return result
}

func averagePerDay(total, completedDays int) int {
	if completedDays == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(completedDays)))
}
