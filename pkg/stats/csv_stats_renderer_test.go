package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderWeekly(t *testing.T) {
	renderer := NewCsvStatsRenderer()
	stats := WeeklyStats{
		WeekStart:        time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		WeekEnd:          time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
		TotalCompletions: 700,
		CompletedDays:    7,
		AveragePerDay:    100,
		BestDay:          "2025-02-04",
		BestDayCount:     120,
	}

	csv, err := renderer.RenderWeekly(stats)

	assert.NoError(t, err)
	expected := "Week start,2025-02-01\n" +
		"Week end,2025-02-07\n" +
		"Total completions,700\n" +
		"Completed days,7\n" +
		"Average per day,100\n" +
		"Best day,2025-02-04\n" +
		"Best day count,120\n"
	assert.Equal(t, expected, csv)
}

func TestRenderWeekly_EmptyWeek(t *testing.T) {
	renderer := NewCsvStatsRenderer()
	stats := WeeklyStats{
		WeekStart: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		WeekEnd:   time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
	}

	csv, err := renderer.RenderWeekly(stats)

	assert.NoError(t, err)
	assert.Contains(t, csv, "Total completions,0\n")
	assert.Contains(t, csv, "Best day,\n")
}
