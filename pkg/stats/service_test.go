package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wirdtrack/wirdtrack/internal/utils"
)

type stubProgressReader struct {
	data map[string]int
	// captured range of the last call
	from, to string
}

func (s *stubProgressReader) GetRange(ctx context.Context, targetUserId int, from string, to string) (map[string]int, error) {
	s.from, s.to = from, to
	result := map[string]int{}
	for date, count := range s.data {
		if date >= from && date <= to {
			result[date] = count
		}
	}
	return result, nil
}

func TestWeekly_AnchorsToConfiguredWeekStart(t *testing.T) {
	reader := &stubProgressReader{data: map[string]int{
		"2025-02-01": 100, // Saturday
		"2025-02-04": 120,
		"2025-02-07": 80, // Friday
		"2025-02-08": 999, // next week, out of window
	}}
	service := NewService(reader, time.Saturday)

	// Wednesday anchors to the Saturday-started week 02-01..02-07
	stats, err := service.Weekly(context.Background(), 1, "2025-02-05")

	assert.NoError(t, err)
	assert.Equal(t, "2025-02-01", reader.from)
	assert.Equal(t, "2025-02-07", reader.to)
	assert.Equal(t, 300, stats.TotalCompletions)
	assert.Equal(t, 3, stats.CompletedDays)
	assert.Equal(t, "2025-02-04", stats.BestDay)
}

func TestWeekly_EmptyDateUsesClock(t *testing.T) {
	reader := &stubProgressReader{data: map[string]int{"2025-02-05": 50}}
	service := NewService(reader, time.Saturday)
	service.clock = &utils.MockClock{FixedNow: time.Date(2025, 2, 5, 14, 30, 0, 0, time.UTC)}

	stats, err := service.Weekly(context.Background(), 1, "")

	assert.NoError(t, err)
	assert.Equal(t, 50, stats.TotalCompletions)
	assert.Equal(t, "2025-02-01", stats.WeekStart.Format(dateLayout))
}

func TestWeekly_RejectsMalformedDate(t *testing.T) {
	service := NewService(&stubProgressReader{}, time.Saturday)

	_, err := service.Weekly(context.Background(), 1, "05/02/2025")

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMonthly_CoversWholeMonth(t *testing.T) {
	reader := &stubProgressReader{data: map[string]int{
		"2025-02-01": 100,
		"2025-02-15": 100,
		"2025-02-28": 100,
		"2025-03-01": 999,
	}}
	service := NewService(reader, time.Saturday)

	stats, err := service.Monthly(context.Background(), 1, "2025-02-10")

	assert.NoError(t, err)
	assert.Equal(t, "2025-02-01", reader.from)
	assert.Equal(t, "2025-02-28", reader.to)
	assert.Equal(t, "2025-02", stats.Month)
	assert.Equal(t, 300, stats.TotalCompletions)
	assert.Equal(t, 3, stats.CompletedDays)
	assert.Equal(t, 11, stats.ImprovementRate) // 3/28 days
}

func TestTrend_ReportOverRange(t *testing.T) {
	reader := &stubProgressReader{data: map[string]int{
		"2025-02-01": 10,
		"2025-02-02": 20,
		"2025-02-03": 30,
		"2025-02-04": 40,
		"2025-02-05": 50,
	}}
	service := NewService(reader, time.Saturday)

	report, err := service.Trend(context.Background(), 1, "2025-02-01", "2025-02-05", 0)

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-02-01", "2025-02-02", "2025-02-03", "2025-02-04", "2025-02-05"}, report.Dates)
	assert.Equal(t, []float64{10, 20, 30, 40, 50}, report.Counts)
	assert.Equal(t, 30.0, report.Median)
	assert.InDelta(t, 60.0, report.PredictedNext, 0.1)
	assert.Equal(t, 10.0, report.Range.Min)
	assert.Equal(t, 50.0, report.Range.Max)
	assert.Equal(t, 40.0, report.Range.Range)
	assert.Equal(t, ClassHigh, report.LatestClass)
}

func TestTrend_MissingDaysCountAsZero(t *testing.T) {
	reader := &stubProgressReader{data: map[string]int{"2025-02-02": 30}}
	service := NewService(reader, time.Saturday)

	report, err := service.Trend(context.Background(), 1, "2025-02-01", "2025-02-03", 0)

	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 30, 0}, report.Counts)
}

func TestTrend_RejectsInvertedRange(t *testing.T) {
	service := NewService(&stubProgressReader{}, time.Saturday)

	_, err := service.Trend(context.Background(), 1, "2025-02-10", "2025-02-01", 0)

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTrend_RejectsMalformedDates(t *testing.T) {
	service := NewService(&stubProgressReader{}, time.Saturday)

	_, err := service.Trend(context.Background(), 1, "not-a-date", "2025-02-01", 0)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = service.Trend(context.Background(), 1, "2025-02-01", "not-a-date", 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
