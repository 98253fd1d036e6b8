package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wirdtrack/wirdtrack/internal/utils"
	"github.com/wirdtrack/wirdtrack/pkg/calendar"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("'from' must not be after 'to'")
)

// ProgressReader is the slice of the progress service the rollups need.
type ProgressReader interface {
	GetRange(ctx context.Context, targetUserId int, from string, to string) (map[string]int, error)
}

// TrendReport is the descriptive-statistics view of a date range of daily
// counts, with a one-step forecast and a classification of the latest day.
type TrendReport struct {
	From              string
	To                string
	Dates             []string
	Counts            []float64
	MovingAverage     []float64
	Median            float64
	StandardDeviation float64
	Quartile1         float64
	Quartile3         float64
	Range             SeriesRange
	PredictedNext     float64
	LatestClass       ZScoreClassification
}

type Service interface {
	// Weekly aggregates the week containing date. An empty date means today.
	Weekly(ctx context.Context, targetUserId int, date string) (WeeklyStats, error)
	// Monthly aggregates the calendar month containing date.
	Monthly(ctx context.Context, targetUserId int, date string) (MonthlyStats, error)
	// Trend computes the descriptive report over [from, to] with the given
	// moving-average window (0 means the default of 7).
	Trend(ctx context.Context, targetUserId int, from string, to string, window int) (TrendReport, error)
}

type ServiceImpl struct {
	progress     ProgressReader
	weekStartDay time.Weekday
	clock        utils.Clock
}

func NewService(progress ProgressReader, weekStartDay time.Weekday) *ServiceImpl {
	return &ServiceImpl{
		progress:     progress,
		weekStartDay: weekStartDay,
		clock:        &utils.SystemClock{},
	}
}

func (s *ServiceImpl) Weekly(ctx context.Context, targetUserId int, date string) (WeeklyStats, error) {
	anchor, err := s.anchor(date)
	if err != nil {
		return WeeklyStats{}, err
	}

	delta := (int(anchor.Weekday()) - int(s.weekStartDay) + 7) % 7
	start := anchor.AddDate(0, 0, -delta)
	end := start.AddDate(0, 0, 6)

	progress, err := s.progress.GetRange(ctx, targetUserId,
		start.Format(calendar.ISODate), end.Format(calendar.ISODate))
	if err != nil {
		return WeeklyStats{}, fmt.Errorf("failed to load progress: %w", err)
	}
	return Weekly(progress, anchor, s.weekStartDay), nil
}

func (s *ServiceImpl) Monthly(ctx context.Context, targetUserId int, date string) (MonthlyStats, error) {
	anchor, err := s.anchor(date)
	if err != nil {
		return MonthlyStats{}, err
	}

	from := calendar.DateString(anchor.Year(), anchor.Month(), 1)
	to := calendar.DateString(anchor.Year(), anchor.Month(), calendar.DaysInMonth(anchor.Year(), anchor.Month()))

	progress, err := s.progress.GetRange(ctx, targetUserId, from, to)
	if err != nil {
		return MonthlyStats{}, fmt.Errorf("failed to load progress: %w", err)
	}
	return Monthly(progress, anchor), nil
}

func (s *ServiceImpl) Trend(ctx context.Context, targetUserId int, from string, to string, window int) (TrendReport, error) {
	start, err := calendar.ParseDate(from)
	if err != nil {
		return TrendReport{}, ErrInvalidDate
	}
	end, err := calendar.ParseDate(to)
	if err != nil {
		return TrendReport{}, ErrInvalidDate
	}
	if start.After(end) {
		return TrendReport{}, ErrInvalidRange
	}
	if window <= 0 {
		window = 7
	}

	progress, err := s.progress.GetRange(ctx, targetUserId, from, to)
	if err != nil {
		return TrendReport{}, fmt.Errorf("failed to load progress: %w", err)
	}

	report := TrendReport{From: from, To: to}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(calendar.ISODate)
		report.Dates = append(report.Dates, date)
		report.Counts = append(report.Counts, float64(progress[date]))
	}

	report.MovingAverage = MovingAverage(report.Counts, window)
	report.Median = Median(report.Counts)
	report.StandardDeviation = RoundTo(StandardDeviation(report.Counts), 2)
	report.Quartile1 = Quartile1(report.Counts)
	report.Quartile3 = Quartile3(report.Counts)
	report.Range = Range(report.Counts)
	report.PredictedNext = RoundTo(PredictNextValue(report.Counts), 2)

	mean := 0.0
	if len(report.Counts) > 0 {
		mean = sum(report.Counts) / float64(len(report.Counts))
	}
	latest := report.Counts[len(report.Counts)-1]
	report.LatestClass = ZScoreClass(latest, mean, StandardDeviation(report.Counts))
	return report, nil
}

func (s *ServiceImpl) anchor(date string) (time.Time, error) {
	if date == "" {
		now := s.clock.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	anchor, err := calendar.ParseDate(date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return anchor, nil
}
