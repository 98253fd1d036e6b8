package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// StatsRenderer renders weekly stats into an alternative representation for
// export, currently CSV.
type StatsRenderer interface {
	RenderWeekly(stats WeeklyStats) (string, error)
}

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

func (t *CsvStatsRendererImpl) RenderWeekly(stats WeeklyStats) (string, error) {
	data := [][]string{
		{"Week start", stats.WeekStart.Format(dateLayout)},
		{"Week end", stats.WeekEnd.Format(dateLayout)},
		{"Total completions", strconv.Itoa(stats.TotalCompletions)},
		{"Completed days", strconv.Itoa(stats.CompletedDays)},
		{"Average per day", strconv.Itoa(stats.AveragePerDay)},
		{"Best day", stats.BestDay},
		{"Best day count", strconv.Itoa(stats.BestDayCount)},
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}
	return b.String(), nil
}
