package calendar

import (
	"fmt"
	"time"
)

// ISODate is the date layout used as the key format for assignments and
// daily progress records.
const ISODate = "2006-01-02"

// DaysInMonth returns the number of days in the given month, leap years included.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lays out a month as rows of 7 cells, one row per week, starting
// each row on weekStart. Cells hold the day number (1..DaysInMonth) or 0 for
// the padding before the 1st and after the last day of the month.
func MonthGrid(year int, month time.Month, weekStart time.Weekday) [][]int {
	daysInMonth := DaysInMonth(year, month)
	firstWeekday := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()

	// column of the 1st relative to the configured week start
	offset := (int(firstWeekday) - int(weekStart) + 7) % 7

	var grid [][]int
	row := make([]int, 7)
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		row[col] = day
		col++
		if col == 7 {
			grid = append(grid, row)
			row = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, row)
	}
	return grid
}

// DateString formats a calendar date as an ISO YYYY-MM-DD string with
// zero-padded month and day.
func DateString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ParseDate parses an ISO YYYY-MM-DD string in UTC.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(ISODate, date)
}
