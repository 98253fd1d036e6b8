package progress

import "time"

// DailyRecord is one student's repetition count for one date. Records are
// only ever created or overwritten, never deleted: the full history is the
// raw material for every dashboard and rollup.
type DailyRecord struct {
	Date      string
	Count     int
	UpdatedAt time.Time
}
