// Package overview joins the day's assignment with the recorded progress into
// the summary the dashboard shows.
package overview

import "github.com/wirdtrack/wirdtrack/pkg/assignment"

// DaySummary is the joined view of one date for one student. Assignment is nil
// when the sheikh has not assigned anything for the date.
type DaySummary struct {
	Date           string
	Assignment     *assignment.Assignment
	RecordedCount  int
	CompletionRate int
}
