package assignment

import (
	"time"

	"github.com/wirdtrack/wirdtrack/pkg/quran"
)

// Assignment is one day's reading target, keyed by date. Exactly one
// assignment exists per date; saving again for the same date overwrites it.
type Assignment struct {
	Id                string
	Date              string
	SurahID           int
	SurahName         string
	StartAyah         int
	EndAyah           int
	TargetRepetitions int
	IsHoliday         bool
	Note              string
	DayOfWeek         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Suggestion is the proposed starting point for the next assignment.
type Suggestion struct {
	SurahID  int
	NextAyah int
}

// ValidationError is an expected, recoverable outcome of saving an
// assignment. Its reason is shown to the sheikh verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ContinuationFrom proposes continuing from the ayah after prev's end, in the
// same surah. It proposes nothing when prev is nil, a holiday, or already
// ends on the surah's final ayah: continuation never rolls over into another
// surah.
func ContinuationFrom(prev *Assignment, catalog *quran.Catalog) *Suggestion {
	if prev == nil || prev.IsHoliday {
		return nil
	}
	surah := catalog.SurahByID(prev.SurahID)
	if surah == nil {
		return nil
	}
	next := prev.EndAyah + 1
	if next > surah.TotalAyat {
		return nil
	}
	return &Suggestion{SurahID: prev.SurahID, NextAyah: next}
}
