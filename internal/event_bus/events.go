package event_bus

const (
	AssignmentSavedEvent   EventType = "assignment.saved"
	AssignmentDeletedEvent EventType = "assignment.deleted"
	ProgressRecordedEvent  EventType = "progress.recorded"
)

// AssignmentSaved is published whenever an assignment for a date is created or
// overwritten, including the holiday path.
type AssignmentSaved struct {
	Date      string
	SurahID   int
	IsHoliday bool
}

type AssignmentDeleted struct {
	Date string
}

// ProgressRecorded is published when a student's repetition count for a date
// is recorded or overwritten.
type ProgressRecorded struct {
	UserID int
	Date   string
	Count  int
}
