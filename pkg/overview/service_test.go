package overview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wirdtrack/wirdtrack/internal/event_bus"
	"github.com/wirdtrack/wirdtrack/pkg/assignment"
	"github.com/wirdtrack/wirdtrack/pkg/progress"
	"github.com/wirdtrack/wirdtrack/pkg/quran"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

var sheikh = user.User{Id: 1, Uid: "sheikh-uid", Username: "sheikh", Role: user.RoleSheikh}
var student = user.User{Id: 5, Uid: "student-uid", Username: "student", Role: user.RoleStudent}

type fixture struct {
	service      *ServiceImpl
	assignments  assignment.Service
	progress     *progress.ServiceImpl
	progressRepo *progress.StubRepository
}

func setup() fixture {
	bus := event_bus.NewEventBus()
	assignmentRepo := assignment.NewStubRepository()
	assignments := assignment.NewService(assignmentRepo, quran.DefaultCatalog(), assignment.RepetitionBounds{Min: 1, Max: 500}, bus)
	progressRepo := progress.NewStubRepository()
	progressService := progress.NewService(progressRepo, bus)
	return fixture{
		service:      NewService(assignments, progressRepo, bus),
		assignments:  assignments,
		progress:     progressService,
		progressRepo: progressRepo,
	}
}

func sheikhCtx() context.Context {
	return user.WithUser(context.Background(), sheikh)
}

func studentCtx() context.Context {
	return user.WithUser(context.Background(), student)
}

func TestGetDay_JoinsAssignmentAndProgress(t *testing.T) {
	f := setup()

	_, err := f.assignments.Save(sheikhCtx(), assignment.Input{
		Date: "2025-02-07", SurahID: 114, StartAyah: 1, EndAyah: 6, TargetRepetitions: 40,
	})
	assert.NoError(t, err)
	_, err = f.progress.Record(studentCtx(), student.Id, "2025-02-07", 30)
	assert.NoError(t, err)

	summary, err := f.service.GetDay(studentCtx(), student.Id, "2025-02-07")

	assert.NoError(t, err)
	assert.NotNil(t, summary.Assignment)
	assert.Equal(t, 114, summary.Assignment.SurahID)
	assert.Equal(t, 30, summary.RecordedCount)
	assert.Equal(t, 75, summary.CompletionRate)
}

func TestGetDay_NoAssignment(t *testing.T) {
	f := setup()

	_, err := f.progress.Record(studentCtx(), student.Id, "2025-02-07", 30)
	assert.NoError(t, err)

	summary, err := f.service.GetDay(studentCtx(), student.Id, "2025-02-07")

	assert.NoError(t, err)
	assert.Nil(t, summary.Assignment)
	assert.Equal(t, 30, summary.RecordedCount)
	assert.Equal(t, 0, summary.CompletionRate)
}

func TestGetDay_HolidayHasZeroTarget(t *testing.T) {
	f := setup()

	_, err := f.assignments.Save(sheikhCtx(), assignment.Input{Date: "2025-02-07", IsHoliday: true})
	assert.NoError(t, err)

	summary, err := f.service.GetDay(studentCtx(), student.Id, "2025-02-07")

	assert.NoError(t, err)
	assert.NotNil(t, summary.Assignment)
	assert.True(t, summary.Assignment.IsHoliday)
	assert.Equal(t, 0, summary.CompletionRate)
}

func TestGetDay_CompletionCapsAtHundred(t *testing.T) {
	f := setup()

	_, err := f.assignments.Save(sheikhCtx(), assignment.Input{
		Date: "2025-02-07", SurahID: 114, StartAyah: 1, EndAyah: 6, TargetRepetitions: 40,
	})
	assert.NoError(t, err)
	_, err = f.progress.Record(studentCtx(), student.Id, "2025-02-07", 80)
	assert.NoError(t, err)

	summary, err := f.service.GetDay(studentCtx(), student.Id, "2025-02-07")

	assert.NoError(t, err)
	assert.Equal(t, 100, summary.CompletionRate)
}

func TestGetDay_StudentCannotReadOthers(t *testing.T) {
	f := setup()

	_, err := f.service.GetDay(studentCtx(), sheikh.Id, "2025-02-07")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetDay_RejectsMalformedDate(t *testing.T) {
	f := setup()

	_, err := f.service.GetDay(studentCtx(), student.Id, "07/02/2025")

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetDay_CacheInvalidatedByProgressEvent(t *testing.T) {
	f := setup()

	_, err := f.assignments.Save(sheikhCtx(), assignment.Input{
		Date: "2025-02-07", SurahID: 114, StartAyah: 1, EndAyah: 6, TargetRepetitions: 40,
	})
	assert.NoError(t, err)
	_, err = f.progress.Record(studentCtx(), student.Id, "2025-02-07", 10)
	assert.NoError(t, err)

	summary, err := f.service.GetDay(studentCtx(), student.Id, "2025-02-07")
	assert.NoError(t, err)
	assert.Equal(t, 25, summary.CompletionRate)

	// recording again publishes the event that drops the cached entry
	_, err = f.progress.Record(studentCtx(), student.Id, "2025-02-07", 40)
	assert.NoError(t, err)

	summary, err = f.service.GetDay(studentCtx(), student.Id, "2025-02-07")
	assert.NoError(t, err)
	assert.Equal(t, 40, summary.RecordedCount)
	assert.Equal(t, 100, summary.CompletionRate)
}

func TestGetDay_CacheInvalidatedByAssignmentEvent(t *testing.T) {
	f := setup()

	_, err := f.assignments.Save(sheikhCtx(), assignment.Input{
		Date: "2025-02-07", SurahID: 114, StartAyah: 1, EndAyah: 6, TargetRepetitions: 40,
	})
	assert.NoError(t, err)

	summary, err := f.service.GetDay(studentCtx(), student.Id, "2025-02-07")
	assert.NoError(t, err)
	assert.Equal(t, 40, summary.Assignment.TargetRepetitions)

	_, err = f.assignments.Save(sheikhCtx(), assignment.Input{
		Date: "2025-02-07", SurahID: 114, StartAyah: 1, EndAyah: 6, TargetRepetitions: 20,
	})
	assert.NoError(t, err)

	summary, err = f.service.GetDay(studentCtx(), student.Id, "2025-02-07")
	assert.NoError(t, err)
	assert.Equal(t, 20, summary.Assignment.TargetRepetitions)

	err = f.assignments.Delete(sheikhCtx(), "2025-02-07")
	assert.NoError(t, err)

	summary, err = f.service.GetDay(studentCtx(), student.Id, "2025-02-07")
	assert.NoError(t, err)
	assert.Nil(t, summary.Assignment)
}
