package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wirdtrack/wirdtrack/internal/event_bus"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

var student = user.User{Id: 5, Uid: "student-uid", Username: "student", Role: user.RoleStudent}
var sheikh = user.User{Id: 1, Uid: "sheikh-uid", Username: "sheikh", Role: user.RoleSheikh}

func setup() (*ServiceImpl, *StubRepository, *event_bus.EventBus) {
	repo := NewStubRepository()
	bus := event_bus.NewEventBus()
	return NewService(repo, bus), repo, bus
}

func TestRecord_OwnProgress(t *testing.T) {
	service, _, _ := setup()
	ctx := user.WithUser(context.Background(), student)

	record, err := service.Record(ctx, student.Id, "2025-02-07", 120)

	assert.NoError(t, err)
	assert.Equal(t, "2025-02-07", record.Date)
	assert.Equal(t, 120, record.Count)
}

func TestRecord_OverwritesPreviousCount(t *testing.T) {
	service, _, _ := setup()
	ctx := user.WithUser(context.Background(), student)

	_, err := service.Record(ctx, student.Id, "2025-02-07", 120)
	assert.NoError(t, err)
	_, err = service.Record(ctx, student.Id, "2025-02-07", 80)
	assert.NoError(t, err)

	counts, err := service.GetRange(ctx, student.Id, "2025-02-01", "2025-02-28")
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"2025-02-07": 80}, counts)
}

func TestRecord_StudentCannotWriteForOthers(t *testing.T) {
	service, _, _ := setup()
	ctx := user.WithUser(context.Background(), student)

	_, err := service.Record(ctx, sheikh.Id, "2025-02-07", 10)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecord_SheikhMayWriteForStudent(t *testing.T) {
	service, _, _ := setup()
	ctx := user.WithUser(context.Background(), sheikh)

	_, err := service.Record(ctx, student.Id, "2025-02-07", 10)

	assert.NoError(t, err)
}

func TestRecord_RejectsNegativeCount(t *testing.T) {
	service, _, _ := setup()
	ctx := user.WithUser(context.Background(), student)

	_, err := service.Record(ctx, student.Id, "2025-02-07", -1)

	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestRecord_RejectsMalformedDate(t *testing.T) {
	service, _, _ := setup()
	ctx := user.WithUser(context.Background(), student)

	_, err := service.Record(ctx, student.Id, "07/02/2025", 10)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRecord_PublishesEvent(t *testing.T) {
	service, _, bus := setup()
	ctx := user.WithUser(context.Background(), student)

	var got event_bus.ProgressRecorded
	event_bus.SubscribeTyped[event_bus.ProgressRecorded](bus, event_bus.ProgressRecordedEvent,
		func(e event_bus.EventT[event_bus.ProgressRecorded]) error {
			got = e.Data
			return nil
		})

	_, err := service.Record(ctx, student.Id, "2025-02-07", 33)

	assert.NoError(t, err)
	assert.Equal(t, event_bus.ProgressRecorded{UserID: student.Id, Date: "2025-02-07", Count: 33}, got)
}

func TestGetRange_SparseMap(t *testing.T) {
	service, _, _ := setup()
	ctx := user.WithUser(context.Background(), student)

	_, _ = service.Record(ctx, student.Id, "2025-02-01", 100)
	_, _ = service.Record(ctx, student.Id, "2025-02-05", 100)
	_, _ = service.Record(ctx, student.Id, "2025-03-01", 100)

	counts, err := service.GetRange(ctx, student.Id, "2025-02-01", "2025-02-28")
	assert.NoError(t, err)
	assert.Len(t, counts, 2)
	assert.Equal(t, 100, counts["2025-02-01"])
	assert.Equal(t, 100, counts["2025-02-05"])
}
