package assignment

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/wirdtrack/wirdtrack/internal/test_utils"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	container, connect := test_utils.TestWithDB()
	db = connect()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func testAssignment(date string) Assignment {
	return Assignment{
		Id:                "assignment-" + date,
		Date:              date,
		SurahID:           114,
		SurahName:         "الناس",
		StartAyah:         1,
		EndAyah:           6,
		TargetRepetitions: 10,
		DayOfWeek:         "Friday",
	}
}

func TestRepositoryImpl_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(db)

	stored, err := repo.Upsert(ctx, testAssignment("2030-01-04"))
	assert.NoError(t, err)
	assert.Equal(t, "assignment-2030-01-04", stored.Id)
	assert.False(t, stored.CreatedAt.IsZero())

	loaded, err := repo.Get(ctx, "2030-01-04")
	assert.NoError(t, err)
	assert.Equal(t, stored.SurahName, loaded.SurahName)
	assert.Equal(t, 10, loaded.TargetRepetitions)
}

func TestRepositoryImpl_UpsertOverwritesByDate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(db)

	first, err := repo.Upsert(ctx, testAssignment("2030-02-01"))
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	updated := testAssignment("2030-02-01")
	updated.TargetRepetitions = 99
	second, err := repo.Upsert(ctx, updated)
	assert.NoError(t, err)

	assert.Equal(t, 99, second.TargetRepetitions)
	// creation time survives the overwrite
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	all, err := repo.GetRange(ctx, "2030-02-01", "2030-02-28")
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepositoryImpl_GetMissingDate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(db)

	_, err := repo.Get(ctx, "2031-12-31")

	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestRepositoryImpl_GetRangeOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(db)

	for _, date := range []string{"2030-03-10", "2030-03-01", "2030-03-05"} {
		_, err := repo.Upsert(ctx, testAssignment(date))
		assert.NoError(t, err)
	}

	assignments, err := repo.GetRange(ctx, "2030-03-01", "2030-03-31")
	assert.NoError(t, err)
	assert.Len(t, assignments, 3)
	assert.Equal(t, "2030-03-01", assignments[0].Date)
	assert.Equal(t, "2030-03-05", assignments[1].Date)
	assert.Equal(t, "2030-03-10", assignments[2].Date)
}

func TestRepositoryImpl_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(db)

	_, err := repo.Upsert(ctx, testAssignment("2030-04-01"))
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, "2030-04-01"))
	assert.ErrorIs(t, repo.Delete(ctx, "2030-04-01"), ErrAssignmentNotFound)
}
