package assignment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type Repository interface {
	// Upsert stores the assignment for its date, overwriting any existing
	// record for the same date. The original creation time survives an
	// overwrite.
	Upsert(ctx context.Context, a Assignment) (Assignment, error)
	Get(ctx context.Context, date string) (Assignment, error)
	GetRange(ctx context.Context, from string, to string) ([]Assignment, error)
	Delete(ctx context.Context, date string) error
}

type repositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repositoryImpl{db: db}
}

const assignmentColumns = `id, date, surah_id, surah_name, start_ayah, end_ayah, target_repetitions, is_holiday, note, day_of_week, created_at, updated_at`

func (r *repositoryImpl) Upsert(ctx context.Context, a Assignment) (Assignment, error) {
	query := `INSERT INTO assignments
				(id, date, surah_id, surah_name, start_ayah, end_ayah, target_repetitions, is_holiday, note, day_of_week, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
				ON CONFLICT (date) DO UPDATE SET
					id = EXCLUDED.id,
					surah_id = EXCLUDED.surah_id,
					surah_name = EXCLUDED.surah_name,
					start_ayah = EXCLUDED.start_ayah,
					end_ayah = EXCLUDED.end_ayah,
					target_repetitions = EXCLUDED.target_repetitions,
					is_holiday = EXCLUDED.is_holiday,
					note = EXCLUDED.note,
					day_of_week = EXCLUDED.day_of_week,
					updated_at = now()
				RETURNING ` + assignmentColumns
	row := r.db.QueryRow(ctx, query,
		a.Id,
		a.Date,
		a.SurahID,
		a.SurahName,
		a.StartAyah,
		a.EndAyah,
		a.TargetRepetitions,
		a.IsHoliday,
		a.Note,
		a.DayOfWeek,
	)
	stored, err := scanAssignment(row)
	if err != nil {
		log.Errorf("failed to upsert assignment for %s: %v", a.Date, err)
		return Assignment{}, err
	}
	return stored, nil
}

func (r *repositoryImpl) Get(ctx context.Context, date string) (Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE date = $1`
	a, err := scanAssignment(r.db.QueryRow(ctx, query, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return Assignment{}, ErrAssignmentNotFound
	} else if err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (r *repositoryImpl) GetRange(ctx context.Context, from string, to string) ([]Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE date >= $1 AND date <= $2 ORDER BY date`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, date string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE date = $1`, date)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func scanAssignment(row pgx.Row) (Assignment, error) {
	var a Assignment
	err := row.Scan(
		&a.Id,
		&a.Date,
		&a.SurahID,
		&a.SurahName,
		&a.StartAyah,
		&a.EndAyah,
		&a.TargetRepetitions,
		&a.IsHoliday,
		&a.Note,
		&a.DayOfWeek,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
