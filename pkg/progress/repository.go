package progress

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Record stores the repetition count for a date, overwriting any
	// previously recorded count for the same (user, date).
	Record(ctx context.Context, userId int, date string, count int) (DailyRecord, error)
	// GetRange returns the recorded counts for dates in [from, to] as a
	// sparse date->count map.
	GetRange(ctx context.Context, userId int, from string, to string) (map[string]int, error)
	Get(ctx context.Context, userId int, date string) (int, error)
}

type repositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Record(ctx context.Context, userId int, date string, count int) (DailyRecord, error) {
	query := `INSERT INTO daily_progress (user_id, date, count, updated_at)
				VALUES ($1, $2, $3, now())
				ON CONFLICT (user_id, date) DO UPDATE SET count = EXCLUDED.count, updated_at = now()
				RETURNING date, count, updated_at`
	var record DailyRecord
	err := r.db.QueryRow(ctx, query, userId, date, count).Scan(&record.Date, &record.Count, &record.UpdatedAt)
	if err != nil {
		log.Errorf("failed to record progress for user %d on %s: %v", userId, date, err)
		return DailyRecord{}, err
	}
	return record, nil
}

func (r *repositoryImpl) GetRange(ctx context.Context, userId int, from string, to string) (map[string]int, error) {
	query := `SELECT date, count FROM daily_progress WHERE user_id = $1 AND date >= $2 AND date <= $3`
	rows, err := r.db.Query(ctx, query, userId, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, err
		}
		counts[date] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repositoryImpl) Get(ctx context.Context, userId int, date string) (int, error) {
	query := `SELECT count FROM daily_progress WHERE user_id = $1 AND date = $2`
	var count int
	err := r.db.QueryRow(ctx, query, userId, date).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		// a missing row simply means no repetitions recorded
		return 0, nil
	} else if err != nil {
		log.Errorf("failed to get progress for user %d on %s: %v", userId, date, err)
		return 0, err
	}
	return count, nil
}
