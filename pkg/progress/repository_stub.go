package progress

import (
	"context"
	"time"
)

type StubRepository struct {
	data map[int]map[string]int
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]map[string]int{}}
}

func (s *StubRepository) Record(ctx context.Context, userId int, date string, count int) (DailyRecord, error) {
	if s.data[userId] == nil {
		s.data[userId] = map[string]int{}
	}
	s.data[userId][date] = count
	return DailyRecord{Date: date, Count: count, UpdatedAt: time.Now()}, nil
}

func (s *StubRepository) GetRange(ctx context.Context, userId int, from string, to string) (map[string]int, error) {
	counts := map[string]int{}
	for date, count := range s.data[userId] {
		if date >= from && date <= to {
			counts[date] = count
		}
	}
	return counts, nil
}

func (s *StubRepository) Get(ctx context.Context, userId int, date string) (int, error) {
	return s.data[userId][date], nil
}

func (s *StubRepository) Reset() {
	s.data = map[int]map[string]int{}
}
