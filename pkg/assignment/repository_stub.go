package assignment

import (
	"context"
	"sort"
)

type StubRepository struct {
	data map[string]Assignment
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]Assignment{}}
}

func (s *StubRepository) Upsert(ctx context.Context, a Assignment) (Assignment, error) {
	if existing, ok := s.data[a.Date]; ok {
		a.CreatedAt = existing.CreatedAt
	}
	s.data[a.Date] = a
	return a, nil
}

func (s *StubRepository) Get(ctx context.Context, date string) (Assignment, error) {
	a, ok := s.data[date]
	if !ok {
		return Assignment{}, ErrAssignmentNotFound
	}
	return a, nil
}

func (s *StubRepository) GetRange(ctx context.Context, from string, to string) ([]Assignment, error) {
	var assignments []Assignment
	for date, a := range s.data {
		if date >= from && date <= to {
			assignments = append(assignments, a)
		}
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].Date < assignments[j].Date })
	return assignments, nil
}

func (s *StubRepository) Delete(ctx context.Context, date string) error {
	if _, ok := s.data[date]; !ok {
		return ErrAssignmentNotFound
	}
	delete(s.data, date)
	return nil
}

func (s *StubRepository) Reset() {
	s.data = map[string]Assignment{}
}
