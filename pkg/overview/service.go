package overview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wirdtrack/wirdtrack/internal/event_bus"
	"github.com/wirdtrack/wirdtrack/pkg/assignment"
	"github.com/wirdtrack/wirdtrack/pkg/calendar"
	"github.com/wirdtrack/wirdtrack/pkg/progress"
	"github.com/wirdtrack/wirdtrack/pkg/stats"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrForbidden   = errors.New("operation not allowed for this user")
)

type Service interface {
	// GetDay returns the joined assignment/progress summary for a date.
	GetDay(ctx context.Context, targetUserId int, date string) (DaySummary, error)
}

type cacheKey struct {
	userId int
	date   string
}

// ServiceImpl caches computed summaries per user and date; bus events from the
// assignment and progress services invalidate the affected entries.
type ServiceImpl struct {
	assignments assignment.Service
	progress    progress.Repository

	mu    sync.RWMutex
	cache map[cacheKey]DaySummary
}

func NewService(assignments assignment.Service, progressRepo progress.Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	s := &ServiceImpl{
		assignments: assignments,
		progress:    progressRepo,
		cache:       map[cacheKey]DaySummary{},
	}
	if eventBus != nil {
		event_bus.SubscribeTyped[event_bus.AssignmentSaved](eventBus, event_bus.AssignmentSavedEvent,
			func(e event_bus.EventT[event_bus.AssignmentSaved]) error {
				s.invalidateDate(e.Data.Date)
				return nil
			})
		event_bus.SubscribeTyped[event_bus.AssignmentDeleted](eventBus, event_bus.AssignmentDeletedEvent,
			func(e event_bus.EventT[event_bus.AssignmentDeleted]) error {
				s.invalidateDate(e.Data.Date)
				return nil
			})
		event_bus.SubscribeTyped[event_bus.ProgressRecorded](eventBus, event_bus.ProgressRecordedEvent,
			func(e event_bus.EventT[event_bus.ProgressRecorded]) error {
				s.invalidate(e.Data.UserID, e.Data.Date)
				return nil
			})
	}
	return s
}

func (s *ServiceImpl) GetDay(ctx context.Context, targetUserId int, date string) (DaySummary, error) {
	if err := authorize(ctx, targetUserId); err != nil {
		return DaySummary{}, err
	}
	if _, err := calendar.ParseDate(date); err != nil {
		return DaySummary{}, ErrInvalidDate
	}

	key := cacheKey{userId: targetUserId, date: date}
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	summary := DaySummary{Date: date}

	a, err := s.assignments.Get(ctx, date)
	if err != nil && !errors.Is(err, assignment.ErrAssignmentNotFound) {
		return DaySummary{}, fmt.Errorf("failed to load assignment: %w", err)
	}
	if err == nil {
		summary.Assignment = &a
	}

	count, err := s.progress.Get(ctx, targetUserId, date)
	if err != nil {
		return DaySummary{}, fmt.Errorf("failed to load progress: %w", err)
	}
	summary.RecordedCount = count

	target := 0
	if summary.Assignment != nil && !summary.Assignment.IsHoliday {
		target = summary.Assignment.TargetRepetitions
	}
	summary.CompletionRate = stats.CompletionRate(count, target)

	s.mu.Lock()
	s.cache[key] = summary
	s.mu.Unlock()
	return summary, nil
}

// invalidateDate drops the date's entry for every user; assignments are shared
// across the student group.
func (s *ServiceImpl) invalidateDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.cache {
		if key.date == date {
			delete(s.cache, key)
		}
	}
}

func (s *ServiceImpl) invalidate(userId int, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, cacheKey{userId: userId, date: date})
}

func authorize(ctx context.Context, targetUserId int) error {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if currentUser.Id != targetUserId && currentUser.Role != user.RoleSheikh {
		return ErrForbidden
	}
	return nil
}
