package progress

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wirdtrack/wirdtrack/internal/event_bus"
	"github.com/wirdtrack/wirdtrack/pkg/calendar"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidCount = errors.New("repetition count cannot be negative")
	// ErrForbidden is returned when a student tries to touch another
	// student's records. The sheikh may read and write for anyone.
	ErrForbidden = errors.New("operation not allowed for this user")
)

type Service interface {
	// Record stores targetUserId's repetition count for a date. A student may
	// only record their own progress; the sheikh may record for any student.
	Record(ctx context.Context, targetUserId int, date string, count int) (DailyRecord, error)
	// GetRange returns the sparse date->count map for [from, to].
	GetRange(ctx context.Context, targetUserId int, from string, to string) (map[string]int, error)
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
}

func NewService(repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *ServiceImpl) Record(ctx context.Context, targetUserId int, date string, count int) (DailyRecord, error) {
	if err := authorize(ctx, targetUserId); err != nil {
		return DailyRecord{}, err
	}
	if _, err := calendar.ParseDate(date); err != nil {
		return DailyRecord{}, ErrInvalidDate
	}
	if count < 0 {
		return DailyRecord{}, ErrInvalidCount
	}

	record, err := s.repo.Record(ctx, targetUserId, date, count)
	if err != nil {
		return DailyRecord{}, fmt.Errorf("failed to record progress: %w", err)
	}

	if s.eventBus != nil {
		event := event_bus.NewEvent(ctx, event_bus.ProgressRecordedEvent, event_bus.ProgressRecorded{
			UserID: targetUserId,
			Date:   date,
			Count:  count,
		})
		if err := s.eventBus.Publish(event); err != nil {
			log.Errorf("failed to publish progress event: %v", err)
		}
	}
	return record, nil
}

func (s *ServiceImpl) GetRange(ctx context.Context, targetUserId int, from string, to string) (map[string]int, error) {
	if err := authorize(ctx, targetUserId); err != nil {
		return nil, err
	}
	return s.repo.GetRange(ctx, targetUserId, from, to)
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
