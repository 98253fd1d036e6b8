package assignment

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wirdtrack/wirdtrack/internal/event_bus"
	"github.com/wirdtrack/wirdtrack/internal/utils"
	"github.com/wirdtrack/wirdtrack/pkg/calendar"
	"github.com/wirdtrack/wirdtrack/pkg/quran"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

// ErrForbidden is returned when anyone but the sheikh tries to change
// assignments.
var ErrForbidden = errors.New("only the sheikh may manage assignments")

// Input carries the fields of an assignment to be saved for a date.
type Input struct {
	Date              string
	SurahID           int
	StartAyah         int
	EndAyah           int
	TargetRepetitions int
	IsHoliday         bool
	Note              string
}

// RepetitionBounds limits the target a sheikh may set on one assignment.
type RepetitionBounds struct {
	Min int
	Max int
}

type Service interface {
	// Save validates the input and creates or overwrites the assignment for
	// its date. Validation failures are returned as *ValidationError.
	Save(ctx context.Context, input Input) (Assignment, error)
	Get(ctx context.Context, date string) (Assignment, error)
	GetRange(ctx context.Context, from string, to string) ([]Assignment, error)
	Delete(ctx context.Context, date string) error
	// SuggestContinuation proposes where the assignment for the given date
	// should start, based on the previous day's assignment. Returns nil when
	// there is nothing to continue from.
	SuggestContinuation(ctx context.Context, date string) (*Suggestion, error)
}

type ServiceImpl struct {
	repo     Repository
	catalog  *quran.Catalog
	bounds   RepetitionBounds
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewService(repo Repository, catalog *quran.Catalog, bounds RepetitionBounds, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{
		repo:     repo,
		catalog:  catalog,
		bounds:   bounds,
		eventBus: eventBus,
		clock:    &utils.SystemClock{},
	}
}

func (s *ServiceImpl) Save(ctx context.Context, input Input) (Assignment, error) {
	if err := requireSheikh(ctx); err != nil {
		return Assignment{}, err
	}

	a, err := s.build(input)
	if err != nil {
		return Assignment{}, err
	}

	stored, err := s.repo.Upsert(ctx, a)
	if err != nil {
		return Assignment{}, fmt.Errorf("failed to store assignment: %w", err)
	}

	if s.eventBus != nil {
		event := event_bus.NewEvent(ctx, event_bus.AssignmentSavedEvent, event_bus.AssignmentSaved{
			Date:      stored.Date,
			SurahID:   stored.SurahID,
			IsHoliday: stored.IsHoliday,
		})
		if err := s.eventBus.Publish(event); err != nil {
			log.Errorf("failed to publish assignment event: %v", err)
		}
	}
	return stored, nil
}

// build runs the validation sequence and assembles the record. Checks run in
// order and stop at the first failure; the holiday path skips them entirely
// and zeroes the reading fields.
func (s *ServiceImpl) build(input Input) (Assignment, error) {
	date, err := calendar.ParseDate(input.Date)
	if err != nil {
		return Assignment{}, &ValidationError{Reason: fmt.Sprintf("invalid date: %s", input.Date)}
	}
	now := s.clock.Now()

	if input.IsHoliday {
		return Assignment{
			Id:        "holiday-" + input.Date,
			Date:      input.Date,
			IsHoliday: true,
			Note:      input.Note,
			DayOfWeek: date.Weekday().String(),
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}

	surah := s.catalog.SurahByID(input.SurahID)
	if surah == nil {
		return Assignment{}, &ValidationError{Reason: fmt.Sprintf("unknown surah: %d", input.SurahID)}
	}
	if input.StartAyah < 1 || input.EndAyah > surah.TotalAyat || input.StartAyah > input.EndAyah {
		return Assignment{}, &ValidationError{
			Reason: fmt.Sprintf("ayah range %d-%d is not valid for %s (1-%d)",
				input.StartAyah, input.EndAyah, surah.Transliteration, surah.TotalAyat),
		}
	}
	if input.TargetRepetitions < s.bounds.Min || input.TargetRepetitions > s.bounds.Max {
		return Assignment{}, &ValidationError{
			Reason: fmt.Sprintf("target repetitions must be between %d and %d", s.bounds.Min, s.bounds.Max),
		}
	}

	return Assignment{
		Id:                "assignment-" + input.Date,
		Date:              input.Date,
		SurahID:           surah.ID,
		SurahName:         surah.Name,
		StartAyah:         input.StartAyah,
		EndAyah:           input.EndAyah,
		TargetRepetitions: input.TargetRepetitions,
		Note:              input.Note,
		DayOfWeek:         date.Weekday().String(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (s *ServiceImpl) Get(ctx context.Context, date string) (Assignment, error) {
	return s.repo.Get(ctx, date)
}

func (s *ServiceImpl) GetRange(ctx context.Context, from string, to string) ([]Assignment, error) {
	return s.repo.GetRange(ctx, from, to)
}

func (s *ServiceImpl) Delete(ctx context.Context, date string) error {
	if err := requireSheikh(ctx); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, date); err != nil {
		return err
	}

	if s.eventBus != nil {
		event := event_bus.NewEvent(ctx, event_bus.AssignmentDeletedEvent, event_bus.AssignmentDeleted{Date: date})
		if err := s.eventBus.Publish(event); err != nil {
			log.Errorf("failed to publish assignment deletion event: %v", err)
		}
	}
	return nil
}

func (s *ServiceImpl) SuggestContinuation(ctx context.Context, date string) (*Suggestion, error) {
	day, err := calendar.ParseDate(date)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid date: %s", date)}
	}
	prevDate := day.AddDate(0, 0, -1).Format(calendar.ISODate)

	prev, err := s.repo.Get(ctx, prevDate)
	if errors.Is(err, ErrAssignmentNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return ContinuationFrom(&prev, s.catalog), nil
}

func requireSheikh(ctx context.Context) error {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if currentUser.Role != user.RoleSheikh {
		return ErrForbidden
	}
	return nil
}
