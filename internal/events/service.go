package events

import (
	"database/sql"
	"errors"
	"fmt"

	"eventbite/internal/models"
)

var (
	ErrNotFound           = errors.New("event not found")
	ErrNameRequired       = errors.New("event name is required")
	ErrPasswordRequired   = errors.New("admin password is required")
	ErrInvalidCredentials = errors.New("invalid event or password")
)

type DBLayer interface {
	ListEvents() ([]models.Event, error)
	GetEventByID(id int64) (*models.Event, error)
	CreateEvent(event *models.Event) error
	UpdateEvent(event *models.Event) error
	DeleteEvent(id int64) error
	GoalIDsByEvent(eventID int64) ([]int64, error)
	DeleteGoalsByEvent(eventID int64) error
	DeleteContributionsByGoals(goalIDs []int64) error
}

type EventService struct {
	DB DBLayer
}

func NewEventService(db DBLayer) *EventService {
	return &EventService{DB: db}
}

func (s *EventService) ListEvents() ([]models.Event, error) {
	return s.DB.ListEvents()
}

// CreateEvent inserts a new event with an empty date. Name and password
// are both required.
func (s *EventService) CreateEvent(name, password string) (*models.Event, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	event := &models.Event{
		Name:          name,
		AdminPassword: password,
	}
	if err := s.DB.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// VerifyAdmin checks the supplied password against the stored one with an
// exact comparison. An unknown event and a wrong password are deliberately
// indistinguishable so the endpoint doesn't leak event existence.
func (s *EventService) VerifyAdmin(eventID int64, password string) error {
	event, err := s.DB.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up event %d: %w", eventID, err)
	}
	if event.AdminPassword != password {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *EventService) GetEvent(id int64) (*models.Event, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up event %d: %w", id, err)
	}
	return event, nil
}

// UpdateEvent applies a partial update: only supplied fields change. The
// admin password is immutable after creation.
func (s *EventService) UpdateEvent(id int64, name, date *string) (*models.Event, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		event.Name = *name
	}
	if date != nil {
		event.Date = *date
	}

	if err := s.DB.UpdateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}
	return event, nil
}

// DeleteEvent removes an event with its goals and their contributions.
// Children go first so no orphaned rows survive a partial failure.
func (s *EventService) DeleteEvent(id int64) error {
	if _, err := s.GetEvent(id); err != nil {
		return err
	}
	if err := s.deleteChildren(id); err != nil {
		return err
	}
	if err := s.DB.DeleteEvent(id); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return nil
}

// ResetEvent deletes all goals and contributions under an event but keeps
// the event row itself untouched.
func (s *EventService) ResetEvent(id int64) error {
	if _, err := s.GetEvent(id); err != nil {
		return err
	}
	return s.deleteChildren(id)
}

func (s *EventService) deleteChildren(eventID int64) error {
	goalIDs, err := s.DB.GoalIDsByEvent(eventID)
	if err != nil {
		return fmt.Errorf("failed to list goals for event %d: %w", eventID, err)
	}
	if len(goalIDs) > 0 {
		if err := s.DB.DeleteContributionsByGoals(goalIDs); err != nil {
			return fmt.Errorf("failed to delete contributions for event %d: %w", eventID, err)
		}
	}
	if err := s.DB.DeleteGoalsByEvent(eventID); err != nil {
		return fmt.Errorf("failed to delete goals for event %d: %w", eventID, err)
	}
	return nil
}
