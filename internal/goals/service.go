package goals

import (
	"database/sql"
	"errors"
	"fmt"

	"eventbite/internal/models"
)

var (
	ErrNotFound      = errors.New("goal not found")
	ErrEventNotFound = errors.New("event not found")
	ErrNameRequired  = errors.New("goal name is required")
	ErrTargetTooLow  = errors.New("target quantity must be positive")
	ErrGoalLimit     = errors.New("goal limit reached")
)

type DBLayer interface {
	ListGoalsByEvent(eventID int64) ([]models.Goal, error)
	GetGoalByID(id int64) (*models.Goal, error)
	CreateGoal(goal *models.Goal) error
	DeleteGoal(id int64) error
	DeleteContributionsByGoal(goalID int64) error
	CountGoals() (int, error)
	EventExists(eventID int64) (bool, error)
}

type GoalService struct {
	DB DBLayer
	// GoalLimit caps the total goal count when positive; zero disables it.
	GoalLimit int
}

func NewGoalService(db DBLayer, goalLimit int) *GoalService {
	return &GoalService{DB: db, GoalLimit: goalLimit}
}

func (s *GoalService) ListGoals(eventID int64) ([]models.Goal, error) {
	return s.DB.ListGoalsByEvent(eventID)
}

// CreateGoal validates and inserts a goal under an event. Unit, category
// and priority fall back to their defaults when empty.
func (s *GoalService) CreateGoal(eventID int64, name string, targetQuantity int, unit, category, priority string) (*models.Goal, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if targetQuantity <= 0 {
		return nil, ErrTargetTooLow
	}

	exists, err := s.DB.EventExists(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate event %d: %w", eventID, err)
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	if s.GoalLimit > 0 {
		count, err := s.DB.CountGoals()
		if err != nil {
			return nil, fmt.Errorf("failed to count goals: %w", err)
		}
		if count >= s.GoalLimit {
			return nil, ErrGoalLimit
		}
	}

	if unit == "" {
		unit = models.DefaultGoalUnit
	}
	if category == "" {
		category = models.DefaultGoalCategory
	}
	if priority == "" {
		priority = models.DefaultGoalPriority
	}

	goal := &models.Goal{
		Name:           name,
		TargetQuantity: targetQuantity,
		Unit:           unit,
		Category:       category,
		Priority:       priority,
		EventID:        eventID,
	}
	if err := s.DB.CreateGoal(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

// DeleteGoal removes a goal and all its contributions. Contributions go
// first so no orphaned rows survive.
func (s *GoalService) DeleteGoal(id int64) error {
	_, err := s.DB.GetGoalByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up goal %d: %w", id, err)
	}

	if err := s.DB.DeleteContributionsByGoal(id); err != nil {
		return fmt.Errorf("failed to delete contributions for goal %d: %w", id, err)
	}
	if err := s.DB.DeleteGoal(id); err != nil {
		return fmt.Errorf("failed to delete goal %d: %w", id, err)
	}
	return nil
}
