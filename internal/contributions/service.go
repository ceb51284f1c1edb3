package contributions

import (
	"database/sql"
	"errors"
	"fmt"

	"eventbite/internal/models"
)

var (
	ErrNotFound         = errors.New("contribution not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrAssigneeRequired = errors.New("assignee is required")
	ErrQuantityTooLow   = errors.New("quantity must be positive")
)

type DBLayer interface {
	ListContributions() ([]models.Contribution, error)
	ListContributionsByGoals(goalIDs []int64) ([]models.Contribution, error)
	GetContributionByID(id int64) (*models.Contribution, error)
	CreateContribution(contribution *models.Contribution) error
	UpdateContribution(contribution *models.Contribution) error
	DeleteContribution(id int64) error
	GoalIDsByEvent(eventID int64) ([]int64, error)
	GoalExists(goalID int64) (bool, error)
}

// ContributionUpdate carries a partial update: only non-nil fields change.
type ContributionUpdate struct {
	Done     *bool   `json:"done"`
	Quantity *int    `json:"quantity"`
	Assignee *string `json:"assignee"`
}

type ContributionService struct {
	DB DBLayer
}

func NewContributionService(db DBLayer) *ContributionService {
	return &ContributionService{DB: db}
}

func (s *ContributionService) ListContributions() ([]models.Contribution, error) {
	return s.DB.ListContributions()
}

// ListContributionsByEvent returns the contributions whose goal belongs to
// the event. When the event has no goals the membership query is skipped
// and an empty list comes back immediately.
func (s *ContributionService) ListContributionsByEvent(eventID int64) ([]models.Contribution, error) {
	goalIDs, err := s.DB.GoalIDsByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for event %d: %w", eventID, err)
	}
	if len(goalIDs) == 0 {
		return []models.Contribution{}, nil
	}
	return s.DB.ListContributionsByGoals(goalIDs)
}

func (s *ContributionService) CreateContribution(goalID int64, assignee string, quantity int) (*models.Contribution, error) {
	if assignee == "" {
		return nil, ErrAssigneeRequired
	}
	if quantity <= 0 {
		return nil, ErrQuantityTooLow
	}

	exists, err := s.DB.GoalExists(goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate goal %d: %w", goalID, err)
	}
	if !exists {
		return nil, ErrGoalNotFound
	}

	contribution := &models.Contribution{
		GoalID:   goalID,
		Assignee: assignee,
		Quantity: quantity,
	}
	if err := s.DB.CreateContribution(contribution); err != nil {
		return nil, fmt.Errorf("failed to create contribution: %w", err)
	}
	return contribution, nil
}

// UpdateContribution applies a partial update: each field changes only when
// supplied in the request.
func (s *ContributionService) UpdateContribution(id int64, update ContributionUpdate) (*models.Contribution, error) {
	contribution, err := s.DB.GetContributionByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up contribution %d: %w", id, err)
	}

	if update.Quantity != nil && *update.Quantity <= 0 {
		return nil, ErrQuantityTooLow
	}

	if update.Done != nil {
		contribution.Done = *update.Done
	}
	if update.Quantity != nil {
		contribution.Quantity = *update.Quantity
	}
	if update.Assignee != nil {
		contribution.Assignee = *update.Assignee
	}

	if err := s.DB.UpdateContribution(contribution); err != nil {
		return nil, fmt.Errorf("failed to update contribution %d: %w", id, err)
	}
	return contribution, nil
}

func (s *ContributionService) DeleteContribution(id int64) error {
	_, err := s.DB.GetContributionByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up contribution %d: %w", id, err)
	}

	if err := s.DB.DeleteContribution(id); err != nil {
		return fmt.Errorf("failed to delete contribution %d: %w", id, err)
	}
	return nil
}
