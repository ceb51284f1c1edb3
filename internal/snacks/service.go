package snacks

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventbite/internal/models"
)

var (
	ErrNotFound       = errors.New("snack not found")
	ErrNameRequired   = errors.New("snack name is required")
	ErrPersonRequired = errors.New("assigned person is required")
	ErrQuantityTooLow = errors.New("quantity must be positive")
)

type DBLayer interface {
	ListSnacks() ([]models.Snack, error)
	GetSnackByID(id int64) (*models.Snack, error)
	CreateSnack(snack *models.Snack) error
	UpdateSnack(snack *models.Snack) error
	DeleteSnack(id int64) error
}

// SnackUpdate carries a partial update: only non-nil fields change.
type SnackUpdate struct {
	Name           *string `json:"name"`
	Quantity       *int    `json:"quantity"`
	AssignedPerson *string `json:"assigned_person"`
	Status         *string `json:"status"`
}

type SnackService struct {
	DB DBLayer
}

func NewSnackService(db DBLayer) *SnackService {
	return &SnackService{DB: db}
}

func (s *SnackService) ListSnacks() ([]models.Snack, error) {
	return s.DB.ListSnacks()
}

func (s *SnackService) GetSnack(id int64) (*models.Snack, error) {
	snack, err := s.DB.GetSnackByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up snack %d: %w", id, err)
	}
	return snack, nil
}

// CreateSnack inserts a snack. Quantity defaults to 1 and status to
// "pending" when omitted; timestamps are maintained here.
func (s *SnackService) CreateSnack(name string, quantity int, assignedPerson, status string) (*models.Snack, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if assignedPerson == "" {
		return nil, ErrPersonRequired
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrQuantityTooLow
	}
	if status == "" {
		status = models.DefaultSnackStatus
	}

	now := time.Now().UTC()
	snack := &models.Snack{
		Name:           name,
		Quantity:       quantity,
		AssignedPerson: assignedPerson,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.DB.CreateSnack(snack); err != nil {
		return nil, fmt.Errorf("failed to create snack: %w", err)
	}
	return snack, nil
}

// UpdateSnack applies a partial update and refreshes the update timestamp.
func (s *SnackService) UpdateSnack(id int64, update SnackUpdate) (*models.Snack, error) {
	snack, err := s.GetSnack(id)
	if err != nil {
		return nil, err
	}

	if update.Quantity != nil && *update.Quantity <= 0 {
		return nil, ErrQuantityTooLow
	}

	if update.Name != nil {
		snack.Name = *update.Name
	}
	if update.Quantity != nil {
		snack.Quantity = *update.Quantity
	}
	if update.AssignedPerson != nil {
		snack.AssignedPerson = *update.AssignedPerson
	}
	if update.Status != nil {
		snack.Status = *update.Status
	}
	snack.UpdatedAt = time.Now().UTC()

	if err := s.DB.UpdateSnack(snack); err != nil {
		return nil, fmt.Errorf("failed to update snack %d: %w", id, err)
	}
	return snack, nil
}

func (s *SnackService) DeleteSnack(id int64) error {
	if _, err := s.GetSnack(id); err != nil {
		return err
	}
	if err := s.DB.DeleteSnack(id); err != nil {
		return fmt.Errorf("failed to delete snack %d: %w", id, err)
	}
	return nil
}
