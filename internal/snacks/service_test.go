package snacks_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventbite/internal/models"
	"eventbite/internal/snacks"
)

// MockSnackDBLayer is a mock implementation of the snacks DBLayer interface
type MockSnackDBLayer struct {
	mock.Mock
}

func (m *MockSnackDBLayer) ListSnacks() ([]models.Snack, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Snack), args.Error(1)
}

func (m *MockSnackDBLayer) GetSnackByID(id int64) (*models.Snack, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Snack), args.Error(1)
}

func (m *MockSnackDBLayer) CreateSnack(snack *models.Snack) error {
	args := m.Called(snack)
	return args.Error(0)
}

func (m *MockSnackDBLayer) UpdateSnack(snack *models.Snack) error {
	args := m.Called(snack)
	return args.Error(0)
}

func (m *MockSnackDBLayer) DeleteSnack(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// Tests start here
func TestCreateSnackDefaults(t *testing.T) {
	mockDB := new(MockSnackDBLayer)
	svc := snacks.NewSnackService(mockDB)

	mockDB.On("CreateSnack", mock.MatchedBy(func(s *models.Snack) bool {
		return s.Quantity == 1 && s.Status == "pending" && !s.CreatedAt.IsZero() && !s.UpdatedAt.IsZero()
	})).Return(nil)

	snack, err := svc.CreateSnack("Empanadas", 0, "Maria", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, snack.Quantity)
	assert.Equal(t, "pending", snack.Status)
	mockDB.AssertExpectations(t)
}

func TestCreateSnackValidation(t *testing.T) {
	mockDB := new(MockSnackDBLayer)
	svc := snacks.NewSnackService(mockDB)

	_, err := svc.CreateSnack("", 1, "Maria", "")
	assert.ErrorIs(t, err, snacks.ErrNameRequired)

	_, err = svc.CreateSnack("Empanadas", 1, "", "")
	assert.ErrorIs(t, err, snacks.ErrPersonRequired)

	_, err = svc.CreateSnack("Empanadas", -1, "Maria", "")
	assert.ErrorIs(t, err, snacks.ErrQuantityTooLow)

	mockDB.AssertNotCalled(t, "CreateSnack", mock.Anything)
}

func TestUpdateSnackPartial(t *testing.T) {
	mockDB := new(MockSnackDBLayer)
	svc := snacks.NewSnackService(mockDB)

	created := time.Now().UTC().Add(-time.Hour)
	stored := &models.Snack{
		ID:             1,
		Name:           "Empanadas",
		Quantity:       12,
		AssignedPerson: "Maria",
		Status:         "pending",
		CreatedAt:      created,
		UpdatedAt:      created,
	}
	mockDB.On("GetSnackByID", int64(1)).Return(stored, nil)
	mockDB.On("UpdateSnack", mock.MatchedBy(func(s *models.Snack) bool {
		return s.Status == "confirmed" && s.Quantity == 12 && s.UpdatedAt.After(created)
	})).Return(nil)

	status := "confirmed"
	snack, err := svc.UpdateSnack(1, snacks.SnackUpdate{Status: &status})
	assert.NoError(t, err)

	// Only the supplied field changed, and the update timestamp moved
	assert.Equal(t, "confirmed", snack.Status)
	assert.Equal(t, 12, snack.Quantity)
	assert.Equal(t, "Maria", snack.AssignedPerson)
	assert.Equal(t, created, snack.CreatedAt)
	mockDB.AssertExpectations(t)
}

func TestUpdateSnackNotFound(t *testing.T) {
	mockDB := new(MockSnackDBLayer)
	svc := snacks.NewSnackService(mockDB)

	mockDB.On("GetSnackByID", int64(99)).Return(nil, sql.ErrNoRows)

	status := "confirmed"
	_, err := svc.UpdateSnack(99, snacks.SnackUpdate{Status: &status})
	assert.ErrorIs(t, err, snacks.ErrNotFound)
}

func TestDeleteSnackNotFound(t *testing.T) {
	mockDB := new(MockSnackDBLayer)
	svc := snacks.NewSnackService(mockDB)

	mockDB.On("GetSnackByID", int64(99)).Return(nil, sql.ErrNoRows)

	assert.ErrorIs(t, svc.DeleteSnack(99), snacks.ErrNotFound)
	mockDB.AssertNotCalled(t, "DeleteSnack", mock.Anything)
}
