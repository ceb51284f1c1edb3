package contributions_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventbite/internal/contributions"
	"eventbite/internal/models"
)

// MockContributionDBLayer is a mock implementation of the contributions DBLayer interface
type MockContributionDBLayer struct {
	mock.Mock
}

func (m *MockContributionDBLayer) ListContributions() ([]models.Contribution, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contribution), args.Error(1)
}

func (m *MockContributionDBLayer) ListContributionsByGoals(goalIDs []int64) ([]models.Contribution, error) {
	args := m.Called(goalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contribution), args.Error(1)
}

func (m *MockContributionDBLayer) GetContributionByID(id int64) (*models.Contribution, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contribution), args.Error(1)
}

func (m *MockContributionDBLayer) CreateContribution(contribution *models.Contribution) error {
	args := m.Called(contribution)
	return args.Error(0)
}

func (m *MockContributionDBLayer) UpdateContribution(contribution *models.Contribution) error {
	args := m.Called(contribution)
	return args.Error(0)
}

func (m *MockContributionDBLayer) DeleteContribution(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContributionDBLayer) GoalIDsByEvent(eventID int64) ([]int64, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockContributionDBLayer) GoalExists(goalID int64) (bool, error) {
	args := m.Called(goalID)
	return args.Bool(0), args.Error(1)
}

// Tests start here
func TestCreateContributionValidation(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	_, err := svc.CreateContribution(1, "", 3)
	assert.ErrorIs(t, err, contributions.ErrAssigneeRequired)

	_, err = svc.CreateContribution(1, "Ana", 0)
	assert.ErrorIs(t, err, contributions.ErrQuantityTooLow)

	_, err = svc.CreateContribution(1, "Ana", -2)
	assert.ErrorIs(t, err, contributions.ErrQuantityTooLow)

	mockDB.AssertNotCalled(t, "CreateContribution", mock.Anything)
}

func TestCreateContribution(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	mockDB.On("GoalExists", int64(1)).Return(true, nil)
	mockDB.On("CreateContribution", mock.MatchedBy(func(c *models.Contribution) bool {
		return c.GoalID == 1 && c.Assignee == "Ana" && c.Quantity == 3 && !c.Done
	})).Return(nil)

	contribution, err := svc.CreateContribution(1, "Ana", 3)
	assert.NoError(t, err)
	assert.False(t, contribution.Done, "new contributions start not done")
	mockDB.AssertExpectations(t)
}

func TestCreateContributionUnknownGoal(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	mockDB.On("GoalExists", int64(42)).Return(false, nil)

	_, err := svc.CreateContribution(42, "Ana", 3)
	assert.ErrorIs(t, err, contributions.ErrGoalNotFound)
	mockDB.AssertNotCalled(t, "CreateContribution", mock.Anything)
}

func TestUpdateContributionPartial(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	stored := &models.Contribution{ID: 1, GoalID: 1, Assignee: "Ana", Quantity: 3, Done: false}
	mockDB.On("GetContributionByID", int64(1)).Return(stored, nil)
	mockDB.On("UpdateContribution", mock.MatchedBy(func(c *models.Contribution) bool {
		return c.Done && c.Quantity == 3 && c.Assignee == "Ana"
	})).Return(nil)

	done := true
	updated, err := svc.UpdateContribution(1, contributions.ContributionUpdate{Done: &done})
	assert.NoError(t, err)

	// Only the supplied field changed
	assert.True(t, updated.Done)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "Ana", updated.Assignee)
	mockDB.AssertExpectations(t)
}

func TestUpdateContributionQuantityValidation(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	stored := &models.Contribution{ID: 1, GoalID: 1, Assignee: "Ana", Quantity: 3}
	mockDB.On("GetContributionByID", int64(1)).Return(stored, nil)

	quantity := 0
	_, err := svc.UpdateContribution(1, contributions.ContributionUpdate{Quantity: &quantity})
	assert.ErrorIs(t, err, contributions.ErrQuantityTooLow)
	mockDB.AssertNotCalled(t, "UpdateContribution", mock.Anything)
}

func TestUpdateContributionNotFound(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	mockDB.On("GetContributionByID", int64(99)).Return(nil, sql.ErrNoRows)

	done := true
	_, err := svc.UpdateContribution(99, contributions.ContributionUpdate{Done: &done})
	assert.ErrorIs(t, err, contributions.ErrNotFound)
}

func TestListContributionsByEvent(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	stored := []models.Contribution{{ID: 1, GoalID: 10, Assignee: "Ana", Quantity: 3}}
	mockDB.On("GoalIDsByEvent", int64(1)).Return([]int64{10, 11}, nil)
	mockDB.On("ListContributionsByGoals", []int64{10, 11}).Return(stored, nil)

	list, err := svc.ListContributionsByEvent(1)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	mockDB.AssertExpectations(t)
}

func TestListContributionsByEventWithoutGoals(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	mockDB.On("GoalIDsByEvent", int64(5)).Return([]int64{}, nil)

	list, err := svc.ListContributionsByEvent(5)
	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	// No membership query for an empty goal set
	mockDB.AssertNotCalled(t, "ListContributionsByGoals", mock.Anything)
}

func TestDeleteContribution(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	stored := &models.Contribution{ID: 1, GoalID: 1, Assignee: "Ana", Quantity: 3}
	mockDB.On("GetContributionByID", int64(1)).Return(stored, nil)
	mockDB.On("DeleteContribution", int64(1)).Return(nil)

	assert.NoError(t, svc.DeleteContribution(1))
	mockDB.AssertExpectations(t)
}

func TestDeleteContributionNotFound(t *testing.T) {
	mockDB := new(MockContributionDBLayer)
	svc := contributions.NewContributionService(mockDB)

	mockDB.On("GetContributionByID", int64(99)).Return(nil, sql.ErrNoRows)

	assert.ErrorIs(t, svc.DeleteContribution(99), contributions.ErrNotFound)
	mockDB.AssertNotCalled(t, "DeleteContribution", mock.Anything)
}
