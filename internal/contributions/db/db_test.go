package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"eventbite/internal/contributions/db"
	"eventbite/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	for _, table := range []interface{}{
		(*models.Event)(nil),
		(*models.Goal)(nil),
		(*models.Contribution)(nil),
	} {
		_, err = bunDB.NewCreateTable().Model(table).Exec(context.Background())
		if err != nil {
			t.Fatalf("Failed to create table for %T: %v", table, err)
		}
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func seedGoal(t *testing.T, bunDB *bun.DB, eventID int64) *models.Goal {
	ctx := context.Background()
	event := &models.Event{Name: "Picnic", AdminPassword: "abc"}
	if eventID == 0 {
		_, err := bunDB.NewInsert().Model(event).Exec(ctx)
		require.NoError(t, err)
		eventID = event.ID
	}
	goal := &models.Goal{Name: "Chips", TargetQuantity: 10, Unit: "Units", Category: "Food", Priority: "Normal", EventID: eventID}
	_, err := bunDB.NewInsert().Model(goal).Exec(ctx)
	require.NoError(t, err)
	return goal
}

func TestCreateAndGetContribution(t *testing.T) {
	contributionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	goal := seedGoal(t, bunDB, 0)

	contribution := &models.Contribution{GoalID: goal.ID, Assignee: "Ana", Quantity: 3}
	require.NoError(t, contributionDB.CreateContribution(contribution))
	assert.NotZero(t, contribution.ID)

	fetched, err := contributionDB.GetContributionByID(contribution.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ana", fetched.Assignee)
	assert.Equal(t, 3, fetched.Quantity)
	assert.False(t, fetched.Done)

	_, err = contributionDB.GetContributionByID(999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpdateContribution(t *testing.T) {
	contributionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	goal := seedGoal(t, bunDB, 0)

	contribution := &models.Contribution{GoalID: goal.ID, Assignee: "Ana", Quantity: 3}
	require.NoError(t, contributionDB.CreateContribution(contribution))

	contribution.Done = true
	require.NoError(t, contributionDB.UpdateContribution(contribution))

	fetched, err := contributionDB.GetContributionByID(contribution.ID)
	assert.NoError(t, err)
	assert.True(t, fetched.Done)
	assert.Equal(t, 3, fetched.Quantity)
	assert.Equal(t, "Ana", fetched.Assignee)
}

func TestListContributionsByGoals(t *testing.T) {
	contributionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	goal1 := seedGoal(t, bunDB, 0)
	goal2 := seedGoal(t, bunDB, goal1.EventID)

	require.NoError(t, contributionDB.CreateContribution(&models.Contribution{GoalID: goal1.ID, Assignee: "Ana", Quantity: 3}))
	require.NoError(t, contributionDB.CreateContribution(&models.Contribution{GoalID: goal2.ID, Assignee: "Luis", Quantity: 2}))

	list, err := contributionDB.ListContributionsByGoals([]int64{goal1.ID})
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Assignee)

	list, err = contributionDB.ListContributionsByGoals([]int64{goal1.ID, goal2.ID})
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	// Empty id set returns immediately
	list, err = contributionDB.ListContributionsByGoals(nil)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestGoalIDsByEventAndGoalExists(t *testing.T) {
	contributionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	goal := seedGoal(t, bunDB, 0)

	ids, err := contributionDB.GoalIDsByEvent(goal.EventID)
	assert.NoError(t, err)
	assert.Equal(t, []int64{goal.ID}, ids)

	exists, err := contributionDB.GoalExists(goal.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = contributionDB.GoalExists(999)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteContribution(t *testing.T) {
	contributionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	goal := seedGoal(t, bunDB, 0)

	contribution := &models.Contribution{GoalID: goal.ID, Assignee: "Ana", Quantity: 3}
	require.NoError(t, contributionDB.CreateContribution(contribution))

	require.NoError(t, contributionDB.DeleteContribution(contribution.ID))

	_, err := contributionDB.GetContributionByID(contribution.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
