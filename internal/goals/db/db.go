package db

import (
	"context"

	"github.com/uptrace/bun"

	"eventbite/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) ListGoalsByEvent(eventID int64) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := d.Bun.NewSelect().
		Model(&goals).
		Where("event_id = ?", eventID).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (d *DB) GetGoalByID(id int64) (*models.Goal, error) {
	var goal models.Goal
	err := d.Bun.NewSelect().
		Model(&goal).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (d *DB) CreateGoal(goal *models.Goal) error {
	_, err := d.Bun.NewInsert().Model(goal).Exec(context.Background())
	return err
}

func (d *DB) DeleteGoal(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Goal)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteContributionsByGoal(goalID int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Contribution)(nil)).
		Where("goal_id = ?", goalID).
		Exec(context.Background())
	return err
}

// CountGoals returns the total goal count across all events, used by the
// optional anti-spam cap.
func (d *DB) CountGoals() (int, error) {
	return d.Bun.NewSelect().
		Model((*models.Goal)(nil)).
		Count(context.Background())
}

func (d *DB) EventExists(eventID int64) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Event)(nil)).
		Where("id = ?", eventID).
		Exists(context.Background())
}
