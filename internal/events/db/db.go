package db

import (
	"context"

	"github.com/uptrace/bun"

	"eventbite/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) ListEvents() ([]models.Event, error) {
	events := []models.Event{}
	err := d.Bun.NewSelect().
		Model(&events).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetEventByID(id int64) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DB) CreateEvent(event *models.Event) error {
	_, err := d.Bun.NewInsert().Model(event).Exec(context.Background())
	return err
}

func (d *DB) UpdateEvent(event *models.Event) error {
	_, err := d.Bun.NewUpdate().
		Model(event).
		Column("name", "date").
		Where("id = ?", event.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteEvent(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// GoalIDsByEvent returns the ids of all goals owned by an event. The
// cascade paths use it to scope contribution deletes.
func (d *DB) GoalIDsByEvent(eventID int64) ([]int64, error) {
	var ids []int64
	err := d.Bun.NewSelect().
		Model((*models.Goal)(nil)).
		Column("id").
		Where("event_id = ?", eventID).
		Scan(context.Background(), &ids)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *DB) DeleteGoalsByEvent(eventID int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Goal)(nil)).
		Where("event_id = ?", eventID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteContributionsByGoals(goalIDs []int64) error {
	if len(goalIDs) == 0 {
		return nil
	}
	_, err := d.Bun.NewDelete().
		Model((*models.Contribution)(nil)).
		Where("goal_id IN (?)", bun.In(goalIDs)).
		Exec(context.Background())
	return err
}
