package db

import (
	"context"

	"github.com/uptrace/bun"

	"eventbite/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) ListContributions() ([]models.Contribution, error) {
	contributions := []models.Contribution{}
	err := d.Bun.NewSelect().
		Model(&contributions).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return contributions, nil
}

func (d *DB) ListContributionsByGoals(goalIDs []int64) ([]models.Contribution, error) {
	contributions := []models.Contribution{}
	if len(goalIDs) == 0 {
		return contributions, nil
	}
	err := d.Bun.NewSelect().
		Model(&contributions).
		Where("goal_id IN (?)", bun.In(goalIDs)).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return contributions, nil
}

func (d *DB) GetContributionByID(id int64) (*models.Contribution, error) {
	var contribution models.Contribution
	err := d.Bun.NewSelect().
		Model(&contribution).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

func (d *DB) CreateContribution(contribution *models.Contribution) error {
	_, err := d.Bun.NewInsert().Model(contribution).Exec(context.Background())
	return err
}

func (d *DB) UpdateContribution(contribution *models.Contribution) error {
	_, err := d.Bun.NewUpdate().
		Model(contribution).
		Column("assignee", "quantity", "done").
		Where("id = ?", contribution.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteContribution(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Contribution)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

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

func (d *DB) GoalExists(goalID int64) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Goal)(nil)).
		Where("id = ?", goalID).
		Exists(context.Background())
}
