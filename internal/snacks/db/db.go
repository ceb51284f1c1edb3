package db

import (
	"context"

	"github.com/uptrace/bun"

	"eventbite/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) ListSnacks() ([]models.Snack, error) {
	snacks := []models.Snack{}
	err := d.Bun.NewSelect().
		Model(&snacks).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return snacks, nil
}

func (d *DB) GetSnackByID(id int64) (*models.Snack, error) {
	var snack models.Snack
	err := d.Bun.NewSelect().
		Model(&snack).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &snack, nil
}

func (d *DB) CreateSnack(snack *models.Snack) error {
	_, err := d.Bun.NewInsert().Model(snack).Exec(context.Background())
	return err
}

func (d *DB) UpdateSnack(snack *models.Snack) error {
	_, err := d.Bun.NewUpdate().
		Model(snack).
		Column("name", "quantity", "assigned_person", "status", "updated_at").
		Where("id = ?", snack.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteSnack(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Snack)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
