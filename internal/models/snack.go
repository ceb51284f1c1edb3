package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Snack is a standalone named item with an assigned person and a free-form
// status. It has no relationship to events, goals or contributions.
type Snack struct {
	bun.BaseModel `bun:"table:snacks"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	Name           string    `bun:"name,notnull" json:"name"`
	Quantity       int       `bun:"quantity,notnull,default:1" json:"quantity"`
	AssignedPerson string    `bun:"assigned_person,notnull" json:"assigned_person"`
	Status         string    `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt      time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

const DefaultSnackStatus = "pending"
