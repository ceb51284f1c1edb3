package models

import "github.com/uptrace/bun"

// Goal is one desired item within an event. Target quantity must be
// positive; unit, category and priority fall back to defaults on create.
type Goal struct {
	bun.BaseModel `bun:"table:goals"`

	ID             int64  `bun:"id,pk,autoincrement" json:"id"`
	Name           string `bun:"name,notnull" json:"name"`
	TargetQuantity int    `bun:"target_quantity,notnull" json:"target_quantity"`
	Unit           string `bun:"unit,notnull,default:'Units'" json:"unit"`
	Category       string `bun:"category,notnull,default:'Food'" json:"category"`
	Priority       string `bun:"priority,notnull,default:'Normal'" json:"priority"`
	EventID        int64  `bun:"event_id,notnull" json:"event_id"`
}

const (
	DefaultGoalUnit     = "Units"
	DefaultGoalCategory = "Food"
	DefaultGoalPriority = "Normal"
)
