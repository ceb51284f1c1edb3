package models

import "github.com/uptrace/bun"

// Contribution is a pledge of quantity by an assignee toward a goal.
type Contribution struct {
	bun.BaseModel `bun:"table:contributions"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	GoalID   int64  `bun:"goal_id,notnull" json:"goal_id"`
	Assignee string `bun:"assignee,notnull" json:"assignee"`
	Quantity int    `bun:"quantity,notnull" json:"quantity"`
	Done     bool   `bun:"done,notnull,default:false" json:"done"`
}
