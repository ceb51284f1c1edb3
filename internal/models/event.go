package models

import "github.com/uptrace/bun"

// Event is the top-level container: one fundraising or collection occasion
// owning goals. The admin password is compared exactly on verification and
// is never serialized.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID            int64  `bun:"id,pk,autoincrement" json:"id"`
	Name          string `bun:"name,notnull" json:"name"`
	Date          string `bun:"date,nullzero,default:''" json:"date"`
	AdminPassword string `bun:"admin_password,notnull" json:"-"`
}
