package model

import (
	"time"
)

// Folder rows carry a unique index on name: get-or-create by name is
// check-then-act, and the constraint is what stops a concurrent run from
// creating the same category under two ids.
type Folder struct {
	Id        string `gorm:"type:text;primaryKey"`
	Name      string `gorm:"type:text;not null;uniqueIndex:idx_folders_name"`
	CreatedAt time.Time
}

func (Folder) TableName() string {
	return "folders"
}
