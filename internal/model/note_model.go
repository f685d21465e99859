package model

import (
	"time"
)

type Note struct {
	Id           string `gorm:"type:text;primaryKey"`
	Title        string `gorm:"type:text"`
	Content      string `gorm:"type:text"`
	FolderId     string `gorm:"type:text;index"`
	EmbeddingsId string `gorm:"type:text;index"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (Note) TableName() string {
	return "notes"
}
