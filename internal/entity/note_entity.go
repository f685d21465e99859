package entity

import (
	"time"
)

// Note is a row from the notes app relational store. FolderId carries the
// "unassigned" sentinel until the categorizer assigns a real folder.
// EmbeddingsId links the note to its document in the vector index.
type Note struct {
	Id           string
	Title        string
	Content      string
	FolderId     string
	EmbeddingsId string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
