package entity

import "time"

// Folder is a named grouping a note is assigned to. Folder and category are
// synonymous in this system.
type Folder struct {
	Id        string
	Name      string
	CreatedAt time.Time
}
