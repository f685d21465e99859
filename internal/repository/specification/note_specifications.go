package specification

import "gorm.io/gorm"

// ByFolderId filters notes by their assigned folder (including the
// "unassigned" sentinel).
type ByFolderId struct {
	FolderId string
}

func (s ByFolderId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderId)
}

// ByName filters folders by exact name match.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
