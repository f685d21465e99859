package dto

// NoteAssignment records one note placed into a folder during a run.
type NoteAssignment struct {
	NoteId   string `json:"note_id"`
	FolderId string `json:"folder_id"`
	Category string `json:"category"`
}

// CategorizeRunResponse is the report of one auto-categorization run.
// Categories is the final vocabulary in insertion order: persisted folder
// names first, then every category the model coined during the run.
type CategorizeRunResponse struct {
	ScannedNotes int              `json:"scanned_notes"`
	Assigned     []NoteAssignment `json:"assigned"`
	Skipped      int              `json:"skipped"`
	Categories   []string         `json:"categories"`
}
