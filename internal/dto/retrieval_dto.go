package dto

// RetrievalResult is one row of a fused hybrid search, ordered by
// non-increasing score.
type RetrievalResult struct {
	DocumentId     string  `json:"document_id"`
	Score          float64 `json:"score"`
	Category       string  `json:"category,omitempty"`
	ContentPreview string  `json:"content_preview,omitempty"`
}
