package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"notealog-ai-be/pkg/embedding"
)

// Metadata keys stored alongside a document. Title and folder are also folded
// into the embedding input, so they influence similarity, not just the
// payload.
const (
	MetadataTitle  = "title"
	MetadataFolder = "folder"
)

// Document is an entry in the vector index. Its vectors are always derived
// from the current Content plus the embedded metadata fields; an update
// rewrites the whole document so the two channels never diverge in freshness.
type Document struct {
	Id              string
	Content         string
	Metadata        map[string]interface{}
	Embedding       []float32
	SparseEmbedding embedding.SparseVector
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// ComputeDocumentId derives the opaque document id from the embedding input
// (normalized content with embedded metadata folded in). Re-indexing the same
// text lands on the same row, which gives Upsert its overwrite-on-conflict
// semantics.
func ComputeDocumentId(embeddingInput string) string {
	sum := sha256.Sum256([]byte(embeddingInput))
	return hex.EncodeToString(sum[:])
}

// MetadataString reads a metadata field as a string, tolerating absent keys
// and non-string values (metadata round-trips through JSONB).
func (d *Document) MetadataString(key string) string {
	if d.Metadata == nil {
		return ""
	}
	if v, ok := d.Metadata[key].(string); ok {
		return v
	}
	return ""
}
