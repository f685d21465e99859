package contract

import (
	"context"

	"notealog-ai-be/internal/entity"
	"notealog-ai-be/pkg/embedding"
)

// ScoredDocument pairs a document with its fused retrieval score.
type ScoredDocument struct {
	Document *entity.Document
	Score    float64
}

// DocumentRepository is the vector index capability surface: get-by-id,
// overwrite-on-conflict write, delete, and a fused dense+sparse similarity
// search. Fusion is the store's job; callers never re-rank.
type DocumentRepository interface {
	GetByIds(ctx context.Context, ids []string) ([]*entity.Document, error)
	Upsert(ctx context.Context, documents []*entity.Document) error
	DeleteByIds(ctx context.Context, ids []string) error
	HybridSearch(ctx context.Context, dense []float32, sparse embedding.SparseVector, limit int) ([]*ScoredDocument, error)
	Count(ctx context.Context) (int64, error)
}
