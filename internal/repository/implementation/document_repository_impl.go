package implementation

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/mapper"
	"notealog-ai-be/internal/model"
	"notealog-ai-be/internal/repository/contract"
	"notealog-ai-be/pkg/embedding"
)

// rrfSmoothing is the standard reciprocal-rank-fusion constant: fused score
// per channel is 1 / (rrfSmoothing + rank).
const rrfSmoothing = 60

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) GetByIds(ctx context.Context, ids []string) ([]*entity.Document, error) {
	var models []*model.DocumentEmbedding
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Document, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

// Upsert writes documents with overwrite-on-conflict semantics: an existing
// row with the same id is fully replaced, vectors included.
func (r *DocumentRepositoryImpl) Upsert(ctx context.Context, documents []*entity.Document) error {
	models := make([]*model.DocumentEmbedding, len(documents))
	for i, d := range documents {
		models[i] = r.mapper.ToModel(d)
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(models).Error
}

func (r *DocumentRepositoryImpl) DeleteByIds(ctx context.Context, ids []string) error {
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.DocumentEmbedding{}).Error
}

// HybridSearch ranks each channel separately (cosine distance for dense,
// inner product for sparse) and fuses with reciprocal rank fusion in SQL.
// Ties keep the store's result order; no re-ranking happens in Go.
func (r *DocumentRepositoryImpl) HybridSearch(ctx context.Context, dense []float32, sparse embedding.SparseVector, limit int) ([]*contract.ScoredDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	denseVec := pgvector.NewVector(dense)
	sparseVec := pgvector.NewSparseVectorFromMap(sparse, model.SparseDimensions)

	type result struct {
		model.DocumentEmbedding
		Score float64
	}
	var results []result

	query := `
WITH dense_ranked AS (
    SELECT id, RANK() OVER (ORDER BY embedding <=> ?) AS rank
    FROM document_embeddings
    ORDER BY embedding <=> ?
    LIMIT ?
),
sparse_ranked AS (
    SELECT id, RANK() OVER (ORDER BY sparse_embedding <#> ?) AS rank
    FROM document_embeddings
    ORDER BY sparse_embedding <#> ?
    LIMIT ?
)
SELECT d.*,
       COALESCE(1.0 / (? + dense_ranked.rank), 0.0) +
       COALESCE(1.0 / (? + sparse_ranked.rank), 0.0) AS score
FROM dense_ranked
FULL OUTER JOIN sparse_ranked ON dense_ranked.id = sparse_ranked.id
JOIN document_embeddings d ON d.id = COALESCE(dense_ranked.id, sparse_ranked.id)
ORDER BY score DESC
LIMIT ?`

	err := r.db.WithContext(ctx).
		Raw(query,
			denseVec, denseVec, limit,
			sparseVec, sparseVec, limit,
			rrfSmoothing, rrfSmoothing, limit,
		).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredDocument, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredDocument{
			Document: r.mapper.ToEntity(&res.DocumentEmbedding),
			Score:    res.Score,
		}
	}
	return scored, nil
}

func (r *DocumentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DocumentEmbedding{}).Count(&count).Error
	return count, err
}
