package mapper

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/model"
	"notealog-ai-be/pkg/embedding"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToModel(e *entity.Document) *model.DocumentEmbedding {
	mod := &model.DocumentEmbedding{
		Id:              e.Id,
		Content:         e.Content,
		Metadata:        datatypes.JSONMap(e.Metadata),
		Embedding:       pgvector.NewVector(e.Embedding),
		SparseEmbedding: pgvector.NewSparseVectorFromMap(e.SparseEmbedding, model.SparseDimensions),
		CreatedAt:       e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		mod.UpdatedAt = *e.UpdatedAt
	}
	return mod
}

func (m *DocumentMapper) ToEntity(mod *model.DocumentEmbedding) *entity.Document {
	sparse := make(embedding.SparseVector, len(mod.SparseEmbedding.Indices()))
	values := mod.SparseEmbedding.Values()
	for i, idx := range mod.SparseEmbedding.Indices() {
		sparse[idx] = values[i]
	}

	updatedAt := mod.UpdatedAt
	return &entity.Document{
		Id:              mod.Id,
		Content:         mod.Content,
		Metadata:        map[string]interface{}(mod.Metadata),
		Embedding:       mod.Embedding.Slice(),
		SparseEmbedding: sparse,
		CreatedAt:       mod.CreatedAt,
		UpdatedAt:       &updatedAt,
	}
}
