package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

const (
	// DenseDimensions matches BAAI/bge-small-en-v1.5
	DenseDimensions = 384
	// SparseDimensions matches the SPLADE vocabulary (bert-base-uncased)
	SparseDimensions = 30522
)

type DocumentEmbedding struct {
	Id              string                `gorm:"type:text;primaryKey"` // content-hash derived
	Content         string                `gorm:"type:text"`
	Metadata        datatypes.JSONMap     `gorm:"type:jsonb"`
	Embedding       pgvector.Vector       `gorm:"type:vector(384)"`
	SparseEmbedding pgvector.SparseVector `gorm:"type:sparsevec(30522)"`
	CreatedAt       time.Time             `gorm:"autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"autoUpdateTime"`
}

func (DocumentEmbedding) TableName() string {
	return "document_embeddings"
}
