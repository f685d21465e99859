package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notealog-ai-be/internal/apperror"
	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/repository/unitofwork"
	"notealog-ai-be/pkg/embedding"
	"notealog-ai-be/pkg/markdown"
)

type IEmbeddingService interface {
	Create(ctx context.Context, content string, metadata map[string]string) (string, error)
	Update(ctx context.Context, documentId string, newContent string) (*entity.Document, error)
	Delete(ctx context.Context, documentId string) error
}

type embeddingService struct {
	uowFactory            unitofwork.RepositoryFactory
	embeddingProvider     embedding.Provider
	metadataFieldsToEmbed []string
}

func NewEmbeddingService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	metadataFieldsToEmbed []string,
) IEmbeddingService {
	return &embeddingService{
		uowFactory:            uowFactory,
		embeddingProvider:     embeddingProvider,
		metadataFieldsToEmbed: metadataFieldsToEmbed,
	}
}

// buildEmbeddingInput folds the configured metadata fields into the text that
// gets embedded, so title/folder influence similarity and not just the stored
// payload. Field order is fixed by configuration to keep the derived document
// id stable.
func (s *embeddingService) buildEmbeddingInput(plainContent string, metadata map[string]string) string {
	var sb strings.Builder
	for _, field := range s.metadataFieldsToEmbed {
		if value := metadata[field]; value != "" {
			sb.WriteString(value)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(plainContent)
	return sb.String()
}

// embedBoth computes the two channels before anything is written: an embedder
// failure on either channel means no write at all, never a half-updated
// document.
func (s *embeddingService) embedBoth(input string) ([]float32, embedding.SparseVector, error) {
	dense, err := s.embeddingProvider.EmbedDense(input)
	if err != nil {
		return nil, nil, apperror.NewEmbeddingError("dense", err)
	}
	sparse, err := s.embeddingProvider.EmbedSparse(input)
	if err != nil {
		return nil, nil, apperror.NewEmbeddingError("sparse", err)
	}
	return dense, sparse, nil
}

func (s *embeddingService) Create(ctx context.Context, content string, metadata map[string]string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("content must not be empty: %w", apperror.ErrInvalidInput)
	}

	plain := markdown.ToPlainText(content)
	input := s.buildEmbeddingInput(plain, metadata)

	dense, sparse, err := s.embedBoth(input)
	if err != nil {
		return "", err
	}

	meta := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}

	doc := &entity.Document{
		Id:              entity.ComputeDocumentId(input),
		Content:         plain,
		Metadata:        meta,
		Embedding:       dense,
		SparseEmbedding: sparse,
		CreatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().Upsert(ctx, []*entity.Document{doc}); err != nil {
		return "", apperror.NewStoreError("upsert document", err)
	}

	return doc.Id, nil
}

func (s *embeddingService) Update(ctx context.Context, documentId string, newContent string) (*entity.Document, error) {
	if documentId == "" {
		return nil, fmt.Errorf("document id must not be empty: %w", apperror.ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().GetByIds(ctx, []string{documentId})
	if err != nil {
		return nil, apperror.NewStoreError("get document", err)
	}
	if len(docs) == 0 {
		return nil, apperror.NewNotFound("document", documentId)
	}
	doc := docs[0]

	plain := markdown.ToPlainText(newContent)
	metadata := make(map[string]string, len(s.metadataFieldsToEmbed))
	for _, field := range s.metadataFieldsToEmbed {
		metadata[field] = doc.MetadataString(field)
	}
	input := s.buildEmbeddingInput(plain, metadata)

	// Both channels are recomputed together; a document whose dense vector
	// reflects the new content while the sparse one is stale must never be
	// the persisted state.
	dense, sparse, err := s.embedBoth(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc.Content = plain
	doc.Embedding = dense
	doc.SparseEmbedding = sparse
	doc.UpdatedAt = &now

	if err := uow.DocumentRepository().Upsert(ctx, []*entity.Document{doc}); err != nil {
		return nil, apperror.NewStoreError("upsert document", err)
	}

	return doc, nil
}

// Delete removes the document from the index. Deleting an id that is already
// gone is not an error; callers must not rely on it signaling presence.
func (s *embeddingService) Delete(ctx context.Context, documentId string) error {
	if documentId == "" {
		return fmt.Errorf("document id must not be empty: %w", apperror.ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentRepository().DeleteByIds(ctx, []string{documentId}); err != nil {
		return apperror.NewStoreError("delete document", err)
	}
	return nil
}
