package service

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	"notealog-ai-be/internal/apperror"
	"notealog-ai-be/internal/constant"
	"notealog-ai-be/internal/dto"
	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/repository/contract"
	"notealog-ai-be/internal/repository/unitofwork"
	"notealog-ai-be/pkg/embedding"
)

type IRetrievalService interface {
	QueryByText(ctx context.Context, text string, topK int) ([]*dto.RetrievalResult, error)
	QueryByDocument(ctx context.Context, documentId string, topK int) ([]*dto.RetrievalResult, error)
}

type retrievalService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	queryCache        *cache.Cache
	denseQueryPrefix  string
}

func NewRetrievalService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	queryCache *cache.Cache,
) IRetrievalService {
	return &retrievalService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		queryCache:        queryCache,
		denseQueryPrefix:  constant.DenseQueryPrefix,
	}
}

// embedQueryDense embeds query text on the dense channel, caching by exact
// text. Users retype the same search while browsing; the embedder round trip
// dominates query latency.
func (s *retrievalService) embedQueryDense(text string) ([]float32, error) {
	key := "dense:" + text
	if s.queryCache != nil {
		if cached, ok := s.queryCache.Get(key); ok {
			return cached.([]float32), nil
		}
	}
	vec, err := s.embeddingProvider.EmbedDense(s.denseQueryPrefix + text)
	if err != nil {
		return nil, apperror.NewEmbeddingError("dense", err)
	}
	if s.queryCache != nil {
		s.queryCache.Set(key, vec, cache.DefaultExpiration)
	}
	return vec, nil
}

func (s *retrievalService) embedQuerySparse(text string) (embedding.SparseVector, error) {
	key := "sparse:" + text
	if s.queryCache != nil {
		if cached, ok := s.queryCache.Get(key); ok {
			return cached.(embedding.SparseVector), nil
		}
	}
	vec, err := s.embeddingProvider.EmbedSparse(text)
	if err != nil {
		return nil, apperror.NewEmbeddingError("sparse", err)
	}
	if s.queryCache != nil {
		s.queryCache.Set(key, vec, cache.DefaultExpiration)
	}
	return vec, nil
}

func (s *retrievalService) QueryByText(ctx context.Context, text string, topK int) ([]*dto.RetrievalResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("top_k must be positive, got %d: %w", topK, apperror.ErrInvalidInput)
	}

	// The two query embeddings are independent; neither depends on the other.
	dense, err := s.embedQueryDense(text)
	if err != nil {
		return nil, err
	}
	sparse, err := s.embedQuerySparse(text)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.DocumentRepository().HybridSearch(ctx, dense, sparse, topK)
	if err != nil {
		return nil, apperror.NewStoreError("hybrid search", err)
	}

	return toRetrievalResults(scored), nil
}

// QueryByDocument reuses the stored vectors of the reference document (no
// re-embedding), over-fetches by one to compensate for the document trivially
// matching itself, and strips the reference id from the results.
func (s *retrievalService) QueryByDocument(ctx context.Context, documentId string, topK int) ([]*dto.RetrievalResult, error) {
	if documentId == "" {
		return nil, fmt.Errorf("document id must not be empty: %w", apperror.ErrInvalidInput)
	}
	if topK <= 0 {
		return nil, fmt.Errorf("top_k must be positive, got %d: %w", topK, apperror.ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().GetByIds(ctx, []string{documentId})
	if err != nil {
		return nil, apperror.NewStoreError("get document", err)
	}
	if len(docs) == 0 {
		return nil, apperror.NewNotFound("document", documentId)
	}
	reference := docs[0]

	scored, err := uow.DocumentRepository().HybridSearch(ctx, reference.Embedding, reference.SparseEmbedding, topK+1)
	if err != nil {
		return nil, apperror.NewStoreError("hybrid search", err)
	}

	results := make([]*dto.RetrievalResult, 0, topK)
	for _, sd := range scored {
		if sd.Document.Id == documentId {
			continue
		}
		results = append(results, toRetrievalResult(sd.Document, sd.Score))
		if len(results) == topK {
			break
		}
	}

	if len(results) == 0 {
		return nil, apperror.NewNoSimilarDocuments(documentId)
	}
	return results, nil
}

func toRetrievalResult(doc *entity.Document, score float64) *dto.RetrievalResult {
	return &dto.RetrievalResult{
		DocumentId:     doc.Id,
		Score:          score,
		Category:       doc.MetadataString(entity.MetadataFolder),
		ContentPreview: truncateRunes(doc.Content, constant.ContentPreviewLimit),
	}
}

func toRetrievalResults(scored []*contract.ScoredDocument) []*dto.RetrievalResult {
	results := make([]*dto.RetrievalResult, len(scored))
	for i, sd := range scored {
		results[i] = toRetrievalResult(sd.Document, sd.Score)
	}
	return results
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
