package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notealog-ai-be/internal/apperror"
	"notealog-ai-be/internal/entity"
	"notealog-ai-be/pkg/embedding"
)

func newEmbeddingServiceForTest() (IEmbeddingService, *fakeRepositoryFactory, *fakeEmbeddingProvider) {
	factory := newFakeFactory()
	provider := &fakeEmbeddingProvider{}
	svc := NewEmbeddingService(factory, provider, []string{entity.MetadataTitle, entity.MetadataFolder})
	return svc, factory, provider
}

func TestEmbeddingServiceCreate(t *testing.T) {
	svc, factory, provider := newEmbeddingServiceForTest()

	id, err := svc.Create(context.Background(), "# Heading\n\nSome **bold** content", map[string]string{
		entity.MetadataTitle:  "My Note",
		entity.MetadataFolder: "unassigned",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	// Metadata fields precede the content in the embedded text, in
	// configured order, and markup is stripped before embedding.
	expectedInput := "My Note\nunassigned\nHeading\n\nSome bold content"
	assert.Equal(t, []string{expectedInput}, provider.denseInputs)
	assert.Equal(t, []string{expectedInput}, provider.sparseInputs)
	assert.Equal(t, entity.ComputeDocumentId(expectedInput), id)

	doc, ok := factory.uow.docRepo.docs[id]
	assert.True(t, ok)
	assert.Equal(t, "Heading\n\nSome bold content", doc.Content)
	assert.NotEmpty(t, doc.Embedding)
	assert.NotEmpty(t, doc.SparseEmbedding)
	assert.Equal(t, "My Note", doc.MetadataString(entity.MetadataTitle))
}

func TestEmbeddingServiceCreateEmptyContent(t *testing.T) {
	svc, factory, _ := newEmbeddingServiceForTest()

	_, err := svc.Create(context.Background(), "   \n ", nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, factory.uow.docRepo.docs)
}

func TestEmbeddingServiceCreateSparseFailureWritesNothing(t *testing.T) {
	svc, factory, provider := newEmbeddingServiceForTest()
	provider.sparseErr = errors.New("splade unavailable")

	_, err := svc.Create(context.Background(), "content", nil)

	var embErr *apperror.EmbeddingError
	assert.ErrorAs(t, err, &embErr)
	assert.Equal(t, "sparse", embErr.Channel)
	assert.Empty(t, factory.uow.docRepo.docs, "a half-embedded document must never be written")
}

func TestEmbeddingServiceUpdateRefreshesBothVectors(t *testing.T) {
	svc, factory, provider := newEmbeddingServiceForTest()

	existing := &entity.Document{
		Id:      "doc-1",
		Content: "old content",
		Metadata: map[string]interface{}{
			entity.MetadataTitle:  "My Note",
			entity.MetadataFolder: "Recipes",
		},
		Embedding:       []float32{9, 9},
		SparseEmbedding: embedding.SparseVector{5: 9},
		CreatedAt:       time.Now().Add(-time.Hour),
	}
	factory.uow.docRepo.docs[existing.Id] = existing

	updated, err := svc.Update(context.Background(), "doc-1", "brand new content")
	assert.NoError(t, err)

	// Same row, both channels recomputed from the new text, metadata kept.
	assert.Equal(t, "doc-1", updated.Id)
	assert.Equal(t, "brand new content", updated.Content)
	assert.NotEqual(t, []float32{9, 9}, updated.Embedding)
	assert.NotEqual(t, embedding.SparseVector{5: 9}, updated.SparseEmbedding)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, "Recipes", updated.MetadataString(entity.MetadataFolder))

	expectedInput := "My Note\nRecipes\nbrand new content"
	assert.Equal(t, []string{expectedInput}, provider.denseInputs)
	assert.Equal(t, []string{expectedInput}, provider.sparseInputs)
}

func TestEmbeddingServiceUpdateNotFound(t *testing.T) {
	svc, _, _ := newEmbeddingServiceForTest()

	_, err := svc.Update(context.Background(), "missing", "text")
	assert.True(t, apperror.IsNotFound(err))
}

func TestEmbeddingServiceUpdateEmbedFailureLeavesDocumentUntouched(t *testing.T) {
	svc, factory, provider := newEmbeddingServiceForTest()

	existing := &entity.Document{
		Id:              "doc-1",
		Content:         "old content",
		Embedding:       []float32{9, 9},
		SparseEmbedding: embedding.SparseVector{5: 9},
	}
	factory.uow.docRepo.docs[existing.Id] = existing
	provider.denseErr = errors.New("embedder down")

	_, err := svc.Update(context.Background(), "doc-1", "new content")

	var embErr *apperror.EmbeddingError
	assert.ErrorAs(t, err, &embErr)

	stored := factory.uow.docRepo.docs["doc-1"]
	assert.Equal(t, []float32{9, 9}, stored.Embedding)
	assert.Equal(t, embedding.SparseVector{5: 9}, stored.SparseEmbedding)
}

func TestEmbeddingServiceDelete(t *testing.T) {
	svc, factory, _ := newEmbeddingServiceForTest()
	factory.uow.docRepo.docs["doc-1"] = &entity.Document{Id: "doc-1"}

	assert.NoError(t, svc.Delete(context.Background(), "doc-1"))
	assert.Empty(t, factory.uow.docRepo.docs)

	// Deleting an absent id is not an error.
	assert.NoError(t, svc.Delete(context.Background(), "doc-1"))
}

func TestEmbeddingServiceDeleteEmptyId(t *testing.T) {
	svc, _, _ := newEmbeddingServiceForTest()
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), apperror.ErrInvalidInput)
}
