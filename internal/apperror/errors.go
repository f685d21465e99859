package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller mistakes (non-positive top_k, empty ids).
// Wrap it with context: fmt.Errorf("top_k must be positive: %w", ErrInvalidInput)
var ErrInvalidInput = errors.New("invalid input")

// NotFoundError indicates an operation addressed a document/note/folder
// id that does not exist.
type NotFoundError struct {
	Resource string
	Id       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.Id)
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, Id: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// EmbeddingError indicates the embedder failed to produce a vector.
// The document is never half-written when this is returned.
type EmbeddingError struct {
	Channel string // "dense" or "sparse"
	Err     error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("%s embedding failed: %v", e.Channel, e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

func NewEmbeddingError(channel string, err error) *EmbeddingError {
	return &EmbeddingError{Channel: channel, Err: err}
}

// GenerationError indicates the language model failed or returned unusable
// output (e.g. an empty completion).
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func NewGenerationError(reason string, err error) *GenerationError {
	return &GenerationError{Reason: reason, Err: err}
}

// NoSimilarDocumentsError indicates a similar-to-document query found nothing
// once the reference document itself was excluded.
type NoSimilarDocumentsError struct {
	DocumentId string
}

func (e *NoSimilarDocumentsError) Error() string {
	return fmt.Sprintf("no similar documents found for document id %s", e.DocumentId)
}

func NewNoSimilarDocuments(documentId string) *NoSimilarDocumentsError {
	return &NoSimilarDocumentsError{DocumentId: documentId}
}

// StoreError wraps persistence failures from the vector index or the
// relational store so callers can distinguish them from domain errors.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
