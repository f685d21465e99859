package embedding

// SparseVector holds the non-zero weights of a lexical embedding, keyed by
// vocabulary index.
type SparseVector map[int32]float32

// Provider defines the interface for generating text embeddings on both
// channels. Implementations are stateless per call; WarmUp is called once
// before first use.
type Provider interface {
	EmbedDense(text string) ([]float32, error)
	EmbedSparse(text string) (SparseVector, error)
	WarmUp() error
}
