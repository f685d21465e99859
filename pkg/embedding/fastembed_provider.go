package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// FastembedProvider implements Provider against a fastembed inference server
// exposing a dense model (e.g. BAAI/bge-small-en-v1.5) and a sparse model
// (e.g. prithvida/Splade_PP_en_v1).
type FastembedProvider struct {
	BaseURL     string
	DenseModel  string
	SparseModel string
	Client      *http.Client

	warmOnce sync.Once
	warmErr  error
}

func NewFastembedProvider(baseURL, denseModel, sparseModel string) *FastembedProvider {
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}
	if denseModel == "" {
		denseModel = "BAAI/bge-small-en-v1.5"
	}
	if sparseModel == "" {
		sparseModel = "prithvida/Splade_PP_en_v1"
	}
	return &FastembedProvider{
		BaseURL:     baseURL,
		DenseModel:  denseModel,
		SparseModel: sparseModel,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type fastembedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type fastembedDenseResponse struct {
	Embedding []float64 `json:"embedding"`
}

type fastembedSparseResponse struct {
	Indices []int32   `json:"indices"`
	Values  []float32 `json:"values"`
}

func (p *FastembedProvider) post(path string, model string, text string) ([]byte, error) {
	reqBody := fastembedRequest{
		Model: model,
		Input: text,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s%s", p.BaseURL, path)
	resp, err := p.Client.Post(endpoint, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fastembed error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}
	return bodyBytes, nil
}

func (p *FastembedProvider) EmbedDense(text string) ([]float32, error) {
	bodyBytes, err := p.post("/embed", p.DenseModel, text)
	if err != nil {
		return nil, err
	}

	var denseResp fastembedDenseResponse
	if err := json.Unmarshal(bodyBytes, &denseResp); err != nil {
		return nil, err
	}

	values := make([]float32, len(denseResp.Embedding))
	for i, v := range denseResp.Embedding {
		values[i] = float32(v)
	}

	// Cosine distance in pgvector expects unit-length vectors
	return NormalizeVector(values), nil
}

func (p *FastembedProvider) EmbedSparse(text string) (SparseVector, error) {
	bodyBytes, err := p.post("/embed_sparse", p.SparseModel, text)
	if err != nil {
		return nil, err
	}

	var sparseResp fastembedSparseResponse
	if err := json.Unmarshal(bodyBytes, &sparseResp); err != nil {
		return nil, err
	}
	if len(sparseResp.Indices) != len(sparseResp.Values) {
		return nil, fmt.Errorf("fastembed sparse response mismatch: %d indices vs %d values",
			len(sparseResp.Indices), len(sparseResp.Values))
	}

	vec := make(SparseVector, len(sparseResp.Indices))
	for i, idx := range sparseResp.Indices {
		vec[idx] = sparseResp.Values[i]
	}
	return vec, nil
}

// WarmUp issues one throwaway embedding per channel so model load time is
// paid at startup instead of on the first user request. Subsequent calls are
// no-ops.
func (p *FastembedProvider) WarmUp() error {
	p.warmOnce.Do(func() {
		if _, err := p.EmbedDense("warm up"); err != nil {
			p.warmErr = fmt.Errorf("dense warm up: %w", err)
			return
		}
		if _, err := p.EmbedSparse("warm up"); err != nil {
			p.warmErr = fmt.Errorf("sparse warm up: %w", err)
		}
	})
	return p.warmErr
}
