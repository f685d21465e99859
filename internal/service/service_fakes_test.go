package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/repository/contract"
	"notealog-ai-be/internal/repository/specification"
	"notealog-ai-be/internal/repository/unitofwork"
	"notealog-ai-be/pkg/embedding"
	"notealog-ai-be/pkg/events"
	"notealog-ai-be/pkg/llm"
)

// --- In-memory repositories ---

type fakeNoteRepository struct {
	notes      map[string]*entity.Note
	updateErr  error
	updateLog  []string
	findAllErr error
}

func newFakeNoteRepository() *fakeNoteRepository {
	return &fakeNoteRepository{notes: map[string]*entity.Note{}}
}

func (r *fakeNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	var folderFilter string
	for _, spec := range specs {
		if byFolder, ok := spec.(specification.ByFolderId); ok {
			folderFilter = byFolder.FolderId
		}
	}
	// Map iteration order is random; tests that care about order seed a
	// single note per assertion or check set membership.
	out := make([]*entity.Note, 0, len(r.notes))
	for _, note := range r.notes {
		if folderFilter != "" && note.FolderId != folderFilter {
			continue
		}
		out = append(out, note)
	}
	return out, nil
}

func (r *fakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.notes[note.Id] = note
	return nil
}

func (r *fakeNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	r.updateLog = append(r.updateLog, note.Id)
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.notes[note.Id]; !ok {
		return errors.New("note not found")
	}
	r.notes[note.Id] = note
	return nil
}

func (r *fakeNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeFolderRepository struct {
	mu          sync.Mutex
	folders     map[string]*entity.Folder // keyed by name
	createCalls int
}

func newFakeFolderRepository(seed ...*entity.Folder) *fakeFolderRepository {
	r := &fakeFolderRepository{folders: map[string]*entity.Folder{}}
	for _, folder := range seed {
		r.folders[folder.Name] = folder
	}
	return r
}

func (r *fakeFolderRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeFolderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Folder, 0, len(r.folders))
	for _, folder := range r.folders {
		out = append(out, folder)
	}
	return out, nil
}

func (r *fakeFolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.folders[folder.Name]; exists {
		return errors.New("duplicate folder name")
	}
	r.folders[folder.Name] = folder
	return nil
}

func (r *fakeFolderRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if folder, ok := r.folders[name]; ok {
		return folder, nil
	}
	r.createCalls++
	folder := &entity.Folder{
		Id:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	r.folders[name] = folder
	return folder, nil
}

func (r *fakeFolderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.folders)), nil
}

type fakeDocumentRepository struct {
	docs map[string]*entity.Document

	searchResults []*contract.ScoredDocument
	searchErr     error
	searchCalls   int
	lastDense     []float32
	lastSparse    embedding.SparseVector
	lastLimit     int

	upsertErr error
	getErr    error
}

func newFakeDocumentRepository() *fakeDocumentRepository {
	return &fakeDocumentRepository{docs: map[string]*entity.Document{}}
}

func (r *fakeDocumentRepository) GetByIds(ctx context.Context, ids []string) ([]*entity.Document, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	out := make([]*entity.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := r.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepository) Upsert(ctx context.Context, documents []*entity.Document) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	for _, doc := range documents {
		r.docs[doc.Id] = doc
	}
	return nil
}

func (r *fakeDocumentRepository) DeleteByIds(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(r.docs, id)
	}
	return nil
}

func (r *fakeDocumentRepository) HybridSearch(ctx context.Context, dense []float32, sparse embedding.SparseVector, limit int) ([]*contract.ScoredDocument, error) {
	r.searchCalls++
	r.lastDense = dense
	r.lastSparse = sparse
	r.lastLimit = limit
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	if limit < len(r.searchResults) {
		return r.searchResults[:limit], nil
	}
	return r.searchResults, nil
}

func (r *fakeDocumentRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

// --- Unit of work ---

type fakeUnitOfWork struct {
	noteRepo   *fakeNoteRepository
	folderRepo *fakeFolderRepository
	docRepo    *fakeDocumentRepository

	beginCalls    int
	commitCalls   int
	rollbackCalls int
	beginErr      error
	commitErr     error
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.beginCalls++
	return u.beginErr
}

func (u *fakeUnitOfWork) Commit() error {
	u.commitCalls++
	return u.commitErr
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rollbackCalls++
	return nil
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository         { return u.noteRepo }
func (u *fakeUnitOfWork) FolderRepository() contract.FolderRepository     { return u.folderRepo }
func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository { return u.docRepo }

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		uow: &fakeUnitOfWork{
			noteRepo:   newFakeNoteRepository(),
			folderRepo: newFakeFolderRepository(),
			docRepo:    newFakeDocumentRepository(),
		},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// --- Embedding provider ---

type fakeEmbeddingProvider struct {
	denseInputs  []string
	sparseInputs []string
	denseErr     error
	sparseErr    error
}

func (p *fakeEmbeddingProvider) EmbedDense(text string) ([]float32, error) {
	p.denseInputs = append(p.denseInputs, text)
	if p.denseErr != nil {
		return nil, p.denseErr
	}
	// Length-derived so different inputs get different vectors.
	return []float32{float32(len(text)), 1}, nil
}

func (p *fakeEmbeddingProvider) EmbedSparse(text string) (embedding.SparseVector, error) {
	p.sparseInputs = append(p.sparseInputs, text)
	if p.sparseErr != nil {
		return nil, p.sparseErr
	}
	return embedding.SparseVector{0: float32(len(text))}, nil
}

func (p *fakeEmbeddingProvider) WarmUp() error { return nil }

// --- LLM provider ---

type llmCall struct {
	Prompt  string
	Options llm.Options
}

type fakeLLMProvider struct {
	calls   []llmCall
	respond func(prompt string) (string, error)
}

func (p *fakeLLMProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	options := llm.Options{Temperature: -1} // sentinel: detect unset
	for _, opt := range opts {
		opt(&options)
	}
	p.calls = append(p.calls, llmCall{Prompt: prompt, Options: options})
	if p.respond != nil {
		return p.respond(prompt)
	}
	return "", fmt.Errorf("no responder configured")
}

// --- Publisher, locker, logger ---

type fakePublisher struct {
	published  []events.Event
	publishErr error
}

func (p *fakePublisher) Publish(ctx context.Context, evt events.Event) error {
	p.published = append(p.published, evt)
	return p.publishErr
}

type fakeLocker struct {
	acquireResult bool
	acquireErr    error
	acquired      []string
	released      []string
}

func (l *fakeLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	l.acquired = append(l.acquired, key)
	return l.acquireResult, l.acquireErr
}

func (l *fakeLocker) Release(ctx context.Context, key string) error {
	l.released = append(l.released, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
