package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notealog-ai-be/internal/apperror"
	"notealog-ai-be/internal/constant"
	"notealog-ai-be/internal/dto"
	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/pkg/logger"
	"notealog-ai-be/internal/repository/specification"
	"notealog-ai-be/internal/repository/unitofwork"
	"notealog-ai-be/pkg/events"
	"notealog-ai-be/pkg/llm"
	"notealog-ai-be/pkg/prompt"
	"notealog-ai-be/pkg/runlock"
)

// ErrRunInProgress is returned when a categorization run is refused because
// another run holds the lock.
var ErrRunInProgress = errors.New("categorization run already in progress")

const (
	categorizeRunLockKey = "categorize:run"
	categorizeRunLockTTL = 15 * time.Minute
)

type ICategorizeService interface {
	Run(ctx context.Context) (*dto.CategorizeRunResponse, error)
}

type CategorizeConfig struct {
	ModelName        string
	UseSearchContext bool
	SearchTopK       int
}

type categorizeService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	retrievalService IRetrievalService
	publisherService IPublisherService
	locker           runlock.Locker
	logger           logger.ILogger
	cfg              CategorizeConfig

	plainBuilder  *prompt.Builder
	searchBuilder *prompt.Builder
}

func NewCategorizeService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	retrievalService IRetrievalService,
	publisherService IPublisherService,
	locker runlock.Locker,
	log logger.ILogger,
	cfg CategorizeConfig,
) ICategorizeService {
	if cfg.SearchTopK <= 0 {
		cfg.SearchTopK = 3
	}
	return &categorizeService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		retrievalService: retrievalService,
		publisherService: publisherService,
		locker:           locker,
		logger:           log,
		cfg:              cfg,
		plainBuilder:     prompt.NewBuilder(constant.CategorizePromptTemplate),
		searchBuilder:    prompt.NewBuilder(constant.CategorizeWithSearchPromptTemplate),
	}
}

// Run assigns a category to every note still in the "unassigned" sentinel
// folder. The vocabulary grows as the run proceeds: a category the model
// coins for note i is offered in the prompt for every later note, which is
// what keeps one batch internally consistent (and makes the run
// order-sensitive).
//
// Per-note failures are logged and skipped rather than aborting the batch;
// one unparseable note must not block the rest. No retries here; callers
// wanting resilience re-run, which is safe because assigned notes are
// filtered out.
func (c *categorizeService) Run(ctx context.Context) (*dto.CategorizeRunResponse, error) {
	acquired, err := c.locker.TryAcquire(ctx, categorizeRunLockKey, categorizeRunLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !acquired {
		return nil, ErrRunInProgress
	}
	defer func() {
		if err := c.locker.Release(ctx, categorizeRunLockKey); err != nil {
			c.logger.Warn("categorize", "Failed to release run lock", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Working set: only never-categorized notes, oldest first so re-runs
	// process in a stable order.
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByFolderId{FolderId: constant.UnassignedFolderId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.NewStoreError("load uncategorized notes", err)
	}

	folders, err := uow.FolderRepository().FindAll(ctx)
	if err != nil {
		return nil, apperror.NewStoreError("load folders", err)
	}

	seed := make([]string, 0, len(folders))
	for _, folder := range folders {
		// The sentinel is infrastructure, not a category the model may pick.
		if folder.Id == constant.UnassignedFolderId || folder.Name == constant.UnassignedFolderName {
			continue
		}
		seed = append(seed, folder.Name)
	}
	vocabulary := NewVocabulary(seed)

	response := &dto.CategorizeRunResponse{
		ScannedNotes: len(notes),
		Assigned:     make([]dto.NoteAssignment, 0, len(notes)),
	}

	for _, note := range notes {
		categoryName, err := c.categorizeNote(ctx, note, vocabulary)
		if err != nil {
			c.logger.Warn("categorize", "Skipping note", map[string]interface{}{
				"note_id": note.Id,
				"title":   note.Title,
				"error":   err.Error(),
			})
			response.Skipped++
			continue
		}

		vocabulary.Add(categoryName)

		folderId, err := c.ensureFolderAndAssign(ctx, note, categoryName)
		if err != nil {
			c.logger.Error("categorize", "Failed to persist assignment", map[string]interface{}{
				"note_id":  note.Id,
				"category": categoryName,
				"error":    err.Error(),
			})
			response.Skipped++
			continue
		}

		response.Assigned = append(response.Assigned, dto.NoteAssignment{
			NoteId:   note.Id,
			FolderId: folderId,
			Category: categoryName,
		})

		if c.publisherService != nil {
			evt := events.NewNoteCategorized(note.Id, folderId, categoryName)
			if err := c.publisherService.Publish(ctx, evt); err != nil {
				// Notification only; the assignment is already committed.
				c.logger.Warn("categorize", "Failed to publish event", map[string]interface{}{
					"note_id": note.Id,
					"error":   err.Error(),
				})
			}
		}
	}

	response.Categories = vocabulary.Names()
	return response, nil
}

// categorizeNote renders the prompt against the current vocabulary and asks
// the model for exactly one category name. Temperature is pinned to 0 so
// re-runs over identical inputs stay deterministic.
func (c *categorizeService) categorizeNote(ctx context.Context, note *entity.Note, vocabulary *Vocabulary) (string, error) {
	fullPrompt := c.renderPrompt(ctx, note, vocabulary)

	completion, err := c.llmProvider.Generate(ctx, fullPrompt,
		llm.WithTemperature(0),
		llm.WithModel(c.cfg.ModelName),
	)
	if err != nil {
		return "", apperror.NewGenerationError("llm call failed", err)
	}

	categoryName := strings.TrimSpace(completion)
	if categoryName == "" {
		return "", apperror.NewGenerationError("empty completion", nil)
	}
	return categoryName, nil
}

func (c *categorizeService) renderPrompt(ctx context.Context, note *entity.Note, vocabulary *Vocabulary) string {
	values := map[string]string{
		"title":      note.Title,
		"content":    note.Content,
		"categories": vocabulary.Joined(),
	}

	if c.cfg.UseSearchContext && note.EmbeddingsId != "" {
		results, err := c.retrievalService.QueryByDocument(ctx, note.EmbeddingsId, c.cfg.SearchTopK)
		if err == nil && len(results) > 0 {
			var sb strings.Builder
			for _, result := range results {
				sb.WriteString(fmt.Sprintf("- Similar item (%.2f): Category %q, Content: %q\n",
					result.Score,
					result.Category,
					truncateRunes(result.ContentPreview, constant.SearchResultContentLimit),
				))
			}
			values["search_results"] = strings.TrimRight(sb.String(), "\n")
			return c.searchBuilder.Render(values)
		}
		// No similar documents (or the note was never indexed): fall back to
		// the plain prompt rather than failing the note.
		c.logger.Debug("categorize", "No search context for note", map[string]interface{}{
			"note_id": note.Id,
		})
	}

	return c.plainBuilder.Render(values)
}

// ensureFolderAndAssign resolves the folder by exact name (creating it when
// absent) and points the note at it, inside one transaction: the note must
// never reference a folder id that did not commit.
func (c *categorizeService) ensureFolderAndAssign(ctx context.Context, note *entity.Note, categoryName string) (string, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return "", apperror.NewStoreError("begin transaction", err)
	}
	defer uow.Rollback()

	folder, err := uow.FolderRepository().GetOrCreateByName(ctx, categoryName)
	if err != nil {
		return "", apperror.NewStoreError("get or create folder", err)
	}

	now := time.Now()
	note.FolderId = folder.Id
	note.UpdatedAt = &now
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return "", apperror.NewStoreError("update note", err)
	}

	if err := uow.Commit(); err != nil {
		return "", apperror.NewStoreError("commit assignment", err)
	}
	return folder.Id, nil
}
