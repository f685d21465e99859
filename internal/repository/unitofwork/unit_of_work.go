package unitofwork

import (
	"context"

	"notealog-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	FolderRepository() contract.FolderRepository
	DocumentRepository() contract.DocumentRepository
}
