package contract

import (
	"context"

	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/repository/specification"
)

type FolderRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error)
	Create(ctx context.Context, folder *entity.Folder) error

	// GetOrCreateByName resolves a folder by exact name, creating it with a
	// fresh id when absent. Safe against concurrent callers: the folders.name
	// unique index plus insert-on-conflict guarantees one row per name.
	GetOrCreateByName(ctx context.Context, name string) (*entity.Folder, error)

	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
