package contract

import (
	"context"

	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/repository/specification"
)

type NoteRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
