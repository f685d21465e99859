package mapper

import (
	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToModel(e *entity.Note) *model.Note {
	return &model.Note{
		Id:           e.Id,
		Title:        e.Title,
		Content:      e.Content,
		FolderId:     e.FolderId,
		EmbeddingsId: e.EmbeddingsId,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntity(mod *model.Note) *entity.Note {
	return &entity.Note{
		Id:           mod.Id,
		Title:        mod.Title,
		Content:      mod.Content,
		FolderId:     mod.FolderId,
		EmbeddingsId: mod.EmbeddingsId,
		CreatedAt:    mod.CreatedAt,
		UpdatedAt:    mod.UpdatedAt,
	}
}
