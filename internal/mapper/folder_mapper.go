package mapper

import (
	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/model"
)

type FolderMapper struct{}

func NewFolderMapper() *FolderMapper {
	return &FolderMapper{}
}

func (m *FolderMapper) ToModel(e *entity.Folder) *model.Folder {
	return &model.Folder{
		Id:        e.Id,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}

func (m *FolderMapper) ToEntity(mod *model.Folder) *entity.Folder {
	return &entity.Folder{
		Id:        mod.Id,
		Name:      mod.Name,
		CreatedAt: mod.CreatedAt,
	}
}
