package controller

import (
	"github.com/gofiber/fiber/v2"

	"notealog-ai-be/internal/dto"
	"notealog-ai-be/internal/entity"
	"notealog-ai-be/internal/pkg/serverutils"
	"notealog-ai-be/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	embeddingService service.IEmbeddingService
}

func NewDocumentController(embeddingService service.IEmbeddingService) IDocumentController {
	return &documentController{
		embeddingService: embeddingService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/documents/v1")
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Create(ctx *fiber.Ctx) error {
	var req dto.IndexDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	metadata := map[string]string{
		entity.MetadataTitle:  req.Title,
		entity.MetadataFolder: req.Folder,
	}

	id, err := c.embeddingService.Create(ctx.Context(), req.Content, metadata)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document indexed", dto.IndexDocumentResponse{Id: id}))
}

func (c *documentController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req dto.UpdateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	doc, err := c.embeddingService.Update(ctx.Context(), id, req.Content)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document updated", dto.DocumentResponse{
		Id:       doc.Id,
		Content:  doc.Content,
		Metadata: doc.Metadata,
	}))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.embeddingService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document deleted", nil))
}
