package controller

import (
	"github.com/gofiber/fiber/v2"

	"notealog-ai-be/internal/pkg/serverutils"
	"notealog-ai-be/internal/service"
)

type IRetrievalController interface {
	RegisterRoutes(r fiber.Router)
	QueryByText(ctx *fiber.Ctx) error
	QueryByDocument(ctx *fiber.Ctx) error
}

type retrievalController struct {
	retrievalService service.IRetrievalService
	defaultTopK      int
}

func NewRetrievalController(retrievalService service.IRetrievalService, defaultTopK int) IRetrievalController {
	return &retrievalController{
		retrievalService: retrievalService,
		defaultTopK:      defaultTopK,
	}
}

func (c *retrievalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/retrieval/v1")
	h.Get("query", c.QueryByText)
	h.Get("similar/:id", c.QueryByDocument)
}

func (c *retrievalController) QueryByText(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	topK := ctx.QueryInt("top_k", c.defaultTopK)

	results, err := c.retrievalService.QueryByText(ctx.Context(), query, topK)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", results))
}

func (c *retrievalController) QueryByDocument(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	topK := ctx.QueryInt("top_k", c.defaultTopK)

	results, err := c.retrievalService.QueryByDocument(ctx.Context(), id, topK)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", results))
}
