package controller

import (
	"github.com/gofiber/fiber/v2"

	"notealog-ai-be/internal/pkg/serverutils"
	"notealog-ai-be/internal/service"
)

type ICategorizeController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
}

type categorizeController struct {
	categorizeService service.ICategorizeService
}

func NewCategorizeController(categorizeService service.ICategorizeService) ICategorizeController {
	return &categorizeController{
		categorizeService: categorizeService,
	}
}

func (c *categorizeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/categorize/v1")
	h.Post("run", c.Run)
}

func (c *categorizeController) Run(ctx *fiber.Ctx) error {
	report, err := c.categorizeService.Run(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Categorization run finished", report))
}
