package controller

import (
	"journeyai-be/internal/dto"
	"journeyai-be/internal/pkg/serverutils"
	"journeyai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	GenerateQuestions(ctx *fiber.Ctx) error
	GetStoryQuestions(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService service.IInsightService
}

func NewInsightController(insightService service.IInsightService) IInsightController {
	return &insightController{
		insightService: insightService,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("questions", c.GenerateQuestions)
	h.Get("story/:id/questions", c.GetStoryQuestions)
}

func (c *insightController) GenerateQuestions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateQuestionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.insightService.GenerateQuestions(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate questions", res))
}

func (c *insightController) GetStoryQuestions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.insightService.GetStoryQuestions(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Story not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get story questions", res))
}
