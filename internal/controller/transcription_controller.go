package controller

import (
	"strconv"

	"journeyai-be/internal/pkg/serverutils"
	"journeyai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITranscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
}

type transcriptionController struct {
	transcriptionService service.ITranscriptionService
}

func NewTranscriptionController(transcriptionService service.ITranscriptionService) ITranscriptionController {
	return &transcriptionController{
		transcriptionService: transcriptionService,
	}
}

func (c *transcriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/transcription/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Transcribe)
}

func (c *transcriptionController) Transcribe(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Audio file is required"))
	}

	// Optional recording duration in seconds, echoed back to the client
	duration, _ := strconv.ParseFloat(ctx.FormValue("duration"), 64)

	res, err := c.transcriptionService.TranscribeUpload(ctx.Context(), file, duration)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}
