package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"journeyai-be/internal/dto"
	"journeyai-be/internal/pkg/logger"
	"journeyai-be/pkg/events"
	"journeyai-be/pkg/speech"

	"github.com/gofiber/fiber/v2"
)

type ITranscriptionService interface {
	TranscribeUpload(ctx context.Context, file *multipart.FileHeader, duration float64) (*dto.TranscriptionResponse, error)
}

type transcriptionService struct {
	transcriber    speech.Transcriber
	eventPublisher IEventPublisher
	log            logger.ILogger
}

func NewTranscriptionService(
	transcriber speech.Transcriber,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) ITranscriptionService {
	return &transcriptionService{
		transcriber:    transcriber,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (c *transcriptionService) TranscribeUpload(ctx context.Context, file *multipart.FileHeader, duration float64) (*dto.TranscriptionResponse, error) {
	format := formatFromUpload(file)
	if !speech.IsSupportedFormat(format) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("unsupported audio format %q, expected one of: %s",
				format, strings.Join(speech.SupportedFormats(), ", ")))
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// The upstream API needs a filename with a recognized extension, so the
	// upload is staged to a temp file first.
	tmp, err := os.CreateTemp("", "upload-*."+format)
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.ReadFrom(src); err != nil {
		tmp.Close()
		return nil, err
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		tmp.Close()
		return nil, err
	}

	text, err := c.transcriber.Transcribe(ctx, tmp, filepath.Base(tmpName))
	tmp.Close()
	if err != nil {
		c.log.Error("TranscriptionService", "Transcription failed", map[string]interface{}{
			"format": format,
			"error":  err.Error(),
		})
		return nil, err
	}

	if c.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeAudioTranscribed,
			Data: map[string]interface{}{
				"format":   format,
				"duration": duration,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, event); err != nil {
			c.log.Warn("TranscriptionService", "Failed to publish domain event", map[string]interface{}{
				"event_type": events.TypeAudioTranscribed,
				"error":      err.Error(),
			})
		}
	}

	return &dto.TranscriptionResponse{
		Text:     text,
		Duration: duration,
	}, nil
}

// formatFromUpload prefers the declared content type, falling back to the
// filename extension when the type is missing or generic.
func formatFromUpload(file *multipart.FileHeader) string {
	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		if format := speech.FormatFromContentType(contentType); speech.IsSupportedFormat(format) {
			return format
		}
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
}
