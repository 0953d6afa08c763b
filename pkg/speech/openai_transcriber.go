package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAITranscriber struct {
	client    *openai.Client
	modelName string
}

var _ Transcriber = &OpenAITranscriber{}

func NewOpenAITranscriber(apiKey, modelName string) *OpenAITranscriber {
	if modelName == "" {
		modelName = string(openai.AudioModelWhisper1)
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAITranscriber{
		client:    &client,
		modelName: modelName,
	}
}

func (t *OpenAITranscriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	transcription, err := t.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  openai.File(audio, filename, ""),
		Model: openai.AudioModel(t.modelName),
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	return transcription.Text, nil
}
