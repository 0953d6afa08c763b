package insight

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Question categories. The prompt asks for this vocabulary but the model's
// reply is passed through as-is; the category is advisory, not validated.
const (
	CategoryInformation = "information"
	CategoryEmotion     = "emotion"
	CategoryReflection  = "reflection"
	CategoryGrowth      = "growth"
	CategoryAction      = "action"
)

// Question is one reflective question tagged with a category.
type Question struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// QuestionList is the shape the model is asked to reply with.
type QuestionList struct {
	Questions []Question `json:"questions"`
}

// Parse failure taxonomy. Callers treat all three as "fall back to the static
// set", but logs should distinguish an empty reply from a malformed one.
var (
	ErrNoResponseContent = errors.New("model reply contained no content")
	ErrMalformedResponse = errors.New("model reply is not valid JSON")
	ErrMissingQuestions  = errors.New("model reply has no questions field")
)

// ParseQuestions extracts the question list from a raw model reply.
// Markdown code fences are stripped first, since chat-tuned models wrap JSON
// in them even when told not to. A well-formed object without a usable
// questions array is reported as ErrMissingQuestions rather than guessed at.
func ParseQuestions(raw string) (*QuestionList, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrNoResponseContent
	}

	cleaned := bytes.TrimSpace([]byte(raw))
	cleaned = bytes.TrimPrefix(cleaned, []byte("```json"))
	cleaned = bytes.TrimPrefix(cleaned, []byte("```"))
	cleaned = bytes.TrimSuffix(cleaned, []byte("```"))
	cleaned = bytes.TrimSpace(cleaned)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(cleaned, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	rawQuestions, ok := probe["questions"]
	if !ok {
		return nil, ErrMissingQuestions
	}

	var questions []Question
	if err := json.Unmarshal(rawQuestions, &questions); err != nil {
		return nil, fmt.Errorf("%w: questions field: %v", ErrMalformedResponse, err)
	}
	if len(questions) == 0 {
		return nil, ErrMissingQuestions
	}

	return &QuestionList{Questions: questions}, nil
}
