package dto

import "github.com/google/uuid"

// GenerateQuestionsRequest accepts either a single content field or the
// split new_content/existing_content pair used by live editors. When the
// pair is supplied, new_content is treated as the recent tier and
// existing_content as the supporting tier.
type GenerateQuestionsRequest struct {
	Content         string     `json:"content"`
	NewContent      string     `json:"new_content"`
	ExistingContent string     `json:"existing_content"`
	ContextBalance  *int       `json:"context_balance"`
	StoryId         *uuid.UUID `json:"story_id"`
}

type QuestionItem struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

type GenerateQuestionsResponse struct {
	Questions []QuestionItem `json:"questions"`
	Sequence  int64          `json:"sequence"`
	Stale     bool           `json:"stale"`
	Fallback  bool           `json:"fallback"`
}

type StoryQuestionsResponse struct {
	StoryId   uuid.UUID      `json:"story_id"`
	Questions []QuestionItem `json:"questions"`
	Cached    bool           `json:"cached"`
}
