package insight

import (
	"errors"
	"testing"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
		wantLen int
	}{
		{
			name:    "valid reply",
			raw:     `{"questions":[{"question":"What happened next?","category":"information"},{"question":"How did that feel?","category":"emotion"}]}`,
			wantLen: 2,
		},
		{
			name: "fenced reply",
			raw: "```json\n" +
				`{"questions":[{"question":"Why now?","category":"growth"}]}` +
				"\n```",
			wantLen: 1,
		},
		{
			name:    "empty reply",
			raw:     "",
			wantErr: ErrNoResponseContent,
		},
		{
			name:    "whitespace reply",
			raw:     "   \n\t ",
			wantErr: ErrNoResponseContent,
		},
		{
			name:    "no questions key",
			raw:     `{}`,
			wantErr: ErrMissingQuestions,
		},
		{
			name:    "empty questions array",
			raw:     `{"questions":[]}`,
			wantErr: ErrMissingQuestions,
		},
		{
			name:    "not json",
			raw:     "Here are your questions: 1. What happened?",
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "questions is not an array",
			raw:     `{"questions":"What happened?"}`,
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := ParseQuestions(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(list.Questions) != tt.wantLen {
				t.Errorf("got %d questions, want %d", len(list.Questions), tt.wantLen)
			}
		})
	}
}

func TestParseQuestionsPassesCountThrough(t *testing.T) {
	// The prompt asks for 6 but the parser does not enforce cardinality.
	raw := `{"questions":[{"question":"Only one?","category":"information"}]}`
	list, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Questions) != 1 {
		t.Errorf("got %d questions, want the reply's 1 passed through", len(list.Questions))
	}
}

func TestFallbackQuestions(t *testing.T) {
	questions := FallbackQuestions()
	if len(questions) != 4 {
		t.Fatalf("fallback set has %d questions, want 4", len(questions))
	}
	seen := map[string]bool{}
	for _, q := range questions {
		if q.Question == "" {
			t.Error("fallback question with empty text")
		}
		if seen[q.Category] {
			t.Errorf("duplicate fallback category %q", q.Category)
		}
		seen[q.Category] = true
	}
}
