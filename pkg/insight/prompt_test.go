package insight

import (
	"strings"
	"testing"
)

func TestBuildQuestionPromptFullBalance(t *testing.T) {
	content := "Today was hard."
	prompt := BuildQuestionPrompt(content, 100)

	if got := strings.Count(prompt, content); got != 1 {
		t.Errorf("full entry should appear exactly once, appeared %d times", got)
	}
	if strings.Contains(prompt, "Primary content") || strings.Contains(prompt, "Supporting context") {
		t.Error("balance 100 prompt must not carry tier labels")
	}
	if !strings.Contains(prompt, "the entire entry, to be considered equally") {
		t.Error("balance 100 prompt should present the entry as one equal block")
	}
}

func TestBuildQuestionPromptTiered(t *testing.T) {
	content := numberedWords(80)

	t.Run("balance 0 ignores context", func(t *testing.T) {
		prompt := BuildQuestionPrompt(content, 0)
		if !strings.Contains(prompt, "Focus only on the primary content") {
			t.Error("balance 0 should instruct focusing on primary content only")
		}
		if !strings.Contains(prompt, "Do not use the supporting context") {
			t.Error("balance 0 should forbid drawing connections from context")
		}
	})

	t.Run("mid balance blends", func(t *testing.T) {
		prompt := BuildQuestionPrompt(content, 50)
		if !strings.Contains(prompt, "may draw connections") {
			t.Error("mid balance should allow connections between tiers")
		}
		if !strings.Contains(prompt, "Primary content") || !strings.Contains(prompt, "Supporting context") {
			t.Error("mid balance prompt should label both tiers")
		}
	})

	// Every band shares the conciseness and recency-weighting guidance.
	for _, balance := range []int{0, 50, 100} {
		prompt := BuildQuestionPrompt(content, balance)
		if !strings.Contains(prompt, "Avoid generic questions") {
			t.Errorf("balance %d: missing anti-generic guidance", balance)
		}
		if !strings.Contains(prompt, "weight the end") && !strings.Contains(prompt, "Weight the end") {
			t.Errorf("balance %d: missing end-weighting guidance", balance)
		}
		if !strings.Contains(prompt, `"questions"`) {
			t.Errorf("balance %d: missing JSON format instruction", balance)
		}
	}
}

func TestBuildQuestionPromptShortEntryNotTiered(t *testing.T) {
	// 40 words at balance 30: fits the window, so no tier labels even though
	// balance is below 100.
	prompt := BuildQuestionPrompt(numberedWords(40), 30)
	if strings.Contains(prompt, "Supporting context") {
		t.Error("short entry should never produce a supporting context section")
	}
}
