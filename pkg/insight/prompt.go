package insight

import (
	"strings"
)

// PromptBuilder assembles the question-generation instruction from a text
// window and the balance that produced it.
type PromptBuilder struct {
	window  TextWindow
	balance int
}

// NewPromptBuilder creates a builder. The balance is clamped to [0,100].
func NewPromptBuilder(window TextWindow, balance int) *PromptBuilder {
	return &PromptBuilder{
		window:  window,
		balance: ClampBalance(balance),
	}
}

// Build composes the full instruction sent to the language model.
func (b *PromptBuilder) Build() string {
	var prompt strings.Builder

	b.writeFraming(&prompt)
	b.writeEntry(&prompt)
	b.writeGuidance(&prompt)
	b.writeFormat(&prompt)

	return prompt.String()
}

func (b *PromptBuilder) writeFraming(prompt *strings.Builder) {
	prompt.WriteString("As an empathetic friend and life coach, analyze this journal entry and create 6 questions that will help the writer write more and reflect deeper. ")
	prompt.WriteString("Each question should be concise and focused on a particular aspect (information gathering, emotion, growth, or action). ")
	prompt.WriteString("I'd like 3 short questions on information gathering, and the remaining 3 spread across emotion, growth, and action.\n\n")
}

func (b *PromptBuilder) writeEntry(prompt *strings.Builder) {
	if b.balance == BalanceFull || !b.window.Tiered() {
		// Single block. At balance 100 no tier labels appear at all: the
		// entire entry is to be considered equally.
		prompt.WriteString("Journal entry")
		if b.balance == BalanceFull {
			prompt.WriteString(" (the entire entry, to be considered equally)")
		}
		prompt.WriteString(":\n")
		prompt.WriteString(b.window.Recent)
		prompt.WriteString("\n\n")
		return
	}

	prompt.WriteString("Primary content (the writer's most recent words, your main focus):\n")
	prompt.WriteString(b.window.Recent)
	prompt.WriteString("\n\nSupporting context (earlier in the same entry):\n")
	prompt.WriteString(b.window.Previous)
	prompt.WriteString("\n\n")
}

func (b *PromptBuilder) writeGuidance(prompt *strings.Builder) {
	if b.window.Tiered() {
		switch {
		case b.balance == BalanceRecentOnly:
			prompt.WriteString("Focus only on the primary content. Do not use the supporting context to draw connections.\n")
		case b.balance < BalanceFull:
			prompt.WriteString("Balance the primary content with the supporting context; you may draw connections between them.\n")
		}
		prompt.WriteString("Within the primary content, weight the end more heavily than the beginning.\n")
	} else {
		prompt.WriteString("Weight the end of the entry more heavily than the beginning.\n")
	}
	prompt.WriteString("Generate questions that are concise, creative, personal, and specific to the content. Avoid generic questions.\n\n")
}

func (b *PromptBuilder) writeFormat(prompt *strings.Builder) {
	prompt.WriteString(`Format the response as a JSON object with a "questions" array of objects containing "question" and "category" fields, where category is one of "information", "emotion", "growth", "action". No other text.`)
}

// BuildQuestionPrompt is the convenience path: window the content, then build.
func BuildQuestionPrompt(content string, balance int) string {
	balance = ClampBalance(balance)
	return NewPromptBuilder(SplitWindow(content, balance), balance).Build()
}
