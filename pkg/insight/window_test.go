package insight

import (
	"fmt"
	"strings"
	"testing"
)

func numberedWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i+1)
	}
	return strings.Join(words, " ")
}

func TestSplitWindowShortEntry(t *testing.T) {
	tests := []struct {
		name    string
		content string
		balance int
	}{
		{"single word, balance 0", "hello", 0},
		{"exactly 50 words, balance 0", numberedWords(50), 0},
		{"exactly 50 words, balance 99", numberedWords(50), 99},
		{"short with odd spacing", "  one\ttwo \n three  ", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := SplitWindow(tt.content, tt.balance)
			if w.Recent != tt.content {
				t.Errorf("Recent = %q, want original content %q", w.Recent, tt.content)
			}
			if w.Previous != "" {
				t.Errorf("Previous = %q, want empty", w.Previous)
			}
			if w.Tiered() {
				t.Error("Tiered() = true, want false")
			}
		})
	}
}

func TestSplitWindowLongEntry(t *testing.T) {
	// 60 distinct tokens at balance 50: last 50 become Recent, first 10 Previous.
	content := numberedWords(60)
	w := SplitWindow(content, 50)

	wantRecent := strings.Join(strings.Fields(content)[10:], " ")
	wantPrevious := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10"

	if w.Recent != wantRecent {
		t.Errorf("Recent = %q, want %q", w.Recent, wantRecent)
	}
	if !strings.HasPrefix(w.Recent, "word11 ") || !strings.HasSuffix(w.Recent, " word60") {
		t.Errorf("Recent boundaries wrong: %q", w.Recent)
	}
	if w.Previous != wantPrevious {
		t.Errorf("Previous = %q, want %q", w.Previous, wantPrevious)
	}
}

func TestSplitWindowReconstruction(t *testing.T) {
	// Word order must survive the split with no loss or duplication.
	contents := []string{
		numberedWords(51),
		numberedWords(137),
		"a  b\nc " + numberedWords(80),
	}
	for _, content := range contents {
		for _, balance := range []int{0, 1, 50, 99} {
			w := SplitWindow(content, balance)
			rejoined := strings.TrimSpace(w.Previous + " " + w.Recent)
			if got, want := strings.Fields(rejoined), strings.Fields(content); !equalWords(got, want) {
				t.Errorf("balance %d: reconstruction mismatch: got %d words, want %d", balance, len(got), len(want))
			}
			if w.Previous != "" && len(strings.Fields(w.Recent)) != RecentWindowWords {
				t.Errorf("balance %d: tiered Recent has %d words, want %d", balance, len(strings.Fields(w.Recent)), RecentWindowWords)
			}
		}
	}
}

func TestSplitWindowFullBalance(t *testing.T) {
	// Balance 100 always passes the content through unmodified.
	contents := []string{
		"Today was hard.",
		numberedWords(500),
		"  spaced   out\tcontent  ",
	}
	for _, content := range contents {
		w := SplitWindow(content, 100)
		if w.Recent != content {
			t.Errorf("Recent = %q, want unmodified content", w.Recent)
		}
		if w.Previous != "" {
			t.Errorf("Previous = %q, want empty", w.Previous)
		}
	}
}

func TestClampBalance(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		if got := ClampBalance(tt.in); got != tt.want {
			t.Errorf("ClampBalance(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSplitWindowClampsOutOfRange(t *testing.T) {
	content := numberedWords(60)
	// 150 clamps to 100: single block.
	w := SplitWindow(content, 150)
	if w.Previous != "" || w.Recent != content {
		t.Errorf("balance 150 should behave as 100, got %+v", w)
	}
	// -5 clamps to 0: tail window applies.
	w = SplitWindow(content, -5)
	if !w.Tiered() {
		t.Error("balance -5 should behave as 0 and produce a tiered window")
	}
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
