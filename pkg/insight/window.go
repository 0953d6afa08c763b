package insight

import "strings"

// RecentWindowWords is the fixed size of the Tier 1 window. The last N words of
// an entry carry the writer's current train of thought, so the prompt weights
// them as primary focus whenever the entry is long enough to split.
const RecentWindowWords = 50

// Balance extremes. At BalanceFull the entry is passed through as one
// undivided block; everywhere else the tail window applies.
const (
	BalanceRecentOnly = 0
	BalanceDefault    = 50
	BalanceFull       = 100
)

// TextWindow is the two-tier split of an entry: Recent is the primary focus
// segment, Previous the supporting context. Previous is empty when the entry
// fits inside the window or when balance is 100.
type TextWindow struct {
	Recent   string
	Previous string
}

// Tiered reports whether the window actually carries historical context.
func (w TextWindow) Tiered() bool {
	return w.Previous != ""
}

// ClampBalance forces a context balance into the valid [0,100] range.
func ClampBalance(balance int) int {
	if balance < BalanceRecentOnly {
		return BalanceRecentOnly
	}
	if balance > BalanceFull {
		return BalanceFull
	}
	return balance
}

// SplitWindow partitions content into a recent and a previous segment
// according to the context balance.
//
// balance == 100 returns the content verbatim as a single block. Otherwise the
// content is tokenized on whitespace runs and the last RecentWindowWords words
// become Recent, everything before them Previous, both rejoined with single
// spaces. The word sequence is preserved exactly; original internal spacing is
// not, except in the short-entry and full-balance cases where the input string
// is returned untouched.
func SplitWindow(content string, balance int) TextWindow {
	if ClampBalance(balance) == BalanceFull {
		return TextWindow{Recent: content}
	}

	words := strings.Fields(content)
	if len(words) <= RecentWindowWords {
		return TextWindow{Recent: content}
	}

	cut := len(words) - RecentWindowWords
	return TextWindow{
		Recent:   strings.Join(words[cut:], " "),
		Previous: strings.Join(words[:cut], " "),
	}
}

// WordCount counts whitespace-delimited words, the same tokenization
// SplitWindow uses.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
