package memory

import (
	"sync"
	"time"

	"journeyai-be/pkg/insight"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// InsightStateRepository tracks per-writer generation sequences and
// caches the latest question set per story.
//
// Sequences answer "is this response still about what the user is
// typing now": every generation request takes the next number, and a
// response is stale when a newer request started meanwhile.
type InsightStateRepository struct {
	mu        sync.Mutex
	sequences map[string]int64
	cache     *cache.Cache
}

func NewInsightStateRepository() *InsightStateRepository {
	// Cached question sets expire after 1 hour, purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &InsightStateRepository{
		sequences: make(map[string]int64),
		cache:     c,
	}
}

// NextSequence reserves the next generation number for a key. Keys are the
// story id when one is known, the writer id otherwise.
func (r *InsightStateRepository) NextSequence(key string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequences[key]++
	return r.sequences[key]
}

// IsCurrent reports whether seq is still the latest generation for a key.
func (r *InsightStateRepository) IsCurrent(key string, seq int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sequences[key] == seq
}

func (r *InsightStateRepository) SaveQuestions(storyId uuid.UUID, questions *insight.QuestionList) {
	r.cache.Set(storyId.String(), questions, cache.DefaultExpiration)
}

func (r *InsightStateRepository) GetQuestions(storyId uuid.UUID) (*insight.QuestionList, bool) {
	if x, found := r.cache.Get(storyId.String()); found {
		return x.(*insight.QuestionList), true
	}
	return nil, false
}

func (r *InsightStateRepository) DeleteQuestions(storyId uuid.UUID) {
	r.cache.Delete(storyId.String())
}
