package insight

// FallbackQuestions returns the static category-balanced set shown whenever
// generation fails. The panel must never be left empty, so this is the floor.
func FallbackQuestions() []Question {
	return []Question{
		{Question: "What emotions were you feeling during this experience?", Category: CategoryEmotion},
		{Question: "How did this experience change your perspective?", Category: CategoryReflection},
		{Question: "What actions could you take based on these insights?", Category: CategoryAction},
		{Question: "How might this experience contribute to your personal growth?", Category: CategoryGrowth},
	}
}
