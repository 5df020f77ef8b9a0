// Package wellness serves mood-keyed supportive content: quotes, book
// recommendations, short stories, guided activities and crisis resources.
package wellness

import (
	"math/rand"
	"strings"
	"time"

	"journal_server/core/domain"
	"journal_server/core/port/in"
)

type wellnessService struct {
	rng *rand.Rand
}

// NewWellnessService wires the content service around rng. Passing nil
// seeds a time-based source.
func NewWellnessService(rng *rand.Rand) in.WellnessService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &wellnessService{rng: rng}
}

// Quote picks a random quote for the emotion, falling back to the
// neutral pool for unrecognized labels.
func (s *wellnessService) Quote(emotion string) *domain.Quote {
	key := normalizeKey(emotion)
	pool, ok := quotesByEmotion[key]
	if !ok {
		pool = quotesByEmotion["neutral"]
	}
	q := pool[s.rng.Intn(len(pool))]
	return &q
}

// Books returns up to limit recommendations for the emotion, using the
// general shelf for unrecognized labels.
func (s *wellnessService) Books(emotion string, limit int) []domain.Book {
	key := normalizeKey(emotion)
	shelf, ok := bookRecommendations[key]
	if !ok {
		shelf = bookRecommendations["general"]
	}
	if limit <= 0 || limit > len(shelf) {
		limit = len(shelf)
	}
	out := make([]domain.Book, limit)
	copy(out, shelf[:limit])
	return out
}

// Story returns the story for the emotion, or nil when none exists.
func (s *wellnessService) Story(emotion string) *domain.Story {
	key := normalizeKey(emotion)
	story, ok := inspirationalStories[key]
	if !ok {
		return nil
	}
	return &story
}

// Activity returns the named guided exercise, defaulting to the
// grounding exercise for unknown kinds.
func (s *wellnessService) Activity(kind string) *domain.Activity {
	activity, ok := guidedActivities[kind]
	if !ok {
		activity = guidedActivities[defaultActivity]
	}
	return &activity
}

func (s *wellnessService) CrisisResources() *domain.CrisisDirectory {
	d := crisisDirectory
	return &d
}

// normalizeKey maps classifier labels onto the content taxonomy.
func normalizeKey(emotion string) string {
	switch strings.ToLower(emotion) {
	case "happy", "joy":
		return "joy"
	case "sad", "sadness":
		return "sadness"
	case "angry", "anger":
		return "anger"
	case "anxious", "anxiety":
		return "anxiety"
	case "fear", "afraid":
		return "fear"
	default:
		return "neutral"
	}
}
