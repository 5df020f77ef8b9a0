package suggest

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"journal_server/core/domain"
)

const maxSuggestions = 5

// Engine produces context-aware coping suggestions from the detected
// emotion, mood score and journal text. Sampling uses the injected
// random source so tests can pin a seed.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine wires a suggestion engine around rng. Passing nil seeds a
// time-based source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Personalized builds the enriched suggestion set for the analyze-only path.
func (e *Engine) Personalized(emotion string, moodScore int, text string, confidence float64) *domain.PersonalizedSuggestions {
	normalized := normalizeEmotion(emotion)
	lifeDomain := DetectLifeDomain(text)
	intensity := BandIntensity(moodScore, confidence)

	byDomain := suggestionsDatabase[normalized]

	suggestions := make([]string, 0, maxSuggestions)
	if pool, ok := byDomain[lifeDomain]; ok {
		suggestions = append(suggestions, e.sample(pool, 2)...)
	}
	if pool, ok := byDomain[domain.DomainGeneral]; ok {
		suggestions = append(suggestions, e.sample(pool, 3)...)
	}
	if extra, ok := intensityModifiers[intensity]; ok {
		if len(extra) > 2 {
			extra = extra[:2]
		}
		suggestions = append(suggestions, extra...)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	result := &domain.PersonalizedSuggestions{
		Suggestions: suggestions,
		LifeDomain:  lifeDomain,
		Intensity:   intensity,
	}
	if intensity == domain.IntensityIntense && needsCrisisSupport(normalized) {
		result.CrisisResources = CrisisResources
	}
	return result
}

// sample draws up to n distinct entries from pool, preserving no
// particular order.
func (e *Engine) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n == 0 {
		return nil
	}

	e.mu.Lock()
	picks := e.rng.Perm(len(pool))[:n]
	e.mu.Unlock()

	out := make([]string, 0, n)
	for _, i := range picks {
		out = append(out, pool[i])
	}
	return out
}

func normalizeEmotion(emotion string) string {
	if mapped, ok := emotionTaxonomy[strings.ToLower(emotion)]; ok {
		return mapped
	}
	return "neutral"
}

func needsCrisisSupport(normalized string) bool {
	switch normalized {
	case "sadness", "anxiety", "fear":
		return true
	}
	return false
}

// DetectLifeDomain votes on the life area a text is about by counting
// keyword-group hits. A domain wins only on a strict majority over both
// rivals; ties fall through, with health needing just one hit.
func DetectLifeDomain(text string) domain.LifeDomain {
	lower := strings.ToLower(text)

	workCount := countHits(lower, domainWorkKeywords)
	relationshipCount := countHits(lower, domainRelationshipKeywords)
	healthCount := countHits(lower, domainHealthKeywords)

	switch {
	case workCount > relationshipCount && workCount > healthCount:
		return domain.DomainWork
	case relationshipCount > workCount && relationshipCount > healthCount:
		return domain.DomainRelationships
	case healthCount > 0:
		return domain.DomainHealth
	default:
		return domain.DomainGeneral
	}
}

func countHits(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

// BandIntensity grades how strongly the emotion is being felt. Extreme
// mood scores with a confident read are intense; the middle band is
// moderate; only a balanced mood with low extremity reads as mild.
func BandIntensity(moodScore int, confidence float64) domain.EmotionIntensity {
	switch {
	case moodScore <= 3 || moodScore >= 8:
		if confidence > 0.7 {
			return domain.IntensityIntense
		}
		return domain.IntensityModerate
	case moodScore <= 5 || moodScore >= 7:
		return domain.IntensityModerate
	default:
		return domain.IntensityMild
	}
}
