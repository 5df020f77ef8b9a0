package suggest

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal_server/core/domain"
)

func seededEngine() *Engine {
	return NewEngine(rand.New(rand.NewSource(42)))
}

func TestDetectLifeDomain(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.LifeDomain
	}{
		{"work keywords dominate", "My boss piled another project on me before the deadline meeting.", domain.DomainWork},
		{"relationship keywords dominate", "My partner and my family had another argument and I feel lonely.", domain.DomainRelationships},
		{"single health hit beats tie", "I have been feeling sick lately.", domain.DomainHealth},
		{"no hits", "The weather was unremarkable today.", domain.DomainGeneral},
		{"work-relationship tie falls through to general", "I talked to a friend about my job.", domain.DomainGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLifeDomain(tt.text))
		})
	}
}

func TestBandIntensity(t *testing.T) {
	tests := []struct {
		name       string
		mood       int
		confidence float64
		want       domain.EmotionIntensity
	}{
		{"low mood high confidence", 2, 0.9, domain.IntensityIntense},
		{"high mood high confidence", 9, 0.8, domain.IntensityIntense},
		{"low mood low confidence", 3, 0.5, domain.IntensityModerate},
		{"mid-low band", 4, 0.9, domain.IntensityModerate},
		{"mid-high band", 7, 0.2, domain.IntensityModerate},
		{"balanced mood", 6, 0.9, domain.IntensityMild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BandIntensity(tt.mood, tt.confidence))
		})
	}
}

func TestPersonalizedDomainAndGeneralPools(t *testing.T) {
	engine := seededEngine()

	got := engine.Personalized("anxious", 4, "Another stressful deadline at work with my boss watching the project.", 0.6)
	require.NotNil(t, got)

	assert.Equal(t, domain.DomainWork, got.LifeDomain)
	assert.Equal(t, domain.IntensityModerate, got.Intensity)
	assert.Len(t, got.Suggestions, 5)
	assert.Empty(t, got.CrisisResources)

	// Every suggestion must come from the anxiety pools or the
	// moderate-intensity modifiers; sampling order is not pinned.
	allowed := map[string]bool{}
	for _, s := range suggestionsDatabase["anxiety"][domain.DomainWork] {
		allowed[s] = true
	}
	for _, s := range suggestionsDatabase["anxiety"][domain.DomainGeneral] {
		allowed[s] = true
	}
	for _, s := range intensityModifiers[domain.IntensityModerate] {
		allowed[s] = true
	}
	for _, s := range got.Suggestions {
		assert.True(t, allowed[s], "unexpected suggestion %q", s)
	}
}

func TestPersonalizedCrisisResources(t *testing.T) {
	engine := seededEngine()

	got := engine.Personalized("sad", 2, "I feel completely alone.", 0.9)
	require.NotNil(t, got)

	assert.Equal(t, domain.IntensityIntense, got.Intensity)
	assert.True(t, strings.Contains(got.CrisisResources, "988"))
	assert.True(t, strings.Contains(got.CrisisResources, "741741"))
}

func TestPersonalizedNoCrisisForJoy(t *testing.T) {
	engine := seededEngine()

	got := engine.Personalized("happy", 9, "Best day ever, everything went right!", 0.95)
	require.NotNil(t, got)

	assert.Equal(t, domain.IntensityIntense, got.Intensity)
	assert.Empty(t, got.CrisisResources)

	allowed := map[string]bool{}
	for _, s := range suggestionsDatabase["joy"][domain.DomainGeneral] {
		allowed[s] = true
	}
	for _, s := range intensityModifiers[domain.IntensityIntense] {
		allowed[s] = true
	}
	for _, s := range got.Suggestions {
		assert.True(t, allowed[s], "unexpected suggestion %q", s)
	}
}

func TestPersonalizedUnknownEmotionFallsBackToNeutral(t *testing.T) {
	engine := seededEngine()

	got := engine.Personalized("perplexed", 6, "Nothing much happened.", 0.4)
	require.NotNil(t, got)

	assert.Equal(t, domain.IntensityMild, got.Intensity)
	assert.NotEmpty(t, got.Suggestions)
	assert.LessOrEqual(t, len(got.Suggestions), 5)
	for _, s := range got.Suggestions {
		inNeutral := false
		for _, n := range suggestionsDatabase["neutral"][domain.DomainGeneral] {
			if s == n {
				inNeutral = true
			}
		}
		inMild := false
		for _, m := range intensityModifiers[domain.IntensityMild] {
			if s == m {
				inMild = true
			}
		}
		assert.True(t, inNeutral || inMild, "unexpected suggestion %q", s)
	}
}
