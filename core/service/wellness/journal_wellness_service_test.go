package wellness

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService() *wellnessService {
	return &wellnessService{rng: rand.New(rand.NewSource(7))}
}

func TestQuoteForKnownEmotion(t *testing.T) {
	svc := seededService()

	q := svc.Quote("anxious")
	require.NotNil(t, q)
	assert.NotEmpty(t, q.Text)
	assert.NotEmpty(t, q.Author)

	found := false
	for _, candidate := range quotesByEmotion["anxiety"] {
		if candidate.Text == q.Text {
			found = true
		}
	}
	assert.True(t, found, "quote should come from the anxiety pool")
}

func TestQuoteUnknownEmotionFallsBackToNeutral(t *testing.T) {
	svc := seededService()

	q := svc.Quote("bewildered")
	require.NotNil(t, q)

	found := false
	for _, candidate := range quotesByEmotion["neutral"] {
		if candidate.Text == q.Text {
			found = true
		}
	}
	assert.True(t, found, "unknown emotion should draw from the neutral pool")
}

func TestBooks(t *testing.T) {
	svc := seededService()

	books := svc.Books("sad", 3)
	require.Len(t, books, 3)
	assert.Equal(t, "The Upward Spiral", books[0].Title)

	// Unknown emotions get the general shelf.
	general := svc.Books("confused", 2)
	require.Len(t, general, 2)
	assert.Equal(t, "Atomic Habits", general[0].Title)

	// Zero or oversized limits return the whole shelf.
	all := svc.Books("sad", 0)
	assert.Len(t, all, len(bookRecommendations["sadness"]))
}

func TestStory(t *testing.T) {
	svc := seededService()

	story := svc.Story("angry")
	require.NotNil(t, story)
	assert.Equal(t, "The Two Wolves", story.Title)

	assert.Nil(t, svc.Story("happy"), "no story exists for joy")
}

func TestActivity(t *testing.T) {
	svc := seededService()

	a := svc.Activity("box_breathing")
	require.NotNil(t, a)
	assert.Equal(t, "Box Breathing (4-4-4-4)", a.Name)
	assert.Len(t, a.Steps, 5)

	fallback := svc.Activity("unknown")
	require.NotNil(t, fallback)
	assert.Equal(t, "5-4-3-2-1 Grounding Exercise", fallback.Name)
}

func TestCrisisResources(t *testing.T) {
	svc := seededService()

	d := svc.CrisisResources()
	require.NotNil(t, d)
	assert.Len(t, d.Helplines, 3)
	assert.Equal(t, "988", d.Helplines[0].Number)
	assert.NotEmpty(t, d.Apps)
	assert.NotEmpty(t, d.Websites)
}
