package journal

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal_server/core/domain"
	"journal_server/core/nlp"
	"journal_server/core/port/in"
	"journal_server/core/service/suggest"
)

// ---- fakes ----

type fakeEntryRepo struct {
	entries map[uuid.UUID]*domain.JournalEntry
	failing bool
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uuid.UUID]*domain.JournalEntry)}
}

func (r *fakeEntryRepo) CreateEntry(_ context.Context, entry *domain.JournalEntry) error {
	if r.failing {
		return errors.New("connection refused")
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) GetEntry(_ context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.New("entry not found")
	}
	return entry, nil
}

func (r *fakeEntryRepo) ListEntries(_ context.Context, userID string, limit, offset int) ([]*domain.JournalEntry, int, error) {
	var out []*domain.JournalEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}

func (r *fakeEntryRepo) DeleteEntry(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

type fakeUserRepo struct {
	ensured []string
}

func (r *fakeUserRepo) EnsureUser(_ context.Context, userID string) error {
	r.ensured = append(r.ensured, userID)
	return nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, userID string) (*domain.User, error) {
	return &domain.User{ID: userID}, nil
}

func newTestAnalyzer() *nlp.Analyzer {
	return nlp.NewAnalyzer(
		nlp.NewSentimentChain(nlp.NewVaderSentiment()),
		nlp.NewEmotionChain(nlp.NewKeywordEmotion()),
		nlp.DefaultEmojiMap(),
	)
}

func newTestService(entryRepo *fakeEntryRepo, userRepo *fakeUserRepo) in.JournalService {
	engine := suggest.NewEngine(rand.New(rand.NewSource(1)))
	return NewService(entryRepo, userRepo, newTestAnalyzer(), engine)
}

// ---- tests ----

func TestCreateEntryAnalyzesAndPersists(t *testing.T) {
	entryRepo := newFakeEntryRepo()
	userRepo := &fakeUserRepo{}
	svc := newTestService(entryRepo, userRepo)

	entry, err := svc.CreateEntry(context.Background(), &in.CreateEntryRequest{
		UserID: "user-1",
		Text:   "I am so happy today, everything went wonderfully at work.",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, []string{"user-1"}, userRepo.ensured)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	require.NotNil(t, entry.Analysis)
	assert.Equal(t, domain.SentimentPositive, entry.Analysis.Sentiment.Label)

	stored, err := svc.GetEntry(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Text, stored.Text)
}

func TestCreateEntryRepositoryFailure(t *testing.T) {
	entryRepo := newFakeEntryRepo()
	entryRepo.failing = true
	svc := newTestService(entryRepo, &fakeUserRepo{})

	_, err := svc.CreateEntry(context.Background(), &in.CreateEntryRequest{
		UserID: "user-1",
		Text:   "Some text long enough to analyze.",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create entry")
}

func TestListEntries(t *testing.T) {
	entryRepo := newFakeEntryRepo()
	svc := newTestService(entryRepo, &fakeUserRepo{})

	for i := 0; i < 3; i++ {
		_, err := svc.CreateEntry(context.Background(), &in.CreateEntryRequest{
			UserID: "user-1",
			Text:   "Another fine day with nothing remarkable to report.",
		})
		require.NoError(t, err)
	}

	page, err := svc.ListEntries(context.Background(), "user-1", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Entries, 3)

	empty, err := svc.ListEntries(context.Background(), "user-2", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
}

func TestDeleteEntry(t *testing.T) {
	entryRepo := newFakeEntryRepo()
	svc := newTestService(entryRepo, &fakeUserRepo{})

	entry, err := svc.CreateEntry(context.Background(), &in.CreateEntryRequest{
		UserID: "user-1",
		Text:   "An entry that is about to disappear from the journal.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(context.Background(), entry.ID))
	_, err = svc.GetEntry(context.Background(), entry.ID)
	assert.Error(t, err)
}

func TestAnalyzeDoesNotPersist(t *testing.T) {
	entryRepo := newFakeEntryRepo()
	svc := newTestService(entryRepo, &fakeUserRepo{})

	resp, err := svc.Analyze(context.Background(), &in.AnalyzeRequest{
		Text: "I am anxious about my project deadline at work and cannot sleep.",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.AnalysisResult)

	assert.Equal(t, domain.EmotionAnxious, resp.Emotion.Emotion)
	assert.Equal(t, domain.DomainWork, resp.LifeDomain)
	assert.NotEmpty(t, resp.EmotionIntensity)

	// The personalized set replaces the basic suggestions.
	assert.NotEmpty(t, resp.Suggestions)

	assert.Empty(t, entryRepo.entries, "analyze-only path must not save anything")
}

func TestAnalyzeWithoutRepositories(t *testing.T) {
	svc := NewService(nil, nil, newTestAnalyzer(), suggest.NewEngine(rand.New(rand.NewSource(42))))

	resp, err := svc.Analyze(context.Background(), &in.AnalyzeRequest{
		Text: "I am anxious about my project deadline at work and cannot sleep.",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.AnalysisResult)
	assert.Equal(t, domain.DomainWork, resp.LifeDomain)
	assert.NotEmpty(t, resp.Suggestions)
}
