package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal_server/core/domain"
	"journal_server/core/port/in"
)

type fakeAudioRepo struct {
	entries map[uuid.UUID]*domain.AudioEntry
}

func newFakeAudioRepo() *fakeAudioRepo {
	return &fakeAudioRepo{entries: make(map[uuid.UUID]*domain.AudioEntry)}
}

func (r *fakeAudioRepo) CreateAudioEntry(_ context.Context, entry *domain.AudioEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeAudioRepo) GetAudioEntry(_ context.Context, id uuid.UUID) (*domain.AudioEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.New("audio entry not found")
	}
	return entry, nil
}

func (r *fakeAudioRepo) ListAudioEntries(_ context.Context, userID string, limit, offset int) ([]*domain.AudioEntry, int, error) {
	var out []*domain.AudioEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}

type fakeAudioStore struct {
	saved map[string][]byte
}

func newFakeAudioStore() *fakeAudioStore {
	return &fakeAudioStore{saved: make(map[string][]byte)}
}

func (s *fakeAudioStore) Save(_ context.Context, userID, fileName string, data []byte) (string, error) {
	path := "uploads/" + userID + "/" + fileName
	s.saved[path] = data
	return path, nil
}

type fakeTranscriber struct {
	available  bool
	transcript string
	err        error
}

func (t *fakeTranscriber) Available() bool { return t.available }
func (t *fakeTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	return t.transcript, t.err
}

func TestCreateAudioEntryTranscribesAndAnalyzes(t *testing.T) {
	audioRepo := newFakeAudioRepo()
	store := newFakeAudioStore()
	transcriber := &fakeTranscriber{
		available:  true,
		transcript: "Today was a wonderful day and I am so happy about everything.",
	}
	svc := NewAudioService(audioRepo, &fakeUserRepo{}, store, transcriber, newTestAnalyzer())

	entry, err := svc.CreateAudioEntry(context.Background(), &in.CreateAudioRequest{
		UserID:   "user-1",
		FileName: "note.mp3",
		Data:     []byte("fake audio bytes"),
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, domain.AudioStatusTranscribed, entry.Status)
	assert.Equal(t, transcriber.transcript, entry.Transcript)
	require.NotNil(t, entry.Analysis)
	assert.Equal(t, domain.SentimentPositive, entry.Analysis.Sentiment.Label)
	assert.Contains(t, store.saved, entry.StoragePath)
}

func TestCreateAudioEntryWithoutTranscriber(t *testing.T) {
	audioRepo := newFakeAudioRepo()
	svc := NewAudioService(audioRepo, &fakeUserRepo{}, newFakeAudioStore(), &fakeTranscriber{available: false}, newTestAnalyzer())

	entry, err := svc.CreateAudioEntry(context.Background(), &in.CreateAudioRequest{
		UserID:   "user-1",
		FileName: "note.wav",
		Data:     []byte("bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AudioStatusPending, entry.Status)
	assert.Empty(t, entry.Transcript)
	assert.Nil(t, entry.Analysis)
}

func TestCreateAudioEntryTranscriptionFailure(t *testing.T) {
	audioRepo := newFakeAudioRepo()
	svc := NewAudioService(audioRepo, &fakeUserRepo{}, newFakeAudioStore(), &fakeTranscriber{
		available: true,
		err:       errors.New("upstream timeout"),
	}, newTestAnalyzer())

	entry, err := svc.CreateAudioEntry(context.Background(), &in.CreateAudioRequest{
		UserID:   "user-1",
		FileName: "note.ogg",
		Data:     []byte("bytes"),
	})
	require.NoError(t, err, "a failed transcription must not fail the upload")

	assert.Equal(t, domain.AudioStatusFailed, entry.Status)
	assert.Nil(t, entry.Analysis)
}

func TestListAudioEntries(t *testing.T) {
	audioRepo := newFakeAudioRepo()
	svc := NewAudioService(audioRepo, &fakeUserRepo{}, newFakeAudioStore(), &fakeTranscriber{}, newTestAnalyzer())

	for _, name := range []string{"a.mp3", "b.mp3"} {
		_, err := svc.CreateAudioEntry(context.Background(), &in.CreateAudioRequest{
			UserID:   "user-1",
			FileName: name,
			Data:     []byte("bytes"),
		})
		require.NoError(t, err)
	}

	page, err := svc.ListAudioEntries(context.Background(), "user-1", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}
