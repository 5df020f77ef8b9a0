// Package in defines inbound ports (use-cases) of the journal core.
package in

import (
	"context"

	"journal_server/core/domain"

	"github.com/google/uuid"
)

// CreateEntryRequest is the input for creating a journal entry.
type CreateEntryRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// EntryListResponse is a page of journal entries.
type EntryListResponse struct {
	Entries []*domain.JournalEntry `json:"entries"`
	Total   int                    `json:"total"`
}

// AnalyzeRequest is the input for the analyze-only path.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse is the full analysis with the basic suggestions
// replaced by the personalized set, extended with the life domain and
// intensity readings. Nothing is persisted on this path.
type AnalyzeResponse struct {
	*domain.AnalysisResult
	LifeDomain       domain.LifeDomain       `json:"life_domain"`
	EmotionIntensity domain.EmotionIntensity `json:"emotion_intensity"`
	CrisisResources  string                  `json:"crisis_resources,omitempty"`
}

// JournalService is the journal entry use-case surface.
type JournalService interface {
	CreateEntry(ctx context.Context, req *CreateEntryRequest) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, userID string, limit, offset int) (*EntryListResponse, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error)
}

// CreateAudioRequest is an uploaded voice note.
type CreateAudioRequest struct {
	UserID   string
	FileName string
	Data     []byte
}

// AudioListResponse is a page of audio entries.
type AudioListResponse struct {
	Entries []*domain.AudioEntry `json:"entries"`
	Total   int                  `json:"total"`
}

// AudioService stores, transcribes and analyzes voice notes.
type AudioService interface {
	CreateAudioEntry(ctx context.Context, req *CreateAudioRequest) (*domain.AudioEntry, error)
	ListAudioEntries(ctx context.Context, userID string, limit, offset int) (*AudioListResponse, error)
}

// WellnessService serves mood-keyed supportive content.
type WellnessService interface {
	Quote(emotion string) *domain.Quote
	Books(emotion string, limit int) []domain.Book
	Story(emotion string) *domain.Story
	Activity(kind string) *domain.Activity
	CrisisResources() *domain.CrisisDirectory
}
