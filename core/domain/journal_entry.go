package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of journal entries. IDs come from the client
// (the API has no authentication layer; see adapter/in/http).
type User struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalEntry is a persisted text entry together with its analysis.
type JournalEntry struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"user_id"`
	Text      string          `json:"text"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AudioEntryStatus tracks the transcription lifecycle of an audio entry.
type AudioEntryStatus string

const (
	AudioStatusPending     AudioEntryStatus = "pending"
	AudioStatusTranscribed AudioEntryStatus = "transcribed"
	AudioStatusFailed      AudioEntryStatus = "failed"
)

// AudioEntry is an uploaded voice note, its transcript, and the
// analysis of that transcript.
type AudioEntry struct {
	ID          uuid.UUID        `json:"id"`
	UserID      string           `json:"user_id"`
	FileName    string           `json:"file_name"`
	StoragePath string           `json:"storage_path"`
	Status      AudioEntryStatus `json:"status"`
	Transcript  string           `json:"transcript,omitempty"`
	Analysis    *AnalysisResult  `json:"analysis,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
