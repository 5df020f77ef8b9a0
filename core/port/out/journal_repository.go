// Package out defines outbound ports of the journal core.
package out

import (
	"context"

	"journal_server/core/domain"

	"github.com/google/uuid"
)

// EntryRepository persists journal entries.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry *domain.JournalEntry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]*domain.JournalEntry, int, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// AudioRepository persists audio entries.
type AudioRepository interface {
	CreateAudioEntry(ctx context.Context, entry *domain.AudioEntry) error
	GetAudioEntry(ctx context.Context, id uuid.UUID) (*domain.AudioEntry, error)
	ListAudioEntries(ctx context.Context, userID string, limit, offset int) ([]*domain.AudioEntry, int, error)
}

// UserRepository persists users. EnsureUser upserts so that entry
// writes never fail on a missing owner row.
type UserRepository interface {
	EnsureUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
