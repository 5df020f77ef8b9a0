package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"journal_server/core/domain"
	"journal_server/core/port/out"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// EntryRepository implements out.EntryRepository
type EntryRepository struct {
	db *sqlx.DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *sqlx.DB) out.EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) CreateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	analysis, err := marshalAnalysis(entry.Analysis)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO journal_entries (id, user_id, text, analysis, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Text, analysis, entry.CreatedAt, entry.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create journal entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) GetEntry(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	query := `
		SELECT id, user_id, text, analysis, created_at, updated_at
		FROM journal_entries
		WHERE id = $1`

	var row entryRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get journal entry: %w", err)
	}

	return row.toDomain()
}

func (r *EntryRepository) ListEntries(ctx context.Context, userID string, limit, offset int) ([]*domain.JournalEntry, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("count journal entries: %w", err)
	}

	query := `
		SELECT id, user_id, text, analysis, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var rows []entryRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list journal entries: %w", err)
	}

	entries := make([]*domain.JournalEntry, len(rows))
	for i, row := range rows {
		entry, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		entries[i] = entry
	}
	return entries, total, nil
}

func (r *EntryRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// =============================================================================
// Row types
// =============================================================================

type entryRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    string    `db:"user_id"`
	Text      string    `db:"text"`
	Analysis  []byte    `db:"analysis"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r entryRow) toDomain() (*domain.JournalEntry, error) {
	entry := &domain.JournalEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.Analysis) > 0 {
		var analysis domain.AnalysisResult
		if err := json.Unmarshal(r.Analysis, &analysis); err != nil {
			return nil, fmt.Errorf("unmarshal analysis: %w", err)
		}
		entry.Analysis = &analysis
	}
	return entry, nil
}

func marshalAnalysis(analysis *domain.AnalysisResult) ([]byte, error) {
	if analysis == nil {
		return nil, nil
	}
	data, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}
	return data, nil
}
