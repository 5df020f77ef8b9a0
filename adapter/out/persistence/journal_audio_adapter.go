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

// AudioRepository implements out.AudioRepository
type AudioRepository struct {
	db *sqlx.DB
}

// NewAudioRepository creates a new AudioRepository
func NewAudioRepository(db *sqlx.DB) out.AudioRepository {
	return &AudioRepository{db: db}
}

func (r *AudioRepository) CreateAudioEntry(ctx context.Context, entry *domain.AudioEntry) error {
	analysis, err := marshalAnalysis(entry.Analysis)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audio_entries (id, user_id, file_name, storage_path, status, transcript, analysis, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.FileName, entry.StoragePath,
		entry.Status, nullString(entry.Transcript), analysis, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("create audio entry: %w", err)
	}
	return nil
}

func (r *AudioRepository) GetAudioEntry(ctx context.Context, id uuid.UUID) (*domain.AudioEntry, error) {
	query := `
		SELECT id, user_id, file_name, storage_path, status, transcript, analysis, created_at
		FROM audio_entries
		WHERE id = $1`

	var row audioRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get audio entry: %w", err)
	}

	return row.toDomain()
}

func (r *AudioRepository) ListAudioEntries(ctx context.Context, userID string, limit, offset int) ([]*domain.AudioEntry, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM audio_entries WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("count audio entries: %w", err)
	}

	query := `
		SELECT id, user_id, file_name, storage_path, status, transcript, analysis, created_at
		FROM audio_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var rows []audioRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list audio entries: %w", err)
	}

	entries := make([]*domain.AudioEntry, len(rows))
	for i, row := range rows {
		entry, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		entries[i] = entry
	}
	return entries, total, nil
}

// =============================================================================
// Row types
// =============================================================================

type audioRow struct {
	ID          uuid.UUID      `db:"id"`
	UserID      string         `db:"user_id"`
	FileName    string         `db:"file_name"`
	StoragePath string         `db:"storage_path"`
	Status      string         `db:"status"`
	Transcript  sql.NullString `db:"transcript"`
	Analysis    []byte         `db:"analysis"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r audioRow) toDomain() (*domain.AudioEntry, error) {
	entry := &domain.AudioEntry{
		ID:          r.ID,
		UserID:      r.UserID,
		FileName:    r.FileName,
		StoragePath: r.StoragePath,
		Status:      domain.AudioEntryStatus(r.Status),
		Transcript:  r.Transcript.String,
		CreatedAt:   r.CreatedAt,
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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
