package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"journal_server/core/domain"
	"journal_server/core/port/out"

	"github.com/jmoiron/sqlx"
)

// UserRepository implements out.UserRepository
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sqlx.DB) out.UserRepository {
	return &UserRepository{db: db}
}

// EnsureUser upserts the owner row so entry inserts never hit a missing
// foreign key.
func (r *UserRepository) EnsureUser(ctx context.Context, userID string) error {
	query := `
		INSERT INTO users (id, created_at)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, time.Now()); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT id, created_at FROM users WHERE id = $1`

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &domain.User{ID: row.ID, CreatedAt: row.CreatedAt}, nil
}

type userRow struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
