// Package storage provides the local-disk audio store.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"journal_server/core/port/out"
)

// LocalAudioStore implements out.AudioStore on the local filesystem.
// Files land under <root>/<user_id>/<timestamp>_<name>.
type LocalAudioStore struct {
	root    string
	maxSize int64
}

// NewLocalAudioStore creates a new LocalAudioStore rooted at dir.
func NewLocalAudioStore(dir string, maxUploadMB int) *LocalAudioStore {
	return &LocalAudioStore{
		root:    dir,
		maxSize: int64(maxUploadMB) * 1024 * 1024,
	}
}

func (s *LocalAudioStore) Save(ctx context.Context, userID, fileName string, data []byte) (string, error) {
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("file exceeds %d byte limit", s.maxSize)
	}

	// Strip any path the client smuggled into either segment; both
	// come straight from the request.
	fileName = filepath.Base(fileName)
	userID = filepath.Base(userID)
	if userID == "." || userID == ".." || userID == string(filepath.Separator) {
		return "", fmt.Errorf("invalid user id")
	}

	dir := filepath.Join(s.root, userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return path, nil
}

var _ out.AudioStore = (*LocalAudioStore)(nil)
