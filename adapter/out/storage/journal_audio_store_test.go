package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesUnderUserDir(t *testing.T) {
	root := t.TempDir()
	store := NewLocalAudioStore(root, 1)

	path, err := store.Save(context.Background(), "user-1", "note.mp3", []byte("audio"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if dir := filepath.Dir(path); dir != filepath.Join(root, "user-1") {
		t.Errorf("file written to %s, want %s", dir, filepath.Join(root, "user-1"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("read back %q, want %q", data, "audio")
	}
}

func TestSaveStripsPathFromUserID(t *testing.T) {
	root := t.TempDir()
	store := NewLocalAudioStore(root, 1)

	path, err := store.Save(context.Background(), "../../escape", "note.mp3", []byte("audio"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Fatalf("file escaped the upload root: %s", path)
	}
	if dir := filepath.Dir(path); dir != filepath.Join(root, "escape") {
		t.Errorf("file written to %s, want %s", dir, filepath.Join(root, "escape"))
	}
}

func TestSaveRejectsBareDotDotUserID(t *testing.T) {
	store := NewLocalAudioStore(t.TempDir(), 1)

	if _, err := store.Save(context.Background(), "..", "note.mp3", []byte("audio")); err == nil {
		t.Error("expected error for '..' user id")
	}
}

func TestSaveStripsPathFromFileName(t *testing.T) {
	root := t.TempDir()
	store := NewLocalAudioStore(root, 1)

	path, err := store.Save(context.Background(), "user-1", "../../evil.mp3", []byte("audio"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if dir := filepath.Dir(path); dir != filepath.Join(root, "user-1") {
		t.Errorf("file written to %s, want %s", dir, filepath.Join(root, "user-1"))
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := NewLocalAudioStore(t.TempDir(), 1)

	big := make([]byte, 2*1024*1024)
	if _, err := store.Save(context.Background(), "user-1", "big.mp3", big); err == nil {
		t.Error("expected error for oversized upload")
	}
}
