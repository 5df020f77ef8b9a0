package journal

import (
	"context"
	"fmt"
	"time"

	"journal_server/core/domain"
	"journal_server/core/nlp"
	"journal_server/core/port/in"
	"journal_server/core/port/out"
	"journal_server/pkg/logger"

	"github.com/google/uuid"
)

// AudioService implements in.AudioService
type AudioService struct {
	audioRepo   out.AudioRepository
	userRepo    out.UserRepository
	store       out.AudioStore
	transcriber out.Transcriber
	analyzer    *nlp.Analyzer
}

// NewAudioService creates a new AudioService
func NewAudioService(audioRepo out.AudioRepository, userRepo out.UserRepository, store out.AudioStore, transcriber out.Transcriber, analyzer *nlp.Analyzer) in.AudioService {
	return &AudioService{
		audioRepo:   audioRepo,
		userRepo:    userRepo,
		store:       store,
		transcriber: transcriber,
		analyzer:    analyzer,
	}
}

// CreateAudioEntry stores the uploaded file, transcribes it when a
// transcriber is configured, analyzes the transcript and persists the
// result. A missing or failing transcriber leaves the entry pending
// rather than failing the upload.
func (s *AudioService) CreateAudioEntry(ctx context.Context, req *in.CreateAudioRequest) (*domain.AudioEntry, error) {
	if err := s.userRepo.EnsureUser(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	storagePath, err := s.store.Save(ctx, req.UserID, req.FileName, req.Data)
	if err != nil {
		return nil, fmt.Errorf("save audio: %w", err)
	}

	entry := &domain.AudioEntry{
		ID:          uuid.New(),
		UserID:      req.UserID,
		FileName:    req.FileName,
		StoragePath: storagePath,
		Status:      domain.AudioStatusPending,
		CreatedAt:   time.Now(),
	}

	if s.transcriber != nil && s.transcriber.Available() {
		transcript, err := s.transcriber.Transcribe(ctx, storagePath)
		if err != nil {
			logger.WithError(err).WithField("user_id", req.UserID).Warn("transcription failed, keeping entry pending")
			entry.Status = domain.AudioStatusFailed
		} else {
			entry.Transcript = transcript
			entry.Status = domain.AudioStatusTranscribed
			entry.Analysis = s.analyzer.Analyze(ctx, transcript)
		}
	}

	if err := s.audioRepo.CreateAudioEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create audio entry: %w", err)
	}
	return entry, nil
}

func (s *AudioService) ListAudioEntries(ctx context.Context, userID string, limit, offset int) (*in.AudioListResponse, error) {
	entries, total, err := s.audioRepo.ListAudioEntries(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audio entries: %w", err)
	}
	return &in.AudioListResponse{
		Entries: entries,
		Total:   total,
	}, nil
}
