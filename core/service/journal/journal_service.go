// Package journal implements the journal entry use-cases: analyze-and-save,
// retrieval, and the no-persistence analyze path.
package journal

import (
	"context"
	"fmt"
	"time"

	"journal_server/core/domain"
	"journal_server/core/nlp"
	"journal_server/core/port/in"
	"journal_server/core/port/out"
	"journal_server/core/service/suggest"
	"journal_server/pkg/logger"

	"github.com/google/uuid"
)

// Service implements in.JournalService
type Service struct {
	entryRepo out.EntryRepository
	userRepo  out.UserRepository
	analyzer  *nlp.Analyzer
	suggester *suggest.Engine
}

// NewService creates a new JournalService
func NewService(entryRepo out.EntryRepository, userRepo out.UserRepository, analyzer *nlp.Analyzer, suggester *suggest.Engine) in.JournalService {
	return &Service{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		analyzer:  analyzer,
		suggester: suggester,
	}
}

// =============================================================================
// Entry CRUD
// =============================================================================

func (s *Service) CreateEntry(ctx context.Context, req *in.CreateEntryRequest) (*domain.JournalEntry, error) {
	if err := s.userRepo.EnsureUser(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	logger.WithField("user_id", req.UserID).Info("analyzing journal entry")
	analysis := s.analyzer.Analyze(ctx, req.Text)

	entry := &domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Text:      req.Text,
		Analysis:  analysis,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.entryRepo.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return entry, nil
}

func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.GetEntry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

func (s *Service) ListEntries(ctx context.Context, userID string, limit, offset int) (*in.EntryListResponse, error) {
	entries, total, err := s.entryRepo.ListEntries(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return &in.EntryListResponse{
		Entries: entries,
		Total:   total,
	}, nil
}

func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.entryRepo.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// =============================================================================
// Analyze-only path
// =============================================================================

// Analyze runs the pipeline without persisting anything and extends the
// result with personalized suggestions.
func (s *Service) Analyze(ctx context.Context, req *in.AnalyzeRequest) (*in.AnalyzeResponse, error) {
	analysis := s.analyzer.Analyze(ctx, req.Text)

	confidence := 0.5
	if len(analysis.Emotion.Scores) > 0 {
		confidence = 0
		for _, v := range analysis.Emotion.Scores {
			if v > confidence {
				confidence = v
			}
		}
	}

	personalized := s.suggester.Personalized(
		analysis.Emotion.Emotion,
		analysis.MoodScore,
		req.Text,
		confidence,
	)

	// The personalized set replaces the basic suggestions on this path.
	analysis.Suggestions = personalized.Suggestions

	return &in.AnalyzeResponse{
		AnalysisResult:   analysis,
		LifeDomain:       personalized.LifeDomain,
		EmotionIntensity: personalized.Intensity,
		CrisisResources:  personalized.CrisisResources,
	}, nil
}
