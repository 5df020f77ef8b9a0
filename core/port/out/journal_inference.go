package out

import (
	"context"

	"journal_server/core/domain"
)

// RemoteInference is the hosted-model classification port used by the
// middle tier of both classifier chains. Implementations report their
// availability once at construction; a nil port means the tier is absent.
type RemoteInference interface {
	// Available reports whether the remote model can be called at all
	// (credentials configured). Checked at chain construction, not per call.
	Available() bool

	// ClassifySentiment returns a polarity label with confidence.
	ClassifySentiment(ctx context.Context, text string) (*domain.SentimentResult, error)

	// ClassifyEmotion returns per-emotion scores over the fixed vocabulary.
	ClassifyEmotion(ctx context.Context, text string) (*domain.EmotionResult, error)
}

// Transcriber converts stored audio into text.
type Transcriber interface {
	Available() bool
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// AudioStore persists uploaded audio files and returns the storage path.
type AudioStore interface {
	Save(ctx context.Context, userID, fileName string, data []byte) (string, error)
}
