package bootstrap

import (
	"time"

	openaiadapter "journal_server/adapter/out/openai"
	"journal_server/adapter/out/persistence"
	"journal_server/adapter/out/storage"
	"journal_server/config"
	"journal_server/core/nlp"
	"journal_server/core/nlp/ml"
	"journal_server/core/port/in"
	"journal_server/core/service/journal"
	"journal_server/core/service/suggest"
	"journal_server/core/service/wellness"
	"journal_server/infra/database"
	"journal_server/pkg/logger"

	"github.com/jmoiron/sqlx"
)

// Dependencies holds every wired component of the process.
type Dependencies struct {
	Config *config.Config
	DB     *sqlx.DB

	// NLP
	Analyzer *nlp.Analyzer

	// Services
	JournalService  in.JournalService
	AudioService    in.AudioService
	WellnessService in.WellnessService
}

// NewDependencies wires adapters, classifier chains and services. The
// returned cleanup closes the database pool. A missing DATABASE_URL is
// not an error: the process runs in analyze-only mode without
// persistence-backed routes.
func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	deps := &Dependencies{Config: cfg}
	cleanup := func() {}

	inference := openaiadapter.NewInferenceAdapter(openaiadapter.Config{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.LLMModel,
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
		Timeout:     time.Duration(cfg.LLMTimeoutSec) * time.Second,
	})

	deps.Analyzer = buildAnalyzer(cfg, inference)
	deps.WellnessService = wellness.NewWellnessService(nil)

	suggestEngine := suggest.NewEngine(nil)

	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, running without persistence")
		// Analyze never touches a repository, so the analyze-only
		// route stays available without a database.
		deps.JournalService = journal.NewService(nil, nil, deps.Analyzer, suggestEngine)
		return deps, cleanup, nil
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	deps.DB = db
	cleanup = func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}

	entryRepo := persistence.NewEntryRepository(db)
	audioRepo := persistence.NewAudioRepository(db)
	userRepo := persistence.NewUserRepository(db)

	deps.JournalService = journal.NewService(entryRepo, userRepo, deps.Analyzer, suggestEngine)

	if cfg.EnableAudio {
		store := storage.NewLocalAudioStore(cfg.UploadDir, cfg.MaxUploadMB)
		transcriber := openaiadapter.NewWhisperAdapter(cfg.OpenAIAPIKey, cfg.WhisperModel, 0)
		deps.AudioService = journal.NewAudioService(audioRepo, userRepo, store, transcriber, deps.Analyzer)
	}

	return deps, cleanup, nil
}

// buildAnalyzer assembles both classifier chains. Trained artifacts are
// loaded best-effort: a missing file just drops that tier.
func buildAnalyzer(cfg *config.Config, inference *openaiadapter.InferenceAdapter) *nlp.Analyzer {
	sentimentModel, err := ml.LoadSentimentModel(cfg.SentimentModelPath)
	if err != nil {
		logger.WithError(err).Warn("sentiment model unavailable")
	}
	emotionModel, err := ml.LoadEmotionModel(cfg.EmotionModelPath)
	if err != nil {
		logger.WithError(err).Warn("emotion model unavailable")
	}

	sentimentChain := nlp.NewSentimentChain(
		nlp.NewTrainedSentiment(sentimentModel),
		nlp.NewRemoteSentiment(inference),
		nlp.NewVaderSentiment(),
	)
	emotionChain := nlp.NewEmotionChain(
		nlp.NewTrainedEmotion(emotionModel),
		nlp.NewRemoteEmotion(inference),
		nlp.NewKeywordEmotion(),
	)

	return nlp.NewAnalyzer(sentimentChain, emotionChain, nlp.LoadEmojiMap(cfg.EmojiMapPath))
}
