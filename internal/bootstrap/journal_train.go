package bootstrap

import (
	"fmt"

	"journal_server/config"
	"journal_server/core/nlp/ml"
	"journal_server/pkg/logger"
)

// Train fits both classifiers on the embedded corpora and writes the
// JSON artifacts the api mode loads at startup.
func Train(cfg *config.Config) error {
	logger.Info("Training sentiment model (%d examples)", len(ml.SentimentCorpus))
	sentimentModel := ml.TrainSentimentModel()
	if err := sentimentModel.Save(cfg.SentimentModelPath); err != nil {
		return fmt.Errorf("save sentiment model: %w", err)
	}
	logger.Info("Sentiment model written to %s", cfg.SentimentModelPath)

	logger.Info("Training emotion model (%d examples)", len(ml.EmotionCorpus))
	emotionModel := ml.TrainEmotionModel()
	if err := emotionModel.Save(cfg.EmotionModelPath); err != nil {
		return fmt.Errorf("save emotion model: %w", err)
	}
	logger.Info("Emotion model written to %s", cfg.EmotionModelPath)

	return nil
}
