package ml

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// Round3 rounds to three decimal places, half away from zero.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// SentimentModel bundles the vectorizer and logistic regression head.
type SentimentModel struct {
	Vectorizer *Vectorizer         `json:"vectorizer"`
	Model      *LogisticRegression `json:"model"`
}

// EmotionModel bundles the vectorizer and naive Bayes head.
type EmotionModel struct {
	Vectorizer *Vectorizer `json:"vectorizer"`
	Model      *NaiveBayes `json:"model"`
}

const (
	sentimentEpochs = 1500
	sentimentLR     = 1.0

	// Small smoothing constant. The corpus vectors are L2-normalized,
	// so per-document feature mass is near 1; with alpha anywhere near
	// 1 the alpha*vocabulary term drowns the likelihoods and the class
	// prior decides every prediction.
	bayesAlpha = 0.01
)

// TrainSentimentModel trains on the embedded sentiment corpus.
func TrainSentimentModel() *SentimentModel {
	docs := make([]string, len(SentimentCorpus))
	y := make([]int, len(SentimentCorpus))
	for i, ex := range SentimentCorpus {
		docs[i] = ex.Text
		if ex.Label == "POSITIVE" {
			y[i] = 1
		}
	}

	vec := NewVectorizer()
	x := vec.FitTransform(docs)

	model := &LogisticRegression{Classes: []string{"NEGATIVE", "POSITIVE"}}
	model.Fit(x, y, sentimentEpochs, sentimentLR)

	return &SentimentModel{Vectorizer: vec, Model: model}
}

// TrainEmotionModel trains on the embedded emotion corpus.
func TrainEmotionModel() *EmotionModel {
	docs := make([]string, len(EmotionCorpus))
	labels := make([]string, len(EmotionCorpus))
	for i, ex := range EmotionCorpus {
		docs[i] = ex.Text
		labels[i] = ex.Label
	}

	vec := NewVectorizer()
	x := vec.FitTransform(docs)

	model := &NaiveBayes{}
	model.Fit(x, labels, bayesAlpha)

	return &EmotionModel{Vectorizer: vec, Model: model}
}

// Classify returns label, score in [-1,1] and confidence for one text.
// Score is (P(positive)-0.5)*2; all values rounded to 3 decimals.
func (m *SentimentModel) Classify(text string) (string, float64, float64, error) {
	p, err := m.Model.PredictProba(m.Vectorizer.Transform(text))
	if err != nil {
		return "", 0, 0, err
	}
	label := "NEGATIVE"
	confidence := 1 - p
	if p >= 0.5 {
		label = "POSITIVE"
		confidence = p
	}
	return label, Round3((p - 0.5) * 2), Round3(confidence), nil
}

// Classify returns the winning emotion, its confidence and the full
// score distribution, rounded to 3 decimals.
func (m *EmotionModel) Classify(text string) (string, float64, map[string]float64, error) {
	probs, err := m.Model.PredictProba(m.Vectorizer.Transform(text))
	if err != nil {
		return "", 0, nil, err
	}
	best := ""
	bestP := -1.0
	scores := make(map[string]float64, len(probs))
	for _, class := range m.Model.Classes {
		p := probs[class]
		scores[class] = Round3(p)
		if p > bestP {
			best = class
			bestP = p
		}
	}
	return best, Round3(bestP), scores, nil
}

func saveJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create model dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// Save writes the model artifact as JSON.
func (m *SentimentModel) Save(path string) error {
	return saveJSON(path, m)
}

// Save writes the model artifact as JSON.
func (m *EmotionModel) Save(path string) error {
	return saveJSON(path, m)
}

// LoadSentimentModel reads a sentiment artifact from disk.
func LoadSentimentModel(path string) (*SentimentModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sentiment model: %w", err)
	}
	var m SentimentModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse sentiment model: %w", err)
	}
	if m.Vectorizer == nil || m.Model == nil || len(m.Model.Weights) == 0 {
		return nil, fmt.Errorf("sentiment model %s: %w", path, ErrNotTrained)
	}
	return &m, nil
}

// LoadEmotionModel reads an emotion artifact from disk.
func LoadEmotionModel(path string) (*EmotionModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read emotion model: %w", err)
	}
	var m EmotionModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse emotion model: %w", err)
	}
	if m.Vectorizer == nil || m.Model == nil || len(m.Model.Classes) == 0 {
		return nil, fmt.Errorf("emotion model %s: %w", path, ErrNotTrained)
	}
	return &m, nil
}
