package ml

import (
	"math"
	"path/filepath"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stopwords and punctuation",
			text: "I am so happy!",
			want: []string{"happy"},
		},
		{
			name: "lowercases",
			text: "GREAT Day",
			want: []string{"great", "day"},
		},
		{
			name: "keeps content words around stopwords",
			text: "This is the worst meeting ever.",
			want: []string{"worst", "meeting"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestVectorizerTransform(t *testing.T) {
	vec := NewVectorizer()
	vec.Fit([]string{"good day today", "bad day today", "good food"})

	if _, ok := vec.Vocabulary["good"]; !ok {
		t.Fatal("expected 'good' in vocabulary")
	}

	x := vec.Transform("good day")
	var norm float64
	for _, v := range x {
		norm += v * v
	}
	if math.Abs(math.Sqrt(norm)-1.0) > 1e-9 {
		t.Errorf("expected L2-normalized vector, got norm %f", math.Sqrt(norm))
	}

	// Unknown words produce the zero vector
	zero := vec.Transform("zzz qqq")
	for i, v := range zero {
		if v != 0 {
			t.Errorf("expected zero vector for OOV text, got %f at %d", v, i)
		}
	}
}

func TestSentimentModelFitsCorpus(t *testing.T) {
	model := TrainSentimentModel()

	tests := []struct {
		text      string
		wantLabel string
	}{
		{"I feel absolutely amazing today!", "POSITIVE"},
		{"I am so happy and grateful.", "POSITIVE"},
		{"I feel terrible and sad.", "NEGATIVE"},
		{"This is the worst day ever.", "NEGATIVE"},
	}

	for _, tt := range tests {
		label, score, confidence, err := model.Classify(tt.text)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", tt.text, err)
		}
		if label != tt.wantLabel {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, label, tt.wantLabel)
		}
		if score < -1 || score > 1 {
			t.Errorf("score %f out of [-1,1]", score)
		}
		if confidence < 0.5 || confidence > 1 {
			t.Errorf("confidence %f out of [0.5,1]", confidence)
		}
	}
}

func TestEmotionModelFitsCorpus(t *testing.T) {
	model := TrainEmotionModel()

	tests := []struct {
		text        string
		wantEmotion string
	}{
		{"I am furious right now!", "angry"},
		{"I feel very anxious.", "anxious"},
		{"I am so happy!", "happy"},
		{"I was shocked by the news.", "surprise"},
		{"I feel calm and relaxed.", "calm"},
	}

	for _, tt := range tests {
		emotion, confidence, scores, err := model.Classify(tt.text)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", tt.text, err)
		}
		if emotion != tt.wantEmotion {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, emotion, tt.wantEmotion)
		}
		if confidence <= 0 || confidence > 1 {
			t.Errorf("confidence %f out of (0,1]", confidence)
		}
		var sum float64
		for _, s := range scores {
			sum += s
		}
		if math.Abs(sum-1.0) > 0.01 {
			t.Errorf("scores should sum to ~1, got %f", sum)
		}
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	dir := t.TempDir()

	sentiment := TrainSentimentModel()
	sentimentPath := filepath.Join(dir, "sentiment_model.json")
	if err := sentiment.Save(sentimentPath); err != nil {
		t.Fatalf("save sentiment: %v", err)
	}
	loaded, err := LoadSentimentModel(sentimentPath)
	if err != nil {
		t.Fatalf("load sentiment: %v", err)
	}
	wantLabel, _, _, _ := sentiment.Classify("Life is good.")
	gotLabel, _, _, err := loaded.Classify("Life is good.")
	if err != nil {
		t.Fatalf("classify with loaded model: %v", err)
	}
	if gotLabel != wantLabel {
		t.Errorf("loaded model disagrees: got %s, want %s", gotLabel, wantLabel)
	}

	emotion := TrainEmotionModel()
	emotionPath := filepath.Join(dir, "emotion_model.json")
	if err := emotion.Save(emotionPath); err != nil {
		t.Fatalf("save emotion: %v", err)
	}
	loadedEmotion, err := LoadEmotionModel(emotionPath)
	if err != nil {
		t.Fatalf("load emotion: %v", err)
	}
	wantEmotion, _, _, _ := emotion.Classify("I want to cry.")
	gotEmotion, _, _, err := loadedEmotion.Classify("I want to cry.")
	if err != nil {
		t.Fatalf("classify with loaded model: %v", err)
	}
	if gotEmotion != wantEmotion {
		t.Errorf("loaded model disagrees: got %s, want %s", gotEmotion, wantEmotion)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	if _, err := LoadSentimentModel(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error loading missing artifact")
	}
}
