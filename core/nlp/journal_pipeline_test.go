package nlp

import (
	"strings"
	"testing"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"collapses whitespace", "too   many\t\nspaces", "too many spaces"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
		{"idempotent on clean input", "already clean", "already clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.in); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Running twice must not change the result.
			if got := Preprocess(Preprocess(tt.in)); got != tt.want {
				t.Errorf("Preprocess not idempotent for %q: got %q", tt.in, got)
			}
		})
	}
}

func TestLemmatize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips stopwords", "I am so happy today", "happy today"},
		{"lowercases and drops punctuation", "GREAT Meeting!", "great meeting"},
		{"all stopwords keeps preprocessed input", "it is what it is", "it is what it is"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lemmatize(tt.in); got != tt.want {
				t.Errorf("Lemmatize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCalculateMoodScore(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		intensity float64
		want      int
	}{
		{"positive adds intensity", 0.5, 0.8, 9},   // 7.5 + 1.6 = 9.1
		{"negative subtracts intensity", -0.5, 0.8, 1}, // 2.5 - 1.6 = 0.9
		{"zero uses subtract branch", 0, 0.5, 4},   // 5 - 1 = 4
		{"clamps high", 1, 1, 10},
		{"clamps low", -1, 1, 0},
		{"neutral no intensity", 0, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateMoodScore(tt.score, tt.intensity); got != tt.want {
				t.Errorf("CalculateMoodScore(%v, %v) = %d, want %d", tt.score, tt.intensity, got, tt.want)
			}
		})
	}
}

func TestPeakIntensity(t *testing.T) {
	if got := PeakIntensity(nil); got != 0.5 {
		t.Errorf("empty distribution should default to 0.5, got %v", got)
	}
	if got := PeakIntensity(map[string]float64{"happy": 0.2, "sad": 0.9}); got != 0.9 {
		t.Errorf("PeakIntensity = %v, want 0.9", got)
	}
}

func TestExtractThemes(t *testing.T) {
	text := "I had a stressful meeting about the looming quarterly deadline. The looming quarterly deadline is impossible."

	themes := ExtractThemes(text, 5)
	if len(themes) == 0 {
		t.Fatal("expected at least one theme")
	}
	if len(themes) > 5 {
		t.Errorf("expected at most 5 themes, got %d", len(themes))
	}
	for _, theme := range themes {
		if len(theme) <= 3 {
			t.Errorf("theme %q has length <= 3", theme)
		}
		if theme != strings.ToLower(theme) {
			t.Errorf("theme %q should be lowercased", theme)
		}
	}

	// The long phrase outscores the two-word candidates.
	if themes[0] != "looming quarterly deadline" {
		t.Errorf("top theme = %q, want %q", themes[0], "looming quarterly deadline")
	}
}

func TestExtractThemesEmptyInput(t *testing.T) {
	if themes := ExtractThemes("", 5); len(themes) != 0 {
		t.Errorf("expected no themes for empty text, got %v", themes)
	}
	// All-stopword text has no RAKE candidates and no fallback survivors.
	if themes := ExtractThemes("the and or but", 5); len(themes) != 0 {
		t.Errorf("expected no themes for stopword-only text, got %v", themes)
	}
}

func TestHighlightPhrases(t *testing.T) {
	text := "Work was hard today. Work again tomorrow, and more WORK after that. Work never ends."

	highlighted := HighlightPhrases(text, []string{"work", "vacation"})

	matches, ok := highlighted["work"]
	if !ok {
		t.Fatal("expected matches for theme 'work'")
	}
	if len(matches) != 3 {
		t.Errorf("expected 3 matches (capped), got %d: %v", len(matches), matches)
	}
	if matches[0] != "Work" || matches[2] != "WORK" {
		t.Errorf("matches should preserve original casing in order: %v", matches)
	}

	if _, ok := highlighted["vacation"]; ok {
		t.Error("zero-match theme should be omitted from the result")
	}
}

func TestHighlightPhrasesWholeWord(t *testing.T) {
	highlighted := HighlightPhrases("The workshop was fine.", []string{"work"})
	if len(highlighted) != 0 {
		t.Errorf("partial word should not match: %v", highlighted)
	}
}

func TestBasicSuggestions(t *testing.T) {
	table := DefaultEmojiMap()

	tests := []struct {
		name        string
		emotion     string
		themes      []string
		wantContain string
		maxLen      int
	}{
		{
			name:        "base suggestions for known emotion",
			emotion:     "sad",
			themes:      nil,
			wantContain: "It's okay to feel sad.",
			maxLen:      5,
		},
		{
			name:        "work theme appends work suggestion",
			emotion:     "anxious",
			themes:      []string{"project deadline"},
			wantContain: "Consider taking a short break from work tasks",
			maxLen:      5,
		},
		{
			name:        "unknown emotion uses neutral base",
			emotion:     "confused",
			themes:      nil,
			wantContain: "Check in with yourself.",
			maxLen:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BasicSuggestions(table, tt.emotion, tt.themes)
			if len(got) == 0 || len(got) > tt.maxLen {
				t.Fatalf("suggestion count %d out of (0,%d]", len(got), tt.maxLen)
			}
			found := false
			for _, s := range got {
				if s == tt.wantContain {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("suggestions %v should contain %q", got, tt.wantContain)
			}
		})
	}
}

func TestBasicSuggestionsCap(t *testing.T) {
	table := DefaultEmojiMap()
	table["sad"] = EmojiEntry{Emoji: "😢", Suggestions: []string{"a", "b", "c", "d"}}

	got := BasicSuggestions(table, "sad", []string{"work with family at school"})
	if len(got) != 5 {
		t.Errorf("expected truncation to 5, got %d: %v", len(got), got)
	}
	// Base suggestions come first.
	if got[0] != "a" {
		t.Errorf("base suggestions must precede theme appends: %v", got)
	}
}

func TestEmojiMapLookup(t *testing.T) {
	table := DefaultEmojiMap()
	if table.Lookup("happy").Emoji != "😊" {
		t.Error("happy should resolve to its own entry")
	}
	if table.Lookup("unheard-of").Emoji != "😐" {
		t.Error("unknown label should resolve to neutral")
	}
}
