package nlp

import (
	"os"

	"journal_server/pkg/logger"

	"github.com/goccy/go-json"
)

// EmojiEntry is one row of the emotion→emoji/suggestion table.
type EmojiEntry struct {
	Emoji       string   `json:"emoji"`
	Suggestions []string `json:"suggestions"`
}

// EmojiMap resolves an emotion label to its presentation entry.
type EmojiMap map[string]EmojiEntry

// DefaultEmojiMap is the complete built-in table.
func DefaultEmojiMap() EmojiMap {
	return EmojiMap{
		"happy":    {Emoji: "😊", Suggestions: []string{"Celebrate this positive moment!", "Share your joy."}},
		"sad":      {Emoji: "😢", Suggestions: []string{"It's okay to feel sad.", "Reach out to a friend."}},
		"angry":    {Emoji: "😠", Suggestions: []string{"Take deep breaths.", "Go for a walk."}},
		"anxious":  {Emoji: "😰", Suggestions: []string{"Focus on what you can control.", "Practice grounding."}},
		"fear":     {Emoji: "😨", Suggestions: []string{"You are safe right now.", "Talk to someone."}},
		"surprise": {Emoji: "😲", Suggestions: []string{"Take a moment to process.", "Write about it."}},
		"neutral":  {Emoji: "😐", Suggestions: []string{"Check in with yourself.", "Practice mindfulness."}},
		"calm":     {Emoji: "😌", Suggestions: []string{"Enjoy the peace.", "Practice gratitude."}},
	}
}

// LoadEmojiMap returns the built-in table, overridden per label by the
// JSON file at path when one is configured and parseable. Never fails.
func LoadEmojiMap(path string) EmojiMap {
	table := DefaultEmojiMap()
	if path == "" {
		return table
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).Warn("emoji map %s not readable, using builtin", path)
		return table
	}

	var override EmojiMap
	if err := json.Unmarshal(data, &override); err != nil {
		logger.WithError(err).Warn("emoji map %s not parseable, using builtin", path)
		return table
	}

	for label, entry := range override {
		table[label] = entry
	}
	return table
}

// Lookup resolves an emotion label; unknown labels get the neutral entry.
func (m EmojiMap) Lookup(emotion string) EmojiEntry {
	if entry, ok := m[emotion]; ok {
		return entry
	}
	return m["neutral"]
}
