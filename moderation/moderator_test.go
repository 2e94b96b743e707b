package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"cheater", "noob", "tricheur"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "You cheater go away",
			expected: "You ******* go away",
			words:    []string{"cheater"},
		},
		{
			name:     "Multiple occurrences",
			input:    "noob noob",
			expected: "**** ****",
			words:    []string{"noob", "noob"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "gg n.0.0.b",
			expected: "gg *******",
			words:    []string{"noob"},
		},
		{
			name:     "Order of appearance",
			input:    "N-O-O-B and C.H.E.A.T.E.R",
			expected: "******* and *************",
			words:    []string{"noob", "cheater"},
		},
		{
			name:     "Accents around a match",
			input:    "Quel été, tricheur",
			expected: "Quel été, ********",
			words:    []string{"tricheur"},
		},
		{
			name:     "Nothing to censor",
			input:    "Good game everyone",
			expected: "Good game everyone",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_NoiseOnlyDictionary(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a dictionary made of noise only
	mod, err := NewModerator([]string{"...", ",,,", ""}, replacementChar, log)
	req.NoError(err)

	// Then nothing is censored
	content, words := mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestModerator_Language(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"noob"}, replacementChar, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	req.Equal("fr", mod.Language("Bonjour à tous, je suis très content de jouer cette partie avec vous ce soir"))
	req.Equal("en", mod.Language("Hello everyone, I am really happy to play this game with all of you tonight"))
}
