// Package sentiment classifies submitted text into one of the fixed emotion
// labels. The classifier sits upstream of thread assignment: the label it
// produces partitions the thread corpus.
package sentiment

import (
	"strings"
	"unicode"

	"unsent/backend/internal/config"
)

// ValidEmotions is the closed set of labels a star can carry.
var ValidEmotions = []string{
	"grief",
	"regret",
	"love",
	"gratitude",
	"anger",
	"hope",
}

// Classifier maps free text to an emotion label and the polarity score the
// label was derived from.
type Classifier interface {
	Classify(text string) (emotion string, score float64)
}

// LexiconClassifier scores text by averaging the valence of recognized
// words, with simple negation flipping. Polarity lands in [-1, 1] and is
// banded into an emotion via the cutoffs in config.
type LexiconClassifier struct{}

func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{}
}

func (c *LexiconClassifier) Classify(text string) (string, float64) {
	polarity := Polarity(text)

	var emotion string
	switch {
	case polarity < config.GriefCeiling:
		emotion = "grief"
	case polarity < config.RegretCeiling:
		emotion = "regret"
	case polarity < config.HopeCeiling:
		emotion = "hope"
	case polarity < config.GratitudeCeiling:
		emotion = "gratitude"
	default:
		emotion = "love"
	}
	return emotion, polarity
}

// negators flip the valence of the word that follows them.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "dont": {}, "didnt": {},
	"cant": {}, "wont": {}, "isnt": {}, "wasnt": {}, "couldnt": {},
}

// Polarity averages the valence of recognized words in text. Text with no
// recognized sentiment words scores 0 (neutral).
func Polarity(text string) float64 {
	words := splitWords(text)

	var sum float64
	var matched int
	negate := false
	for _, w := range words {
		if _, ok := negators[w]; ok {
			negate = true
			continue
		}
		v, ok := valence[w]
		if !ok {
			continue
		}
		if negate {
			v = -v
		}
		sum += v
		matched++
		negate = false
	}

	if matched == 0 {
		return 0
	}
	return sum / float64(matched)
}

// splitWords lowercases and splits on non-letter runes, folding apostrophes
// so "don't" matches the negator list.
func splitWords(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "'", "")
	text = strings.ReplaceAll(text, "’", "")
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
