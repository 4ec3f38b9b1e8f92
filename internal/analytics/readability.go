package analytics

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	vowelGroup    = regexp.MustCompile(`[aeiouy]+`)
)

// Readability returns the Flesch Reading Ease of text clamped to 0..100.
// Text with no words or no sentences scores 0.
func Readability(text string) int {
	words := strings.Fields(text)
	sentences := splitSentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))
	flesch := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	return clampScore(int(math.Round(flesch)))
}

// CountSyllables estimates syllables by counting vowel groups after dropping
// non-letters and a trailing "e". Every word has at least one syllable.
func CountSyllables(word string) int {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, strings.ToLower(word))
	letters = strings.TrimSuffix(letters, "e")
	return max(1, len(vowelGroup.FindAllStringIndex(letters, -1)))
}

func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
