package analytics

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const benchmarkAverageScore = 72

var (
	passiveVoicePattern = regexp.MustCompile(`\b(was|were|been|being)\s+\w+ed\b`)
	firstPersonPattern  = regexp.MustCompile(`(?i)\b(i|my|me)\b`)

	wordyPhrases  = []string{"in order to", "due to the fact that", "it should be noted that"}
	informalWords = []string{"awesome", "cool", "stuff", "things", "lots of", "a lot"}
)

// BuildInsights derives the secondary metrics shown next to the scores.
func BuildInsights(content Content, scores CompositeScores, lex Lexical, wordCount int) Insights {
	return Insights{
		ContentQuality:  contentQuality(content.LowerText),
		Professionalism: professionalism(content.FullText),
		Hirability: clampScore(int(math.Round(
			float64(scores.Overall)*0.4 +
				float64(scores.ATSCompatibility)*0.3 +
				float64(scores.Impact)*0.2 +
				float64(scores.IndustryAlignment)*0.1,
		))),
		Benchmark:    benchmark(scores.Overall),
		Improvements: improvements(scores, lex),
		Tips:         tips(scores, wordCount),
	}
}

func contentQuality(lower string) ContentQuality {
	words := strings.Fields(lower)
	sentences := splitSentences(lower)

	complex := 0
	freq := make(map[string]int, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) > 6 {
			complex++
		}
		freq[w]++
	}
	repeated := 0
	for _, n := range freq {
		if n > 2 {
			repeated++
		}
	}
	redundancy := 0.0
	if len(words) > 0 {
		redundancy = round2(float64(repeated) / float64(len(words)) * 100)
	}

	wordy := 0
	for _, phrase := range wordyPhrases {
		if strings.Contains(lower, phrase) {
			wordy++
		}
	}

	return ContentQuality{
		AvgSentenceLength: round2(float64(len(words)) / float64(max(len(sentences), 1))),
		ComplexWords:      complex,
		PassiveVoice:      len(passiveVoicePattern.FindAllStringIndex(lower, -1)),
		Redundancy:        redundancy,
		Clarity:           max(0, 100-wordy*10),
	}
}

func professionalism(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	lower := strings.ToLower(text)
	score := 100.0
	for _, w := range informalWords {
		if strings.Contains(lower, w) {
			score -= 5
		}
	}
	if n := len(firstPersonPattern.FindAllStringIndex(text, -1)); n > 10 {
		score -= float64(n-10) * 2
	}
	sentences := splitSentences(text)
	if len(sentences) > 0 {
		capitalized := 0
		for _, s := range sentences {
			r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s))
			if unicode.IsUpper(r) {
				capitalized++
			}
		}
		score += float64(capitalized)/float64(len(sentences))*20 - 20
	}
	return clampScore(int(math.Round(score)))
}

func benchmark(overall int) Benchmark {
	b := Benchmark{AverageScore: benchmarkAverageScore}
	switch {
	case overall >= 85:
		b.Ranking, b.TopPercentile = "Top 10%", 10
	case overall >= 75:
		b.Ranking, b.TopPercentile = "Top 25%", 25
	case overall >= 60:
		b.Ranking, b.TopPercentile = "Top 50%", 50
	default:
		b.Ranking, b.TopPercentile = "Below Average", 75
	}
	return b
}

func improvements(scores CompositeScores, lex Lexical) []string {
	out := []string{}
	if scores.Readability < 60 {
		out = append(out, "Simplify language and sentence structure for better readability")
	}
	if scores.IndustryAlignment < 50 {
		out = append(out, "Include more industry-specific keywords and terminology")
	}
	if lex.QuantifiableCount < 5 {
		out = append(out, "Add more quantifiable achievements and metrics")
	}
	return out
}

func tips(scores CompositeScores, wordCount int) []string {
	out := []string{}
	if wordCount < 300 {
		out = append(out, "Expand your descriptions with specific examples and achievements")
	}
	if scores.Readability < 70 {
		out = append(out, "Simplify your language and use shorter sentences for better readability")
	}
	if scores.Completeness < 90 {
		out = append(out, "Complete all resume sections to maximize your professional presence")
	}
	return append(out,
		"Tailor your resume for each job application using relevant keywords",
		"Use the STAR method (Situation, Task, Action, Result) for experience descriptions",
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
