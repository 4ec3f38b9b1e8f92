package analytics

import (
	"math"
	"strings"

	"resume-insights/resume/model"
)

// Overall score weights.
const (
	weightATS          = 0.30
	weightCompleteness = 0.25
	weightImpact       = 0.20
	weightReadability  = 0.15
	weightIndustry     = 0.10
)

type industryGroup struct {
	name     string
	keywords []string
}

var industryGroups = []industryGroup{
	{name: "tech", keywords: []string{"software", "programming", "development", "coding", "technical"}},
	{name: "business", keywords: []string{"management", "strategy", "operations", "business", "sales"}},
	{name: "design", keywords: []string{"design", "creative", "visual", "ui", "ux", "graphic"}},
	{name: "data", keywords: []string{"data", "analytics", "statistics", "machine learning", "ai"}},
}

// Composite combines section, lexical and readability metrics into the named
// composite scores and the weighted overall score.
func Composite(sections map[string]SectionReport, lex Lexical, readability, wordCount int, lowerText string) CompositeScores {
	scores := CompositeScores{
		Completeness:      completenessScore(sections),
		Readability:       clampScore(readability),
		IndustryAlignment: IndustryAlignment(lowerText),
	}
	scores.ATSCompatibility = atsScore(scores.Completeness, sections[model.SectionPersonal].Score, lex, wordCount)
	scores.Impact = impactScore(lex, wordCount)

	weighted := float64(scores.ATSCompatibility)*weightATS +
		float64(scores.Completeness)*weightCompleteness +
		float64(scores.Impact)*weightImpact +
		float64(scores.Readability)*weightReadability +
		float64(scores.IndustryAlignment)*weightIndustry
	scores.Overall = clampScore(int(math.Round(weighted)))
	return scores
}

func completenessScore(sections map[string]SectionReport) int {
	complete := 0
	for _, id := range model.Sections {
		if sections[id].IsComplete {
			complete++
		}
	}
	return clampScore(int(math.Round(100 * float64(complete) / float64(len(model.Sections)))))
}

func atsScore(completeness, personalScore int, lex Lexical, wordCount int) int {
	score := float64(completeness) / 100 * 30
	switch {
	case wordCount >= 300 && wordCount <= 800:
		score += 25
	case wordCount >= 200:
		score += 15
	}
	score += math.Min(20, float64(lex.KeywordHits.Total()*2))
	if lex.ActionVerbCount >= 5 {
		score += 10
	}
	if lex.QuantifiableCount >= 3 {
		score += 5
	}
	score += float64(clampScore(personalScore)) / 100 * 10
	return clampScore(int(math.Round(score)))
}

func impactScore(lex Lexical, wordCount int) int {
	score := min(40, lex.QuantifiableCount*8) +
		min(30, lex.ActionVerbCount*5) +
		min(20, lex.KeywordHits.Total()*2)
	switch {
	case wordCount >= 400:
		score += 10
	case wordCount >= 200:
		score += 5
	}
	return clampScore(score)
}

// IndustryAlignment returns the best percentage of any industry group's
// keywords present in lowerText.
func IndustryAlignment(lowerText string) int {
	best := 0.0
	for _, g := range industryGroups {
		matches := 0
		for _, kw := range g.keywords {
			if strings.Contains(lowerText, kw) {
				matches++
			}
		}
		best = math.Max(best, float64(matches)/float64(len(g.keywords))*100)
	}
	return clampScore(int(math.Round(best)))
}
