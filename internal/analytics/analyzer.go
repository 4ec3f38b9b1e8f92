// Package analytics scores a structured resume and explains the score.
//
// Every function in this package is pure: it reads only its arguments and
// returns freshly allocated values, so Analyze is safe for concurrent use and
// never fails. Missing or empty input degrades to zero scores and empty lists.
package analytics

import (
	"strings"

	"resume-insights/internal/analytics/recommendations"
	"resume-insights/resume/model"
)

// Analyze runs the full pipeline: extraction, section completeness, lexical
// scan, readability, composite scores and recommendations.
func Analyze(doc model.ResumeDocument) AnalysisReport {
	content := Extract(doc)
	sections := AnalyzeSections(doc)
	lex := AnalyzeLexical(content.FullText)
	wordCount := WordCount(content.FullText)
	readability := Readability(content.FullText)
	scores := Composite(sections, lex, readability, wordCount, content.LowerText)

	result := recommendations.Generate(RecommendationInput(scores, sections, lex, wordCount))

	return AnalysisReport{
		Scores:          scores,
		Sections:        sections,
		Recommendations: result.Recommendations,
		Strengths:       result.Strengths,
		Weaknesses:      result.Weaknesses,
		MissingSections: result.MissingSections,
		Lexical:         lex,
		WordCount:       wordCount,
		Insights:        BuildInsights(content, scores, lex, wordCount),
	}
}

// RecommendationInput maps computed metrics onto the rule engine's input.
func RecommendationInput(scores CompositeScores, sections map[string]SectionReport, lex Lexical, wordCount int) recommendations.Input {
	statuses := make([]recommendations.SectionStatus, 0, len(model.Sections))
	for _, id := range model.Sections {
		statuses = append(statuses, recommendations.SectionStatus{ID: id, IsComplete: sections[id].IsComplete})
	}
	return recommendations.Input{
		Overall:           scores.Overall,
		Completeness:      scores.Completeness,
		ATSCompatibility:  scores.ATSCompatibility,
		Readability:       scores.Readability,
		Impact:            scores.Impact,
		IndustryAlignment: scores.IndustryAlignment,
		QuantifiableCount: lex.QuantifiableCount,
		ActionVerbCount:   lex.ActionVerbCount,
		KeywordHits:       lex.KeywordHits.Total(),
		WordCount:         wordCount,
		Sections:          statuses,
	}
}

// TextReport is the subset of metrics available for unstructured text.
type TextReport struct {
	WordCount         int            `json:"wordCount"`
	Readability       int            `json:"readability"`
	IndustryAlignment int            `json:"industryAlignment"`
	Lexical           Lexical        `json:"lexical"`
	ContentQuality    ContentQuality `json:"contentQuality"`
	Professionalism   int            `json:"professionalism"`
}

// AnalyzeText scores raw resume text, such as text pulled from a PDF, where
// no section structure is available.
func AnalyzeText(text string) TextReport {
	content := Content{FullText: text, LowerText: strings.ToLower(text)}
	return TextReport{
		WordCount:         WordCount(text),
		Readability:       Readability(text),
		IndustryAlignment: IndustryAlignment(content.LowerText),
		Lexical:           AnalyzeLexical(text),
		ContentQuality:    contentQuality(content.LowerText),
		Professionalism:   professionalism(text),
	}
}
