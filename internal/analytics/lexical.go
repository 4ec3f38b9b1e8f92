package analytics

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const keywordDensityLimit = 15

var actionVerbs = []string{
	"achieved", "developed", "managed", "led", "created", "implemented",
	"improved", "increased", "reduced", "optimized", "designed", "built",
	"launched", "delivered", "collaborated", "spearheaded", "transformed",
	"streamlined", "innovated", "executed", "orchestrated", "pioneered",
}

var technicalKeywords = []string{
	"javascript", "python", "react", "node", "aws", "docker", "kubernetes",
	"agile", "scrum", "api", "database", "sql", "git", "ci/cd", "machine learning",
	"artificial intelligence", "data science", "cloud computing", "microservices",
}

var softSkillKeywords = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"creative", "adaptable", "collaborative", "innovative", "strategic",
}

var industryKeywords = []string{
	"management", "strategy", "operations", "sales", "marketing",
	"business development", "project management", "stakeholder", "roi", "kpi",
	"devops",
}

// quantifiablePattern matches numbers with an optional decimal part and unit.
var quantifiablePattern = regexp.MustCompile(`(?i)\d+(\.\d+)?[%$kmb]?`)

// AnalyzeLexical scans text for action verbs, quantified results and keywords.
//
// Action verbs count once per distinct verb while quantifiable tokens count
// every occurrence; scores downstream depend on both behaviors.
func AnalyzeLexical(text string) Lexical {
	lower := strings.ToLower(text)
	return Lexical{
		ActionVerbCount:   len(matchTerms(lower, actionVerbs)),
		QuantifiableCount: len(quantifiablePattern.FindAllStringIndex(text, -1)),
		KeywordHits: KeywordHits{
			Technical: matchTerms(lower, technicalKeywords),
			Soft:      matchTerms(lower, softSkillKeywords),
			Industry:  matchTerms(lower, industryKeywords),
		},
		KeywordDensity: keywordDensity(lower, keywordDensityLimit),
	}
}

// matchTerms returns the terms that occur as substrings of lower, in list order.
func matchTerms(lower string, terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

func keywordDensity(lower string, limit int) []TermFrequency {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, tok := range strings.Fields(lower) {
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		if _, ok := counts[tok]; !ok {
			order = append(order, tok)
		}
		counts[tok]++
	}

	out := make([]TermFrequency, 0, len(order))
	for _, term := range order {
		out = append(out, TermFrequency{Term: term, Count: counts[term]})
	}
	// Stable sort keeps first-seen order for equal counts.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
