package analytics

import "resume-insights/internal/analytics/recommendations"

// IssueKind classifies a section finding.
type IssueKind string

const (
	IssueMissing    IssueKind = "missing"
	IssueContent    IssueKind = "content"
	IssueSuggestion IssueKind = "suggestion"
)

// Issue is a problem or non-fatal suggestion found in one section.
type Issue struct {
	Kind       IssueKind `json:"kind"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Strength is a positive finding in one section.
type Strength struct {
	Message string `json:"message"`
	Impact  string `json:"impact"`
}

// SectionReport is the completeness verdict for one section.
type SectionReport struct {
	SectionID  string     `json:"sectionId"`
	IsComplete bool       `json:"isComplete"`
	Score      int        `json:"score"`
	Issues     []Issue    `json:"issues"`
	Strengths  []Strength `json:"strengths"`
}

// KeywordHits holds the listed keywords found in the text, per category.
type KeywordHits struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Industry  []string `json:"industry"`
}

// Total returns the number of distinct keywords across categories.
func (k KeywordHits) Total() int {
	seen := make(map[string]struct{}, len(k.Technical)+len(k.Soft)+len(k.Industry))
	for _, group := range [][]string{k.Technical, k.Soft, k.Industry} {
		for _, kw := range group {
			seen[kw] = struct{}{}
		}
	}
	return len(seen)
}

// TermFrequency is one entry of the keyword density table.
type TermFrequency struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Lexical holds the results of scanning the corpus.
type Lexical struct {
	ActionVerbCount   int             `json:"actionVerbCount"`
	QuantifiableCount int             `json:"quantifiableCount"`
	KeywordHits       KeywordHits     `json:"keywordHits"`
	KeywordDensity    []TermFrequency `json:"keywordDensity"`
}

// CompositeScores are the named 0..100 scores plus the weighted overall score.
type CompositeScores struct {
	Completeness      int `json:"completeness"`
	ATSCompatibility  int `json:"atsCompatibility"`
	Readability       int `json:"readability"`
	Impact            int `json:"impact"`
	IndustryAlignment int `json:"industryAlignment"`
	Overall           int `json:"overall"`
}

// ContentQuality summarizes sentence-level writing traits.
type ContentQuality struct {
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	ComplexWords      int     `json:"complexWords"`
	PassiveVoice      int     `json:"passiveVoice"`
	Redundancy        float64 `json:"redundancy"`
	Clarity           int     `json:"clarity"`
}

// Benchmark places the overall score in a coarse ranking band.
type Benchmark struct {
	AverageScore  int    `json:"averageScore"`
	Ranking       string `json:"ranking"`
	TopPercentile int    `json:"topPercentile"`
}

// Insights are secondary metrics that do not feed the overall score.
type Insights struct {
	ContentQuality  ContentQuality `json:"contentQuality"`
	Professionalism int            `json:"professionalism"`
	Hirability      int            `json:"hirability"`
	Benchmark       Benchmark      `json:"benchmark"`
	Improvements    []string       `json:"improvements"`
	Tips            []string       `json:"tips"`
}

// AnalysisReport is the sole output of Analyze.
type AnalysisReport struct {
	Scores          CompositeScores                  `json:"compositeScores"`
	Sections        map[string]SectionReport         `json:"sectionReports"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
	Strengths       []string                         `json:"strengths"`
	Weaknesses      []string                         `json:"weaknesses"`
	MissingSections []string                         `json:"missingSections"`
	Lexical         Lexical                          `json:"lexical"`
	WordCount       int                              `json:"wordCount"`
	Insights        Insights                         `json:"insights"`
}
