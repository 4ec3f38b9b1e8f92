package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-insights/resume/model"
)

func keywordHits(n int) KeywordHits {
	hits := KeywordHits{Technical: make([]string, n)}
	for i := range hits.Technical {
		hits.Technical[i] = fmt.Sprintf("kw%d", i)
	}
	return hits
}

func completeSections(personalScore int, ids ...string) map[string]SectionReport {
	out := make(map[string]SectionReport, len(model.Sections))
	for _, id := range model.Sections {
		out[id] = SectionReport{SectionID: id}
	}
	for _, id := range ids {
		out[id] = SectionReport{SectionID: id, IsComplete: true}
	}
	personal := out[model.SectionPersonal]
	personal.Score = personalScore
	out[model.SectionPersonal] = personal
	return out
}

func TestCompositeExactScores(t *testing.T) {
	cases := []struct {
		name        string
		sections    map[string]SectionReport
		lex         Lexical
		readability int
		wordCount   int
		text        string
		want        CompositeScores
	}{
		{
			name:        "mixed profile",
			sections:    completeSections(70, model.SectionPersonal, model.SectionSummary, model.SectionSkills),
			lex:         Lexical{ActionVerbCount: 5, QuantifiableCount: 3, KeywordHits: keywordHits(3)},
			readability: 50,
			wordCount:   300,
			text:        "software programming data",
			want:        CompositeScores{Completeness: 43, ATSCompatibility: 66, Readability: 50, Impact: 60, IndustryAlignment: 40, Overall: 54},
		},
		{
			name:        "complete sections without lexical signal",
			sections:    completeSections(100, model.Sections...),
			readability: 100,
			want:        CompositeScores{Completeness: 100, ATSCompatibility: 40, Readability: 100, Impact: 0, IndustryAlignment: 0, Overall: 52},
		},
		{
			name:        "readability clamped",
			sections:    completeSections(0),
			readability: 130,
			want:        CompositeScores{Readability: 100, Overall: 15},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Composite(tc.sections, tc.lex, tc.readability, tc.wordCount, tc.text)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestATSWordCountBands(t *testing.T) {
	cases := []struct {
		wordCount int
		want      int
	}{
		{wordCount: 0, want: 0},
		{wordCount: 199, want: 0},
		{wordCount: 200, want: 15},
		{wordCount: 299, want: 15},
		{wordCount: 300, want: 25},
		{wordCount: 800, want: 25},
		{wordCount: 801, want: 15},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, atsScore(0, 0, Lexical{}, tc.wordCount), "wordCount=%d", tc.wordCount)
	}
}

func TestATSComponents(t *testing.T) {
	assert.Equal(t, 6, atsScore(0, 0, Lexical{KeywordHits: keywordHits(3)}, 0))
	assert.Equal(t, 20, atsScore(0, 0, Lexical{KeywordHits: keywordHits(15)}, 0))
	assert.Equal(t, 0, atsScore(0, 0, Lexical{ActionVerbCount: 4, QuantifiableCount: 2}, 0))
	assert.Equal(t, 15, atsScore(0, 0, Lexical{ActionVerbCount: 5, QuantifiableCount: 3}, 0))
	assert.Equal(t, 30, atsScore(100, 0, Lexical{}, 0))
	assert.Equal(t, 10, atsScore(0, 100, Lexical{}, 0))
	assert.Equal(t, 100, atsScore(100, 100, Lexical{ActionVerbCount: 9, QuantifiableCount: 9, KeywordHits: keywordHits(20)}, 500))
}

func TestImpactCaps(t *testing.T) {
	cases := []struct {
		name      string
		lex       Lexical
		wordCount int
		want      int
	}{
		{name: "one of each", lex: Lexical{ActionVerbCount: 1, QuantifiableCount: 1, KeywordHits: keywordHits(1)}, want: 15},
		{name: "quantifiable cap", lex: Lexical{QuantifiableCount: 10}, want: 40},
		{name: "verb cap", lex: Lexical{ActionVerbCount: 10}, want: 30},
		{name: "keyword cap", lex: Lexical{KeywordHits: keywordHits(15)}, want: 20},
		{name: "all capped long", lex: Lexical{ActionVerbCount: 10, QuantifiableCount: 10, KeywordHits: keywordHits(15)}, wordCount: 400, want: 100},
		{name: "all capped medium", lex: Lexical{ActionVerbCount: 10, QuantifiableCount: 10, KeywordHits: keywordHits(15)}, wordCount: 399, want: 95},
		{name: "length bonus 200", wordCount: 200, want: 5},
		{name: "length bonus 199", wordCount: 199, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, impactScore(tc.lex, tc.wordCount))
		})
	}
}

func TestIndustryAlignmentTakesBestGroup(t *testing.T) {
	assert.Equal(t, 0, IndustryAlignment(""))
	assert.Equal(t, 50, IndustryAlignment("ui ux design"))
	assert.Equal(t, 60, IndustryAlignment("software data analytics statistics"))
	assert.Equal(t, 100, IndustryAlignment("software programming development coding technical"))
}
