package analytics

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-insights/resume/model"
)

const (
	summaryMinWords        = 30
	summaryMaxWords        = 150
	summaryTargetWords     = 75
	experienceMinDescChars = 50
)

// listRule describes completeness for a list-shaped section.
type listRule struct {
	min        int
	perItem    int
	suggestion string
}

var listRules = map[string]listRule{
	model.SectionEducation:      {min: 1, perItem: 20, suggestion: "Add your education history"},
	model.SectionSkills:         {min: 5, perItem: 10, suggestion: "Add more relevant skills (5-10 recommended)"},
	model.SectionProjects:       {min: 1, perItem: 20, suggestion: "Add at least one project"},
	model.SectionCertifications: {min: 1, perItem: 20, suggestion: "Add relevant certifications"},
}

// AnalyzeSections returns a report for every section id.
func AnalyzeSections(doc model.ResumeDocument) map[string]SectionReport {
	out := make(map[string]SectionReport, len(model.Sections))
	for _, id := range model.Sections {
		out[id] = AnalyzeSection(id, doc)
	}
	return out
}

// AnalyzeSection judges whether one section is present and adequately filled.
func AnalyzeSection(sectionID string, doc model.ResumeDocument) SectionReport {
	if doc.IsSectionAbsent(sectionID) {
		return SectionReport{
			SectionID: sectionID,
			Score:     0,
			Issues:    []Issue{{Kind: IssueMissing, Message: "Section is missing"}},
			Strengths: []Strength{},
		}
	}

	report := SectionReport{SectionID: sectionID, Issues: []Issue{}, Strengths: []Strength{}}
	switch sectionID {
	case model.SectionPersonal:
		analyzePersonal(doc.Personal, &report)
	case model.SectionSummary:
		analyzeSummary(doc.Summary, &report)
	case model.SectionExperience:
		analyzeExperience(doc.Experience, &report)
	default:
		rule, ok := listRules[sectionID]
		if !ok {
			return report
		}
		analyzeList(doc.SectionLen(sectionID), rule, &report)
	}
	report.Score = clampScore(report.Score)
	return report
}

func analyzePersonal(p model.Personal, r *SectionReport) {
	has := func(s string) bool { return strings.TrimSpace(s) != "" }

	score := 0
	if has(p.Name) {
		score += 25
	} else {
		r.Issues = append(r.Issues, Issue{Kind: IssueMissing, Message: "Missing name", Suggestion: "Add your full name"})
	}
	if has(p.Email) {
		score += 25
	} else {
		r.Issues = append(r.Issues, Issue{Kind: IssueMissing, Message: "Missing email address", Suggestion: "Add a professional email address"})
	}
	if has(p.Phone) {
		score += 20
	} else {
		r.Issues = append(r.Issues, Issue{Kind: IssueMissing, Message: "Missing phone number", Suggestion: "Add a phone number"})
	}
	if has(p.LinkedIn) {
		score += 15
	} else {
		r.Issues = append(r.Issues, Issue{Kind: IssueSuggestion, Message: "Add LinkedIn profile", Suggestion: "Add LinkedIn profile"})
	}
	if has(p.GitHub) || has(p.Address) {
		score += 15
	}

	r.IsComplete = has(p.Name) && has(p.Email) && has(p.Phone)
	r.Score = min(100, score)
	if has(p.LinkedIn) && has(p.Name) {
		r.Strengths = append(r.Strengths, Strength{Message: "Complete contact information", Impact: "medium"})
	}
}

func analyzeSummary(summary string, r *SectionReport) {
	words := WordCount(summary)
	r.IsComplete = words >= summaryMinWords
	r.Score = int(math.Round(math.Min(100, float64(words)/summaryTargetWords*100)))

	if words < summaryMinWords {
		r.Issues = append(r.Issues, Issue{
			Kind:       IssueContent,
			Message:    "Summary too short",
			Suggestion: fmt.Sprintf("Expand the summary to at least %d words", summaryMinWords),
		})
	}
	if words > summaryMaxWords {
		r.Issues = append(r.Issues, Issue{
			Kind:       IssueContent,
			Message:    "Summary too long",
			Suggestion: fmt.Sprintf("Trim the summary below %d words", summaryMaxWords),
		})
	}
	if !strings.ContainsFunc(summary, unicode.IsDigit) {
		r.Issues = append(r.Issues, Issue{
			Kind:       IssueSuggestion,
			Message:    "Include quantifiable achievements",
			Suggestion: "Include quantifiable achievements",
		})
	}
	if words >= 50 && words <= 100 {
		r.Strengths = append(r.Strengths, Strength{Message: "Optimal length", Impact: "medium"})
	}
}

func analyzeExperience(entries []model.Experience, r *SectionReport) {
	r.IsComplete = len(entries) > 0
	r.Score = min(100, len(entries)*30)

	detailed := 0
	for i, exp := range entries {
		n := i + 1
		if strings.TrimSpace(exp.Role) == "" {
			r.Issues = append(r.Issues, Issue{Kind: IssueMissing, Message: fmt.Sprintf("Experience %d: missing job title", n), Suggestion: "Add the job title"})
		}
		if strings.TrimSpace(exp.Company) == "" {
			r.Issues = append(r.Issues, Issue{Kind: IssueMissing, Message: fmt.Sprintf("Experience %d: missing company name", n), Suggestion: "Add the company name"})
		}
		if utf8.RuneCountInString(exp.ResponsibilitiesText()) < experienceMinDescChars {
			r.Issues = append(r.Issues, Issue{
				Kind:       IssueContent,
				Message:    fmt.Sprintf("Experience %d: description too short", n),
				Suggestion: "Add detailed responsibilities and results",
			})
			continue
		}
		detailed++
	}
	if detailed > 0 && detailed == len(entries) {
		r.Strengths = append(r.Strengths, Strength{Message: fmt.Sprintf("%d detailed roles", detailed), Impact: "high"})
	}
}

func analyzeList(n int, rule listRule, r *SectionReport) {
	r.IsComplete = n >= rule.min
	r.Score = min(100, n*rule.perItem)
	if !r.IsComplete {
		r.Issues = append(r.Issues, Issue{Kind: IssueSuggestion, Message: rule.suggestion, Suggestion: rule.suggestion})
		return
	}
	r.Strengths = append(r.Strengths, Strength{Message: fmt.Sprintf("%d items included", n), Impact: "low"})
}

func clampScore(v int) int {
	return max(0, min(100, v))
}
