package recommendations

import "sort"

// Generate evaluates the default rule and threshold tables against input.
func Generate(input Input) Result {
	return Engine{Rules: Rules, Strengths: StrengthThresholds, Weaknesses: WeaknessThresholds}.Generate(input)
}

// Engine evaluates a rule table. The zero value produces no recommendations.
type Engine struct {
	Rules      []Rule
	Strengths  []Threshold
	Weaknesses []Threshold
}

// Generate collects every matching rule and sorts the result by priority,
// keeping table order for equal priorities.
func (e Engine) Generate(input Input) Result {
	recs := make([]Recommendation, 0, len(e.Rules))
	for _, rule := range e.Rules {
		if rule.When != nil && rule.When(input) {
			recs = append(recs, rule.Recommendation)
		}
	}
	sortRecommendations(recs)

	return Result{
		Recommendations: recs,
		Strengths:       evaluate(e.Strengths, input),
		Weaknesses:      evaluate(e.Weaknesses, input),
		MissingSections: missingSections(input.Sections),
	}
}

func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority < items[j].Priority
	})
}

func evaluate(table []Threshold, input Input) []string {
	out := make([]string, 0, len(table))
	for _, t := range table {
		if t.When != nil && t.When(input) {
			out = append(out, t.Message)
		}
	}
	return out
}

func missingSections(sections []SectionStatus) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if !s.IsComplete {
			out = append(out, s.ID)
		}
	}
	return out
}
