package recommendations

import (
	"reflect"
	"testing"
)

func strongInput() Input {
	return Input{
		Overall:           85,
		Completeness:      100,
		ATSCompatibility:  90,
		Readability:       65,
		Impact:            90,
		IndustryAlignment: 70,
		QuantifiableCount: 12,
		ActionVerbCount:   10,
		KeywordHits:       14,
		WordCount:         450,
		Sections: []SectionStatus{
			{ID: "personal", IsComplete: true},
			{ID: "summary", IsComplete: true},
		},
	}
}

func TestGenerateDeterminism(t *testing.T) {
	input := Input{Overall: 40, QuantifiableCount: 1, Sections: []SectionStatus{{ID: "skills"}}}
	first := Generate(input)
	second := Generate(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic output")
	}
}

func TestGenerateEmptyMetricsOrdering(t *testing.T) {
	res := Generate(Input{Sections: []SectionStatus{{ID: "personal"}, {ID: "summary"}}})
	if len(res.Recommendations) == 0 {
		t.Fatalf("expected recommendations for empty metrics")
	}
	first := res.Recommendations[0]
	if first.Title != "Comprehensive Resume Enhancement Required" || first.Priority != 1 || first.Type != TypeCritical {
		t.Fatalf("unexpected first recommendation: %+v", first)
	}
	for i := 1; i < len(res.Recommendations); i++ {
		if res.Recommendations[i-1].Priority > res.Recommendations[i].Priority {
			t.Fatalf("recommendations not sorted by priority at %d", i)
		}
	}
	// Table order is kept among equal priorities.
	if res.Recommendations[1].ID != "QUANTIFIABLE_RESULTS" || res.Recommendations[2].ID != "INDUSTRY_KEYWORDS" {
		t.Fatalf("unexpected priority-2 order: %s, %s", res.Recommendations[1].ID, res.Recommendations[2].ID)
	}
	if !reflect.DeepEqual(res.MissingSections, []string{"personal", "summary"}) {
		t.Fatalf("unexpected missing sections %v", res.MissingSections)
	}
}

func TestGenerateStrongInputHasNoRecommendations(t *testing.T) {
	res := Generate(strongInput())
	if len(res.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %+v", res.Recommendations)
	}
	if len(res.Weaknesses) != 0 {
		t.Fatalf("expected no weaknesses, got %v", res.Weaknesses)
	}
	if len(res.Strengths) != len(StrengthThresholds) {
		t.Fatalf("expected every strength, got %v", res.Strengths)
	}
	if len(res.MissingSections) != 0 {
		t.Fatalf("expected no missing sections, got %v", res.MissingSections)
	}
}

func TestGenerateThresholdBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Input)
		wantID  string
		present bool
	}{
		{name: "overall_70_no_critical", mutate: func(in *Input) { in.Overall = 70 }, wantID: "COMPREHENSIVE_ENHANCEMENT", present: false},
		{name: "overall_69_critical", mutate: func(in *Input) { in.Overall = 69 }, wantID: "COMPREHENSIVE_ENHANCEMENT", present: true},
		{name: "quant_4", mutate: func(in *Input) { in.QuantifiableCount = 4 }, wantID: "QUANTIFIABLE_RESULTS", present: true},
		{name: "keywords_9", mutate: func(in *Input) { in.KeywordHits = 9 }, wantID: "INDUSTRY_KEYWORDS", present: true},
		{name: "verbs_8", mutate: func(in *Input) { in.ActionVerbCount = 8 }, wantID: "ACTION_VERBS", present: false},
		{name: "verbs_7", mutate: func(in *Input) { in.ActionVerbCount = 7 }, wantID: "ACTION_VERBS", present: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := strongInput()
			tc.mutate(&in)
			res := Generate(in)
			found := false
			for _, r := range res.Recommendations {
				if r.ID == tc.wantID {
					found = true
				}
			}
			if found != tc.present {
				t.Fatalf("expected %s present=%v, got %v", tc.wantID, tc.present, found)
			}
		})
	}
}

func TestEngineCustomRuleTable(t *testing.T) {
	engine := Engine{Rules: []Rule{
		{When: func(Input) bool { return true }, Recommendation: Recommendation{ID: "late", Priority: 5}},
		{When: func(Input) bool { return true }, Recommendation: Recommendation{ID: "early", Priority: 0}},
		{When: func(Input) bool { return false }, Recommendation: Recommendation{ID: "never", Priority: 0}},
	}}
	res := engine.Generate(Input{})
	if len(res.Recommendations) != 2 || res.Recommendations[0].ID != "early" {
		t.Fatalf("unexpected recommendations %+v", res.Recommendations)
	}
	if len(res.Strengths) != 0 || len(res.Weaknesses) != 0 {
		t.Fatalf("expected empty threshold results")
	}
}
