package recommendations

// Rule maps a condition on the metrics to a recommendation.
type Rule struct {
	When           func(Input) bool
	Recommendation Recommendation
}

// Threshold maps a condition on the metrics to a strength or weakness message.
type Threshold struct {
	When    func(Input) bool
	Message string
}

// Rules is evaluated top to bottom; every matching rule contributes.
var Rules = []Rule{
	{
		When: func(in Input) bool { return in.Overall < 70 },
		Recommendation: Recommendation{
			ID:          "COMPREHENSIVE_ENHANCEMENT",
			Type:        TypeCritical,
			Title:       "Comprehensive Resume Enhancement Required",
			Description: "Your resume needs significant improvements to be competitive in today's market.",
			Action:      "Focus on completing all sections and improving content quality",
			Impact:      ImpactHigh,
			Priority:    1,
		},
	},
	{
		When: func(in Input) bool { return in.QuantifiableCount < 5 },
		Recommendation: Recommendation{
			ID:          "QUANTIFIABLE_RESULTS",
			Type:        TypeWarning,
			Title:       "Add More Quantifiable Results",
			Description: "Recruiters love to see measurable impact. Add numbers, percentages, and metrics.",
			Action:      `Include specific metrics like "Increased sales by 25%" or "Managed team of 8"`,
			Impact:      ImpactHigh,
			Priority:    2,
		},
	},
	{
		When: func(in Input) bool { return in.KeywordHits < 10 },
		Recommendation: Recommendation{
			ID:          "INDUSTRY_KEYWORDS",
			Type:        TypeWarning,
			Title:       "Optimize for Industry Keywords",
			Description: "Your resume lacks industry-specific keywords that ATS systems look for.",
			Action:      "Research job descriptions and include relevant technical and industry terms",
			Impact:      ImpactHigh,
			Priority:    2,
		},
	},
	{
		When: func(in Input) bool { return in.ActionVerbCount < 8 },
		Recommendation: Recommendation{
			ID:          "ACTION_VERBS",
			Type:        TypeInfo,
			Title:       "Strengthen Action Verbs",
			Description: "Use more powerful action verbs to demonstrate your impact and leadership.",
			Action:      `Replace weak verbs with strong ones like "spearheaded", "orchestrated", "transformed"`,
			Impact:      ImpactMedium,
			Priority:    3,
		},
	},
	{
		When: func(in Input) bool { return in.ATSCompatibility < 60 },
		Recommendation: Recommendation{
			ID:          "ATS_OPTIMIZATION",
			Type:        TypeWarning,
			Title:       "ATS Optimization Required",
			Description: "Your resume may not pass Applicant Tracking Systems effectively.",
			Action:      "Add relevant keywords and complete the contact and experience sections",
			Impact:      ImpactHigh,
			Priority:    2,
		},
	},
	{
		When: func(in Input) bool { return len(missingSections(in.Sections)) > 0 },
		Recommendation: Recommendation{
			ID:          "MISSING_SECTIONS",
			Type:        TypeWarning,
			Title:       "Complete Missing Sections",
			Description: "Incomplete sections lower both completeness and ATS scores.",
			Action:      "Fill in every section listed as missing",
			Impact:      ImpactHigh,
			Priority:    2,
		},
	},
	{
		When: func(in Input) bool { return in.Impact < 50 },
		Recommendation: Recommendation{
			ID:          "ACHIEVEMENT_IMPACT",
			Type:        TypeInfo,
			Title:       "Enhance Achievement Impact",
			Description: "Quantify your achievements with specific numbers and metrics.",
			Action:      "Add percentages, dollar amounts, and measurable results",
			Impact:      ImpactMedium,
			Priority:    3,
		},
	},
}

// StrengthThresholds produce strengths when their condition holds.
var StrengthThresholds = []Threshold{
	{When: func(in Input) bool { return in.Completeness >= 90 }, Message: "Comprehensive resume with all key sections"},
	{When: func(in Input) bool { return in.ATSCompatibility >= 80 }, Message: "Excellent ATS compatibility"},
	{When: func(in Input) bool { return in.Impact >= 70 }, Message: "Strong demonstration of achievements and impact"},
	{When: func(in Input) bool { return in.Readability >= 60 }, Message: "Clear, readable writing"},
	{When: func(in Input) bool { return in.IndustryAlignment >= 60 }, Message: "Strong industry alignment"},
}

// WeaknessThresholds produce weaknesses when their condition holds.
var WeaknessThresholds = []Threshold{
	{When: func(in Input) bool { return in.Completeness < 60 }, Message: "Multiple sections incomplete"},
	{When: func(in Input) bool { return in.WordCount < 200 }, Message: "Resume content is too brief for effective evaluation"},
	{When: func(in Input) bool { return in.ActionVerbCount < 3 }, Message: "Lacks strong action verbs to demonstrate impact"},
	{When: func(in Input) bool { return in.Readability < 30 }, Message: "Dense, hard-to-read writing"},
}
