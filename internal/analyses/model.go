package analyses

import (
	"time"

	"resume-insights/internal/analytics"
)

// Analysis is a stored analysis of one resume document.
type Analysis struct {
	ID           string                   `json:"id"`
	UserID       string                   `json:"userId"`
	DocumentHash string                   `json:"documentHash"`
	Overall      int                      `json:"overall"`
	Report       analytics.AnalysisReport `json:"report"`
	CreatedAt    time.Time                `json:"createdAt"`
}

// Summary is the history view of an analysis.
type Summary struct {
	AnalysisID      string    `json:"analysisId"`
	Overall         int       `json:"overall"`
	Ranking         string    `json:"ranking"`
	MissingSections []string  `json:"missingSections"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Summarize builds the history view of a.
func (a Analysis) Summarize() Summary {
	missing := a.Report.MissingSections
	if missing == nil {
		missing = []string{}
	}
	return Summary{
		AnalysisID:      a.ID,
		Overall:         a.Overall,
		Ranking:         a.Report.Insights.Benchmark.Ranking,
		MissingSections: missing,
		CreatedAt:       a.CreatedAt,
	}
}
