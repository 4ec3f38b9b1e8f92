package recommendations

// Recommendation is a prioritized, human-readable suggestion. Lower priority
// values are more urgent.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Type        string `json:"type"`
	Impact      string `json:"impact"`
	Priority    int    `json:"priority"`
}

// Recommendation types.
const (
	TypeCritical = "critical"
	TypeWarning  = "warning"
	TypeInfo     = "info"
)

// Impact levels.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// SectionStatus is the minimal section view the engine needs.
type SectionStatus struct {
	ID         string
	IsComplete bool
}

// Input is the metric snapshot the rule table is evaluated against.
type Input struct {
	Overall           int
	Completeness      int
	ATSCompatibility  int
	Readability       int
	Impact            int
	IndustryAlignment int
	QuantifiableCount int
	ActionVerbCount   int
	KeywordHits       int
	WordCount         int
	Sections          []SectionStatus
}

// Result is everything the engine derives from one Input.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	MissingSections []string         `json:"missingSections"`
}
