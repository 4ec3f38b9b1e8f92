package model

import "strings"

// Section identifiers in canonical order.
const (
	SectionPersonal       = "personal"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// Sections lists every section id in the order reports present them.
var Sections = []string{
	SectionPersonal,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// ResumeDocument is the structured resume supplied by the editing UI.
// A missing section and an empty section are treated identically.
type ResumeDocument struct {
	Personal       Personal        `json:"personal"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// Personal captures contact and identity details.
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Experience represents a work history entry.
type Experience struct {
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Responsibilities []string `json:"responsibilities"`
}

// Education represents an education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	GPA         string `json:"gpa,omitempty"`
}

// Project represents a notable project.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// Certification represents a certification entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId,omitempty"`
}

// IsEmpty reports whether no personal field carries a value.
func (p Personal) IsEmpty() bool {
	return blank(p.Name) && blank(p.Email) && blank(p.Phone) &&
		blank(p.LinkedIn) && blank(p.GitHub) && blank(p.Address)
}

// ResponsibilitiesText joins the responsibilities with single spaces, skipping blanks.
func (e Experience) ResponsibilitiesText() string {
	return JoinNonBlank(e.Responsibilities, " ")
}

// SectionLen returns the number of entries in a list section, or -1 for
// sections that are not lists.
func (d ResumeDocument) SectionLen(section string) int {
	switch section {
	case SectionExperience:
		return len(d.Experience)
	case SectionEducation:
		return len(d.Education)
	case SectionSkills:
		return len(d.Skills)
	case SectionProjects:
		return len(d.Projects)
	case SectionCertifications:
		return len(d.Certifications)
	default:
		return -1
	}
}

// IsSectionAbsent reports whether a section is missing or empty.
func (d ResumeDocument) IsSectionAbsent(section string) bool {
	switch section {
	case SectionPersonal:
		return d.Personal.IsEmpty()
	case SectionSummary:
		return blank(d.Summary)
	default:
		return d.SectionLen(section) <= 0
	}
}

// JoinNonBlank joins the trimmed non-empty items with sep.
func JoinNonBlank(items []string, sep string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, sep)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
