package analytics

import (
	"strings"

	"resume-insights/resume/model"
)

// Content is the analyzable corpus of a resume.
type Content struct {
	FullText   string            `json:"fullText"`
	LowerText  string            `json:"lowerText"`
	PerSection map[string]string `json:"perSection"`
}

// Extract flattens a resume into summary, responsibilities and project
// descriptions, in that order. Missing fields contribute nothing.
func Extract(doc model.ResumeDocument) Content {
	parts := make([]string, 0, 1+len(doc.Experience)+len(doc.Projects))
	parts = append(parts, doc.Summary)

	experience := make([]string, 0, len(doc.Experience))
	for _, exp := range doc.Experience {
		text := exp.ResponsibilitiesText()
		parts = append(parts, text)
		experience = append(experience, strings.TrimSpace(model.JoinNonBlank([]string{exp.Role, exp.Company}, " ")+" "+text))
	}

	projects := make([]string, 0, len(doc.Projects))
	for _, proj := range doc.Projects {
		parts = append(parts, proj.Description)
		projects = append(projects, model.JoinNonBlank([]string{proj.Title, proj.Description}, " "))
	}

	education := make([]string, 0, len(doc.Education))
	for _, edu := range doc.Education {
		education = append(education, model.JoinNonBlank([]string{edu.Degree, edu.Institution}, " "))
	}

	certs := make([]string, 0, len(doc.Certifications))
	for _, cert := range doc.Certifications {
		certs = append(certs, model.JoinNonBlank([]string{cert.Name, cert.Issuer}, " "))
	}

	p := doc.Personal
	full := model.JoinNonBlank(parts, " ")
	return Content{
		FullText:  full,
		LowerText: strings.ToLower(full),
		PerSection: map[string]string{
			model.SectionPersonal:       model.JoinNonBlank([]string{p.Name, p.Email, p.Phone, p.LinkedIn, p.GitHub, p.Address}, " "),
			model.SectionSummary:        strings.TrimSpace(doc.Summary),
			model.SectionExperience:     model.JoinNonBlank(experience, " "),
			model.SectionEducation:      model.JoinNonBlank(education, " "),
			model.SectionSkills:         model.JoinNonBlank(doc.Skills, " "),
			model.SectionProjects:       model.JoinNonBlank(projects, " "),
			model.SectionCertifications: model.JoinNonBlank(certs, " "),
		},
	}
}

// WordCount returns the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
