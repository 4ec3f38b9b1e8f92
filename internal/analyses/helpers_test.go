package analyses

import (
	"fmt"
	"time"

	"resume-insights/internal/cache"
	"resume-insights/resume/model"
)

func sampleDocument() model.ResumeDocument {
	return model.ResumeDocument{
		Personal: model.Personal{Name: "Grace Hopper", Email: "grace@example.com", Phone: "555-0100"},
		Summary:  "Backend engineer who built Python and SQL services on AWS for 3M users.",
		Experience: []model.Experience{{
			Role:             "Engineer",
			Company:          "Navy Labs",
			StartDate:        "2018",
			EndDate:          "Present",
			Responsibilities: []string{"Led a team of 5 engineers and reduced costs by 20%.", "Developed REST API services with Docker."},
		}},
		Skills: []string{"Go", "Python", "SQL"},
	}
}

func newTestService(repo Repo, c cache.Cache) *Service {
	svc := NewService(repo, c, time.Minute)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := 0
	svc.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	ids := 0
	svc.newID = func() string {
		ids++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", ids)
	}
	return svc
}
