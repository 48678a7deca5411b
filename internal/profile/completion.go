package profile

import (
	"math"
	"strings"

	"portal-gateway/internal/upstream"
)

// AccomplishmentCounts breaks the accomplishment entries down by type.
type AccomplishmentCounts struct {
	Certifications int `json:"certifications"`
	Awards         int `json:"awards"`
	Clubs          int `json:"clubs"`
	Total          int `json:"total"`
}

// Counts holds the per-resource entry counts the completion checklist reads.
type Counts struct {
	Education       int                  `json:"education"`
	Skills          int                  `json:"skills"`
	Languages       int                  `json:"languages"`
	Internships     int                  `json:"internships"`
	Projects        int                  `json:"projects"`
	Employment      int                  `json:"employment"`
	Accomplishments AccomplishmentCounts `json:"accomplishments"`
}

// The checklist is fixed: 12 basic fields, summary, resume, 7 count flags.
const totalChecklistItems = 21

// Completion returns the profile completion percentage: the share of checklist
// items populated, rounded half-up to the nearest integer.
func Completion(basic upstream.Profile, summary, resumeURL string, counts Counts) int {
	checks := []bool{
		nonBlank(basic.FirstName),
		nonBlank(basic.LastName),
		nonBlank(basic.Email),
		nonBlank(basic.Phone),
		nonBlank(basic.City),
		nonBlank(basic.State),
		nonBlank(basic.Country),
		nonBlank(basic.PreferredLocation),
		nonBlank(string(basic.Age)),
		nonBlank(basic.Gender),
		nonBlank(basic.JobType),
		nonBlank(string(basic.ExpectedSalary)),
		nonBlank(summary),
		nonBlank(resumeURL),
		counts.Education > 0,
		counts.Skills > 0,
		counts.Languages > 0,
		counts.Internships > 0,
		counts.Projects > 0,
		counts.Employment > 0,
		counts.Accomplishments.Total > 0,
	}

	populated := 0
	for _, ok := range checks {
		if ok {
			populated++
		}
	}
	return int(math.Round(float64(populated) * 100 / totalChecklistItems))
}

func nonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TallyAccomplishments buckets entries by their type discriminator. Unknown
// types still count toward the total.
func TallyAccomplishments(items []upstream.Accomplishment) AccomplishmentCounts {
	out := AccomplishmentCounts{Total: len(items)}
	for _, item := range items {
		switch strings.ToLower(strings.TrimSpace(item.Type)) {
		case "certification", "certifications":
			out.Certifications++
		case "award", "awards":
			out.Awards++
		case "club", "clubs":
			out.Clubs++
		}
	}
	return out
}
