package profile

import (
	"testing"

	"portal-gateway/internal/upstream"
)

func fullProfile() upstream.Profile {
	return upstream.Profile{
		FirstName:         "Jane",
		LastName:          "Doe",
		Email:             "jane@example.com",
		Phone:             "555-0100",
		City:              "Berlin",
		State:             "BE",
		Country:           "Germany",
		PreferredLocation: "Remote",
		Age:               "29",
		Gender:            "female",
		JobType:           "full-time",
		ExpectedSalary:    "90000",
	}
}

func fullCounts() Counts {
	return Counts{
		Education:       1,
		Skills:          4,
		Languages:       2,
		Internships:     1,
		Projects:        3,
		Employment:      2,
		Accomplishments: AccomplishmentCounts{Certifications: 1, Total: 1},
	}
}

func TestCompletionEmpty(t *testing.T) {
	if got := Completion(upstream.Profile{}, "", "", Counts{}); got != 0 {
		t.Fatalf("empty profile completion = %d, want 0", got)
	}
}

func TestCompletionFull(t *testing.T) {
	if got := Completion(fullProfile(), "Experienced engineer.", "https://cdn/resume.pdf", fullCounts()); got != 100 {
		t.Fatalf("full profile completion = %d, want 100", got)
	}
}

func TestCompletionSingleItem(t *testing.T) {
	// 100/21 = 4.76..., rounds to 5.
	prof := upstream.Profile{FirstName: "Jane"}
	if got := Completion(prof, "", "", Counts{}); got != 5 {
		t.Fatalf("single-item completion = %d, want 5", got)
	}
}

func TestCompletionIgnoresWhitespaceOnlyFields(t *testing.T) {
	prof := upstream.Profile{FirstName: "   ", LastName: "\t"}
	if got := Completion(prof, "  ", "", Counts{}); got != 0 {
		t.Fatalf("whitespace-only fields counted: %d", got)
	}
}

func TestCompletionCountFlagsAreBoolean(t *testing.T) {
	// A count of 40 skills scores the same as a count of 1.
	one := Completion(upstream.Profile{}, "", "", Counts{Skills: 1})
	many := Completion(upstream.Profile{}, "", "", Counts{Skills: 40})
	if one != many {
		t.Fatalf("count magnitude changed the score: %d vs %d", one, many)
	}
}

func TestTallyAccomplishments(t *testing.T) {
	items := []upstream.Accomplishment{
		{Type: "certification"},
		{Type: "Certifications"},
		{Type: "award"},
		{Type: " club "},
		{Type: "patent"},
	}
	got := TallyAccomplishments(items)
	want := AccomplishmentCounts{Certifications: 2, Awards: 1, Clubs: 1, Total: 5}
	if got != want {
		t.Fatalf("tally = %+v, want %+v", got, want)
	}
}
