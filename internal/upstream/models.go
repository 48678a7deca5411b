package upstream

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Application statuses used by the poster views.
const (
	StatusApplied     = "applied"
	StatusUnderReview = "under_review"
	StatusInterview   = "interview"
	StatusRejected    = "rejected"
	StatusHired       = "hired"
)

// Job is a poster's job posting as returned by GET /api/jobs.
type Job struct {
	ID          int64     `json:"id"`
	JobTitle    string    `json:"job_title"`
	JobLocation string    `json:"job_location"`
	Status      string    `json:"status"`
	CreatedAt   Timestamp `json:"created_at"`
	Views       int       `json:"views"`
}

// Application is a seeker's submission against a job, as returned by
// GET /api/applications/{jobId}.
type Application struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	ApplicantName     string    `json:"applicant_name"`
	ApplicantEmail    string    `json:"applicant_email"`
	ApplicantMobile   string    `json:"applicant_mobile"`
	ApplicantLocation string    `json:"applicant_location"`
	Status            string    `json:"status"`
	CreatedAt         Timestamp `json:"created_at"`
	UpdatedAt         Timestamp `json:"updated_at"`
}

// ActivityAt is the timestamp used for "this month"/"this week" status deltas:
// updated_at when the backend set one, else created_at.
func (a Application) ActivityAt() time.Time {
	if !a.UpdatedAt.IsZero() {
		return a.UpdatedAt.Time
	}
	return a.CreatedAt.Time
}

// Timestamp decodes the handful of timestamp layouts the backend emits.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

// Stringish accepts a JSON string or number; profile fields like age and
// expected_salary arrive as either depending on how the row was written.
type Stringish string

func (s *Stringish) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		unquoted, err := strconv.Unquote(trimmed)
		if err != nil {
			return err
		}
		*s = Stringish(unquoted)
		return nil
	}
	*s = Stringish(trimmed)
	return nil
}

func (s Stringish) String() string { return string(s) }
