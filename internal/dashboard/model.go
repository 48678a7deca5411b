package dashboard

import "time"

// Stats are the headline counters on the poster dashboard.
type Stats struct {
	ActiveJobs          int `json:"activeJobs"`
	TotalApplications   int `json:"totalApplications"`
	InterviewsScheduled int `json:"interviewsScheduled"`
	HiredThisMonth      int `json:"hiredThisMonth"`
}

// Changes are the period-over-period delta strings shown under each stat.
type Changes struct {
	ActiveJobs          string `json:"activeJobs"`
	TotalApplications   string `json:"totalApplications"`
	InterviewsScheduled string `json:"interviewsScheduled"`
	HiredThisMonth      string `json:"hiredThisMonth"`
}

// JobRow is one row of the dashboard's job table. Rows keep the order of the
// source job list. PostedAt backs re-rendering of Posted on the refresh tick.
type JobRow struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Applications int       `json:"applications"`
	Status       string    `json:"status"`
	Posted       string    `json:"posted"`
	Views        int       `json:"views"`
	PostedAt     time.Time `json:"-"`
}

// Candidate is an entry in the "most recent candidates" slice.
type Candidate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar"`
}

// View is the full aggregated dashboard, derived from a point-in-time snapshot
// of jobs and applications. It holds no independent state; every load
// recomputes it.
type View struct {
	Stats         Stats      `json:"stats"`
	Changes       Changes    `json:"changes"`
	Jobs          []JobRow   `json:"jobs"`
	TopCandidates []Candidate `json:"topCandidates"`
}
