// Package dashboard derives the poster dashboard from job and application
// snapshots fetched from the backend.
package dashboard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"portal-gateway/internal/timeutil"
	"portal-gateway/internal/upstream"
)

const topCandidateCount = 3

// Fallbacks for records with missing fields.
const (
	unknownJobTitle    = "Unknown Job"
	unknownJobLocation = "Unknown Location"
	unknownApplicant   = "Unknown Applicant"
	unknownPosition    = "Unknown Position"
	defaultJobStatus   = "Active"
	defaultAppStatus   = "Under Review"
)

// Compute aggregates the dashboard view from the poster's jobs and each job's
// applications. appsByJob maps job ID to that job's applications; jobs whose
// application fetch failed must be absent from the map (not mapped to nil), so
// they still get a zero row but stay out of the candidate pool.
//
// Pure: identical inputs yield identical output.
func Compute(jobs []upstream.Job, appsByJob map[int64][]upstream.Application, now time.Time) View {
	// Two deliberately different spans: "this week" is a trailing 7-day
	// window, "this month" is the calendar month.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := Stats{ActiveJobs: len(jobs)}
	var jobsThisWeek, applicationsToday, interviewsThisWeek int

	type taggedApp struct {
		app      upstream.Application
		jobTitle string
	}
	var pool []taggedApp

	rows := make([]JobRow, 0, len(jobs))
	for _, job := range jobs {
		if !job.CreatedAt.IsZero() && !job.CreatedAt.Time.Before(weekStart) {
			jobsThisWeek++
		}

		apps := appsByJob[job.ID]
		for _, app := range apps {
			stats.TotalApplications++
			if app.Status == upstream.StatusInterview {
				stats.InterviewsScheduled++
				if !app.ActivityAt().Before(weekStart) {
					interviewsThisWeek++
				}
			}
			if app.Status == upstream.StatusHired && !app.ActivityAt().Before(monthStart) {
				stats.HiredThisMonth++
			}
			if !app.CreatedAt.Time.Before(todayStart) {
				applicationsToday++
			}
			pool = append(pool, taggedApp{app: app, jobTitle: job.JobTitle})
		}

		rows = append(rows, JobRow{
			ID:           job.ID,
			Title:        fallback(job.JobTitle, unknownJobTitle),
			Location:     fallback(job.JobLocation, unknownJobLocation),
			Applications: len(apps),
			Status:       fallback(job.Status, defaultJobStatus),
			Posted:       timeutil.Relative(job.CreatedAt.Time, now),
			Views:        job.Views,
			PostedAt:     job.CreatedAt.Time,
		})
	}

	// Most recent applicants across all jobs; stable sort keeps encounter
	// order for equal timestamps.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].app.CreatedAt.Time.After(pool[j].app.CreatedAt.Time)
	})
	if len(pool) > topCandidateCount {
		pool = pool[:topCandidateCount]
	}
	candidates := make([]Candidate, 0, len(pool))
	for _, entry := range pool {
		candidates = append(candidates, Candidate{
			ID:       entry.app.ID,
			Name:     fallback(entry.app.ApplicantName, unknownApplicant),
			Position: fallback(entry.jobTitle, unknownPosition),
			Status:   fallback(entry.app.Status, defaultAppStatus),
			Avatar:   Initials(entry.app.ApplicantName),
		})
	}

	return View{
		Stats: stats,
		Changes: Changes{
			ActiveJobs:          fmt.Sprintf("+%d this week", jobsThisWeek),
			TotalApplications:   fmt.Sprintf("+%d today", applicationsToday),
			InterviewsScheduled: fmt.Sprintf("+%d this week", interviewsThisWeek),
			HiredThisMonth:      fmt.Sprintf("+%d this month", stats.HiredThisMonth),
		},
		Jobs:          rows,
		TopCandidates: candidates,
	}
}

// Initials derives the avatar initials: first letter of each whitespace token,
// upper-cased, at most two; "NA" when there is no name.
func Initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "NA"
	}
	letters := make([]rune, 0, 2)
	for _, token := range tokens {
		letters = append(letters, []rune(token)[0])
		if len(letters) == 2 {
			break
		}
	}
	return strings.ToUpper(string(letters))
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
