package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"portal-gateway/internal/shared/metrics"
	"portal-gateway/internal/shared/telemetry"
	"portal-gateway/internal/upstream"
)

const maxConcurrentFetches = 8

// Service fetches the snapshot the dashboard is derived from.
type Service struct {
	Upstream *upstream.Client
}

// NewService constructs a Service.
func NewService(client *upstream.Client) *Service {
	return &Service{Upstream: client}
}

// Build fetches the poster's jobs and, per job, that job's applications, then
// aggregates the dashboard view.
//
// The per-job fetches fan out concurrently; results are slotted by job index
// so row order always matches the job list regardless of completion order. A
// failed per-job fetch degrades that job to a zero row and is excluded from
// the aggregates; a failed job-list fetch aborts the whole computation.
func (s *Service) Build(ctx context.Context, token string, now time.Time) (View, error) {
	start := metrics.NowMillis()

	jobs, err := s.Upstream.ListJobs(ctx, token)
	if err != nil {
		return View{}, err
	}

	results := make([][]upstream.Application, len(jobs))
	failed := make([]bool, len(jobs))

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentFetches)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			apps, err := s.Upstream.ListApplications(ctx, token, job.ID)
			if err != nil {
				telemetry.Warn("dashboard.applications.fetch_failed", map[string]any{
					"job_id": job.ID,
					"err":    err.Error(),
				})
				failed[i] = true
				return nil
			}
			results[i] = apps
			return nil
		})
	}
	_ = g.Wait()

	appsByJob := make(map[int64][]upstream.Application, len(jobs))
	for i, job := range jobs {
		if failed[i] {
			continue
		}
		appsByJob[job.ID] = results[i]
	}

	view := Compute(jobs, appsByJob, now)

	metrics.IncDashboardBuild()
	metrics.ObserveDashboardBuildMs(metrics.NowMillis() - start)
	return view, nil
}
