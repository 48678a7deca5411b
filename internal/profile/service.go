package profile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"portal-gateway/internal/shared/telemetry"
	"portal-gateway/internal/upstream"
)

// CompletionView is the GET /profile/completion payload.
type CompletionView struct {
	Percentage int    `json:"percentage"`
	Counts     Counts `json:"counts"`
}

// Service derives completion state from the profile and its sub-resources.
type Service struct {
	Upstream *upstream.Client
}

// NewService constructs a Service.
func NewService(client *upstream.Client) *Service {
	return &Service{Upstream: client}
}

// FetchCounts loads every sub-resource count concurrently. A failed count
// degrades to zero so one broken collection does not hide the rest; auth
// failures abort because every remaining call would fail the same way.
func (s *Service) FetchCounts(ctx context.Context, token string) (Counts, error) {
	var counts Counts

	targets := []struct {
		resource upstream.Resource
		dest     *int
	}{
		{upstream.ResourceEducation, &counts.Education},
		{upstream.ResourceSkills, &counts.Skills},
		{upstream.ResourceLanguages, &counts.Languages},
		{upstream.ResourceInternships, &counts.Internships},
		{upstream.ResourceProjects, &counts.Projects},
		{upstream.ResourceEmployments, &counts.Employment},
	}

	g := new(errgroup.Group)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			n, err := s.Upstream.CountResource(ctx, token, target.resource)
			if err != nil {
				if upstream.IsAuthError(err) {
					return err
				}
				telemetry.Warn("profile.count.fetch_failed", map[string]any{
					"resource": string(target.resource),
					"err":      err.Error(),
				})
				return nil
			}
			*target.dest = n
			return nil
		})
	}
	g.Go(func() error {
		items, err := s.Upstream.ListAccomplishments(ctx, token)
		if err != nil {
			if upstream.IsAuthError(err) {
				return err
			}
			telemetry.Warn("profile.count.fetch_failed", map[string]any{
				"resource": string(upstream.ResourceAccomplishments),
				"err":      err.Error(),
			})
			return nil
		}
		counts.Accomplishments = TallyAccomplishments(items)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return counts, nil
}

// BuildCompletion fetches the profile and every count, then computes the
// percentage. The profile itself is required; counts degrade per collection.
func (s *Service) BuildCompletion(ctx context.Context, token string) (CompletionView, error) {
	var (
		prof   upstream.Profile
		counts Counts
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		p, err := s.Upstream.GetProfile(ctx, token)
		if err != nil {
			return err
		}
		prof = p
		return nil
	})
	g.Go(func() error {
		c, err := s.FetchCounts(ctx, token)
		if err != nil {
			return err
		}
		counts = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return CompletionView{}, err
	}

	return CompletionView{
		Percentage: Completion(prof, prof.ProfileSummary, prof.ResumeURL, counts),
		Counts:     counts,
	}, nil
}
