package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal-gateway/internal/upstream"
)

func newUpstreamStub(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(upstream.New(srv.URL, 5*time.Second))
}

func TestBuildDegradesFailedApplicationFetch(t *testing.T) {
	svc := newUpstreamStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/jobs":
			w.Write([]byte(`[
				{"id":1,"job_title":"Backend Engineer","created_at":"2024-06-13T10:00:00Z"},
				{"id":2,"job_title":"Designer","created_at":"2024-06-01T10:00:00Z"}
			]`))
		case "/api/applications/1":
			w.Write([]byte(`[
				{"id":11,"applicant_name":"Jane Doe","status":"interview","created_at":"2024-06-12T10:00:00Z"},
				{"id":12,"applicant_name":"Bob Ray","status":"hired","created_at":"2024-06-02T10:00:00Z","updated_at":"2024-06-10T10:00:00Z"},
				{"id":13,"applicant_name":"Ana Li","status":"applied","created_at":"2024-06-01T10:00:00Z"}
			]`))
		case "/api/applications/2":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	view, err := svc.Build(context.Background(), "tok", now)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if view.Stats.TotalApplications != 3 {
		t.Fatalf("totalApplications = %d, want 3 (job B excluded)", view.Stats.TotalApplications)
	}
	if view.Stats.InterviewsScheduled != 1 || view.Stats.HiredThisMonth != 1 {
		t.Fatalf("unexpected stats: %+v", view.Stats)
	}
	if len(view.Jobs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(view.Jobs))
	}
	if view.Jobs[1].ID != 2 || view.Jobs[1].Applications != 0 {
		t.Fatalf("expected zero row for failed job B, got %+v", view.Jobs[1])
	}
	for _, cand := range view.TopCandidates {
		if cand.Position == "Designer" {
			t.Fatal("failed job must not contribute candidates")
		}
	}
}

func TestBuildPreservesJobOrderUnderSlowFetches(t *testing.T) {
	svc := newUpstreamStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/jobs":
			w.Write([]byte(`[
				{"id":1,"job_title":"First","created_at":"2024-06-10T10:00:00Z"},
				{"id":2,"job_title":"Second","created_at":"2024-06-11T10:00:00Z"},
				{"id":3,"job_title":"Third","created_at":"2024-06-12T10:00:00Z"}
			]`))
		case "/api/applications/1":
			// The first job answers last; row order must not change.
			time.Sleep(60 * time.Millisecond)
			w.Write([]byte(`[{"id":11,"applicant_name":"A","created_at":"2024-06-12T10:00:00Z"}]`))
		case "/api/applications/2":
			time.Sleep(20 * time.Millisecond)
			w.Write([]byte(`[]`))
		case "/api/applications/3":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	view, err := svc.Build(context.Background(), "tok", time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(view.Jobs) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(view.Jobs))
	}
	for i, wantID := range []int64{1, 2, 3} {
		if view.Jobs[i].ID != wantID {
			t.Fatalf("row %d has id %d, want %d", i, view.Jobs[i].ID, wantID)
		}
	}
	if view.Jobs[0].Applications != 1 {
		t.Fatalf("slow fetch result landed on wrong row: %+v", view.Jobs)
	}
}

func TestBuildAbortsWhenJobListFails(t *testing.T) {
	svc := newUpstreamStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := svc.Build(context.Background(), "tok", time.Now()); err == nil {
		t.Fatal("expected error when job list fetch fails")
	}
}
