package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal-gateway/internal/upstream"
)

func newServiceStub(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(upstream.New(srv.URL, 5*time.Second))
}

func TestBuildCompletionAggregatesCounts(t *testing.T) {
	svc := newServiceStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/userprofile":
			w.Write([]byte(`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","profile_summary":"hi","resume_url":"https://cdn/r.pdf"}`))
		case "/api/userskills":
			w.Write([]byte(`[{"id":1,"name":"Go"},{"id":2,"name":"SQL"}]`))
		case "/api/useraccomplishments":
			w.Write([]byte(`[{"id":1,"type":"award"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})

	view, err := svc.BuildCompletion(context.Background(), "tok")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if view.Counts.Skills != 2 || view.Counts.Accomplishments.Awards != 1 {
		t.Fatalf("unexpected counts: %+v", view.Counts)
	}
	// 3 basic fields + summary + resume + skills flag + accomplishments flag = 7 of 21.
	if view.Percentage != 33 {
		t.Fatalf("percentage = %d, want 33", view.Percentage)
	}
}

func TestFetchCountsDegradesFailedCollection(t *testing.T) {
	svc := newServiceStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/userprojects" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}
		w.Write([]byte(`[{"id":1}]`))
	})

	counts, err := svc.FetchCounts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("fetch counts: %v", err)
	}
	if counts.Projects != 0 {
		t.Fatalf("failed collection should degrade to zero, got %d", counts.Projects)
	}
	if counts.Education != 1 || counts.Skills != 1 {
		t.Fatalf("healthy collections lost: %+v", counts)
	}
}

func TestFetchCountsAbortsOnAuthFailure(t *testing.T) {
	svc := newServiceStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"token expired"}}`))
	})

	if _, err := svc.FetchCounts(context.Background(), "tok"); !upstream.IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
}
