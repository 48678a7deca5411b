package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"portal-gateway/internal/dashboard"
	"portal-gateway/internal/profile"
	"portal-gateway/internal/refresh"
	"portal-gateway/internal/session"
	"portal-gateway/internal/shared/config"
	"portal-gateway/internal/timeutil"
	"portal-gateway/internal/upstream"
)

const usage = `usage: portal <command> [flags]

commands:
  login <token>   store a bearer token for later commands
  logout          clear the stored token
  dashboard       print the poster dashboard (-watch to keep it updating)
  profile         print profile completion
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		fatalf("open session store: %v", err)
	}
	defer store.Close()

	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, store, os.Args[2:])
	case "logout":
		err = store.ClearToken(ctx)
	case "dashboard":
		err = runDashboard(ctx, store, client, os.Args[2:])
	case "profile":
		err = runProfile(ctx, store, client)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func runLogin(ctx context.Context, store session.Store, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("usage: portal login <token>")
	}
	token := strings.TrimSpace(args[0])

	claims, err := session.DecodeClaims(token)
	if err != nil {
		return fmt.Errorf("token is not a decodable JWT: %w", err)
	}
	if claims.Expired(time.Now()) {
		return fmt.Errorf("token is already expired")
	}

	if err := store.SetToken(ctx, token); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", claims.Sub, claims.UserType)
	return nil
}

func runDashboard(ctx context.Context, store session.Store, client *upstream.Client, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	watch := fs.Bool("watch", false, "keep the view on screen, re-rendering timestamps every minute")
	refetch := fs.Duration("refetch", 0, "also refetch data on this interval (watch mode only)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := requireToken(ctx, store)
	if err != nil {
		return err
	}
	svc := dashboard.NewService(client)

	if !*watch {
		view, err := svc.Build(ctx, token, time.Now())
		if err != nil {
			return err
		}
		renderDashboard(view, time.Now())
		return nil
	}

	r := &refresh.Refresher{
		RefetchPeriod: *refetch,
		Fetch: func(ctx context.Context) (any, error) {
			return svc.Build(ctx, token, time.Now())
		},
		Render: func(snapshot any, now time.Time) {
			renderDashboard(snapshot.(dashboard.View), now)
		},
	}
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runProfile(ctx context.Context, store session.Store, client *upstream.Client) error {
	token, err := requireToken(ctx, store)
	if err != nil {
		return err
	}

	view, err := profile.NewService(client).BuildCompletion(ctx, token)
	if err != nil {
		return err
	}

	fmt.Printf("profile completion: %d%%\n\n", view.Percentage)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "education\t%d\n", view.Counts.Education)
	fmt.Fprintf(w, "skills\t%d\n", view.Counts.Skills)
	fmt.Fprintf(w, "languages\t%d\n", view.Counts.Languages)
	fmt.Fprintf(w, "internships\t%d\n", view.Counts.Internships)
	fmt.Fprintf(w, "projects\t%d\n", view.Counts.Projects)
	fmt.Fprintf(w, "employment\t%d\n", view.Counts.Employment)
	fmt.Fprintf(w, "accomplishments\t%d\n", view.Counts.Accomplishments.Total)
	return w.Flush()
}

func renderDashboard(view dashboard.View, now time.Time) {
	fmt.Printf("\nactive jobs: %d (%s)   applications: %d (%s)   interviews: %d (%s)   hired: %d (%s)\n\n",
		view.Stats.ActiveJobs, view.Changes.ActiveJobs,
		view.Stats.TotalApplications, view.Changes.TotalApplications,
		view.Stats.InterviewsScheduled, view.Changes.InterviewsScheduled,
		view.Stats.HiredThisMonth, view.Changes.HiredThisMonth)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tLOCATION\tAPPLICATIONS\tSTATUS\tPOSTED\tVIEWS")
	for _, row := range view.Jobs {
		posted := row.Posted
		if !row.PostedAt.IsZero() {
			posted = timeutil.Relative(row.PostedAt, now)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\n",
			row.Title, row.Location, row.Applications, row.Status, posted, row.Views)
	}
	w.Flush()

	if len(view.TopCandidates) > 0 {
		fmt.Println("\nrecent candidates:")
		for _, cand := range view.TopCandidates {
			fmt.Printf("  [%s] %s - %s (%s)\n", cand.Avatar, cand.Name, cand.Position, cand.Status)
		}
	}
}

func requireToken(ctx context.Context, store session.Store) (string, error) {
	token, err := store.GetToken(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", fmt.Errorf("not logged in; run: portal login <token>")
	}
	return token, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
