// Command tetra is a small CLI over the TETRA CHANNEL client. It
// exists to exercise the library end to end: look up users, walk
// leaderboards page by page, read news streams and server statistics.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/okian/tetra/internal/config"
	"github.com/okian/tetra/pkg/logger"
	"github.com/okian/tetra/pkg/metrics"
	"github.com/okian/tetra/pkg/tetra"
	"github.com/okian/tetra/pkg/tetra/model"
	"github.com/okian/tetra/pkg/tetra/param"
)

const (
	requestTimeout    = 15 * time.Second
	leaderboardPage   = 10
	readHeaderTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Named("tetra")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr, log)
	}

	opts := []tetra.Option{
		tetra.WithBaseURL(cfg.BaseURL),
		tetra.WithSessionID(cfg.SessionID),
		tetra.WithObserver(metrics.Observer()),
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, tetra.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)))
	}
	client := tetra.New(opts...)

	if len(os.Args) < 2 {
		usage()
		return 2
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	switch os.Args[1] {
	case "user":
		if len(os.Args) < 3 {
			usage()
			return 2
		}
		err = showUser(ctx, client, os.Args[2])
	case "leaderboard":
		country := ""
		if len(os.Args) > 2 {
			country = os.Args[2]
		}
		err = walkLeaderboard(ctx, client, country)
	case "news":
		err = showNews(ctx, client)
	case "stats":
		err = showStats(ctx, client)
	default:
		usage()
		return 2
	}
	if err != nil {
		log.Error(ctx, "command failed", logger.String("command", os.Args[1]), logger.Error(err))
		return 1
	}
	return 0
}

func usage() {
	os.Stderr.WriteString(`usage: tetra <command> [args]

commands:
  user <username>        show a user's profile and league standing
  leaderboard [country]  walk the first two TETRA LEAGUE pages
  news                   show the latest global news
  stats                  show server statistics
`)
}

func showUser(ctx context.Context, client *tetra.Client, name string) error {
	res, err := client.GetUser(ctx, name)
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("user lookup rejected: %s", res.Error.Msg)
	}
	u := res.Data
	fmt.Printf("%s (%s) level %d, %s\n", u.Username, u.Role, u.Level(), u.ProfileURL())
	if u.Country != "" {
		fmt.Printf("  country: %s\n", u.Country)
	}

	league, err := client.GetUserLeague(ctx, name)
	if err != nil {
		return fmt.Errorf("fetch league summary: %w", err)
	}
	if league.Success && league.Data.Ranked() {
		d := league.Data
		fmt.Printf("  rank %s (%0.0f TR, %.1f%% GLIXARE)\n", d.Rank.Name(), d.TR, d.GXE)
	} else {
		fmt.Println("  unranked this season")
	}
	return nil
}

// walkLeaderboard fetches the first page of the TETRA LEAGUE
// leaderboard and continues past its last entry using the entry's
// pagination cursor.
func walkLeaderboard(ctx context.Context, client *tetra.Client, country string) error {
	criteria := param.NewUserLeaderboardCriteria().WithLimit(leaderboardPage)
	if country != "" {
		criteria = criteria.WithCountry(country)
	}

	res, err := client.GetLeaderboard(ctx, param.LeaderboardLeague, criteria)
	if err != nil {
		return fmt.Errorf("fetch first page: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("leaderboard rejected: %s", res.Error.Msg)
	}
	entries := res.Data.Entries
	printEntries(entries, 0)
	if len(entries) == 0 {
		return nil
	}

	next := criteria.WithAfter(entries[len(entries)-1].Prisecter.ToArray())
	res, err = client.GetLeaderboard(ctx, param.LeaderboardLeague, next)
	if err != nil {
		return fmt.Errorf("fetch second page: %w", err)
	}
	if res.Success {
		printEntries(res.Data.Entries, len(entries))
	}
	return nil
}

func printEntries(entries []model.LeaderboardUser, offset int) {
	for i, e := range entries {
		fmt.Printf("%3d. %-16s %s %0.0f TR\n", offset+i+1, e.Username, e.League.Rank.Name(), e.League.TR)
	}
}

func showNews(ctx context.Context, client *tetra.Client) error {
	res, err := client.GetNewsStream(ctx, param.GlobalNews(), leaderboardPage)
	if err != nil {
		return fmt.Errorf("fetch news: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("news rejected: %s", res.Error.Msg)
	}
	for _, n := range res.Data.News {
		if d, ok := n.LeaderboardNews(); ok {
			fmt.Printf("%s entered the %s leaderboard at #%d\n", d.Username, d.Gametype, d.Rank)
			continue
		}
		fmt.Printf("[%s] %s\n", n.Type, n.ID)
	}
	return nil
}

func showStats(ctx context.Context, client *tetra.Client) error {
	res, err := client.GetServerStats(ctx)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("stats rejected: %s", res.Error.Msg)
	}
	s := res.Data
	fmt.Printf("users: %d (%d registered), games played: %d\n",
		s.UserCount, s.RegisteredPlayers(), s.GamesPlayed)
	fmt.Printf("pieces placed: %d (%.1f/s average)\n",
		s.PiecesPlaced, s.AveragePiecesPerSecond())

	activity, err := client.GetServerActivity(ctx)
	if err != nil {
		return fmt.Errorf("fetch activity: %w", err)
	}
	if activity.Success {
		if peak, _, ok := activity.Data.Peak(); ok {
			fmt.Printf("peak activity over the last 2 days: %d players\n", peak)
		}
	}
	return nil
}

func serveMetrics(ctx context.Context, addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(ctx, "metrics server failed", logger.Error(err))
	}
}
