// Package tetra is a typed, read-only client for the TETRA CHANNEL
// API, the public statistics service of TETR.IO. Every method issues
// exactly one GET request and returns the decoded response envelope;
// the library never logs and never retries on its own.
package tetra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/okian/tetra/pkg/tetra/model"
	"github.com/okian/tetra/pkg/tetra/param"
)

// DefaultBaseURL is the production TETRA CHANNEL API root.
const DefaultBaseURL = "https://ch.tetr.io/api"

// UserRef is any model carrying a user reference. Most payload types
// that mention a user implement it, so a full profile is one call
// away from any of them.
type UserRef interface {
	UserID() string
}

// Observer is notified after every completed round trip. It receives
// a stable per-endpoint name, the HTTP status code (0 if the request
// never produced a response) and the elapsed wall time. Hook metrics
// in here; the client itself stays pass-through.
type Observer func(endpoint string, status int, elapsed time.Duration)

// Client talks to the TETRA CHANNEL API. It is immutable after New
// and safe for concurrent use.
type Client struct {
	base     string
	hc       *http.Client
	session  string
	limiter  *rate.Limiter
	observer Observer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Trailing
// slashes are trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.base = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to set
// timeouts or a custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithSessionID attaches an X-Session-ID header to every request so
// the server can pin cached paginated data to this session. Pass the
// empty string to generate a fresh ID.
func WithSessionID(id string) Option {
	return func(c *Client) {
		if id == "" {
			id = "SESS-" + uuid.NewString()
		}
		c.session = id
	}
}

// WithLimiter paces outgoing requests with the given limiter. Off by
// default; the API applies its own rate limits server-side.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithObserver registers a round-trip observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// New builds a Client for the production API. Options are applied in
// order.
func New(opts ...Option) *Client {
	c := &Client{
		base: DefaultBaseURL,
		hc:   http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do issues one GET against path and decodes the envelope. It is a
// free function because methods cannot introduce type parameters.
func do[T any](ctx context.Context, c *Client, endpoint, path string, params []param.Param) (*model.Response[T], error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &RequestError{Err: err}
		}
	}
	u := c.base + "/" + path
	if q := encodeParams(params); q != "" {
		u += "?" + q
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.session != "" {
		req.Header.Set("X-Session-ID", c.session)
	}

	start := time.Now()
	res, err := c.hc.Do(req)
	if err != nil {
		c.observe(endpoint, 0, time.Since(start))
		return nil, &RequestError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	c.observe(endpoint, res.StatusCode, time.Since(start))
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	var out model.Response[T]
	if err := json.Unmarshal(body, &out); err == nil {
		return &out, nil
	} else if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil, &DecodeError{Err: err}
	}
	// A failed request may still carry a decodable error envelope;
	// prefer surfacing the upstream message over a bare status code.
	var loose model.Response[json.RawMessage]
	if err := json.Unmarshal(body, &loose); err == nil && loose.Error != nil {
		return &model.Response[T]{Success: loose.Success, Error: loose.Error, Cache: loose.Cache}, nil
	}
	return nil, &HTTPError{StatusCode: res.StatusCode}
}

func (c *Client) observe(endpoint string, status int, elapsed time.Duration) {
	if c.observer != nil {
		c.observer(endpoint, status, elapsed)
	}
}

// encodeParams renders the ordered query pairs, preserving the order
// the criteria emitted them in.
func encodeParams(params []param.Param) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// userSegment lowercases and escapes a username or user ID for use as
// a path segment. The API only knows users by their lowercase form.
func userSegment(user string) string {
	return url.PathEscape(strings.ToLower(user))
}

// limitParams validates an optional standalone limit. 0 means "server
// default" and emits nothing; out-of-range limits are a caller bug
// and panic immediately.
func limitParams(limit int) []param.Param {
	if limit == 0 {
		return nil
	}
	if limit < 1 || limit > 100 {
		panic(fmt.Sprintf("limit must be between 1 and 100, got %d", limit))
	}
	return []param.Param{{Key: "limit", Value: strconv.Itoa(limit)}}
}

// GetUser fetches detailed information about a user by username or
// user ID.
func (c *Client) GetUser(ctx context.Context, user string) (*model.Response[model.User], error) {
	return do[model.User](ctx, c, "user", "users/"+userSegment(user), nil)
}

// UserOf fetches the full profile behind any model that references a
// user.
func (c *Client) UserOf(ctx context.Context, ref UserRef) (*model.Response[model.User], error) {
	return c.GetUser(ctx, ref.UserID())
}

// SearchUser looks up the user owning a social connection, e.g.
// param.Discord(id). The result's User field is nil if nobody matched.
func (c *Client) SearchUser(ctx context.Context, conn param.SocialConnection) (*model.Response[model.SearchedUser], error) {
	return do[model.SearchedUser](ctx, c, "user_search", "users/search/"+url.PathEscape(conn.String()), nil)
}

// GetUserSummaries fetches all of a user's per-mode summaries in one
// request. Consider the single-summary methods instead; this endpoint
// is heavy on the upstream server.
func (c *Client) GetUserSummaries(ctx context.Context, user string) (*model.Response[model.AllSummaries], error) {
	return do[model.AllSummaries](ctx, c, "summaries", "users/"+userSegment(user)+"/summaries", nil)
}

// GetUserFortyLines fetches a user's 40 LINES summary.
func (c *Client) GetUserFortyLines(ctx context.Context, user string) (*model.Response[model.FortyLinesSummary], error) {
	return do[model.FortyLinesSummary](ctx, c, "summary_40l", "users/"+userSegment(user)+"/summaries/40l", nil)
}

// GetUserBlitz fetches a user's BLITZ summary.
func (c *Client) GetUserBlitz(ctx context.Context, user string) (*model.Response[model.BlitzSummary], error) {
	return do[model.BlitzSummary](ctx, c, "summary_blitz", "users/"+userSegment(user)+"/summaries/blitz", nil)
}

// GetUserZenith fetches a user's QUICK PLAY summary.
func (c *Client) GetUserZenith(ctx context.Context, user string) (*model.Response[model.ZenithSummary], error) {
	return do[model.ZenithSummary](ctx, c, "summary_zenith", "users/"+userSegment(user)+"/summaries/zenith", nil)
}

// GetUserZenithEx fetches a user's EXPERT QUICK PLAY summary.
func (c *Client) GetUserZenithEx(ctx context.Context, user string) (*model.Response[model.ZenithSummary], error) {
	return do[model.ZenithSummary](ctx, c, "summary_zenithex", "users/"+userSegment(user)+"/summaries/zenithex", nil)
}

// GetUserLeague fetches a user's TETRA LEAGUE summary. For banned
// users the data decodes to the zero LeagueData.
func (c *Client) GetUserLeague(ctx context.Context, user string) (*model.Response[model.LeagueData], error) {
	return do[model.LeagueData](ctx, c, "summary_league", "users/"+userSegment(user)+"/summaries/league", nil)
}

// GetUserZen fetches a user's ZEN summary.
func (c *Client) GetUserZen(ctx context.Context, user string) (*model.Response[model.ZenSummary], error) {
	return do[model.ZenSummary](ctx, c, "summary_zen", "users/"+userSegment(user)+"/summaries/zen", nil)
}

// GetUserAchievements fetches all of a user's achievements.
func (c *Client) GetUserAchievements(ctx context.Context, user string) (*model.Response[[]model.Achievement], error) {
	return do[[]model.Achievement](ctx, c, "summary_achievements", "users/"+userSegment(user)+"/summaries/achievements", nil)
}

// GetLeaderboard fetches a page of a user leaderboard. The zero
// criteria value fetches the first page with server defaults; an
// out-of-range criteria limit panics.
func (c *Client) GetLeaderboard(ctx context.Context, leaderboard param.UserLeaderboardType, criteria param.UserLeaderboardCriteria) (*model.Response[model.Leaderboard], error) {
	return do[model.Leaderboard](ctx, c, "leaderboard", "users/by/"+leaderboard.String(), criteria.Build())
}

// GetHistoricalLeaderboard fetches a page of the final TETRA LEAGUE
// standings of a past season, e.g. season "1".
func (c *Client) GetHistoricalLeaderboard(ctx context.Context, season string, criteria param.UserLeaderboardCriteria) (*model.Response[model.HistoricalLeaderboard], error) {
	path := "users/history/" + param.LeaderboardLeague.String() + "/" + url.PathEscape(season)
	return do[model.HistoricalLeaderboard](ctx, c, "leaderboard_history", path, criteria.Build())
}

// GetUserRecords fetches a page of a user's records in one game mode,
// ordered by the given record leaderboard.
func (c *Client) GetUserRecords(ctx context.Context, user string, gamemode param.Gamemode, leaderboard param.RecordLeaderboardType, criteria param.RecordCriteria) (*model.Response[model.UserRecords], error) {
	path := "users/" + userSegment(user) + "/records/" + gamemode.String() + "/" + leaderboard.String()
	return do[model.UserRecords](ctx, c, "user_records", path, criteria.Build())
}

// GetRecordsLeaderboard fetches a page of a record leaderboard, e.g.
// the global 40 LINES rankings.
func (c *Client) GetRecordsLeaderboard(ctx context.Context, leaderboard param.RecordsLeaderboardID, criteria param.RecordsLeaderboardCriteria) (*model.Response[model.RecordsLeaderboard], error) {
	return do[model.RecordsLeaderboard](ctx, c, "records_leaderboard", "records/"+leaderboard.String(), criteria.Build())
}

// SearchRecord looks up a single record by its owner, game mode and
// millisecond submission timestamp.
func (c *Client) SearchRecord(ctx context.Context, userID string, gamemode param.Gamemode, timestamp int64) (*model.Response[model.Record], error) {
	params := []param.Param{
		{Key: "user", Value: userID},
		{Key: "gamemode", Value: gamemode.String()},
		{Key: "ts", Value: strconv.FormatInt(timestamp, 10)},
	}
	return do[model.Record](ctx, c, "record_search", "records/reverse", params)
}

// GetNews fetches the latest news items across all streams. limit is
// 1 to 100, or 0 for the server default of 25; anything else panics.
func (c *Client) GetNews(ctx context.Context, limit int) (*model.Response[model.NewsItems], error) {
	return do[model.NewsItems](ctx, c, "news", "news/", limitParams(limit))
}

// GetNewsStream fetches the latest news items in one stream, e.g.
// param.GlobalNews() or param.UserNews(id). limit is 1 to 100, or 0
// for the server default; anything else panics.
func (c *Client) GetNewsStream(ctx context.Context, stream param.NewsStream, limit int) (*model.Response[model.NewsItems], error) {
	return do[model.NewsItems](ctx, c, "news_stream", "news/"+url.PathEscape(stream.String()), limitParams(limit))
}

// GetServerStats fetches aggregate statistics about the whole server.
func (c *Client) GetServerStats(ctx context.Context) (*model.Response[model.ServerStats], error) {
	return do[model.ServerStats](ctx, c, "server_stats", "general/stats", nil)
}

// GetServerActivity fetches the activity graph of the last 2 days.
func (c *Client) GetServerActivity(ctx context.Context) (*model.Response[model.ServerActivity], error) {
	return do[model.ServerActivity](ctx, c, "server_activity", "general/activity", nil)
}

// GetScoreflow fetches the condensed graph of a user's records in one
// game mode.
func (c *Client) GetScoreflow(ctx context.Context, user string, gamemode param.Gamemode) (*model.Response[model.Scoreflow], error) {
	path := "labs/scoreflow/" + userSegment(user) + "/" + gamemode.String()
	return do[model.Scoreflow](ctx, c, "scoreflow", path, nil)
}

// GetLeagueflow fetches the condensed graph of a user's TETRA LEAGUE
// matches.
func (c *Client) GetLeagueflow(ctx context.Context, user string) (*model.Response[model.Leagueflow], error) {
	return do[model.Leagueflow](ctx, c, "leagueflow", "labs/leagueflow/"+userSegment(user), nil)
}

// GetLeagueRanks fetches the current view over all TETRA LEAGUE ranks
// and their cutoffs.
func (c *Client) GetLeagueRanks(ctx context.Context) (*model.Response[model.LeagueRanks], error) {
	return do[model.LeagueRanks](ctx, c, "league_ranks", "labs/league_ranks", nil)
}

// GetAchievement fetches an achievement's info, cutoffs and the top
// of its leaderboard.
func (c *Client) GetAchievement(ctx context.Context, achievementID int) (*model.Response[model.AchievementInfo], error) {
	return do[model.AchievementInfo](ctx, c, "achievement", "achievements/"+strconv.Itoa(achievementID), nil)
}
