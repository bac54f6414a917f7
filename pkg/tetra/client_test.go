package tetra

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/tetra/pkg/tetra/model"
	"github.com/okian/tetra/pkg/tetra/param"
)

// capture records the last request the test server saw.
type capture struct {
	path    string
	query   string
	session string
}

func newTestServer(status int, body string, cap *capture) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cap != nil {
			cap.path = r.URL.Path
			cap.query = r.URL.RawQuery
			cap.session = r.Header.Get("X-Session-ID")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

const userBody = `{"success": true, "data": {"_id": "abc123", "username": "tester", "role": "user"}}`

func TestClientRequests(t *testing.T) {
	Convey("Given a client against a test server", t, func() {
		var cap capture
		srv := newTestServer(http.StatusOK, userBody, &cap)
		defer srv.Close()
		c := New(WithBaseURL(srv.URL), WithSessionID("SESS-test"))
		ctx := context.Background()

		Convey("When fetching a user with mixed-case input", func() {
			res, err := c.GetUser(ctx, "Tester")

			Convey("Then the path segment should be lowercased", func() {
				So(err, ShouldBeNil)
				So(cap.path, ShouldEqual, "/users/tester")
			})

			Convey("Then the session header should be attached", func() {
				So(cap.session, ShouldEqual, "SESS-test")
			})

			Convey("Then the envelope should carry the data", func() {
				So(res.Success, ShouldBeTrue)
				So(res.Data, ShouldNotBeNil)
				So(res.Data.Username, ShouldEqual, "tester")
			})
		})

		Convey("When resolving a user reference", func() {
			_, err := c.UserOf(ctx, model.UserStub{ID: "abc123"})

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/abc123")
		})

		Convey("When fetching summaries", func() {
			_, err := c.GetUserSummaries(ctx, "Tester")
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/tester/summaries")

			_, err = c.GetUserZenithEx(ctx, "tester")
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/tester/summaries/zenithex")
		})

		Convey("When fetching a leaderboard with criteria", func() {
			criteria := param.NewUserLeaderboardCriteria().
				WithAfter([3]float64{15200, 0, 0}).
				WithLimit(3).
				WithCountry("jp")
			_, err := c.GetLeaderboard(ctx, param.LeaderboardLeague, criteria)

			Convey("Then the query should keep the build order", func() {
				So(err, ShouldBeNil)
				So(cap.path, ShouldEqual, "/users/by/league")
				So(cap.query, ShouldEqual, "after=15200%3A0%3A0&limit=3&country=JP")
			})
		})

		Convey("When fetching a leaderboard with zero criteria", func() {
			_, err := c.GetLeaderboard(ctx, param.LeaderboardXP, param.UserLeaderboardCriteria{})

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/by/xp")
			So(cap.query, ShouldEqual, "")
		})

		Convey("When fetching a historical leaderboard", func() {
			_, err := c.GetHistoricalLeaderboard(ctx, "1", param.UserLeaderboardCriteria{})

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/history/league/1")
		})

		Convey("When fetching user records", func() {
			criteria := param.NewRecordCriteria().WithLimit(10)
			_, err := c.GetUserRecords(ctx, "Tester", param.GamemodeFortyLines, param.RecordLeaderboardTop, criteria)

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/tester/records/40l/top")
			So(cap.query, ShouldEqual, "limit=10")
		})

		Convey("When fetching a records leaderboard", func() {
			id := param.NewRecordsLeaderboardID("blitz", param.Country("jp"), "")
			_, err := c.GetRecordsLeaderboard(ctx, id, param.RecordsLeaderboardCriteria{})

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/records/blitz_country_JP")
		})

		Convey("When searching a record", func() {
			_, err := c.SearchRecord(ctx, "abc123", param.GamemodeBlitz, 1680053762145)

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/records/reverse")
			So(cap.query, ShouldEqual, "user=abc123&gamemode=blitz&ts=1680053762145")
		})

		Convey("When searching a user by connection", func() {
			_, err := c.SearchUser(ctx, param.Discord("123456789"))

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/search/discord:123456789")
		})

		Convey("When fetching news streams", func() {
			_, err := c.GetNews(ctx, 3)
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/news/")
			So(cap.query, ShouldEqual, "limit=3")

			_, err = c.GetNewsStream(ctx, param.UserNews("abc123"), 0)
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/news/user_abc123")
			So(cap.query, ShouldEqual, "")
		})

		Convey("When asking for an out-of-range news limit", func() {
			So(func() { _, _ = c.GetNews(ctx, 101) }, ShouldPanic)
			So(func() { _, _ = c.GetNews(ctx, -1) }, ShouldPanic)
		})

		Convey("When fetching server and labs endpoints", func() {
			_, err := c.GetServerStats(ctx)
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/general/stats")

			_, err = c.GetServerActivity(ctx)
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/general/activity")

			_, err = c.GetScoreflow(ctx, "Tester", param.GamemodeBlitz)
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/labs/scoreflow/tester/blitz")

			_, err = c.GetLeagueflow(ctx, "tester")
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/labs/leagueflow/tester")

			_, err = c.GetLeagueRanks(ctx)
			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/labs/league_ranks")
		})

		Convey("When fetching an achievement", func() {
			_, err := c.GetAchievement(ctx, 15)

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/achievements/15")
		})
	})
}

func TestClientClassification(t *testing.T) {
	Convey("Given servers with degenerate responses", t, func() {
		ctx := context.Background()

		Convey("When the body is garbage on a 200", func() {
			srv := newTestServer(http.StatusOK, `<!doctype html>`, nil)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL))

			_, err := c.GetUser(ctx, "tester")

			Convey("Then it should classify as a decode error", func() {
				var de *DecodeError
				So(err, ShouldNotBeNil)
				So(errors.As(err, &de), ShouldBeTrue)
			})
		})

		Convey("When a 404 still carries an error envelope", func() {
			srv := newTestServer(http.StatusNotFound,
				`{"success": false, "error": {"msg": "No such user!"}}`, nil)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL))

			res, err := c.GetUser(ctx, "nonexistent")

			Convey("Then the upstream message should be surfaced, not the status", func() {
				So(err, ShouldBeNil)
				So(res.Success, ShouldBeFalse)
				So(res.Data, ShouldBeNil)
				So(res.Error, ShouldNotBeNil)
				So(res.Error.Msg, ShouldEqual, "No such user!")
			})
		})

		Convey("When a 502 carries an unreadable body", func() {
			srv := newTestServer(http.StatusBadGateway, `upstream exploded`, nil)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL))

			_, err := c.GetUser(ctx, "tester")

			Convey("Then it should classify as an HTTP error with the status", func() {
				var he *HTTPError
				So(errors.As(err, &he), ShouldBeTrue)
				So(he.StatusCode, ShouldEqual, http.StatusBadGateway)
				So(he.Valid(), ShouldBeTrue)
			})
		})

		Convey("When the server is unreachable", func() {
			srv := newTestServer(http.StatusOK, userBody, nil)
			srv.Close()
			c := New(WithBaseURL(srv.URL))

			_, err := c.GetUser(ctx, "tester")

			Convey("Then it should classify as a request error", func() {
				var re *RequestError
				So(errors.As(err, &re), ShouldBeTrue)
			})
		})

		Convey("When the context is already canceled", func() {
			srv := newTestServer(http.StatusOK, userBody, nil)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL))
			canceled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := c.GetUser(canceled, "tester")

			var re *RequestError
			So(errors.As(err, &re), ShouldBeTrue)
		})
	})
}

func TestClientOptions(t *testing.T) {
	Convey("Given client options", t, func() {
		Convey("When no session ID is configured", func() {
			var cap capture
			srv := newTestServer(http.StatusOK, userBody, &cap)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL))

			_, err := c.GetUser(context.Background(), "tester")

			Convey("Then no session header should be sent", func() {
				So(err, ShouldBeNil)
				So(cap.session, ShouldEqual, "")
			})
		})

		Convey("When an empty session ID is requested", func() {
			var cap capture
			srv := newTestServer(http.StatusOK, userBody, &cap)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL), WithSessionID(""))

			_, err := c.GetUser(context.Background(), "tester")

			Convey("Then a generated ID should be sent", func() {
				So(err, ShouldBeNil)
				So(cap.session, ShouldStartWith, "SESS-")
				So(len(cap.session), ShouldBeGreaterThan, len("SESS-"))
			})
		})

		Convey("When an observer is registered", func() {
			var gotEndpoint string
			var gotStatus int
			var gotElapsed time.Duration
			srv := newTestServer(http.StatusOK, userBody, nil)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL), WithObserver(func(endpoint string, status int, elapsed time.Duration) {
				gotEndpoint = endpoint
				gotStatus = status
				gotElapsed = elapsed
			}))

			_, err := c.GetUser(context.Background(), "tester")

			Convey("Then it should see the endpoint name and status", func() {
				So(err, ShouldBeNil)
				So(gotEndpoint, ShouldEqual, "user")
				So(gotStatus, ShouldEqual, http.StatusOK)
				So(gotElapsed, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When a custom HTTP client is supplied", func() {
			srv := newTestServer(http.StatusOK, userBody, nil)
			defer srv.Close()
			hc := &http.Client{Timeout: time.Second}
			c := New(WithBaseURL(srv.URL), WithHTTPClient(hc))

			_, err := c.GetUser(context.Background(), "tester")
			So(err, ShouldBeNil)
		})

		Convey("When a trailing slash sneaks into the base URL", func() {
			var cap capture
			srv := newTestServer(http.StatusOK, userBody, &cap)
			defer srv.Close()
			c := New(WithBaseURL(srv.URL + "/"))

			_, err := c.GetUser(context.Background(), "tester")

			So(err, ShouldBeNil)
			So(cap.path, ShouldEqual, "/users/tester")
		})
	})
}
