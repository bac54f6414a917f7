package model

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResponseEnvelope(t *testing.T) {
	Convey("Given response envelopes", t, func() {
		Convey("When decoding a successful response", func() {
			var res Response[User]
			err := json.Unmarshal([]byte(`{
				"success": true,
				"cache": {"status": "hit", "cached_at": 1661000000000, "cached_until": 1661000060000},
				"data": {"_id": "abc123", "username": "tester", "role": "user", "xp": 1000}
			}`), &res)

			Convey("Then the data should be populated", func() {
				So(err, ShouldBeNil)
				So(res.Success, ShouldBeTrue)
				So(res.Error, ShouldBeNil)
				So(res.Data, ShouldNotBeNil)
				So(res.Data.Username, ShouldEqual, "tester")
				So(res.Cache.Status, ShouldEqual, CacheHit)
			})
		})

		Convey("When decoding a failed response", func() {
			var res Response[User]
			err := json.Unmarshal([]byte(`{
				"success": false,
				"error": {"msg": "No such user! | Either you mistyped something, or the account no longer exists."}
			}`), &res)

			Convey("Then the error detail should be populated and data nil", func() {
				So(err, ShouldBeNil)
				So(res.Success, ShouldBeFalse)
				So(res.Data, ShouldBeNil)
				So(res.Error, ShouldNotBeNil)
				So(res.Error.Msg, ShouldContainSubstring, "No such user")
			})
		})
	})
}

func TestCacheTimes(t *testing.T) {
	Convey("Given cache data with millisecond timestamps", t, func() {
		c := Cache{Status: CacheMiss, CachedAt: 1661000000000, CachedUntil: 1661000060000}

		Convey("Then the time accessors should convert from milliseconds", func() {
			So(c.CachedAtTime().UnixMilli(), ShouldEqual, int64(1661000000000))
			So(c.CachedUntilTime().Sub(c.CachedAtTime()), ShouldEqual, time.Minute)
		})
	})
}

func TestTimestampTolerance(t *testing.T) {
	Convey("Given wire timestamps", t, func() {
		Convey("When decoding a valid RFC 3339 string", func() {
			var ts Timestamp
			So(json.Unmarshal([]byte(`"2023-08-21T13:00:00.000Z"`), &ts), ShouldBeNil)

			Convey("Then it should parse", func() {
				So(ts.IsZero(), ShouldBeFalse)
				So(ts.Year(), ShouldEqual, 2023)
			})
		})

		Convey("When decoding a non-string value", func() {
			var ts Timestamp
			So(json.Unmarshal([]byte(`1661000000000`), &ts), ShouldBeNil)

			Convey("Then it should decode to the zero value instead of failing", func() {
				So(ts.IsZero(), ShouldBeTrue)
				So(ts.Unix(), ShouldEqual, 0)
			})
		})

		Convey("When decoding null", func() {
			var ts Timestamp
			So(json.Unmarshal([]byte(`null`), &ts), ShouldBeNil)
			So(ts.IsZero(), ShouldBeTrue)
		})
	})
}

func TestUserDerived(t *testing.T) {
	Convey("Given a user", t, func() {
		u := User{ID: "abc123", Username: "tester", XP: 1_000_000}

		Convey("Then the level should follow the XP curve", func() {
			// (2000)^0.6 + 1000000/5000 + 1 = 95.6... + 200 + 1
			So(u.Level(), ShouldEqual, 296)
		})

		Convey("Then the profile URL should use the username", func() {
			So(u.ProfileURL(), ShouldEqual, "https://ch.tetr.io/u/tester")
		})

		Convey("Then a user without an avatar should get the default", func() {
			So(u.AvatarURL(), ShouldEqual, "https://tetr.io/res/avatar.png")
		})

		Convey("Then a user with an avatar revision should get a keyed URL", func() {
			u.AvatarRevision = 42
			So(u.AvatarURL(), ShouldEqual, "https://tetr.io/user-content/avatars/abc123.jpg?rv=42")
		})

		Convey("Then the flag URL should lowercase the country code", func() {
			u.Country = "JP"
			So(u.NationalFlagURL(), ShouldEqual, "https://tetr.io/res/flags/jp.png")
		})

		Convey("Then a hidden country should yield no flag URL", func() {
			So(u.NationalFlagURL(), ShouldEqual, "")
		})
	})
}

func TestRoles(t *testing.T) {
	Convey("Given account roles", t, func() {
		So(RoleUser.IsNormalUser(), ShouldBeTrue)
		So(RoleBot.IsBot(), ShouldBeTrue)
		So(RoleAdmin.IsStaff(), ShouldBeTrue)
		So(RoleHalfmod.IsStaff(), ShouldBeTrue)
		So(RoleUser.IsStaff(), ShouldBeFalse)
		So(RoleBanned.IsBanned(), ShouldBeTrue)
	})
}

func TestRank(t *testing.T) {
	Convey("Given league ranks", t, func() {
		Convey("Then display names should match the tier", func() {
			So(RankSPlus.Name(), ShouldEqual, "S+")
			So(RankXPlus.Name(), ShouldEqual, "X+")
			So(RankUnranked.Name(), ShouldEqual, "Unranked")
		})

		Convey("Then colors should be assigned per tier", func() {
			So(RankX.Color(), ShouldEqual, uint32(0xff45ff))
			So(RankUnranked.Color(), ShouldEqual, uint32(0x767671))
			So(Rank("nonsense").Color(), ShouldEqual, uint32(0))
		})

		Convey("Then only z should count as unranked", func() {
			So(RankUnranked.IsUnranked(), ShouldBeTrue)
			So(RankD.IsUnranked(), ShouldBeFalse)
		})

		Convey("Then the icon URL should embed the wire name", func() {
			So(RankSS.IconURL(), ShouldEqual, "https://tetr.io/res/league-ranks/ss.png")
		})
	})
}

func TestLeagueData(t *testing.T) {
	Convey("Given league data", t, func() {
		Convey("When the user is banned the object is empty", func() {
			var d LeagueData
			So(json.Unmarshal([]byte(`{}`), &d), ShouldBeNil)

			Convey("Then it should decode to the unranked zero value", func() {
				So(d.GamesPlayed, ShouldEqual, 0)
				So(d.Ranked(), ShouldBeFalse)
			})
		})

		Convey("When the user holds a rank", func() {
			d := LeagueData{Rank: RankU, Standing: 300, PrevAt: 400, NextAt: 200}

			Convey("Then Ranked should report true", func() {
				So(d.Ranked(), ShouldBeTrue)
			})

			Convey("Then rank progress should interpolate the standing", func() {
				p, ok := d.RankProgress()
				So(ok, ShouldBeTrue)
				So(p, ShouldEqual, 50.0)
			})
		})

		Convey("When the user has no standing", func() {
			d := LeagueData{Rank: RankUnranked}
			_, ok := d.RankProgress()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRecord(t *testing.T) {
	Convey("Given records", t, func() {
		Convey("When the record has other users", func() {
			r := Record{
				ReplayID:   "abcdef",
				User:       &PartialUser{ID: "u1", Username: "p1"},
				OtherUsers: []PartialUser{{ID: "u2", Username: "p2"}},
			}

			Convey("Then it should count as multiplayer", func() {
				So(r.Multiplayer(), ShouldBeTrue)
				So(r.UserID(), ShouldEqual, "u1")
			})

			Convey("Then the replay URL should embed the replay ID", func() {
				So(r.ReplayURL(), ShouldEqual, "https://tetr.io/#R:abcdef")
			})
		})

		Convey("When the record has no owner", func() {
			So(Record{}.UserID(), ShouldEqual, "")
			So(Record{}.Multiplayer(), ShouldBeFalse)
		})

		Convey("When decoding a single-player record", func() {
			var r Record
			err := json.Unmarshal([]byte(`{
				"_id": "rec1", "replayid": "rep1", "stub": false,
				"gamemode": "40l", "pb": true, "oncepb": true,
				"ts": "2023-08-21T13:00:00.000Z",
				"user": {"id": "u1", "username": "p1"},
				"otherusers": [], "leaderboards": ["40l_global"],
				"disputed": false,
				"results": {"stats": {"lines": 40}, "aggregatestats": {"pps": 2.5}, "gameoverreason": "finish"},
				"extras": {},
				"p": {"pri": 83312.9, "sec": 0, "ter": 0}
			}`), &r)

			Convey("Then the loose stats should stay raw and the cursor decode", func() {
				So(err, ShouldBeNil)
				So(r.Results.GameOverReason, ShouldEqual, "finish")
				So(string(r.Results.Stats), ShouldContainSubstring, "40")
				So(r.Prisecter, ShouldNotBeNil)
				So(r.Prisecter.Pri, ShouldEqual, 83312.9)
			})
		})
	})
}

func TestNewsPayloads(t *testing.T) {
	Convey("Given news items", t, func() {
		Convey("When the item is a rank up", func() {
			n := News{Type: NewsTypeRankUp, Data: json.RawMessage(`{"username":"tester","rank":"u"}`)}

			Convey("Then the matching accessor should decode it", func() {
				d, ok := n.RankUpNews()
				So(ok, ShouldBeTrue)
				So(d.Rank, ShouldEqual, RankU)
			})

			Convey("Then other accessors should refuse it", func() {
				_, ok := n.BadgeNews()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the item is a leaderboard entry", func() {
			n := News{Type: NewsTypeLeaderboard, Data: json.RawMessage(
				`{"username":"tester","gametype":"blitz","rank":3,"result":1234567,"replayid":"rep9"}`,
			)}
			d, ok := n.LeaderboardNews()

			Convey("Then the payload and replay URL should resolve", func() {
				So(ok, ShouldBeTrue)
				So(d.Rank, ShouldEqual, 3)
				So(d.ReplayURL(), ShouldEqual, "https://tetr.io/#R:rep9")
			})
		})
	})
}

func TestServerModels(t *testing.T) {
	Convey("Given server statistics", t, func() {
		s := ServerStats{UserCount: 100, AnonCount: 40, GameTime: 200, PiecesPlaced: 800, Inputs: 1000}

		Convey("Then derived stats should follow", func() {
			So(s.RegisteredPlayers(), ShouldEqual, int64(60))
			So(s.AveragePiecesPerSecond(), ShouldEqual, 4.0)
			So(s.AverageKeysPerSecond(), ShouldEqual, 5.0)
		})

		Convey("Then zero game time should not divide by zero", func() {
			So(ServerStats{}.AveragePiecesPerSecond(), ShouldEqual, 0)
		})
	})

	Convey("Given server activity", t, func() {
		a := ServerActivity{Activity: []int{5, 9, 2, 9, 3}}

		Convey("Then peak and trough should pick the first extremum", func() {
			v, i, ok := a.Peak()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 9)
			So(i, ShouldEqual, 1)

			v, i, ok = a.Trough()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 2)
			So(i, ShouldEqual, 2)
		})

		Convey("Then the average should be the mean", func() {
			avg, ok := a.Average()
			So(ok, ShouldBeTrue)
			So(avg, ShouldEqual, 5.6)
		})

		Convey("Then an empty graph should report no extrema", func() {
			_, _, ok := ServerActivity{}.Peak()
			So(ok, ShouldBeFalse)
			_, ok2 := ServerActivity{}.Average()
			So(ok2, ShouldBeFalse)
		})
	})
}

func TestLeagueRanksDecode(t *testing.T) {
	Convey("Given a league ranks data point", t, func() {
		var d LeagueRanksData
		err := json.Unmarshal([]byte(`{
			"total": 1000,
			"x+": {"pos": 10, "percentile": 0.002, "tr": 24000, "targettr": 24500, "count": 10},
			"z": {"pos": -1, "percentile": 1, "tr": -1, "targettr": 0, "count": 100}
		}`), &d)

		Convey("Then the total and per-rank entries should split", func() {
			So(err, ShouldBeNil)
			So(d.Total, ShouldEqual, 1000)
			So(d.Ranks, ShouldContainKey, RankXPlus)
			So(d.Ranks[RankXPlus].TR, ShouldEqual, 24000.0)
			So(d.Ranks[RankUnranked].Count, ShouldEqual, 100)
		})
	})
}

func TestScoreflowAndLeagueflow(t *testing.T) {
	Convey("Given labs charts", t, func() {
		Convey("When reading a scoreflow point", func() {
			f := Scoreflow{StartTime: 1_600_000_000_000, Points: []ScoreflowPoint{{60_000, 1, -83_312}}}
			p := f.Points[0]

			Convey("Then the accessors should unpack the tuple", func() {
				So(p.PersonalBest(), ShouldBeTrue)
				So(p.Score(), ShouldEqual, int64(-83_312))
				So(f.Time(p).UnixMilli(), ShouldEqual, int64(1_600_000_060_000))
			})
		})

		Convey("When reading a leagueflow point", func() {
			f := Leagueflow{StartTime: 1_600_000_000_000, Points: []LeagueflowPoint{{30_000, 3, 22000, 21000}}}
			p := f.Points[0]

			Convey("Then the result code should map to a disqualification win", func() {
				So(p.Result(), ShouldEqual, MatchVictoryByDQ)
				So(p.TRAfter(), ShouldEqual, int64(22000))
				So(p.OpponentTR(), ShouldEqual, int64(21000))
			})
		})
	})
}
