package param

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelectors(t *testing.T) {
	Convey("Given the path selector enums", t, func() {
		Convey("When rendering user leaderboard types", func() {
			So(LeaderboardLeague.String(), ShouldEqual, "league")
			So(LeaderboardXP.String(), ShouldEqual, "xp")
			So(LeaderboardAR.String(), ShouldEqual, "ar")
		})

		Convey("When rendering game modes", func() {
			So(GamemodeFortyLines.String(), ShouldEqual, "40l")
			So(GamemodeBlitz.String(), ShouldEqual, "blitz")
			So(GamemodeZenith.String(), ShouldEqual, "zenith")
			So(GamemodeZenithEx.String(), ShouldEqual, "zenithex")
			So(GamemodeLeague.String(), ShouldEqual, "league")
		})

		Convey("When rendering record leaderboard types", func() {
			So(RecordLeaderboardTop.String(), ShouldEqual, "top")
			So(RecordLeaderboardRecent.String(), ShouldEqual, "recent")
			So(RecordLeaderboardProgression.String(), ShouldEqual, "progression")
		})

		Convey("When rendering news streams", func() {
			So(GlobalNews().String(), ShouldEqual, "global")
			So(UserNews("621db46d1d638ea850be2aa0").String(),
				ShouldEqual, "user_621db46d1d638ea850be2aa0")
		})

		Convey("When rendering social connections", func() {
			So(Discord("724976600873041940").String(),
				ShouldEqual, "discord:724976600873041940")
		})
	})
}

func TestRecordsLeaderboardID(t *testing.T) {
	Convey("Given records leaderboard IDs", t, func() {
		Convey("When the scope is global", func() {
			id := NewRecordsLeaderboardID("40l", Global(), "")

			Convey("Then the segment should carry the global scope", func() {
				So(id.String(), ShouldEqual, "40l_global")
			})
		})

		Convey("When the scope is a country", func() {
			id := NewRecordsLeaderboardID("blitz", Country("jp"), "")

			Convey("Then the country code should be uppercased", func() {
				So(id.String(), ShouldEqual, "blitz_country_JP")
			})
		})

		Convey("When a revolution suffix is present", func() {
			id := NewRecordsLeaderboardID("zenith", Country("JP"), "@2024w31")

			Convey("Then the suffix should be appended verbatim", func() {
				So(id.String(), ShouldEqual, "zenith_country_JP@2024w31")
			})
		})
	})
}
