package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is an achieved score or match. The results payload is only
// loosely structured upstream and may change shape between game modes;
// see Results.
type Record struct {
	ID       string `json:"_id"`
	ReplayID string `json:"replayid"`
	// Stub reports whether the replay has been pruned.
	Stub     bool   `json:"stub"`
	Gamemode string `json:"gamemode"`
	// PersonalBest reports whether this is the user's current personal
	// best in the game mode.
	PersonalBest bool `json:"pb"`
	// OncePersonalBest reports whether this was once the user's
	// personal best in the game mode.
	OncePersonalBest bool      `json:"oncepb"`
	SubmittedAt      Timestamp `json:"ts"`
	// Revolution is the revolution this record was revolved away to,
	// if any.
	Revolution string `json:"revolution,omitempty"`
	// User owns the record. Documented as always present, but absent
	// on some old records.
	User *PartialUser `json:"user,omitempty"`
	// OtherUsers are other players mentioned in the record. Non-empty
	// means this was a multiplayer game.
	OtherUsers []PartialUser `json:"otherusers"`
	// Leaderboards names the record leaderboards this record appears
	// in, e.g. "40l_global" or "40l_country_JP".
	Leaderboards []string `json:"leaderboards"`
	Disputed     bool     `json:"disputed"`
	Results      Results  `json:"results"`
	Extras       Extras   `json:"extras"`
	// Prisecter is this entry's pagination cursor if the record came
	// from a paginated response.
	Prisecter *Prisecter `json:"p,omitempty"`
}

// UserID satisfies UserRef. It returns the empty string for records
// without an owner.
func (r Record) UserID() string {
	if r.User == nil {
		return ""
	}
	return r.User.ID
}

// ReplayURL returns the URL of the replay on TETR.IO.
func (r Record) ReplayURL() string {
	return "https://tetr.io/#R:" + r.ReplayID
}

// Multiplayer reports whether the record is of a multiplayer game.
func (r Record) Multiplayer() bool { return len(r.OtherUsers) > 0 }

// PartialUser is the compact user reference embedded in records.
type PartialUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// AvatarRevision keys the avatar image; 0 or unset means no
	// avatar.
	AvatarRevision uint64 `json:"avatar_revision,omitempty"`
	BannerRevision uint64 `json:"banner_revision,omitempty"`
	// Country is the ISO 3166-1 code, empty if hidden.
	Country   string `json:"country,omitempty"`
	Supporter bool   `json:"supporter,omitempty"`
}

// UserID satisfies UserRef.
func (u PartialUser) UserID() string { return u.ID }

// AvatarURL returns the user's avatar URL, or the anonymous avatar if
// none is set.
func (u PartialUser) AvatarURL() string {
	if u.AvatarRevision == 0 {
		return "https://tetr.io/res/avatar.png"
	}
	return fmt.Sprintf("https://tetr.io/user-content/avatars/%s.jpg?rv=%d", u.ID, u.AvatarRevision)
}

// NationalFlagURL returns the flag image URL for the user's country,
// or empty if the country is hidden or unknown.
func (u PartialUser) NationalFlagURL() string {
	if u.Country == "" {
		return ""
	}
	return "https://tetr.io/res/flags/" + strings.ToLower(u.Country) + ".png"
}

// Results holds the outcome of a record. Single-player games populate
// Stats, AggregateStats and GameOverReason; multiplayer games populate
// Leaderboard and Rounds. The stats payloads vary per game mode and
// are kept raw.
type Results struct {
	// Stats are the final stats of a single-player game.
	Stats json.RawMessage `json:"stats,omitempty"`
	// AggregateStats are aggregate stats of a single-player game.
	AggregateStats json.RawMessage `json:"aggregatestats,omitempty"`
	// GameOverReason is why a single-player game ended.
	GameOverReason string `json:"gameoverreason,omitempty"`
	// Leaderboard is the final leaderboard of a multiplayer match.
	Leaderboard []PlayerStats `json:"leaderboard,omitempty"`
	// Rounds are the per-round scoreboards of a multiplayer match.
	Rounds [][]PlayerRoundStats `json:"rounds,omitempty"`
}

// PlayerStats is a player's line in a multiplayer match leaderboard.
type PlayerStats struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Active is false if the player was disqualified.
	Active bool `json:"active"`
	// Wins is the number of rounds the player won.
	Wins int `json:"wins"`
	// Stats are the aggregate stats across all rounds, kept raw.
	Stats json.RawMessage `json:"stats"`
}

// UserID satisfies UserRef.
func (p PlayerStats) UserID() string { return p.ID }

// PlayerRoundStats is a player's line in one round of a multiplayer
// match.
type PlayerRoundStats struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Active is false if the player was disqualified for the round.
	Active bool `json:"active"`
	// Alive reports whether the player survived the round.
	Alive bool `json:"alive"`
	// Lifetime is the time alive in the round, in milliseconds.
	Lifetime int `json:"lifetime"`
	// Stats are the player's stats for the round, kept raw.
	Stats json.RawMessage `json:"stats"`
}

// UserID satisfies UserRef.
func (p PlayerRoundStats) UserID() string { return p.ID }

// Extras is extra metadata attached to a record.
type Extras struct {
	// League maps user IDs to before-and-after rating snapshots for
	// ranked matches.
	League map[string][]LeagueSnapshot `json:"league,omitempty"`
	// Result is the game's result from the record owner's point of
	// view.
	Result string `json:"result,omitempty"`
	// Zenith is extra QUICK PLAY data.
	Zenith *ZenithExtras `json:"zenith,omitempty"`
}

// LeagueSnapshot is a player's rating at one side of a ranked match.
type LeagueSnapshot struct {
	Glicko float64 `json:"glicko"`
	RD     float64 `json:"rd"`
	TR     float64 `json:"tr"`
	Rank   Rank    `json:"rank"`
	// Placement is the position in the global leaderboards, if any.
	Placement *int `json:"placement,omitempty"`
}

// ZenithExtras is extra QUICK PLAY metadata.
type ZenithExtras struct {
	// Mods are the mods used in the run.
	Mods []string `json:"mods"`
}

// UserRecords is a page of a user's records in one game mode.
type UserRecords struct {
	Entries []Record `json:"entries"`
}

// RecordsLeaderboard is a page of a record leaderboard.
type RecordsLeaderboard struct {
	Entries []Record `json:"entries"`
}
