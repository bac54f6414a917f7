package model

import (
	"fmt"
	"math"
	"strings"
)

// Role is a user's account role on the wire ("user", "bot", ...).
type Role string

const (
	RoleUser    Role = "user"
	RoleAnon    Role = "anon"
	RoleBot     Role = "bot"
	RoleSysop   Role = "sysop"
	RoleAdmin   Role = "admin"
	RoleMod     Role = "mod"
	RoleHalfmod Role = "halfmod"
	RoleBanned  Role = "banned"
	RoleHidden  Role = "hidden"
)

// IsNormalUser reports whether the role is a plain account.
func (r Role) IsNormalUser() bool { return r == RoleUser }

// IsBot reports whether the account is operated as a bot.
func (r Role) IsBot() bool { return r == RoleBot }

// IsStaff reports whether the role carries moderation powers.
func (r Role) IsStaff() bool {
	return r == RoleSysop || r == RoleAdmin || r == RoleMod || r == RoleHalfmod
}

// IsBanned reports whether the account is banned.
func (r Role) IsBanned() bool { return r == RoleBanned }

// User is the detailed account information returned by the user info
// endpoint.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	// CreatedAt is zero for accounts created before join dates were
	// recorded.
	CreatedAt Timestamp `json:"ts,omitempty"`
	// BotMaster is the bot's operator, for bot accounts.
	BotMaster string  `json:"botmaster,omitempty"`
	Badges    []Badge `json:"badges"`
	XP        float64 `json:"xp"`
	// GamesPlayed is -1 if the user hides this statistic.
	GamesPlayed int `json:"gamesplayed"`
	// GamesWon is -1 if the user hides this statistic.
	GamesWon int `json:"gameswon"`
	// GameTime is seconds spent playing, on- and offline; -1 if
	// hidden.
	GameTime float64 `json:"gametime"`
	// Country is the ISO 3166-1 code, empty if hidden or unknown.
	// Some vanity flags exist.
	Country       string `json:"country,omitempty"`
	BadStanding   bool   `json:"badstanding,omitempty"`
	Supporter     bool   `json:"supporter,omitempty"`
	SupporterTier int    `json:"supporter_tier"`
	// AvatarRevision keys the avatar image; 0 or unset means no
	// avatar.
	AvatarRevision uint64 `json:"avatar_revision,omitempty"`
	// BannerRevision keys the banner image. Ignore unless the user is
	// a supporter; a revision may linger after support lapses.
	BannerRevision uint64 `json:"banner_revision,omitempty"`
	// Bio is the "About Me" section; supporters only.
	Bio             string           `json:"bio,omitempty"`
	Connections     Connections      `json:"connections"`
	FriendCount     int              `json:"friend_count,omitempty"`
	Distinguishment *Distinguishment `json:"distinguishment,omitempty"`
	// Achievements lists up to three featured achievement IDs.
	Achievements []int                   `json:"achievements"`
	AR           int                     `json:"ar"`
	ARCounts     AchievementRatingCounts `json:"ar_counts"`
}

// UserID returns the account's internal ID. It satisfies the client's
// UserRef interface so a full profile can be fetched from any model
// that carries a user reference.
func (u User) UserID() string { return u.ID }

// Level derives the user's level from their XP.
func (u User) Level() int {
	xp := u.XP
	// (xp/500)^0.6 + xp/(5000 + max(0, xp-4000000)/5000) + 1
	return int(math.Floor(
		math.Pow(xp/500, 0.6) + xp/(5000+math.Max(0, xp-4000000)/5000) + 1,
	))
}

// ProfileURL returns the user's TETRA CHANNEL profile URL.
func (u User) ProfileURL() string {
	return "https://ch.tetr.io/u/" + u.Username
}

// AvatarURL returns the user's avatar URL, or the anonymous avatar if
// none is set.
func (u User) AvatarURL() string {
	if u.AvatarRevision == 0 {
		return "https://tetr.io/res/avatar.png"
	}
	return fmt.Sprintf("https://tetr.io/user-content/avatars/%s.jpg?rv=%d", u.ID, u.AvatarRevision)
}

// BannerURL returns the user's banner URL, or empty if none is set.
// Ignore the value if the user is not a supporter.
func (u User) BannerURL() string {
	if u.BannerRevision == 0 {
		return ""
	}
	return fmt.Sprintf("https://tetr.io/user-content/banners/%s.jpg?rv=%d", u.ID, u.BannerRevision)
}

// NationalFlagURL returns the flag image URL for the user's country,
// or empty if the country is hidden or unknown.
func (u User) NationalFlagURL() string {
	if u.Country == "" {
		return ""
	}
	return "https://tetr.io/res/flags/" + strings.ToLower(u.Country) + ".png"
}

// Badge is one of a user's earned badges.
type Badge struct {
	// ID is the badge's internal ID and icon filename under
	// /res/badges/. IDs may include forward slashes; do not encode
	// them.
	ID    string `json:"id"`
	Group string `json:"group,omitempty"`
	Label string `json:"label"`
	// Desc is extra flavor text shown on hover.
	Desc string `json:"desc,omitempty"`
	// ReceivedAt is zero for badges without a timestamp.
	ReceivedAt Timestamp `json:"ts,omitempty"`
}

// IconURL returns the badge icon URL.
func (b Badge) IconURL() string {
	return "https://tetr.io/res/badges/" + b.ID + ".png"
}

// Connections lists a user's third-party account links.
type Connections struct {
	Discord *Connection `json:"discord,omitempty"`
	Twitch  *Connection `json:"twitch,omitempty"`
	// Twitter is the user's X connection; the API keeps the old name.
	Twitter *Connection `json:"twitter,omitempty"`
	Reddit  *Connection `json:"reddit,omitempty"`
	YouTube *Connection `json:"youtube,omitempty"`
	Steam   *Connection `json:"steam,omitempty"`
}

// Connection is a single linked third-party account.
type Connection struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	DisplayUsername string `json:"display_username"`
}

// Distinguishment is a user's distinguishment banner.
type Distinguishment struct {
	Type   string `json:"type"`
	Detail string `json:"detail,omitempty"`
	Header string `json:"header,omitempty"`
	Footer string `json:"footer,omitempty"`
}

// AchievementRatingCounts breaks down the source of a user's
// Achievement Rating. The wire keys are the numeric rating tiers.
type AchievementRatingCounts struct {
	Bronze   int `json:"1,omitempty"`
	Silver   int `json:"2,omitempty"`
	Gold     int `json:"3,omitempty"`
	Platinum int `json:"4,omitempty"`
	Diamond  int `json:"5,omitempty"`
	Issued   int `json:"100,omitempty"`
	Top100   int `json:"t100,omitempty"`
	Top50    int `json:"t50,omitempty"`
	Top25    int `json:"t25,omitempty"`
	Top10    int `json:"t10,omitempty"`
	Top5     int `json:"t5,omitempty"`
	Top3     int `json:"t3,omitempty"`
}

// SearchedUser is the result of a social-connection account search.
type SearchedUser struct {
	// User is nil when no account matched the connection.
	User *UserStub `json:"user,omitempty"`
}

// UserStub is the compact user reference returned by account search.
type UserStub struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// UserID satisfies UserRef.
func (u UserStub) UserID() string { return u.ID }
