package model

import "encoding/json"

// News type discriminators as they appear on the wire. New types may
// be added upstream at any time.
const (
	NewsTypeLeaderboard   = "leaderboard"
	NewsTypePersonalBest  = "personalbest"
	NewsTypeBadge         = "badge"
	NewsTypeRankUp        = "rankup"
	NewsTypeSupporter     = "supporter"
	NewsTypeSupporterGift = "supporter_gift"
)

// NewsItems is a batch of latest news items.
type NewsItems struct {
	News []News `json:"news"`
}

// News is one news item. The payload shape depends on Type; use the
// typed accessors to decode it.
type News struct {
	ID string `json:"_id"`
	// Stream is the stream the item belongs to, e.g. "global" or
	// "user_<id>".
	Stream string `json:"stream"`
	Type   string `json:"type"`
	// Data is the type-dependent payload, kept raw.
	Data      json.RawMessage `json:"data"`
	CreatedAt Timestamp       `json:"ts"`
}

// LeaderboardNews reports a personal best entering a global
// leaderboard. Global stream only. Returns false if the item is of a
// different type.
func (n News) LeaderboardNews() (LeaderboardNews, bool) {
	var d LeaderboardNews
	if n.Type != NewsTypeLeaderboard || json.Unmarshal(n.Data, &d) != nil {
		return LeaderboardNews{}, false
	}
	return d, true
}

// PersonalBestNews reports a user's new personal best. User streams
// only.
func (n News) PersonalBestNews() (PersonalBestNews, bool) {
	var d PersonalBestNews
	if n.Type != NewsTypePersonalBest || json.Unmarshal(n.Data, &d) != nil {
		return PersonalBestNews{}, false
	}
	return d, true
}

// BadgeNews reports a user earning a badge. User streams only.
func (n News) BadgeNews() (BadgeNews, bool) {
	var d BadgeNews
	if n.Type != NewsTypeBadge || json.Unmarshal(n.Data, &d) != nil {
		return BadgeNews{}, false
	}
	return d, true
}

// RankUpNews reports a user reaching a new top TETRA LEAGUE rank.
// User streams only.
func (n News) RankUpNews() (RankUpNews, bool) {
	var d RankUpNews
	if n.Type != NewsTypeRankUp || json.Unmarshal(n.Data, &d) != nil {
		return RankUpNews{}, false
	}
	return d, true
}

// SupporterNews reports a user obtaining supporter status. User
// streams only.
func (n News) SupporterNews() (SupporterNews, bool) {
	var d SupporterNews
	if n.Type != NewsTypeSupporter || json.Unmarshal(n.Data, &d) != nil {
		return SupporterNews{}, false
	}
	return d, true
}

// SupporterGiftNews reports a user being gifted supporter status.
// User streams only.
func (n News) SupporterGiftNews() (SupporterGiftNews, bool) {
	var d SupporterGiftNews
	if n.Type != NewsTypeSupporterGift || json.Unmarshal(n.Data, &d) != nil {
		return SupporterGiftNews{}, false
	}
	return d, true
}

// LeaderboardNews is the payload of a leaderboard news item.
type LeaderboardNews struct {
	Username string `json:"username"`
	// Gametype is the game mode played, e.g. "40l" or "blitz".
	Gametype string `json:"gametype"`
	// Rank is the global rank achieved.
	Rank int `json:"rank"`
	// Result is the score or time achieved.
	Result   float64 `json:"result"`
	ReplayID string  `json:"replayid"`
}

// ReplayURL returns the URL of the replay on TETR.IO.
func (n LeaderboardNews) ReplayURL() string {
	return "https://tetr.io/#R:" + n.ReplayID
}

// PersonalBestNews is the payload of a personal best news item.
type PersonalBestNews struct {
	Username string `json:"username"`
	Gametype string `json:"gametype"`
	// Result is the score or time achieved.
	Result   float64 `json:"result"`
	ReplayID string  `json:"replayid"`
}

// ReplayURL returns the URL of the replay on TETR.IO.
func (n PersonalBestNews) ReplayURL() string {
	return "https://tetr.io/#R:" + n.ReplayID
}

// BadgeNews is the payload of a badge news item.
type BadgeNews struct {
	Username string `json:"username"`
	// BadgeID is the badge's internal ID and icon filename under
	// /res/badges/.
	BadgeID string `json:"type"`
	Label   string `json:"label"`
}

// IconURL returns the badge icon URL.
func (n BadgeNews) IconURL() string {
	return "https://tetr.io/res/badges/" + n.BadgeID + ".png"
}

// RankUpNews is the payload of a rank up news item.
type RankUpNews struct {
	Username string `json:"username"`
	Rank     Rank   `json:"rank"`
}

// SupporterNews is the payload of a supporter news item.
type SupporterNews struct {
	Username string `json:"username"`
}

// SupporterGiftNews is the payload of a supporter gift news item.
type SupporterGiftNews struct {
	Username string `json:"username"`
}
