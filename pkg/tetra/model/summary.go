package model

// AllSummaries bundles every per-mode summary of a user in one
// response.
type AllSummaries struct {
	FortyLines   FortyLinesSummary `json:"40l"`
	Blitz        BlitzSummary      `json:"blitz"`
	Zenith       ZenithSummary     `json:"zenith"`
	ZenithEx     ZenithSummary     `json:"zenithex"`
	League       LeagueData        `json:"league"`
	Zen          ZenSummary        `json:"zen"`
	Achievements []Achievement     `json:"achievements"`
}

// FortyLinesSummary summarizes a user's 40 LINES games.
type FortyLinesSummary struct {
	// Record is nil if the user never played the mode.
	Record *Record `json:"record,omitempty"`
	// Rank is the position in global leaderboards, or -1 if absent.
	Rank int `json:"rank"`
	// RankLocal is the position in the country leaderboards, or -1 if
	// absent.
	RankLocal int `json:"rank_local"`
}

// BlitzSummary summarizes a user's BLITZ games.
type BlitzSummary struct {
	// Record is nil if the user never played the mode.
	Record *Record `json:"record,omitempty"`
	// Rank is the position in global leaderboards, or -1 if absent.
	Rank int `json:"rank"`
	// RankLocal is the position in the country leaderboards, or -1 if
	// absent.
	RankLocal int `json:"rank_local"`
}

// ZenithSummary summarizes a user's QUICK PLAY or EXPERT QUICK PLAY
// games.
type ZenithSummary struct {
	// Record is nil if the user has not played this week.
	Record *Record `json:"record,omitempty"`
	// Rank is the position in global leaderboards, or -1 if absent.
	Rank int `json:"rank"`
	// RankLocal is the position in the country leaderboards, or -1 if
	// absent.
	RankLocal int `json:"rank_local"`
	// Best is the career best. It only updates on revolve time (12AM
	// Monday UTC).
	Best ZenithBest `json:"best"`
}

// ZenithBest is a user's career best QUICK PLAY result.
type ZenithBest struct {
	// Record is nil if the user has not placed a run yet.
	Record *Record `json:"record,omitempty"`
	// Rank is the position the record held in global leaderboards at
	// the end of its week, or -1 if unranked.
	Rank int `json:"rank"`
}

// ZenSummary summarizes a user's ZEN progress.
type ZenSummary struct {
	Level int     `json:"level"`
	Score float64 `json:"score"`
}
