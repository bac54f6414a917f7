package param

import (
	"fmt"
	"strconv"
)

// Gamemode identifies one of the playable game modes records are
// grouped under.
type Gamemode uint8

const (
	// GamemodeFortyLines is 40 LINES.
	GamemodeFortyLines Gamemode = iota
	// GamemodeBlitz is BLITZ.
	GamemodeBlitz
	// GamemodeZenith is QUICK PLAY.
	GamemodeZenith
	// GamemodeZenithEx is EXPERT QUICK PLAY.
	GamemodeZenithEx
	// GamemodeLeague is TETRA LEAGUE history.
	GamemodeLeague
)

// String returns the canonical path segment for the game mode.
func (g Gamemode) String() string {
	switch g {
	case GamemodeBlitz:
		return "blitz"
	case GamemodeZenith:
		return "zenith"
	case GamemodeZenithEx:
		return "zenithex"
	case GamemodeLeague:
		return "league"
	default:
		return "40l"
	}
}

// RecordLeaderboardType selects which personal record leaderboard to
// query.
type RecordLeaderboardType uint8

const (
	// RecordLeaderboardTop sorts by top score.
	RecordLeaderboardTop RecordLeaderboardType = iota
	// RecordLeaderboardRecent sorts by most recently placed.
	RecordLeaderboardRecent
	// RecordLeaderboardProgression is top scores, personal bests only.
	RecordLeaderboardProgression
)

// String returns the canonical path segment for the leaderboard type.
func (t RecordLeaderboardType) String() string {
	switch t {
	case RecordLeaderboardRecent:
		return "recent"
	case RecordLeaderboardProgression:
		return "progression"
	default:
		return "top"
	}
}

// RecordCriteria filters personal record queries. See
// UserLeaderboardCriteria for the builder contract; records have no
// country filter and no full-export sentinel.
type RecordCriteria struct {
	// Bound is the pagination bound, or nil for the top of the list.
	Bound *Bound
	// Limit is the amount of entries to return, between 1 and 100
	// (25 by default, server-side). Nil leaves the parameter unset.
	Limit *int
}

// NewRecordCriteria returns criteria with nothing set.
func NewRecordCriteria() RecordCriteria {
	return RecordCriteria{}
}

// Init resets the criteria to the NewRecordCriteria state.
func (c *RecordCriteria) Init() {
	*c = RecordCriteria{}
}

// WithAfter sets an upper bound. Replaces any previously set bound.
func (c RecordCriteria) WithAfter(keys [3]float64) RecordCriteria {
	c.Bound = After(keys)
	return c
}

// WithBefore sets a lower bound and reverses the search order.
// Replaces any previously set bound.
func (c RecordCriteria) WithBefore(keys [3]float64) RecordCriteria {
	c.Bound = Before(keys)
	return c
}

// WithLimit sets the amount of entries to return, between 1 and 100.
//
// Panics if limit is out of range.
func (c RecordCriteria) WithLimit(limit int) RecordCriteria {
	if limit < 1 || limit > 100 {
		panic(fmt.Sprintf("tetra: limit must be between 1 and 100, got %d", limit))
	}
	c.Limit = &limit
	return c
}

// Build validates the criteria and serializes it to an ordered list of
// query parameters: bound, then limit. Unset fields are omitted.
func (c RecordCriteria) Build() []Param {
	c.validate()
	var params []Param
	if c.Bound != nil {
		params = append(params, c.Bound.queryParam())
	}
	if c.Limit != nil {
		params = append(params, Param{Key: "limit", Value: strconv.Itoa(*c.Limit)})
	}
	return params
}

func (c RecordCriteria) validate() {
	if c.Limit != nil && (*c.Limit < 1 || *c.Limit > 100) {
		panic(fmt.Sprintf("tetra: limit must be between 1 and 100, got %d", *c.Limit))
	}
}
