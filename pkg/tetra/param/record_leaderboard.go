package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Scope restricts a records leaderboard to the whole world or to one
// country.
type Scope struct {
	country string
}

// Global is the worldwide scope.
func Global() Scope { return Scope{} }

// Country scopes the leaderboard to an ISO 3166-1 country code, e.g.
// "JP". The code is uppercased when rendered.
func Country(code string) Scope { return Scope{country: code} }

func (s Scope) segment() string {
	if s.country == "" {
		return "global"
	}
	return "country_" + strings.ToUpper(s.country)
}

// RecordsLeaderboardID identifies a records leaderboard: a game mode,
// a scope, and an optional Revolution (time-windowed epoch) suffix
// such as "@2024w31".
type RecordsLeaderboardID struct {
	Gamemode     string
	Scope        Scope
	RevolutionID string
}

// NewRecordsLeaderboardID builds a records leaderboard ID. revolutionID
// may be empty for the current leaderboard.
func NewRecordsLeaderboardID(gamemode string, scope Scope, revolutionID string) RecordsLeaderboardID {
	return RecordsLeaderboardID{Gamemode: gamemode, Scope: scope, RevolutionID: revolutionID}
}

// String renders the path segment, e.g. "zenith_country_JP@2024w31".
func (id RecordsLeaderboardID) String() string {
	return id.Gamemode + "_" + id.Scope.segment() + id.RevolutionID
}

// RecordsLeaderboardCriteria filters records leaderboard queries. See
// UserLeaderboardCriteria for the builder contract.
type RecordsLeaderboardCriteria struct {
	// Bound is the pagination bound, or nil for the top of the list.
	Bound *Bound
	// Limit is the amount of entries to return, between 1 and 100
	// (25 by default, server-side). Nil leaves the parameter unset.
	Limit *int
}

// NewRecordsLeaderboardCriteria returns criteria with nothing set.
func NewRecordsLeaderboardCriteria() RecordsLeaderboardCriteria {
	return RecordsLeaderboardCriteria{}
}

// Init resets the criteria to the NewRecordsLeaderboardCriteria state.
func (c *RecordsLeaderboardCriteria) Init() {
	*c = RecordsLeaderboardCriteria{}
}

// WithAfter sets an upper bound. Replaces any previously set bound.
func (c RecordsLeaderboardCriteria) WithAfter(keys [3]float64) RecordsLeaderboardCriteria {
	c.Bound = After(keys)
	return c
}

// WithBefore sets a lower bound and reverses the search order.
// Replaces any previously set bound.
func (c RecordsLeaderboardCriteria) WithBefore(keys [3]float64) RecordsLeaderboardCriteria {
	c.Bound = Before(keys)
	return c
}

// WithLimit sets the amount of entries to return, between 1 and 100.
//
// Panics if limit is out of range.
func (c RecordsLeaderboardCriteria) WithLimit(limit int) RecordsLeaderboardCriteria {
	if limit < 1 || limit > 100 {
		panic(fmt.Sprintf("tetra: limit must be between 1 and 100, got %d", limit))
	}
	c.Limit = &limit
	return c
}

// Build validates the criteria and serializes it to an ordered list of
// query parameters: bound, then limit. Unset fields are omitted.
func (c RecordsLeaderboardCriteria) Build() []Param {
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

func (c RecordsLeaderboardCriteria) validate() {
	if c.Limit != nil && (*c.Limit < 1 || *c.Limit > 100) {
		panic(fmt.Sprintf("tetra: limit must be between 1 and 100, got %d", *c.Limit))
	}
}
