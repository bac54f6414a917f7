package param

import (
	"fmt"
	"strconv"
	"strings"
)

// UserLeaderboardType selects which user leaderboard to query.
type UserLeaderboardType uint8

const (
	// LeaderboardLeague is the TETRA LEAGUE leaderboard.
	LeaderboardLeague UserLeaderboardType = iota
	// LeaderboardXP is the XP leaderboard.
	LeaderboardXP
	// LeaderboardAR is the Achievement Rating leaderboard.
	LeaderboardAR
)

// String returns the canonical path segment for the leaderboard type.
func (t UserLeaderboardType) String() string {
	switch t {
	case LeaderboardXP:
		return "xp"
	case LeaderboardAR:
		return "ar"
	default:
		return "league"
	}
}

// UserLeaderboardCriteria filters user leaderboard queries.
//
// The zero value means "use server defaults" (descending order, the
// server's own page size). Compose with the With* methods, each of
// which returns an updated copy:
//
//	c := param.NewUserLeaderboardCriteria().
//		WithAfter([3]float64{15200, 0, 0}).
//		WithLimit(3).
//		WithCountry("jp")
//
// Fields are exported so criteria can also be built by direct
// assignment; the client re-validates the limit when it consumes the
// criteria.
type UserLeaderboardCriteria struct {
	// Bound is the pagination bound, or nil for the top of the
	// leaderboard.
	Bound *Bound
	// Limit is the amount of entries to return, between 1 and 100
	// (25 by default, server-side). The value 0 requests the full
	// unbounded export. Nil leaves the parameter unset.
	Limit *int
	// Country is an ISO 3166-1 country code filter. Stored as given;
	// uppercased on the wire.
	Country string
}

// NewUserLeaderboardCriteria returns criteria with nothing set.
func NewUserLeaderboardCriteria() UserLeaderboardCriteria {
	return UserLeaderboardCriteria{}
}

// Init resets the criteria to the NewUserLeaderboardCriteria state.
func (c *UserLeaderboardCriteria) Init() {
	*c = UserLeaderboardCriteria{}
}

// WithAfter sets an upper bound. Replaces any previously set bound.
func (c UserLeaderboardCriteria) WithAfter(keys [3]float64) UserLeaderboardCriteria {
	c.Bound = After(keys)
	return c
}

// WithBefore sets a lower bound and reverses the search order.
// Replaces any previously set bound.
func (c UserLeaderboardCriteria) WithBefore(keys [3]float64) UserLeaderboardCriteria {
	c.Bound = Before(keys)
	return c
}

// WithLimit sets the amount of entries to return, between 1 and 100,
// or 0 for the full export.
//
// Panics if limit is outside that range; an out-of-range limit is a
// caller bug, not a runtime condition.
func (c UserLeaderboardCriteria) WithLimit(limit int) UserLeaderboardCriteria {
	if limit < 0 || limit > 100 {
		panic(fmt.Sprintf("tetra: limit must be between 0 and 100, got %d", limit))
	}
	c.Limit = &limit
	return c
}

// WithCountry sets the country filter.
func (c UserLeaderboardCriteria) WithCountry(country string) UserLeaderboardCriteria {
	c.Country = country
	return c
}

// Build validates the criteria and serializes it to an ordered list of
// query parameters: bound, then limit, then country. Unset fields are
// omitted. Panics if a directly-assigned limit is out of range.
func (c UserLeaderboardCriteria) Build() []Param {
	c.validate()
	var params []Param
	if c.Bound != nil {
		params = append(params, c.Bound.queryParam())
	}
	if c.Limit != nil {
		params = append(params, Param{Key: "limit", Value: strconv.Itoa(*c.Limit)})
	}
	if c.Country != "" {
		params = append(params, Param{Key: "country", Value: strings.ToUpper(c.Country)})
	}
	return params
}

func (c UserLeaderboardCriteria) validate() {
	if c.Limit != nil && (*c.Limit < 0 || *c.Limit > 100) {
		panic(fmt.Sprintf("tetra: limit must be between 0 and 100, got %d", *c.Limit))
	}
}
