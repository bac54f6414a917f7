package model

import (
	"encoding/json"
	"time"
)

// Scoreflow is a condensed graph of all of a user's records in one
// game mode.
type Scoreflow struct {
	// StartTime is the millisecond timestamp of the oldest record
	// found.
	StartTime int64 `json:"startTime"`
	// Points are the chart points: [timestamp offset from StartTime,
	// personal best flag (0 or 1), score]. 40 LINES scores are
	// negative.
	Points []ScoreflowPoint `json:"points"`
}

// ScoreflowPoint is one point of a scoreflow chart.
type ScoreflowPoint [3]int64

// Offset is the point's timestamp offset in milliseconds.
func (p ScoreflowPoint) Offset() int64 { return p[0] }

// PersonalBest reports whether the point was a personal best when
// set.
func (p ScoreflowPoint) PersonalBest() bool { return p[1] == 1 }

// Score is the achieved score. For 40 LINES this is negative.
func (p ScoreflowPoint) Score() int64 { return p[2] }

// Time resolves the point's absolute timestamp against the flow's
// start time.
func (f Scoreflow) Time(p ScoreflowPoint) time.Time {
	return time.UnixMilli(f.StartTime + p.Offset())
}

// LeagueflowResult is the outcome of one TETRA LEAGUE match in a
// leagueflow chart.
type LeagueflowResult int64

const (
	MatchVictory LeagueflowResult = 1
	MatchDefeat  LeagueflowResult = 2
	// MatchVictoryByDQ is a win because the opponent was
	// disqualified.
	MatchVictoryByDQ LeagueflowResult = 3
	// MatchDefeatByDQ is a loss by disqualification.
	MatchDefeatByDQ LeagueflowResult = 4
	MatchTie        LeagueflowResult = 5
	MatchNoContest  LeagueflowResult = 6
	MatchNullified  LeagueflowResult = 7
)

// Leagueflow is a condensed graph of all of a user's TETRA LEAGUE
// matches.
type Leagueflow struct {
	// StartTime is the millisecond timestamp of the oldest match
	// found.
	StartTime int64 `json:"startTime"`
	// Points are the chart points: [timestamp offset from StartTime,
	// match result, the user's TR after the match, the opponent's TR
	// before the match].
	Points []LeagueflowPoint `json:"points"`
}

// LeagueflowPoint is one point of a leagueflow chart.
type LeagueflowPoint [4]int64

// Offset is the point's timestamp offset in milliseconds.
func (p LeagueflowPoint) Offset() int64 { return p[0] }

// Result is the outcome of the match.
func (p LeagueflowPoint) Result() LeagueflowResult { return LeagueflowResult(p[1]) }

// TRAfter is the user's TR after the match.
func (p LeagueflowPoint) TRAfter() int64 { return p[2] }

// OpponentTR is the opponent's TR before the match. If the opponent
// was unranked this equals TRAfter.
func (p LeagueflowPoint) OpponentTR() int64 { return p[3] }

// Time resolves the point's absolute timestamp against the flow's
// start time.
func (f Leagueflow) Time(p LeagueflowPoint) time.Time {
	return time.UnixMilli(f.StartTime + p.Offset())
}

// LeagueRanks is a view over all TETRA LEAGUE ranks and their
// metadata at one point in time.
type LeagueRanks struct {
	ID string `json:"_id"`
	// Stream is the Labs stream this data point belongs to.
	Stream    string          `json:"s"`
	CreatedAt Timestamp       `json:"t"`
	Data      LeagueRanksData `json:"data"`
}

// LeagueRanksData is one league ranks data point. The per-rank
// entries share the wire object with the total, so it decodes itself.
type LeagueRanksData struct {
	// Total is the total amount of ranked players.
	Total int
	// Ranks maps each rank tier to its cutoff data.
	Ranks map[Rank]RankStats
}

// UnmarshalJSON splits the "total" key from the per-rank keys.
func (d *LeagueRanksData) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Ranks = make(map[Rank]RankStats, len(raw))
	for k, v := range raw {
		if k == "total" {
			if err := json.Unmarshal(v, &d.Total); err != nil {
				return err
			}
			continue
		}
		var rs RankStats
		if err := json.Unmarshal(v, &rs); err != nil {
			return err
		}
		d.Ranks[Rank(k)] = rs
	}
	return nil
}

// RankStats is the cutoff and population data of one rank tier.
type RankStats struct {
	// Position is the leaderboard position required to attain the
	// rank.
	Position int `json:"pos"`
	// Percentile is the portion (0 to 1) of players this rank is for.
	Percentile float64 `json:"percentile"`
	// TR is the rating required to earn a position awarding this
	// rank.
	TR float64 `json:"tr"`
	// TargetTR is the rating the rank gravitates toward through de-
	// and inflation zones.
	TargetTR float64 `json:"targettr"`
	// APM is the average attack per minute across the rank's players.
	APM *float64 `json:"apm,omitempty"`
	// PPS is the average pieces per second across the rank's players.
	PPS *float64 `json:"pps,omitempty"`
	// VS is the average versus score across the rank's players.
	VS *float64 `json:"vs,omitempty"`
	// Count is the number of players holding the rank.
	Count int `json:"count"`
}
