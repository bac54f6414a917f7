package model

// LeagueData summarizes a user's TETRA LEAGUE standing. Season
// information exists only if the user finished placements and was not
// banned or hidden; for banned users the API returns an empty object,
// which decodes to the zero value (GamesPlayed == 0, Rank == "").
type LeagueData struct {
	GamesPlayed int `json:"gamesplayed"`
	GamesWon    int `json:"gameswon"`
	// Glicko is -1 if fewer than 10 games were played.
	Glicko float64 `json:"glicko"`
	// RD is the Glicko-2 rating deviation; above 100 the user is
	// unranked.
	RD *float64 `json:"rd,omitempty"`
	// Decaying reports whether RD is rising (no games in the last
	// week).
	Decaying bool `json:"decaying"`
	// TR is the Tetra Rating, or -1 if fewer than 10 games were
	// played.
	TR float64 `json:"tr"`
	// GXE is the GLIXARE score, a % chance of beating an average
	// player.
	GXE      float64 `json:"gxe"`
	Rank     Rank    `json:"rank"`
	BestRank *Rank   `json:"bestrank,omitempty"`
	// APM is the average attack per minute over the last 10 games.
	APM *float64 `json:"apm,omitempty"`
	// PPS is the average pieces per second over the last 10 games.
	PPS *float64 `json:"pps,omitempty"`
	// VS is the average versus score over the last 10 games.
	VS *float64 `json:"vs,omitempty"`
	// Standing is the user's position in global leaderboards, or -1
	// if not applicable.
	Standing int `json:"standing,omitempty"`
	// StandingLocal is the position in the user's country
	// leaderboards.
	StandingLocal int `json:"standing_local,omitempty"`
	// Percentile is the position between 0 and 1.
	Percentile float64 `json:"percentile,omitempty"`
	// PercentileRank is the rank this percentile maps to.
	PercentileRank Rank `json:"percentile_rank,omitempty"`
	// NextRank is the next rank up, absent at the top.
	NextRank *Rank `json:"next_rank,omitempty"`
	// PrevRank is the next rank down, absent at the bottom.
	PrevRank *Rank `json:"prev_rank,omitempty"`
	// NextAt is the TR goal to reach the next rank, or -1.
	NextAt int `json:"next_at,omitempty"`
	// PrevAt is the TR floor below which the user drops a rank, or
	// -1.
	PrevAt int `json:"prev_at,omitempty"`
	// Past maps past season IDs to the user's final placement in that
	// season.
	Past map[string]PastSeason `json:"past,omitempty"`
}

// PastSeason is a user's final placement in a past TETRA LEAGUE
// season, as embedded in the league summary.
type PastSeason struct {
	Season string `json:"season"`
	// Username is the name the user had at the time.
	Username string `json:"username"`
	// Country is the country represented at the time, empty if
	// hidden.
	Country string `json:"country,omitempty"`
	// Placement is the final position in the season's global
	// leaderboards, absent if unranked.
	Placement   *int    `json:"placement,omitempty"`
	Ranked      bool    `json:"ranked"`
	GamesPlayed int     `json:"gamesplayed"`
	GamesWon    int     `json:"gameswon"`
	Glicko      float64 `json:"glicko"`
	RD          float64 `json:"rd"`
	TR          float64 `json:"tr"`
	GXE         float64 `json:"gxe"`
	Rank        Rank    `json:"rank"`
	BestRank    *Rank   `json:"bestrank,omitempty"`
	APM         float64 `json:"apm"`
	PPS         float64 `json:"pps"`
	VS          float64 `json:"vs"`
}

// Ranked reports whether the user holds a letter rank this season.
func (d LeagueData) Ranked() bool {
	return d.Rank != "" && !d.Rank.IsUnranked()
}

// RankProgress returns the user's progress through their current rank
// as a percentage. Rank boundaries fluctuate, so values outside
// [0, 100] occur. Returns false if the user has no global standing or
// sits at the top or bottom rank.
func (d LeagueData) RankProgress() (float64, bool) {
	if d.Standing <= 0 || d.PrevAt < 0 || d.NextAt < 0 || d.NextAt == d.PrevAt {
		return 0, false
	}
	return float64(d.Standing-d.PrevAt) / float64(d.NextAt-d.PrevAt) * 100, true
}
