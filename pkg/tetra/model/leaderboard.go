package model

// Leaderboard is a page of the user leaderboard.
type Leaderboard struct {
	Entries []LeaderboardUser `json:"entries"`
}

// LeaderboardUser is one entry of a user leaderboard page.
type LeaderboardUser struct {
	ID       string    `json:"_id"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
	// CreatedAt is zero for accounts created before join dates were
	// recorded.
	CreatedAt Timestamp `json:"ts,omitempty"`
	XP        float64   `json:"xp"`
	// Country is the ISO 3166-1 code, empty if hidden or unknown.
	Country   string `json:"country,omitempty"`
	Supporter bool   `json:"supporter,omitempty"`
	// League is this user's current TETRA LEAGUE standing.
	League PartialLeagueData `json:"league"`
	// GamesPlayed is -1 if the user hides this statistic.
	GamesPlayed int `json:"gamesplayed"`
	// GamesWon is -1 if the user hides this statistic.
	GamesWon int `json:"gameswon"`
	// GameTime is seconds spent playing; -1 if hidden.
	GameTime float64 `json:"gametime"`
	// AR is this user's Achievement Rating.
	AR       int                     `json:"ar"`
	ARCounts AchievementRatingCounts `json:"ar_counts"`
	// Prisecter is this entry's pagination cursor.
	Prisecter Prisecter `json:"p"`
}

// UserID satisfies UserRef.
func (u LeaderboardUser) UserID() string { return u.ID }

// PartialLeagueData is the compact TETRA LEAGUE standing embedded in
// leaderboard entries.
type PartialLeagueData struct {
	GamesPlayed int      `json:"gamesplayed"`
	GamesWon    int      `json:"gameswon"`
	TR          float64  `json:"tr"`
	GXE         float64  `json:"gxe"`
	Rank        Rank     `json:"rank"`
	BestRank    *Rank    `json:"bestrank,omitempty"`
	Glicko      float64  `json:"glicko"`
	RD          *float64 `json:"rd,omitempty"`
	APM         *float64 `json:"apm,omitempty"`
	PPS         *float64 `json:"pps,omitempty"`
	VS          *float64 `json:"vs,omitempty"`
	Decaying    bool     `json:"decaying"`
}

// HistoricalLeaderboard is a page of a past season's final standings.
type HistoricalLeaderboard struct {
	Entries []PastUser `json:"entries"`
}

// PastUser is a user's final placement in a past season, with the
// entry's pagination cursor.
type PastUser struct {
	ID     string `json:"_id"`
	Season string `json:"season"`
	// Username is the name the user had at the time.
	Username string `json:"username"`
	// Country is the country represented at the time, empty if
	// hidden.
	Country string `json:"country,omitempty"`
	// Placement is the final position in the season's global
	// leaderboards.
	Placement   int     `json:"placement"`
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
	// Prisecter is this entry's pagination cursor.
	Prisecter Prisecter `json:"p"`
}

// UserID satisfies UserRef.
func (u PastUser) UserID() string { return u.ID }
