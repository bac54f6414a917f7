package model

// ServerStats are aggregate statistics about the whole TETR.IO
// server.
type ServerStats struct {
	// UserCount includes anonymous accounts.
	UserCount int64 `json:"usercount"`
	// UserCountDelta is accounts created per second over the last
	// minute.
	UserCountDelta float64 `json:"usercount_delta"`
	AnonCount      int64   `json:"anoncount"`
	// TotalAccounts counts every account ever created, including
	// pruned anons.
	TotalAccounts int64 `json:"totalaccounts"`
	// RankedCount counts accounts visible in the TETRA LEAGUE
	// leaderboard.
	RankedCount int64 `json:"rankedcount"`
	RecordCount int64 `json:"recordcount"`
	// GamesPlayed counts games across all users, on- and offline.
	GamesPlayed int64 `json:"gamesplayed"`
	// GamesPlayedDelta is games played per second over the last
	// minute.
	GamesPlayedDelta float64 `json:"gamesplayed_delta"`
	// GamesFinished excludes games that were not completed, e.g.
	// retries.
	GamesFinished int64 `json:"gamesfinished"`
	// GameTime is seconds spent playing across all users.
	GameTime float64 `json:"gametime"`
	// Inputs counts keys pressed across all users.
	Inputs int64 `json:"inputs"`
	// PiecesPlaced counts pieces placed across all users.
	PiecesPlaced int64 `json:"piecesplaced"`
}

// RegisteredPlayers returns the number of non-anonymous accounts.
func (s ServerStats) RegisteredPlayers() int64 {
	return s.UserCount - s.AnonCount
}

// AveragePiecesPerSecond returns pieces placed per second of play
// time, or 0 if no time was recorded.
func (s ServerStats) AveragePiecesPerSecond() float64 {
	if s.GameTime == 0 {
		return 0
	}
	return float64(s.PiecesPlaced) / s.GameTime
}

// AverageKeysPerSecond returns keys pressed per second of play time,
// or 0 if no time was recorded.
func (s ServerStats) AverageKeysPerSecond() float64 {
	if s.GameTime == 0 {
		return 0
	}
	return float64(s.Inputs) / s.GameTime
}

// ServerActivity is a graph of user activity over the last 2 days. A
// user counts as active if they logged in or received XP within the
// last 30 minutes.
type ServerActivity struct {
	// Activity holds the plot points, newest first.
	Activity []int `json:"activity"`
}

// Peak returns the highest activity point and its index. Returns
// false if the graph is empty; ties resolve to the first point.
func (a ServerActivity) Peak() (value, index int, ok bool) {
	if len(a.Activity) == 0 {
		return 0, 0, false
	}
	value, index = a.Activity[0], 0
	for i, v := range a.Activity {
		if v > value {
			value, index = v, i
		}
	}
	return value, index, true
}

// Trough returns the lowest activity point and its index. Returns
// false if the graph is empty; ties resolve to the first point.
func (a ServerActivity) Trough() (value, index int, ok bool) {
	if len(a.Activity) == 0 {
		return 0, 0, false
	}
	value, index = a.Activity[0], 0
	for i, v := range a.Activity {
		if v < value {
			value, index = v, i
		}
	}
	return value, index, true
}

// Average returns the mean of the activity points, or false if the
// graph is empty.
func (a ServerActivity) Average() (float64, bool) {
	if len(a.Activity) == 0 {
		return 0, false
	}
	var sum int
	for _, v := range a.Activity {
		sum += v
	}
	return float64(sum) / float64(len(a.Activity)), true
}
