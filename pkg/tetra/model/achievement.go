package model

// AchievementRankType classifies how an achievement ranks its
// holders.
type AchievementRankType int

const (
	// RankTypePercentile ranks by percentile cutoffs (5% Diamond, 10%
	// Platinum, 30% Gold, 50% Silver, 70% Bronze).
	RankTypePercentile AchievementRankType = 1
	// RankTypeIssue always carries the ISSUED rank.
	RankTypeIssue AchievementRankType = 2
	// RankTypeZenith ranks by QUICK PLAY floors.
	RankTypeZenith AchievementRankType = 3
	// RankTypePercentileLax ranks by laxer percentile cutoffs (5%
	// Diamond, 20% Platinum, 60% Gold, 100% Silver).
	RankTypePercentileLax AchievementRankType = 4
	// RankTypePercentileVLax ranks by the laxest percentile cutoffs
	// (20% Diamond, 50% Platinum, 100% Gold).
	RankTypePercentileVLax AchievementRankType = 5
	// RankTypePercentileMLax ranks by medium-lax percentile cutoffs
	// (10% Diamond, 20% Platinum, 50% Gold, 100% Silver).
	RankTypePercentileMLax AchievementRankType = 6
)

// AchievementValueType describes how to interpret an achievement's
// value.
type AchievementValueType int

const (
	// ValueTypeNone means the achievement has no value.
	ValueTypeNone AchievementValueType = 0
	// ValueTypeNumber is a positive number.
	ValueTypeNumber AchievementValueType = 1
	// ValueTypeTime is a positive amount of milliseconds.
	ValueTypeTime AchievementValueType = 2
	// ValueTypeTimeInv is a negative amount of milliseconds; negate
	// before display.
	ValueTypeTimeInv AchievementValueType = 3
	// ValueTypeFloor is an altitude, with the floor number in
	// Additional.
	ValueTypeFloor AchievementValueType = 4
	// ValueTypeIssue is the negative time of issue.
	ValueTypeIssue AchievementValueType = 5
	// ValueTypeNumberInv is a negative number; negate before display.
	ValueTypeNumberInv AchievementValueType = 6
)

// AchievementMedal is a medal rank on an achievement.
type AchievementMedal int

const (
	MedalNone     AchievementMedal = 0
	MedalBronze   AchievementMedal = 1
	MedalSilver   AchievementMedal = 2
	MedalGold     AchievementMedal = 3
	MedalPlatinum AchievementMedal = 4
	MedalDiamond  AchievementMedal = 5
	MedalIssued   AchievementMedal = 100
)

// Achievement describes one achievement, optionally with the holder's
// progress on it.
type Achievement struct {
	// ID is the achievement ID, shared across every holder.
	ID       int    `json:"k"`
	Category string `json:"category"`
	Name     string `json:"name"`
	// Object is the objective of the achievement.
	Object string `json:"object"`
	// Desc is the flavor text.
	Desc string `json:"desc"`
	// Order positions the achievement within its category. Documented
	// as required but absent on some achievements.
	Order     *int                 `json:"o,omitempty"`
	RankType  AchievementRankType  `json:"rt"`
	ValueType AchievementValueType `json:"vt"`
	// ARType is 0 for unranked, 1 when medal ranks give AR, 2 when
	// leaderboard positions also give AR.
	ARType int `json:"art"`
	// Min is the minimum score required to obtain the achievement.
	Min int64 `json:"min"`
	// Deci is the number of decimal places to show.
	Deci   int  `json:"deci"`
	Hidden bool `json:"hidden"`
	// Value is the achieved score, interpreted per ValueType.
	Value *float64 `json:"v,omitempty"`
	// Additional carries extra data, e.g. the floor number for
	// ValueTypeFloor.
	Additional *float64 `json:"a,omitempty"`
	// UpdatedAt is when the achievement progress last changed.
	UpdatedAt *Timestamp `json:"t,omitempty"`
	// Position is the zero-indexed spot in the achievement's
	// leaderboard.
	Position *int `json:"pos,omitempty"`
	// Total counts players holding the achievement at Min or higher.
	Total *int `json:"total,omitempty"`
	// Rank is the holder's medal rank.
	Rank *AchievementMedal `json:"rank,omitempty"`
}

// AchievementInfo is an achievement together with its cutoffs and the
// top of its leaderboard.
type AchievementInfo struct {
	Achievement Achievement         `json:"achievement"`
	Leaderboard []AchievementHolder `json:"leaderboard"`
	Cutoffs     AchievementCutoffs  `json:"cutoffs"`
}

// AchievementHolder is one entry of an achievement's leaderboard.
type AchievementHolder struct {
	User AchievementUser `json:"u"`
	// Value is the achieved score.
	Value float64 `json:"v"`
	// Additional is extra score data, if any.
	Additional *float64 `json:"a,omitempty"`
	// UpdatedAt is when the entry last changed.
	UpdatedAt Timestamp `json:"t"`
}

// AchievementUser is the compact user reference embedded in
// achievement leaderboards.
type AchievementUser struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	Supporter bool   `json:"supporter,omitempty"`
	// Country is the ISO 3166-1 code, empty if hidden.
	Country string `json:"country,omitempty"`
}

// UserID satisfies UserRef.
func (u AchievementUser) UserID() string { return u.ID }

// AchievementCutoffs lists the scores required for each medal rank.
// A nil cutoff means the rank does not apply to this achievement.
type AchievementCutoffs struct {
	// Total counts users holding the achievement.
	Total    int      `json:"total"`
	Diamond  *float64 `json:"diamond,omitempty"`
	Platinum *float64 `json:"platinum,omitempty"`
	Gold     *float64 `json:"gold,omitempty"`
	Silver   *float64 `json:"silver,omitempty"`
	Bronze   *float64 `json:"bronze,omitempty"`
}
