package model

// Rank is a TETRA LEAGUE rank tier. The wire form is the lowercase
// short name ("d+", "ss", "x+", ...); "z" means unranked.
type Rank string

const (
	RankD      Rank = "d"
	RankDPlus  Rank = "d+"
	RankCMinus Rank = "c-"
	RankC      Rank = "c"
	RankCPlus  Rank = "c+"
	RankBMinus Rank = "b-"
	RankB      Rank = "b"
	RankBPlus  Rank = "b+"
	RankAMinus Rank = "a-"
	RankA      Rank = "a"
	RankAPlus  Rank = "a+"
	RankSMinus Rank = "s-"
	RankS      Rank = "s"
	RankSPlus  Rank = "s+"
	RankSS     Rank = "ss"
	RankU      Rank = "u"
	RankX      Rank = "x"
	RankXPlus  Rank = "x+"
	// RankUnranked is the Z placement rank.
	RankUnranked Rank = "z"
)

// rankColors maps each rank to its display color.
var rankColors = map[Rank]uint32{
	RankD:        0x907591,
	RankDPlus:    0x8e6091,
	RankCMinus:   0x79558c,
	RankC:        0x733e8f,
	RankCPlus:    0x552883,
	RankBMinus:   0x5650c7,
	RankB:        0x4f64c9,
	RankBPlus:    0x4f99c0,
	RankAMinus:   0x3bb687,
	RankA:        0x46ad51,
	RankAPlus:    0x1fa834,
	RankSMinus:   0xb2972b,
	RankS:        0xe0a71b,
	RankSPlus:    0xd8af0e,
	RankSS:       0xdb8b1f,
	RankU:        0xff3813,
	RankX:        0xff45ff,
	RankXPlus:    0xa763ea,
	RankUnranked: 0x767671,
}

var rankNames = map[Rank]string{
	RankD: "D", RankDPlus: "D+",
	RankCMinus: "C-", RankC: "C", RankCPlus: "C+",
	RankBMinus: "B-", RankB: "B", RankBPlus: "B+",
	RankAMinus: "A-", RankA: "A", RankAPlus: "A+",
	RankSMinus: "S-", RankS: "S", RankSPlus: "S+",
	RankSS: "SS", RankU: "U", RankX: "X", RankXPlus: "X+",
	RankUnranked: "Unranked",
}

// Name returns the display name of the rank, e.g. "S+" or "Unranked".
func (r Rank) Name() string {
	if n, ok := rankNames[r]; ok {
		return n
	}
	return string(r)
}

// Color returns the 24-bit RGB display color of the rank, or 0 for an
// unknown tier.
func (r Rank) Color() uint32 {
	return rankColors[r]
}

// IsUnranked reports whether the rank is the Z placement rank.
func (r Rank) IsUnranked() bool {
	return r == RankUnranked
}

// IconURL returns the rank icon URL.
func (r Rank) IconURL() string {
	return "https://tetr.io/res/league-ranks/" + string(r) + ".png"
}
