package model

// Prisecter is the three-key sort position attached to every entry of
// a paginatable collection. Entries in a page are totally ordered by
// lexicographic comparison of (Pri, Sec, Ter); the secondary and
// tertiary keys only break ties on the primary key. Feed ToArray back
// into a criteria bound to continue paginating.
type Prisecter struct {
	// Pri is the primary sort key.
	Pri float64 `json:"pri"`
	// Sec is the secondary sort key.
	Sec float64 `json:"sec"`
	// Ter is the tertiary sort key.
	Ter float64 `json:"ter"`
}

// ToArray returns the three sort keys in (primary, secondary,
// tertiary) order, ready to be passed to a pagination bound.
func (p Prisecter) ToArray() [3]float64 {
	return [3]float64{p.Pri, p.Sec, p.Ter}
}
