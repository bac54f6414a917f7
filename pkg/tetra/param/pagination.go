// Package param holds the request parameter types consumed by the
// client: pagination bounds, search criteria, and the path selector
// enums for the various leaderboard and record endpoints.
package param

import (
	"fmt"
	"strconv"
)

// Param is a single key/value query parameter pair.
type Param struct {
	Key   string
	Value string
}

// Bound is a pagination directive derived from an entry's prisecter.
// An upper bound ("after") continues a descending scroll: the server
// returns entries strictly below the triple. A lower bound ("before")
// returns entries strictly above it and reverses the sort order to
// ascending. Exactly one direction is representable; construct a Bound
// with After or Before.
type Bound struct {
	dir  boundDir
	keys [3]float64
}

type boundDir uint8

const (
	boundAfter boundDir = iota
	boundBefore
)

// After returns an upper bound. Take the lowest seen prisecter and
// pass its ToArray value back through here to continue scrolling down.
func After(keys [3]float64) *Bound {
	return &Bound{dir: boundAfter, keys: keys}
}

// Before returns a lower bound. Take the highest seen prisecter and
// pass its ToArray value back through here to scroll upwards; the
// search order is reversed.
func Before(keys [3]float64) *Bound {
	return &Bound{dir: boundBefore, keys: keys}
}

// Keys returns the three sort keys in (primary, secondary, tertiary)
// order.
func (b *Bound) Keys() [3]float64 { return b.keys }

// IsAfter reports whether this is an upper bound.
func (b *Bound) IsAfter() bool { return b.dir == boundAfter }

// queryParam renders the bound as its single query parameter. The
// three keys are colon-joined with integral floats rendered without a
// fractional part, the bare-number form the upstream API expects.
func (b *Bound) queryParam() Param {
	key := "after"
	if b.dir == boundBefore {
		key = "before"
	}
	return Param{Key: key, Value: fmt.Sprintf(
		"%s:%s:%s",
		formatKey(b.keys[0]),
		formatKey(b.keys[1]),
		formatKey(b.keys[2]),
	)}
}

func formatKey(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
