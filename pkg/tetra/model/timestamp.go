package model

import (
	"encoding/json"
	"time"
)

// Timestamp is an RFC 3339 timestamp that tolerates the upstream
// quirk of occasionally sending a non-string value (observed on badge
// timestamps); anything unparsable decodes to the zero Timestamp.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON decodes an RFC 3339 string; null and non-string
// values yield the zero Timestamp instead of an error.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = Timestamp{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		*t = Timestamp{}
		return nil
	}
	t.Time = parsed
	return nil
}

// Unix returns the timestamp as seconds since the Unix epoch, or 0
// for the zero Timestamp.
func (t Timestamp) Unix() int64 {
	if t.IsZero() {
		return 0
	}
	return t.Time.Unix()
}
