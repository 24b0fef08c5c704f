package model

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	naiveLayout      = "2006-01-02T15:04:05"
	naiveMicroLayout = "2006-01-02T15:04:05.000000"
)

// Timestamp is a wall-clock time without zone, encoded as
// 2006-01-02T15:04:05 with microseconds only when they are non-zero.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) String() string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(naiveMicroLayout)
	}
	return t.Format(naiveLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON accepts the naive form as well as RFC 3339. Zoned values are
// converted to UTC.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.Wrap(err, "timestamp must be a string")
	}
	if tt, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = tt.UTC()
		return nil
	}
	tt, err := time.Parse("2006-01-02T15:04:05.999999999", s)
	if err != nil {
		return errors.Wrapf(err, "parse timestamp %q", s)
	}
	t.Time = tt
	return nil
}
