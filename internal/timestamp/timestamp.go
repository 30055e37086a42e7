// Package timestamp models the fixed-width YYYY-MM-DDTHH:MM:SS stamps
// embedded in generated filenames. It covers parsing, formatting,
// chronological ordering, and calendar-bucket equality at the retention
// granularities.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// StampLen is the rendered width of one stamp ("2020-01-12T13:45:00").
const StampLen = 19

// ErrFormat is returned when text does not parse as a stamp.
var ErrFormat = errors.New("invalid time format")

var stampRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})$`)

// Timestamp is one point in time extracted from or generated for a
// filename. The calendar fields drive bucket equality; the absolute
// instant is the canonical sort key and is never compared field-wise.
// Immutable after construction.
type Timestamp struct {
	Year    int // four-digit year
	Month   int // 1-12
	Day     int // day of month, 1-31
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-60, leap seconds tolerated
	YearDay int // days since January 1, 0-365
	Week    int // YearDay / 7, deliberately not ISO-8601

	instant time.Time
}

// Now captures the current wall-clock instant with calendar fields
// derived through the local time zone.
func Now() Timestamp {
	t := time.Now().Local()
	yday := t.YearDay() - 1
	return Timestamp{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		YearDay: yday,
		Week:    yday / 7,
		instant: t,
	}
}

// Parse converts a 19-character stamp into a Timestamp. The absolute
// instant is derived with the local zone's standard offset regardless of
// the date, so stamps that fall inside daylight saving land one
// zone-delta off. ISO 8601 stamps cannot carry a DST marker; existing
// filenames were generated under this rule and it is kept for
// compatibility, not fixed.
func Parse(text string) (Timestamp, error) {
	m := stampRe.FindStringSubmatch(text)
	if m == nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrFormat, text)
	}
	ts := Timestamp{
		Year:   atoi(m[1]),
		Month:  atoi(m[2]),
		Day:    atoi(m[3]),
		Hour:   atoi(m[4]),
		Minute: atoi(m[5]),
		Second: atoi(m[6]),
	}
	loc := time.FixedZone("", standardOffset(time.Local))
	ts.instant = time.Date(ts.Year, time.Month(ts.Month), ts.Day,
		ts.Hour, ts.Minute, ts.Second, 0, loc)
	ts.YearDay = ts.instant.YearDay() - 1
	ts.Week = ts.YearDay / 7
	return ts, nil
}

// Format renders the stamp as zero-padded YYYY-MM-DDTHH:MM:SS. It is a
// left inverse of Parse for all valid inputs.
func (t Timestamp) Format() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// Before reports whether t is chronologically earlier than u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.instant.Before(u.instant)
}

// atoi is safe here: the stamp regexp only captures digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// standardOffset reports loc's non-DST UTC offset in seconds. Zones that
// observe DST carry the smaller of their January and July offsets as the
// standard one.
func standardOffset(loc *time.Location) int {
	_, jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, loc).Zone()
	_, jul := time.Date(2024, time.July, 1, 0, 0, 0, 0, loc).Zone()
	if jul < jan {
		return jul
	}
	return jan
}
