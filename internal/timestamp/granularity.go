package timestamp

import "fmt"

// Granularity names a retention tier. Two stamps fall in the same bucket
// of a tier when every calendar field in the tier's field set matches.
type Granularity int

const (
	Minutely Granularity = iota
	Hourly
	Daily
	Weekly
	Monthly
)

// fieldSet lists the calendar fields a granularity compares.
type fieldSet struct {
	year, month, day, hour, minute, week bool
}

// Weekly is the odd one out: it compares only {year, week} and is not a
// refinement of the day-based tiers.
var fieldSets = map[Granularity]fieldSet{
	Minutely: {year: true, month: true, day: true, hour: true, minute: true},
	Hourly:   {year: true, month: true, day: true, hour: true},
	Daily:    {year: true, month: true, day: true},
	Weekly:   {year: true, week: true},
	Monthly:  {year: true, month: true},
}

func (g Granularity) String() string {
	switch g {
	case Minutely:
		return "minutely"
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// EqualAt reports whether t and u share the bucket defined by g. This is
// a partial equality used only for bucket detection, never for ordering.
func (t Timestamp) EqualAt(u Timestamp, g Granularity) bool {
	fs := fieldSets[g]
	if fs.year && t.Year != u.Year {
		return false
	}
	if fs.month && t.Month != u.Month {
		return false
	}
	if fs.day && t.Day != u.Day {
		return false
	}
	if fs.hour && t.Hour != u.Hour {
		return false
	}
	if fs.minute && t.Minute != u.Minute {
		return false
	}
	if fs.week && t.Week != u.Week {
		return false
	}
	return true
}
