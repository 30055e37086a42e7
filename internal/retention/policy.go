// Package retention decides which timestamped filenames survive a tiered
// grandfather-father-son keep policy and which may be discarded. The
// most recent entry is always kept; each active tier keeps the most
// recent representative of up to N calendar buckets; an entry survives
// if any tier keeps it.
package retention

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stampkeep/stampkeep/internal/timestamp"
)

// ErrBadCount is returned for keep counts below 1.
var ErrBadCount = errors.New("keep count must be >= 1")

// Count is an optional keep count: absent, or a validated positive
// integer. The zero value is absent.
type Count struct {
	n   int
	set bool
}

// KeepCount validates n at construction so callers never see a Count
// holding a non-positive value.
func KeepCount(n int) (Count, error) {
	if n < 1 {
		return Count{}, fmt.Errorf("%w: got %d", ErrBadCount, n)
	}
	return Count{n: n, set: true}, nil
}

// Present reports whether a count was requested.
func (c Count) Present() bool { return c.set }

// Value returns the keep count, or zero when absent.
func (c Count) Value() int { return c.n }

// Policy maps each granularity tier to an optional keep count. The zero
// value keeps nothing beyond the unconditional most-recent entry.
type Policy struct {
	Minutely Count
	Hourly   Count
	Daily    Count
	Weekly   Count
	Monthly  Count
}

type tier struct {
	count Count
	gran  timestamp.Granularity
}

func (p Policy) tiers() []tier {
	return []tier{
		{p.Minutely, timestamp.Minutely},
		{p.Hourly, timestamp.Hourly},
		{p.Daily, timestamp.Daily},
		{p.Weekly, timestamp.Weekly},
		{p.Monthly, timestamp.Monthly},
	}
}

// Active reports whether any tier requests a count.
func (p Policy) Active() bool {
	for _, tr := range p.tiers() {
		if tr.count.Present() {
			return true
		}
	}
	return false
}

// String summarizes the active tiers, e.g. "daily=7 monthly=6".
func (p Policy) String() string {
	var parts []string
	for _, tr := range p.tiers() {
		if tr.count.Present() {
			parts = append(parts, fmt.Sprintf("%s=%d", tr.gran, tr.count.Value()))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
