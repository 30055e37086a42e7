// Package template implements {now} naming templates: locating
// placeholders, structurally matching candidate filenames against the
// literal skeleton, extracting the embedded stamp, and rendering a
// timestamp back into the pattern.
package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stampkeep/stampkeep/internal/timestamp"
)

// Placeholder is the literal token substituted with a rendered stamp.
const Placeholder = "{now}"

// ErrMismatch is returned when a candidate's literal structure does not
// line up with the template skeleton.
var ErrMismatch = errors.New("candidate does not match template")

// ErrNoPlaceholder is returned when an operation needs at least one
// {now} and the template has none.
var ErrNoPlaceholder = errors.New("template contains no " + Placeholder)

// Template is a naming pattern with zero or more {now} placeholders.
type Template struct {
	raw     string
	offsets []int // byte offset of each placeholder, ascending
}

// New scans raw left to right and records every non-overlapping
// placeholder offset.
func New(raw string) Template {
	var offsets []int
	for from := 0; ; {
		i := strings.Index(raw[from:], Placeholder)
		if i < 0 {
			break
		}
		offsets = append(offsets, from+i)
		from += i + len(Placeholder)
	}
	return Template{raw: raw, offsets: offsets}
}

// String returns the raw pattern.
func (t Template) String() string { return t.raw }

// Placeholders returns the number of {now} occurrences.
func (t Template) Placeholders() int { return len(t.offsets) }

// Match walks the template and the candidate in lock step: at each
// placeholder it skips 5 template bytes and 19 candidate bytes without
// inspecting them; everywhere else the bytes must be equal, and both
// strings must be consumed exactly. This is structural matching only —
// whether the skipped 19 bytes form a valid stamp is Parse's concern,
// handled as a separate recoverable failure per candidate.
func (t Template) Match(candidate string) bool {
	var ni, ti, ci int
	for ti < len(t.raw) && ci < len(candidate) {
		switch {
		case ni < len(t.offsets) && t.offsets[ni] == ti:
			ni++
			ti += len(Placeholder)
			ci += timestamp.StampLen
		case t.raw[ti] != candidate[ci]:
			return false
		default:
			ti++
			ci++
		}
	}
	return ni == len(t.offsets) && ti == len(t.raw) && ci == len(candidate)
}

// Extract returns the 19 bytes at the first placeholder of candidate.
// Bucket selection only ever uses the first occurrence; any further
// placeholders are skipped structurally but never read. All bytes before
// the first placeholder are literals, so the template offset is also the
// candidate offset.
func (t Template) Extract(candidate string) (string, error) {
	if len(t.offsets) == 0 {
		return "", ErrNoPlaceholder
	}
	if !t.Match(candidate) {
		return "", fmt.Errorf("%w: %q", ErrMismatch, candidate)
	}
	at := t.offsets[0]
	return candidate[at : at+timestamp.StampLen], nil
}

// Render substitutes every placeholder with the rendered stamp.
func (t Template) Render(ts timestamp.Timestamp) string {
	return strings.ReplaceAll(t.raw, Placeholder, ts.Format())
}
