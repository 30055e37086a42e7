package retention

import (
	"log/slog"
	"sort"

	"github.com/stampkeep/stampkeep/internal/template"
	"github.com/stampkeep/stampkeep/internal/timestamp"
)

// Engine classifies raw candidate filenames against one template and one
// policy. Candidates that fail structural matching or stamp parsing are
// skipped with a warning; the batch always completes.
type Engine struct {
	tmpl   template.Template
	policy Policy
	log    *slog.Logger
}

// NewEngine builds an engine. A nil logger falls back to slog.Default.
func NewEngine(tmpl template.Template, policy Policy, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{tmpl: tmpl, policy: policy, log: log}
}

// Entry pairs a parsed stamp with its canonical filename rendering. The
// name is re-rendered from the stamp, not echoed from the input bytes.
type Entry struct {
	Time timestamp.Timestamp
	Name string
}

// Skip records one discarded candidate and why.
type Skip struct {
	Candidate string
	Reason    error
}

// Report is the outcome of one Plan pass. Keep and Prune are ordered
// most recent first; Skipped preserves input order.
type Report struct {
	Keep    []Entry
	Prune   []Entry
	Skipped []Skip
}

// Plan matches, parses, sorts, and classifies candidates. Per-candidate
// failures are local: the failing candidate is recorded in Skipped and
// logged, and processing continues.
func (e *Engine) Plan(candidates []string) Report {
	var rep Report
	var times []timestamp.Timestamp
	for _, c := range candidates {
		raw, err := e.tmpl.Extract(c)
		if err != nil {
			rep.skip(e.log, c, err)
			continue
		}
		ts, err := timestamp.Parse(raw)
		if err != nil {
			rep.skip(e.log, c, err)
			continue
		}
		times = append(times, ts)
	}
	if len(times) == 0 {
		return rep
	}

	// Most recent first. Equal instants keep their input order.
	sort.SliceStable(times, func(i, j int) bool {
		return times[j].Before(times[i])
	})

	keep := Keep(times, e.policy)
	ki := 0
	for i, ts := range times {
		entry := Entry{Time: ts, Name: e.tmpl.Render(ts)}
		if ki < len(keep) && keep[ki] == i {
			rep.Keep = append(rep.Keep, entry)
			ki++
		} else {
			rep.Prune = append(rep.Prune, entry)
		}
	}
	return rep
}

func (r *Report) skip(log *slog.Logger, candidate string, reason error) {
	r.Skipped = append(r.Skipped, Skip{Candidate: candidate, Reason: reason})
	log.Warn("skipping candidate", "candidate", candidate, "reason", reason)
}
