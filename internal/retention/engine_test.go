package retention

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stampkeep/stampkeep/internal/template"
	"github.com/stampkeep/stampkeep/internal/timestamp"
)

// newTestEngine builds an engine with a silenced logger.
func newTestEngine(t *testing.T, raw string, p Policy) *Engine {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(template.New(raw), p, log)
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPlanDailyScenario(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, "backup-{now}.tar", Policy{Daily: count(t, 1)})
	rep := e.Plan([]string{
		"backup-2024-01-01T00:00:00.tar",
		"backup-2024-01-01T12:00:00.tar",
		"backup-2024-01-02T00:00:00.tar",
	})

	if want := []string{"backup-2024-01-02T00:00:00.tar"}; !equalStrings(names(rep.Keep), want) {
		t.Errorf("Keep = %v, want %v", names(rep.Keep), want)
	}
	// Prunable names come out most recent first.
	want := []string{
		"backup-2024-01-01T12:00:00.tar",
		"backup-2024-01-01T00:00:00.tar",
	}
	if !equalStrings(names(rep.Prune), want) {
		t.Errorf("Prune = %v, want %v", names(rep.Prune), want)
	}
	if len(rep.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", rep.Skipped)
	}
}

func TestPlanEmptyInput(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, "backup-{now}.tar", Policy{Daily: count(t, 1)})
	rep := e.Plan(nil)
	if len(rep.Keep) != 0 || len(rep.Prune) != 0 || len(rep.Skipped) != 0 {
		t.Errorf("Plan(nil) = %+v, want empty report", rep)
	}
}

func TestPlanSkipsMalformedAndContinues(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, "backup-{now}.tar", Policy{Daily: count(t, 1)})
	rep := e.Plan([]string{
		"backup-2024-01-02T00:00:00.tar",
		"unrelated-notes.txt",                // structural mismatch
		"backup-20XX-01-01TAA:00:00.tar",     // matches structurally, stamp unparseable
		"",                                   // empty record
		"backup-2024-01-01T00:00:00.tar",
	})

	if len(rep.Skipped) != 3 {
		t.Fatalf("Skipped = %d entries (%v), want 3", len(rep.Skipped), rep.Skipped)
	}
	if !errors.Is(rep.Skipped[0].Reason, template.ErrMismatch) {
		t.Errorf("skip 0 reason = %v, want ErrMismatch", rep.Skipped[0].Reason)
	}
	if !errors.Is(rep.Skipped[1].Reason, timestamp.ErrFormat) {
		t.Errorf("skip 1 reason = %v, want ErrFormat", rep.Skipped[1].Reason)
	}
	if !errors.Is(rep.Skipped[2].Reason, template.ErrMismatch) {
		t.Errorf("skip 2 reason = %v, want ErrMismatch", rep.Skipped[2].Reason)
	}

	// The valid candidates are still classified.
	if want := []string{"backup-2024-01-02T00:00:00.tar"}; !equalStrings(names(rep.Keep), want) {
		t.Errorf("Keep = %v, want %v", names(rep.Keep), want)
	}
	if want := []string{"backup-2024-01-01T00:00:00.tar"}; !equalStrings(names(rep.Prune), want) {
		t.Errorf("Prune = %v, want %v", names(rep.Prune), want)
	}
}

func TestPlanNoActivePolicy(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, "backup-{now}.tar", Policy{})
	rep := e.Plan([]string{
		"backup-2024-01-01T00:00:00.tar",
		"backup-2024-01-03T00:00:00.tar",
		"backup-2024-01-02T00:00:00.tar",
	})

	// Zero active tiers: everything but the most recent is prunable.
	if want := []string{"backup-2024-01-03T00:00:00.tar"}; !equalStrings(names(rep.Keep), want) {
		t.Errorf("Keep = %v, want %v", names(rep.Keep), want)
	}
	if len(rep.Prune) != 2 {
		t.Errorf("Prune = %v, want 2 entries", names(rep.Prune))
	}
}

func TestPlanCanonicalizesOutput(t *testing.T) {
	t.Parallel()
	// With two placeholders, only the first supplies the timestamp; the
	// emitted name is re-rendered from it, normalizing the second slot.
	e := newTestEngine(t, "a-{now}-b-{now}.log", Policy{})
	rep := e.Plan([]string{
		"a-2024-01-02T00:00:00-b-2024-01-02T00:00:00.log",
		"a-2024-01-01T00:00:00-b-1111-11-11T11:11:11.log",
	})

	if want := []string{"a-2024-01-01T00:00:00-b-2024-01-01T00:00:00.log"}; !equalStrings(names(rep.Prune), want) {
		t.Errorf("Prune = %v, want %v", names(rep.Prune), want)
	}
}

func TestPlanTemplateWithoutPlaceholder(t *testing.T) {
	t.Parallel()
	// A placeholder-free template is legal for matching; every candidate
	// simply carries no timestamp and is skipped.
	e := newTestEngine(t, "notes.txt", Policy{Daily: count(t, 1)})
	rep := e.Plan([]string{"notes.txt", "other.txt"})

	if len(rep.Keep) != 0 || len(rep.Prune) != 0 {
		t.Errorf("report = %+v, want only skips", rep)
	}
	if len(rep.Skipped) != 2 {
		t.Fatalf("Skipped = %d, want 2", len(rep.Skipped))
	}
	for _, s := range rep.Skipped {
		if !errors.Is(s.Reason, template.ErrNoPlaceholder) {
			t.Errorf("reason = %v, want ErrNoPlaceholder", s.Reason)
		}
	}
}
