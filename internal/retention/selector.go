package retention

import (
	"sort"

	"github.com/stampkeep/stampkeep/internal/timestamp"
)

// Keep computes the indices into times that must survive pruning. times
// must be sorted most recent first. The result is ascending and, for
// non-empty input, always contains index 0. Each active tier is
// evaluated independently; the result is the union of their selections.
func Keep(times []timestamp.Timestamp, p Policy) []int {
	if len(times) == 0 {
		return nil
	}
	keep := map[int]bool{0: true}
	for _, tr := range p.tiers() {
		selectTier(times, tr.count, tr.gran, keep)
	}
	out := make([]int, 0, len(keep))
	for i := range keep {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// selectTier walks times in descending order, keeping the most recent
// representative of each bucket until count entries are selected. Index
// 0 always counts as the first selection. A single pass suffices because
// the input is sorted: once a bucket changes it never recurs.
func selectTier(times []timestamp.Timestamp, count Count, g timestamp.Granularity, keep map[int]bool) {
	if !count.Present() {
		return
	}
	selected := 1 // index 0, kept unconditionally
	last := times[0]
	for i := 1; i < len(times) && selected < count.Value(); i++ {
		if last.EqualAt(times[i], g) {
			// Same bucket as the last kept entry; collapse.
			continue
		}
		last = times[i]
		keep[i] = true
		selected++
	}
}
