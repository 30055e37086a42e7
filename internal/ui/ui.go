// Package ui renders human-facing retention reports. Everything here
// writes to stderr by default; machine output (generated names, prunable
// names) never goes through this package.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/stampkeep/stampkeep/internal/retention"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes styled reports to Out.
type Printer struct {
	Out io.Writer
}

func New() *Printer {
	return &Printer{Out: os.Stderr}
}

// Plan prints one keep/prune/skip report: a summary line, then one line
// per file, kept entries first.
func (p *Printer) Plan(tmpl string, policy retention.Policy, rep retention.Report) {
	fmt.Fprintf(p.Out, bold+cyan+"◆ %s"+reset+dim+" policy: %s"+reset+"\n", tmpl, policy)
	fmt.Fprintf(p.Out, dim+"  %d kept, %d prunable, %d skipped"+reset+"\n",
		len(rep.Keep), len(rep.Prune), len(rep.Skipped))
	for _, e := range rep.Keep {
		fmt.Fprintf(p.Out, green+"  keep "+reset+" %s\n", e.Name)
	}
	for _, e := range rep.Prune {
		fmt.Fprintf(p.Out, red+"  prune"+reset+" %s\n", e.Name)
	}
	for _, s := range rep.Skipped {
		fmt.Fprintf(p.Out, yellow+"  skip "+reset+dim+" %s (%v)"+reset+"\n", s.Candidate, s.Reason)
	}
}

// WatchHeader announces a watch session.
func (p *Printer) WatchHeader(dir string) {
	fmt.Fprintf(p.Out, dim+"watching %s — ctrl-c to stop"+reset+"\n", dir)
}

// Rescan marks a recomputation triggered by a directory change.
func (p *Printer) Rescan() {
	fmt.Fprintf(p.Out, dim+"── change detected %s ──"+reset+"\n",
		time.Now().Format("15:04:05"))
}

// Error prints a fatal error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Out, red+bold+"error: "+reset+"%s\n", msg)
}

// Info prints a muted informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.Out, dim+"%s"+reset+"\n", msg)
}
