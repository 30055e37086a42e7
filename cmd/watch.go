package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stampkeep/stampkeep/internal/config"
	"github.com/stampkeep/stampkeep/internal/retention"
	"github.com/stampkeep/stampkeep/internal/ui"
	"github.com/stampkeep/stampkeep/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [template]",
	Short: "Re-print the keep/prune plan whenever a directory changes",
	Long: "Watch monitors --dir and reprints the plan report each time its\n" +
		"contents settle after a change. Runs until interrupted. Like plan, it\n" +
		"is read-only.",
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	addPolicyFlags(watchCmd)
	watchCmd.Flags().String("dir", "", "directory to watch (required)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pf, err := loadPolicyFile(cmd)
	if err != nil {
		return err
	}
	tmpl, err := templateArg(args, pf.Template, cfg)
	if err != nil {
		return err
	}
	policy, err := policyFromFlags(cmd, pf.Policy, cfg)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		return errors.New("--dir is required")
	}

	printer := ui.New()
	engine := retention.NewEngine(tmpl, policy, slog.Default())

	render := func() error {
		names, err := listDir(dir)
		if err != nil {
			return err
		}
		printer.Plan(tmpl.String(), policy, engine.Plan(names))
		return nil
	}

	printer.WatchHeader(dir)
	if err := render(); err != nil {
		return err
	}

	w, err := watch.New(dir)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := signalContext(printer)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changes:
			printer.Rescan()
			if err := render(); err != nil {
				return err
			}
		}
	}
}

// signalContext returns a context that is canceled on SIGINT or SIGTERM.
func signalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		printer.Info("\nshutting down...")
		cancel()
	}()
	return ctx, cancel
}
