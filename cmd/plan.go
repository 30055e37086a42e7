package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stampkeep/stampkeep/internal/config"
	"github.com/stampkeep/stampkeep/internal/retention"
	"github.com/stampkeep/stampkeep/internal/stream"
	"github.com/stampkeep/stampkeep/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan [template]",
	Short: "Show which files the keep policy would keep and discard",
	Long: "Plan prints a human-readable keep/prune report instead of a machine\n" +
		"list. Candidates come from --dir (a non-recursive directory listing) or\n" +
		"from stdin. Plan is read-only: it never touches the files themselves.",
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	addPolicyFlags(planCmd)
	planCmd.Flags().String("dir", "", "directory to list for candidates (default: read stdin)")
	planCmd.Flags().Bool("newline", false, "use newline instead of NUL when reading stdin")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
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

	var candidates []string
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		candidates, err = listDir(dir)
		if err != nil {
			return err
		}
	} else {
		candidates, err = stream.ReadAll(os.Stdin, delimiter(cmd, cfg))
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	rep := retention.NewEngine(tmpl, policy, slog.Default()).Plan(candidates)
	ui.New().Plan(tmpl.String(), policy, rep)
	return nil
}

// listDir returns the names of the regular entries of dir, ignoring
// subdirectories.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
