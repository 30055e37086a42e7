package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stampkeep/stampkeep/internal/config"
	"github.com/stampkeep/stampkeep/internal/retention"
	"github.com/stampkeep/stampkeep/internal/stream"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [template]",
	Short: "Read filenames on stdin and print the ones the keep policy discards",
	Long: "Prune reads a delimited list of filenames from stdin, matches each one\n" +
		"against the template, and prints the filenames the keep policy allows to\n" +
		"be discarded. The most recent file is always kept. Records are\n" +
		"NUL-delimited unless --newline is given. Nothing is deleted; pipe the\n" +
		"output into xargs -0 rm (or similar) to act on it.",
	Args: cobra.MaximumNArgs(1),
	RunE: runPrune,
}

func init() {
	addPolicyFlags(pruneCmd)
	pruneCmd.Flags().Bool("newline", false, "use newline instead of NUL as the record separator")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
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
	delim := delimiter(cmd, cfg)

	candidates, err := stream.ReadAll(os.Stdin, delim)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	rep := retention.NewEngine(tmpl, policy, slog.Default()).Plan(candidates)

	names := make([]string, 0, len(rep.Prune))
	for _, e := range rep.Prune {
		names = append(names, e.Name)
	}
	if err := stream.Write(os.Stdout, delim, names); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}
	return nil
}
