package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stampkeep/stampkeep/internal/config"
	"github.com/stampkeep/stampkeep/internal/retention"
	"github.com/stampkeep/stampkeep/internal/stream"
	"github.com/stampkeep/stampkeep/internal/template"
)

// addPolicyFlags registers the keep-count flags shared by prune, plan,
// and watch. Shorthands follow the classic rotation convention:
// -M minutely, -H hourly, -d daily, -w weekly, -m monthly.
func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("keep-minutely", "M", 0, "number of minutely files to keep")
	cmd.Flags().IntP("keep-hourly", "H", 0, "number of hourly files to keep")
	cmd.Flags().IntP("keep-daily", "d", 0, "number of daily files to keep")
	cmd.Flags().IntP("keep-weekly", "w", 0, "number of weekly files to keep")
	cmd.Flags().IntP("keep-monthly", "m", 0, "number of monthly files to keep")
	cmd.Flags().String("policy-file", "", "TOML file with [keep] tier counts")
}

// loadPolicyFile reads the --policy-file document, if the flag was given.
func loadPolicyFile(cmd *cobra.Command) (retention.PolicyFile, error) {
	path, _ := cmd.Flags().GetString("policy-file")
	if path == "" {
		return retention.PolicyFile{}, nil
	}
	return retention.LoadFile(path)
}

// policyFromFlags resolves the keep policy one tier at a time: an
// explicit flag wins over the policy file, which wins over the config
// default. Invalid counts abort before any candidate is processed.
func policyFromFlags(cmd *cobra.Command, fromFile retention.Policy, cfg config.Config) (retention.Policy, error) {
	var p retention.Policy
	for _, tr := range []struct {
		flag string
		file retention.Count
		dflt int
		dst  *retention.Count
	}{
		{"keep-minutely", fromFile.Minutely, cfg.Keep.Minutely, &p.Minutely},
		{"keep-hourly", fromFile.Hourly, cfg.Keep.Hourly, &p.Hourly},
		{"keep-daily", fromFile.Daily, cfg.Keep.Daily, &p.Daily},
		{"keep-weekly", fromFile.Weekly, cfg.Keep.Weekly, &p.Weekly},
		{"keep-monthly", fromFile.Monthly, cfg.Keep.Monthly, &p.Monthly},
	} {
		c, err := resolveTier(cmd, tr.flag, tr.file, tr.dflt)
		if err != nil {
			return retention.Policy{}, err
		}
		*tr.dst = c
	}
	return p, nil
}

func resolveTier(cmd *cobra.Command, flag string, fromFile retention.Count, dflt int) (retention.Count, error) {
	if cmd.Flags().Changed(flag) {
		n, _ := cmd.Flags().GetInt(flag)
		c, err := retention.KeepCount(n)
		if err != nil {
			return retention.Count{}, fmt.Errorf("--%s: %w", flag, err)
		}
		return c, nil
	}
	if fromFile.Present() {
		return fromFile, nil
	}
	if dflt != 0 {
		c, err := retention.KeepCount(dflt)
		if err != nil {
			return retention.Count{}, fmt.Errorf("config %s: %w", flag, err)
		}
		return c, nil
	}
	return retention.Count{}, nil
}

// templateArg resolves the naming template from the positional argument,
// the policy file, or the configured default, in that order.
func templateArg(args []string, fileTmpl string, cfg config.Config) (template.Template, error) {
	raw := ""
	switch {
	case len(args) > 0:
		raw = args[0]
	case fileTmpl != "":
		raw = fileTmpl
	default:
		raw = cfg.Template
	}
	if raw == "" {
		return template.Template{}, errors.New("no template given (argument, policy file, or config)")
	}
	return template.New(raw), nil
}

// delimiter picks the record separator: the --newline flag when given,
// the config default otherwise, NUL failing both.
func delimiter(cmd *cobra.Command, cfg config.Config) stream.Delimiter {
	if cmd.Flags().Changed("newline") {
		if nl, _ := cmd.Flags().GetBool("newline"); nl {
			return stream.Newline
		}
		return stream.Null
	}
	if cfg.Newline {
		return stream.Newline
	}
	return stream.Null
}
