package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stampkeep/stampkeep/internal/config"
	"github.com/stampkeep/stampkeep/internal/template"
	"github.com/stampkeep/stampkeep/internal/timestamp"
)

var genCmd = &cobra.Command{
	Use:   "gen [template]",
	Short: "Print the template rendered at the current time",
	Long: "Gen substitutes every {now} in the template with the current local\n" +
		"time as YYYY-MM-DDTHH:MM:SS and prints the result. The template must\n" +
		"contain {now} at least once.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		tmpl, err := templateArg(args, "", cfg)
		if err != nil {
			return err
		}
		if tmpl.Placeholders() == 0 {
			return fmt.Errorf("%w: %q", template.ErrNoPlaceholder, tmpl.String())
		}
		fmt.Println(tmpl.Render(timestamp.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
}
