package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "stampkeep",
	Short: "Timestamped filename generation and rotation",
	Long: "Stampkeep renders filenames with an embedded timestamp and, given the\n" +
		"naming template and a list of existing files, reports which of them a\n" +
		"tiered keep policy (grandfather-father-son rotation) allows to discard.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().String("config", "", "config file (default .stampkeep.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".stampkeep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("STAMPKEEP")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// initLogging routes diagnostics through slog on stderr. Warnings about
// skipped candidates are always visible; --verbose lowers the floor to
// debug.
func initLogging() {
	level := slog.LevelWarn
	if v, _ := rootCmd.Flags().GetBool("verbose"); v || viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
