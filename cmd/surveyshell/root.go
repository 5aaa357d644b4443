package main

import (
	"fmt"
	"os"

	"github.com/aretw0/surveyshell/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "surveyshell",
	Short: "surveyshell hosts a survey application behind a first-run navigation guard",
	Long: `surveyshell serves survey pages written in a small markdown dialect
(**bold**, //italic//, = h1, == h2) and sends every navigation to the intro
survey until the shell is marked initialized.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// newApp loads the configuration named by the persistent flags and wires the app.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")

	cfg, err := cli.LoadConfig(path, level)
	if err != nil {
		return nil, err
	}
	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(cfg, logger)
}
