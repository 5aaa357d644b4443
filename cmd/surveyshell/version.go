package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/surveyshell"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of surveyshell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "surveyshell version %s\n", strings.TrimSpace(surveyshell.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
