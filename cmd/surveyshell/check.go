package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/surveyshell/pkg/navigation"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Print the guard decision for a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		action := app.Gate.Check(navigation.Target{Path: args[0]})

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(action)
		}
		fmt.Fprintln(cmd.OutOrStdout(), action)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("json", false, "Print the decision as JSON")
}
