package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/surveyshell/pkg/input"
	"github.com/aretw0/surveyshell/pkg/markdown"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Convert dialect text to HTML",
	Long:  `Reads the file (or stdin when omitted or "-") and prints the HTML the simpleMarkdown filter produces.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.Render(text))
		return nil
	},
}

// readSource reads args[0], or stdin when it is absent or "-", and sanitizes it.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	limit, _ := cmd.Flags().GetInt("max-size")
	return input.Sanitize(string(data), limit)
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Int("max-size", 1<<20, "Maximum input size in bytes")
}
