package main

import (
	"fmt"

	"github.com/aretw0/surveyshell/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Preview dialect text in the terminal",
	Long:  `Translates the dialect to CommonMark and renders it with glamour.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSource(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		width, _ := cmd.Flags().GetInt("width")
		if width <= 0 {
			width = tui.WidthOf(out)
		}

		render, err := tui.NewRenderer(width)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		rendered, err := render(tui.DialectToMarkdown(text))
		if err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Int("max-size", 1<<20, "Maximum input size in bytes")
	previewCmd.Flags().Int("width", 0, "Wrap column (0 detects the output terminal)")
}
