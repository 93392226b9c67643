package main

import (
	"encoding/json"
	"fmt"

	"setlist/cmd/setlist/ui"
	"setlist/internal/content"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showJSON     bool
	showMarkdown bool
)

// showCmd prints the normalized set
var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the normalized set",
	Long: `Normalizes the set document and prints it, rendered as markdown for the
terminal by default.

Examples:
  setlist show sunday.yaml
  setlist show sunday.json --json
  setlist show sunday.json.xz --markdown > sunday.md`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the normalized set as JSON")
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Print unrendered markdown")
}

func runShow(cmd *cobra.Command, args []string) error {
	src := content.NewSource(args[0])
	set, err := src.Set()
	if err != nil {
		return err
	}
	logger.Debug("showing set", zap.String("path", src.Path()), zap.Int("items", len(set.Items)))

	out := cmd.OutOrStdout()
	switch {
	case showJSON:
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode set: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case showMarkdown:
		fmt.Fprint(out, ui.Markdown(set))
	default:
		rendered, err := ui.RenderMarkdown(set, cfg.UI.Theme, cfg.UI.WordWrap)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	}
	return nil
}
