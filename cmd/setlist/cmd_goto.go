package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"setlist/internal/nav"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var gotoJSON bool

// gotoCmd replays navigation commands without the presenter
var gotoCmd = &cobra.Command{
	Use:   "goto [file] [command...]",
	Short: "Replay navigation commands and print every cursor position",
	Long: `Starts at item 0, stanza 0, line 0 and applies each command in order.
A command is level:destination[:child] where level is item, stanza or line,
destination is first, last, previous, next or an index, and the optional
child picks where lower levels land.

Examples:
  setlist goto sunday.yaml line:next line:next stanza:previous:first
  setlist goto sunday.yaml item:last --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGoto,
}

func init() {
	gotoCmd.Flags().BoolVar(&gotoJSON, "json", false, "Print steps as JSON")
}

// gotoStep is one replayed command and where it left the cursor.
type gotoStep struct {
	Command     string         `json:"command"`
	Path        nav.ActivePath `json:"path"`
	Committed   bool           `json:"committed"`
	Level       string         `json:"level,omitempty"`
	ItemChanged bool           `json:"item_changed,omitempty"`
}

// replay applies cmds in order. The first step is the starting cursor.
func replay(engine *nav.Engine, cmds []nav.Command) []gotoStep {
	steps := make([]gotoStep, 0, len(cmds)+1)
	steps = append(steps, gotoStep{Command: "start", Path: engine.Path()})
	for _, c := range cmds {
		res := engine.Apply(c)
		step := gotoStep{Command: c.String(), Path: engine.Path(), Committed: res.Committed}
		if res.Committed {
			step.Level = res.Level.String()
			step.ItemChanged = res.ItemChanged
		}
		steps = append(steps, step)
	}
	return steps
}

func runGoto(cmd *cobra.Command, args []string) error {
	cmds, err := nav.ParseCommands(args[1:])
	if err != nil {
		return err
	}
	_, engine, err := loadEngine(args[0])
	if err != nil {
		return err
	}

	steps := replay(engine, cmds)
	logger.Debug("replayed commands", zap.Int("commands", len(cmds)), zap.Stringer("final", engine.Path()))

	out := cmd.OutOrStdout()
	if gotoJSON {
		data, err := json.MarshalIndent(steps, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode steps: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, s := range steps {
		note := "no-op"
		switch {
		case i == 0:
			note = ""
		case s.Committed:
			note = "at " + s.Level
			if s.ItemChanged {
				note += ", item changed"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Command, s.Path, note)
	}
	return tw.Flush()
}
