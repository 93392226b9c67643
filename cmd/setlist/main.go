package main

import (
	"fmt"
	"os"

	"setlist/internal/config"
	"setlist/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgPath    string
	verbose    bool
	skipItem   int
	skipStanza int
	skipLine   int
	theme      string

	// Resolved configuration
	cfg = config.DefaultConfig()

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "setlist",
	Short: "setlist - present lyric sets one line window at a time",
	Long: `setlist loads a set document (JSON or YAML, optionally .xz compressed),
normalizes every item into ordered stanzas of lines, and moves a cursor through
the set/item/stanza/line hierarchy.

Run "setlist present <file>" for the interactive presenter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cfg = resolved

		opts := cfg.Logging.Options()
		if verbose {
			opts.DebugMode = true
			opts.Level = "debug"
		}
		if err := logging.Initialize(opts); err != nil {
			return err
		}
		logger = logging.Root()
		logging.BootDebug("config resolved: skip=%+v theme=%s watch=%v", cfg.SkipSize, cfg.UI.Theme, cfg.Watch.Enabled)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

// resolveConfig loads the config file and layers command line flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("skip-item") {
		c.SkipSize.Item = skipItem
	}
	if flags.Changed("skip-stanza") {
		c.SkipSize.Stanza = skipStanza
	}
	if flags.Changed("skip-line") {
		c.SkipSize.Line = skipLine
	}
	if flags.Changed("theme") {
		c.UI.Theme = theme
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (default: ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the configured log file")
	rootCmd.PersistentFlags().IntVar(&skipItem, "skip-item", 1, "Items moved by previous/next")
	rootCmd.PersistentFlags().IntVar(&skipStanza, "skip-stanza", 1, "Stanzas moved by previous/next")
	rootCmd.PersistentFlags().IntVar(&skipLine, "skip-line", 2, "Lines moved by previous/next (also the highlighted window)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Presenter theme: light, dark or auto")

	rootCmd.AddCommand(presentCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(gotoCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
