package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"setlist/cmd/setlist/ui"
	"setlist/internal/content"
	"setlist/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var noWatch bool

// presentCmd runs the interactive presenter
var presentCmd = &cobra.Command{
	Use:   "present [file]",
	Short: "Present a set interactively",
	Long: `Opens the set in a full screen presenter.

Keys:
  up/down      previous/next line window
  left/right   previous/next stanza
  pgup/pgdn    previous/next item
  home/end     first/last item
  ?            toggle help
  q            quit

While presenting, the document is watched and a notice is shown when it
changes on disk. The set already loaded is not reloaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresent,
}

func init() {
	presentCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not watch the document for changes")
}

// loadEngine reads the set at path and positions an engine at its start.
func loadEngine(path string) (*content.Source, *nav.Engine, error) {
	src := content.NewSource(path)
	set, err := src.Set()
	if err != nil {
		return nil, nil, err
	}
	engine, err := nav.NewEngine(set, cfg.SkipSize)
	if err != nil {
		return nil, nil, err
	}
	return src, engine, nil
}

func newPresenter(engine *nav.Engine) ui.Model {
	return ui.New(engine, ui.Options{
		Styles:   ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)),
		ShowMeta: cfg.UI.ShowMeta,
		WordWrap: cfg.UI.WordWrap,
	})
}

func runPresent(cmd *cobra.Command, args []string) error {
	src, engine, err := loadEngine(args[0])
	if err != nil {
		return err
	}

	log := logger.With(zap.String("session", uuid.NewString()), zap.String("path", src.Path()))
	log.Info("presenting set",
		zap.Int("items", len(engine.Set().Items)),
		zap.String("fingerprint", src.Fingerprint()))

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	p := tea.NewProgram(newPresenter(engine),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(runCtx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if cfg.Watch.Enabled && !noWatch {
		w, err := content.NewWatcher(src.Path(), src.Fingerprint(), cfg.GetWatchDebounce())
		if err != nil {
			// Presenting still works without change notices.
			log.Warn("document watcher unavailable", zap.Error(err))
		} else {
			g.Go(func() error {
				return w.Run(runCtx)
			})
			g.Go(func() error {
				for change := range w.Changes() {
					log.Info("document changed on disk",
						zap.Bool("removed", change.Removed),
						zap.String("fingerprint", change.Fingerprint))
					p.Send(ui.SourceChangedMsg{Path: change.Path, Removed: change.Removed})
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		defer stop()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("presenter failed: %w", err)
		}
		return nil
	})

	err = g.Wait()
	log.Info("presenter closed", zap.String("path_at_exit", engine.Path().String()))
	return err
}
