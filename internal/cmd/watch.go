package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/remarkdoc/internal/log"
	"github.com/Alia5/remarkdoc/internal/watch"
)

// Watch annotates once and again whenever a matched schema file changes.
// Files created after startup are not picked up until the command restarts.
type Watch struct {
	Annotate `embed:""`
	Debounce time.Duration `help:"Quiet period before re-running after a change" default:"200ms" env:"REMARKDOC_WATCH_DEBOUNCE"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger, lines log.LineLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.run(ctx, logger, lines)
}

func (w *Watch) run(ctx context.Context, logger *slog.Logger, lines log.LineLogger) error {
	banner := isTerminal(os.Stdout)
	files, err := w.Annotate.execute(logger, lines, os.Stdout, banner)
	if err != nil {
		return err
	}

	logger.Info("Watching schema files", "files", len(files), "debounce", w.Debounce)
	return watch.Run(ctx, files, w.Debounce, logger, func(ctx context.Context) error {
		_, err := w.Annotate.execute(logger, lines, os.Stdout, banner)
		return err
	})
}
