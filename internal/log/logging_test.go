package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetupLoggerLeavesStdoutToPreview(t *testing.T) {
	var console bytes.Buffer
	logger, closers, err := setupLogger("info", "", &console)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("hidden")
	logger.Info("annotated", "table", "orders")
	logger.Error("failed", "error", "boom")

	out := console.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "table=orders")
	assert.Contains(t, out, "level=ERROR msg=failed")
}

func TestSetupLoggerWithFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "remarkdoc.log")

	logger, closers, err := setupLogger("debug", path, &console)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("scan", "files", 2)
	logger.Warn("no remarks", "table", "orders")
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=scan")
	assert.Contains(t, string(data), "no remarks")
	assert.NotContains(t, console.String(), "scan")
	assert.Contains(t, console.String(), "no remarks")
}

func TestSetupLoggerNamesTraceLevel(t *testing.T) {
	var console bytes.Buffer
	logger, _, err := setupLogger("trace", "", &console)
	require.NoError(t, err)

	logger.Log(context.Background(), LevelTrace, "doc lines", "element", "Orders.status")
	assert.Contains(t, console.String(), "level=TRACE")
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		NewLevelFilter(func(l slog.Level) bool { return l >= slog.LevelWarn }, slog.NewTextHandler(&b, nil)),
	)
	logger := slog.New(h).With("run", 1).WithGroup("g")

	logger.Info("one", "k", "v")
	logger.Warn("two")

	assert.Equal(t, 2, strings.Count(a.String(), "run=1"))
	assert.Contains(t, a.String(), "g.k=v")
	assert.NotContains(t, b.String(), "one")
	assert.Contains(t, b.String(), "two")
}

func TestLineLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLines(&buf).(*lineLogger)
	l.now = func() time.Time { return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC) }

	l.Log("field", "Orders.status", []string{"/**", " * Order status code", " */"})
	l.Log("method", "Orders.getStatus", nil)

	assert.Equal(t,
		"2026/10/18 09:30:00 field Orders.status: 3 lines\n"+
			"\t/**\n\t * Order status code\n\t */\n"+
			"2026/10/18 09:30:00 method Orders.getStatus: 0 lines\n",
		buf.String())
}

func TestLineLoggerNilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLines(nil).Log("class", "Orders", []string{"/**"})
	})
}
