package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// LineLogger records the doc lines attached to each generated element.
type LineLogger interface {
	Log(kind, name string, lines []string)
}

// lineLogger implements LineLogger with thread-safe writes.
type lineLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewLines creates a LineLogger. If writer is nil, returns a no-op logger.
func NewLines(w io.Writer) LineLogger {
	return &lineLogger{w: w, now: time.Now}
}

// Log emits one entry per element: a header with timestamp, element kind,
// name and line count, followed by the lines themselves indented by a tab.
// Elements without lines produce a header only.
func (l *lineLogger) Log(kind, name string, lines []string) {
	if l.w == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s: %d lines\n",
		l.now().Format("2006/01/02 15:04:05"),
		kind,
		name,
		len(lines))
	for _, line := range lines {
		sb.WriteByte('\t')
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	l.mu.Lock()
	_, _ = io.WriteString(l.w, sb.String())
	l.mu.Unlock()
}
