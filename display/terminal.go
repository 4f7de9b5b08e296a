package display

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalDriver prints each generation as block characters. Every cell takes
// two columns so the board keeps a square aspect.
type TerminalDriver struct {
	out      io.Writer
	viewport Viewport
	frame    time.Duration
	clear    bool
	status   []string
	sigChan  chan os.Signal
}

// NewTerminalDriver renders a cols x rows board to out and quits on SIGINT or SIGTERM
func NewTerminalDriver(out io.Writer, cols, rows int, frame time.Duration) *TerminalDriver {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	return &TerminalDriver{
		out:      out,
		viewport: CenteredViewport(cols, rows, 1),
		frame:    frame,
		clear:    true,
		sigChan:  sigChan,
	}
}

// SetStatus sets the lines printed above the board
func (r *TerminalDriver) SetStatus(lines ...string) {
	r.status = lines
}

// Render writes the status lines and the visible part of g
func (r *TerminalDriver) Render(g model.Generation) error {
	var (
		vp   = r.viewport
		rows = make([][]bool, vp.Height)
	)
	for i := range rows {
		rows[i] = make([]bool, vp.Width)
	}
	for c := range g.All() {
		if x, y, ok := vp.Project(c); ok {
			rows[y][x] = true
		}
	}

	w := bufio.NewWriter(r.out)
	if r.clear {
		w.WriteString(ansiClear)
	}
	for _, line := range r.status {
		fmt.Fprintln(w, line)
	}
	for _, row := range rows {
		for _, alive := range row {
			if alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Render] failed to write frame")
}

// PollQuit reports whether an interrupt arrived since the last call
func (r *TerminalDriver) PollQuit() bool {
	select {
	case <-r.sigChan:
		return true
	default:
		return false
	}
}

// WaitFrame sleeps for the configured frame delay
func (r *TerminalDriver) WaitFrame() {
	time.Sleep(r.frame)
}

// Close stops listening for signals
func (r *TerminalDriver) Close() error {
	signal.Stop(r.sigChan)
	return nil
}
