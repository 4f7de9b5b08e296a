package display

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(int32(Amber.R), int32(Amber.G), int32(Amber.B)))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// TcellDriver draws generations on a full-screen terminal. The board starts
// below the status lines and is centred on cell (0,0).
type TcellDriver struct {
	screen tcell.Screen
	frame  time.Duration

	mu     sync.Mutex
	status []string

	quit     chan struct{}
	quitOnce sync.Once
}

// NewTcellDriver opens the user's terminal
func NewTcellDriver(frame time.Duration) (*TcellDriver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTcellDriver] failed to create screen")
	}
	return NewTcellDriverWithScreen(screen, frame)
}

// NewTcellDriverWithScreen initializes screen and starts reading its events
func NewTcellDriverWithScreen(screen tcell.Screen, frame time.Duration) (*TcellDriver, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTcellDriverWithScreen] failed to initialize screen")
	}
	screen.SetStyle(statusStyle)
	screen.Clear()

	d := &TcellDriver{
		screen: screen,
		frame:  frame,
		quit:   make(chan struct{}),
	}
	go d.pollEvents()
	return d, nil
}

func (d *TcellDriver) pollEvents() {
	for {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				d.quitOnce.Do(func() { close(d.quit) })
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// SetStatus sets the lines shown above the board
func (d *TcellDriver) SetStatus(lines ...string) {
	d.mu.Lock()
	d.status = lines
	d.mu.Unlock()
}

// Viewport returns the cell mapping for the board area, which starts below
// top status rows. Each unit is two screen columns wide.
func (d *TcellDriver) Viewport(top int) Viewport {
	w, h := d.screen.Size()
	return CenteredViewport(w/2, max(h-top, 0), 1)
}

// Render draws g and the status lines, then shows the frame
func (d *TcellDriver) Render(g model.Generation) error {
	d.screen.Clear()

	d.mu.Lock()
	top := len(d.status)
	for row, line := range d.status {
		for col, r := range []rune(line) {
			d.screen.SetContent(col, row, r, nil, statusStyle)
		}
	}
	d.mu.Unlock()

	vp := d.Viewport(top)
	for c := range g.All() {
		x, y, ok := vp.Project(c)
		if !ok {
			continue
		}
		d.screen.SetContent(x*2, y+top, ' ', nil, liveStyle)
		d.screen.SetContent(x*2+1, y+top, ' ', nil, liveStyle)
	}
	d.screen.Show()
	return nil
}

// PollQuit reports whether q, Esc or Ctrl-C was pressed
func (d *TcellDriver) PollQuit() bool {
	select {
	case <-d.quit:
		return true
	default:
		return false
	}
}

// WaitFrame sleeps for the frame delay, returning early on quit
func (d *TcellDriver) WaitFrame() {
	select {
	case <-d.quit:
	case <-time.After(d.frame):
	}
}

// Close restores the terminal
func (d *TcellDriver) Close() error {
	d.screen.Fini()
	return nil
}
