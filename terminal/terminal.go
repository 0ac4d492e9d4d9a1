package terminal

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/nsf/termbox-go"

	"github.com/esimov/pagefx/config"
	"github.com/esimov/pagefx/effects"
	particles "github.com/esimov/pagefx/particle-field"
	"github.com/esimov/pagefx/scrubber"
)

// Terminal renders the particle field, the cursor trail and a demo
// scrub bar inside a termbox screen.
type Terminal struct {
	cols, rows int

	surface *cellSurface
	field   *particles.Field
	trail   effects.Trail
	media   *scrubber.Timeline
	session *scrubber.Session
	view    *barView
	bar     cellBar
	seq     *effects.Sequence
	timers  timers

	rainbowUntil time.Time
	last         time.Time
	now          func() time.Time

	fps     int
	logger  *log.Logger
	logfile *os.File
}

// New prepares a terminal frontend. The screen is only taken over by Render.
func New(cfg *config.Config) (*Terminal, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", cfg.LogFile, err)
	}
	t := newTerminal(cfg, f, time.Now)
	t.logfile = f
	return t, nil
}

func newTerminal(cfg *config.Config, logw io.Writer, now func() time.Time) *Terminal {
	t := &Terminal{
		fps:    cfg.FPS,
		now:    now,
		logger: log.New(logw, "", log.LstdFlags),
		view:   newBarView(),
		media:  scrubber.NewTimeline(cfg.Duration),
		seq:    effects.NewSequence(effects.Konami),
	}
	t.timers.now = now
	t.session = scrubber.NewSession(t.media, &t.bar, t.view, t.timers.after)
	t.media.Attach(t.session)
	return t
}

// setup lays out a screen of {cols, rows} cells and creates the field.
func (t *Terminal) setup(cfg *config.Config, cols, rows int) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t.cols, t.rows = cols, rows
	t.surface = newCellSurface(cols, rows-1)
	t.bar.layout(cols, rows)
	t.field = particles.NewField(t.surface, rand.New(rand.NewSource(seed)),
		particles.WithResizeWrap(cfg.ResizeWrap))
	t.session.OnMetadata()
	t.last = t.now()
}

// Render takes over the terminal until Esc is pressed or ctx is done.
func (t *Terminal) Render(ctx context.Context, cfg *config.Config) error {
	if t.logfile != nil {
		defer t.logfile.Close()
	}

	err := termbox.Init()
	if err != nil {
		return fmt.Errorf("cannot initialize terminal: %w", err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.HideCursor()

	cols, rows := termbox.Size()
	t.setup(cfg, cols, rows)
	t.logger.Printf("terminal %dx%d, %d particles", cols, rows, t.field.Len())

	events := make(chan termbox.Event, 16)
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			events <- ev
		}
	}()
	defer termbox.Interrupt()

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

mainloop:
	for {
		select {
		case <-ctx.Done():
			break mainloop
		case ev := <-events:
			if ev.Type == termbox.EventError {
				t.logger.Println(ev.Err)
				continue
			}
			if t.handle(ev) {
				break mainloop
			}
		case <-ticker.C:
			t.frame(t.now())
			t.flush()
		}
	}
	t.logger.Printf("rendered %d frames", t.field.Frames())
	return nil
}

// handle applies an input event. It reports whether the user asked to quit.
func (t *Terminal) handle(ev termbox.Event) bool {
	switch ev.Type {
	case termbox.EventKey:
		if ev.Key == termbox.KeyEsc {
			return true
		}
		name := keyName(ev)
		if name == " " {
			t.session.TogglePlay()
		}
		if name != "" && t.seq.Push(name) {
			t.rainbowUntil = t.now().Add(effects.RainbowDuration)
			t.logger.Println("easter egg unlocked")
		}
	case termbox.EventMouse:
		t.mouse(ev)
	case termbox.EventResize:
		t.resize(ev.Width, ev.Height)
	}
	return false
}

func (t *Terminal) mouse(ev termbox.Event) {
	mx, my := ev.MouseX, ev.MouseY
	t.trail.Point(float64(mx)*cellW+cellW/2, float64(my)*cellH+cellH/2)

	switch {
	case ev.Key == termbox.MouseRelease:
		t.session.PointerRelease()
	case ev.Key == termbox.MouseLeft && ev.Mod&termbox.ModMotion != 0:
		t.session.PointerMove(cellCenter(mx))
	case ev.Key == termbox.MouseLeft:
		t.log(t.logger.Writer(), mx, my)
		switch {
		case t.bar.button(mx, my):
			t.session.TogglePlay()
		case t.bar.hit(mx, my):
			t.session.BarPress(cellCenter(mx))
		case t.view.overlayShown() && my == t.overlayRow():
			t.session.ClickMedia()
		}
	}
}

func (t *Terminal) resize(cols, rows int) {
	t.cols, t.rows = cols, rows
	t.bar.layout(cols, rows)
	t.field.Resize(float64(cols)*cellW, float64(rows-1)*cellH)
}

// frame advances every animated piece by one frame.
func (t *Terminal) frame(now time.Time) {
	t.media.Advance(now.Sub(t.last))
	t.last = now
	t.timers.run(now)

	if now.Before(t.rainbowUntil) {
		t.surface.palette = rainbowOf(t.field.Frames())
	} else {
		t.surface.palette = colorOf
	}
	t.field.Step()
	t.trail.Step()
}

// compose builds the full screen from the field, trail, overlay and bar.
func (t *Terminal) compose() []termbox.Cell {
	buf := make([]termbox.Cell, t.cols*t.rows)
	for y := 0; y < t.rows-1; y++ {
		for x := 0; x < t.cols; x++ {
			buf[t.cols*y+x] = t.surface.at(x, y)
		}
	}

	tx, ty := t.trail.Pos()
	cx, cy := int(tx/cellW), int(ty/cellH)
	if cx >= 0 && cy >= 0 && cx < t.cols && cy < t.rows-1 {
		buf[t.cols*cy+cx] = termbox.Cell{Ch: '█', Fg: termbox.ColorWhite}
	}

	status := fmt.Sprintf(" pagefx ─ %d particles ─ frame %d ", t.field.Len(), t.field.Frames())
	printAt(buf, t.cols, 0, 0, status, termbox.ColorWhite, termbox.ColorDefault)

	if t.view.overlayShown() {
		msg := "[ ▶ play ─ space ]"
		printAt(buf, t.cols, centered(t.cols, msg), t.overlayRow(), msg, termbox.ColorWhite|termbox.AttrBold, termbox.ColorDefault)
	}
	t.drawBar(buf)
	return buf
}

func (t *Terminal) drawBar(buf []termbox.Cell) {
	if t.rows < 1 {
		return
	}
	row := t.bar.row
	button := "▶"
	if t.view.playing {
		button = "‖"
	}
	printAt(buf, t.cols, 0, row, button, termbox.ColorCyan, termbox.ColorDefault)

	filled := int(t.view.progress * float64(t.bar.width))
	for i := 0; i < t.bar.width; i++ {
		ch, fg := '─', termbox.ColorWhite
		if i < filled {
			ch, fg = '━', termbox.ColorCyan
		}
		x := t.bar.left + i
		if x < t.cols {
			buf[t.cols*row+x] = termbox.Cell{Ch: ch, Fg: fg}
		}
	}
	printAt(buf, t.cols, t.bar.left+t.bar.width+1, row, t.view.label, termbox.ColorWhite, termbox.ColorDefault)
}

func (t *Terminal) overlayRow() int {
	return (t.rows - 1) / 2
}

func (t *Terminal) flush() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	copy(termbox.CellBuffer(), t.compose())
	termbox.Flush()
}

func (t *Terminal) log(f io.Writer, vals ...interface{}) {
	fmt.Fprintf(f, "X:%d \t Y:%d\n", vals...)
}
