package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esimov/pagefx/config"
	"github.com/esimov/pagefx/effects"
	particles "github.com/esimov/pagefx/particle-field"
	"github.com/esimov/pagefx/scrubber"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) tick(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestTerminal(t *testing.T, cols, rows int) (*Terminal, *clock, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{FPS: 60, Duration: 100, ResizeWrap: true, Seed: 3}
	var logs bytes.Buffer
	c := &clock{t: time.Unix(1000, 0)}
	term := newTerminal(cfg, &logs, c.now)
	term.setup(cfg, cols, rows)
	require.Equal(t, particles.NumOfParticles, term.field.Len())
	return term, c, &logs
}

func mouse(key termbox.Key, x, y int, mod termbox.Modifier) termbox.Event {
	return termbox.Event{Type: termbox.EventMouse, Key: key, MouseX: x, MouseY: y, Mod: mod}
}

func TestSurfaceMapsUnitsToCells(t *testing.T) {
	s := newCellSurface(10, 5)
	w, h := s.Size()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 80.0, h)

	s.FillCircle(17, 33, 2, particles.Cyan, 0.3)
	c := s.at(2, 2)
	assert.Equal(t, '•', c.Ch)
	assert.Equal(t, termbox.ColorCyan, c.Fg)

	s.FillCircle(1, 1, 2.9, particles.Violet, 0.6)
	c = s.at(0, 0)
	assert.Equal(t, '●', c.Ch)
	assert.Equal(t, termbox.ColorMagenta|termbox.AttrBold, c.Fg)

	// Off-surface draws are dropped.
	s.FillCircle(-5, 500, 1, particles.Cyan, 1)

	s.Clear()
	assert.Equal(t, rune(0), s.at(2, 2).Ch)
}

func TestSurfaceStrokeSkipsEndpointsAndFaintLines(t *testing.T) {
	s := newCellSurface(10, 1)
	s.StrokeLine(4, 8, 76, 8, particles.Violet, 0.08, 1)
	assert.Equal(t, rune(0), s.at(0, 0).Ch)
	assert.Equal(t, rune(0), s.at(9, 0).Ch)
	for x := 1; x < 9; x++ {
		assert.Equal(t, '·', s.at(x, 0).Ch, "cell %d", x)
		assert.Equal(t, termbox.ColorMagenta, s.at(x, 0).Fg)
	}

	s.Clear()
	s.StrokeLine(4, 8, 76, 8, particles.Violet, 0.01, 1)
	for x := 0; x < 10; x++ {
		assert.Equal(t, rune(0), s.at(x, 0).Ch)
	}
}

func TestSurfaceResize(t *testing.T) {
	s := newCellSurface(10, 5)
	s.Resize(160, 48)
	w, h := s.Size()
	assert.Equal(t, 160.0, w)
	assert.Equal(t, 48.0, h)
	assert.Len(t, s.backbuf, 20*3)
}

func TestRainbowPaletteCycles(t *testing.T) {
	p0 := rainbowOf(0)
	p4 := rainbowOf(4)
	assert.NotEqual(t, p0(particles.Cyan), p4(particles.Cyan))
	assert.NotEqual(t, p0(particles.Cyan), p0(particles.Violet))
}

func TestBarDragSeeksTimeline(t *testing.T) {
	term, _, logs := newTestTerminal(t, 40, 12)
	require.Equal(t, 11, term.bar.row)
	require.Equal(t, 3, term.bar.left)
	require.Equal(t, 22, term.bar.width)

	// Press on column 13: offset 10.5 of 22 cells.
	term.handle(mouse(termbox.MouseLeft, 13, 11, 0))
	assert.Equal(t, scrubber.Dragging, term.session.State())
	assert.InDelta(t, 100*10.5/22, term.media.CurrentTime(), 1e-9)
	assert.Contains(t, logs.String(), "X:13")

	term.handle(mouse(termbox.MouseLeft, 39, 2, termbox.ModMotion))
	assert.Equal(t, 100.0, term.media.CurrentTime(), "dragging past the bar clamps to the end")

	term.handle(mouse(termbox.MouseRelease, 39, 2, 0))
	assert.Equal(t, scrubber.Idle, term.session.State())
	assert.Equal(t, 100.0, term.media.CurrentTime())
	assert.Equal(t, "1:40 / 1:40", term.view.label)
}

func TestSpaceTogglesPlaybackAndOverlay(t *testing.T) {
	term, c, _ := newTestTerminal(t, 40, 12)
	require.True(t, term.view.overlayShown())

	term.handle(termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace})
	assert.Equal(t, scrubber.Playing, term.session.State())
	assert.False(t, term.view.overlayShown(), "overlay faded out")

	term.frame(c.tick(time.Second))
	assert.False(t, term.view.visible, "overlay removed after the fade")
	assert.InDelta(t, 1.0, term.media.CurrentTime(), 1e-9)
	assert.Equal(t, "0:01 / 1:40", term.view.label)

	term.handle(mouse(termbox.MouseLeft, 0, 11, 0))
	assert.Equal(t, scrubber.Idle, term.session.State())
	assert.True(t, term.view.visible)
}

func TestEscQuits(t *testing.T) {
	term, _, _ := newTestTerminal(t, 40, 12)
	assert.True(t, term.handle(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}))
	assert.False(t, term.handle(termbox.Event{Type: termbox.EventKey, Ch: 'q'}))
}

func TestKonamiStartsRainbow(t *testing.T) {
	term, c, logs := newTestTerminal(t, 40, 12)
	keys := []termbox.Event{
		{Type: termbox.EventKey, Key: termbox.KeyArrowUp},
		{Type: termbox.EventKey, Key: termbox.KeyArrowUp},
		{Type: termbox.EventKey, Key: termbox.KeyArrowDown},
		{Type: termbox.EventKey, Key: termbox.KeyArrowDown},
		{Type: termbox.EventKey, Key: termbox.KeyArrowLeft},
		{Type: termbox.EventKey, Key: termbox.KeyArrowRight},
		{Type: termbox.EventKey, Key: termbox.KeyArrowLeft},
		{Type: termbox.EventKey, Key: termbox.KeyArrowRight},
		{Type: termbox.EventKey, Ch: 'b'},
		{Type: termbox.EventKey, Ch: 'a'},
	}
	for _, ev := range keys {
		term.handle(ev)
	}
	assert.Equal(t, c.now().Add(effects.RainbowDuration), term.rainbowUntil)
	assert.Contains(t, logs.String(), "easter egg")

	c.tick(effects.RainbowDuration + time.Second)
	term.frame(c.now())
	assert.Equal(t, colorOf(particles.Cyan), term.surface.palette(particles.Cyan))
}

func TestResizeKeepsBarOnLastRow(t *testing.T) {
	term, _, _ := newTestTerminal(t, 40, 12)
	term.handle(termbox.Event{Type: termbox.EventResize, Width: 60, Height: 20})
	assert.Equal(t, 19, term.bar.row)
	w, h := term.surface.Size()
	assert.Equal(t, 60*cellW, w)
	assert.Equal(t, 19*cellH, h)
	for _, p := range term.field.Particles() {
		assert.Less(t, p.GetX(), w)
		assert.Less(t, p.GetY(), h)
	}
	assert.Len(t, term.compose(), 60*20)
}

func TestComposeDrawsTrailStatusAndBar(t *testing.T) {
	term, c, _ := newTestTerminal(t, 40, 12)
	term.handle(mouse(termbox.MouseLeft, 20, 3, termbox.ModMotion))
	for i := 0; i < 300; i++ {
		term.frame(c.tick(time.Millisecond))
	}
	buf := term.compose()
	assert.Equal(t, '█', buf[40*3+20].Ch)
	assert.Equal(t, '▶', buf[40*11].Ch)

	var status strings.Builder
	for x := 0; x < 8; x++ {
		status.WriteRune(buf[x].Ch)
	}
	assert.Equal(t, " pagefx ", status.String())
}

func TestTimersRunWhenDue(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	tm := timers{now: c.now}
	var fired []int
	tm.after(10*time.Millisecond, func() { fired = append(fired, 1) })
	tm.after(300*time.Millisecond, func() { fired = append(fired, 2) })

	tm.run(c.tick(5 * time.Millisecond))
	assert.Empty(t, fired)
	tm.run(c.tick(10 * time.Millisecond))
	assert.Equal(t, []int{1}, fired)
	tm.run(c.tick(time.Second))
	assert.Equal(t, []int{1, 2}, fired)
	assert.Empty(t, tm.pending)
}

func TestPrintAtWideRunes(t *testing.T) {
	buf := make([]termbox.Cell, 10)
	next := printAt(buf, 10, 0, 0, "a世b", termbox.ColorWhite, termbox.ColorDefault)
	assert.Equal(t, 4, next)
	assert.Equal(t, 'a', buf[0].Ch)
	assert.Equal(t, '世', buf[1].Ch)
	assert.Equal(t, 'b', buf[3].Ch)
	assert.Equal(t, 3, centered(10, "abcd"))
}
