package terminal

import (
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// labelCols is the room kept for the time label on the bar row.
const labelCols = 15

// barView mirrors a scrub session's visual state for the bottom row.
type barView struct {
	opacity  float64
	visible  bool
	playing  bool
	progress float64
	label    string
}

func newBarView() *barView {
	return &barView{opacity: 1, visible: true, label: "0:00 / 0:00"}
}

func (v *barView) SetOverlayOpacity(o float64) { v.opacity = o }
func (v *barView) SetOverlayVisible(b bool)    { v.visible = b }
func (v *barView) SetPlaying(p bool)           { v.playing = p }
func (v *barView) SetProgress(f float64)       { v.progress = f }
func (v *barView) SetLabel(s string)           { v.label = s }

// overlayShown reports whether the paused overlay is on screen.
func (v *barView) overlayShown() bool {
	return v.visible && v.opacity > 0
}

// cellBar is the scrub bar laid out on the bottom terminal row.
// Coordinates are in columns.
type cellBar struct {
	row         int
	left, width int
}

func (b *cellBar) layout(cols, rows int) {
	b.row = rows - 1
	b.left = 3
	b.width = cols - b.left - labelCols
	if b.width < 0 {
		b.width = 0
	}
}

func (b *cellBar) Bounds() (float64, float64) {
	return float64(b.left), float64(b.width)
}

// hit reports whether the cell {x, y} lies on the bar.
func (b *cellBar) hit(x, y int) bool {
	return y == b.row && x >= b.left && x < b.left+b.width
}

// button reports whether the cell {x, y} lies on the play control.
func (b *cellBar) button(x, y int) bool {
	return y == b.row && x >= 0 && x < b.left-1
}

// cellCenter maps a column to the pointer position used for seeking.
func cellCenter(x int) float64 {
	return float64(x) + 0.5
}

type timer struct {
	at time.Time
	fn func()
}

// timers runs deferred callbacks on the render loop instead of on
// their own goroutines.
type timers struct {
	now     func() time.Time
	pending []timer
}

func (t *timers) after(d time.Duration, fn func()) {
	t.pending = append(t.pending, timer{at: t.now().Add(d), fn: fn})
}

func (t *timers) run(now time.Time) {
	var due []timer
	kept := t.pending[:0]
	for _, tm := range t.pending {
		if now.Before(tm.at) {
			kept = append(kept, tm)
		} else {
			due = append(due, tm)
		}
	}
	t.pending = kept
	for _, tm := range due {
		tm.fn()
	}
}

// keyName maps a termbox key event to the browser key identifier.
func keyName(ev termbox.Event) string {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return "ArrowUp"
	case termbox.KeyArrowDown:
		return "ArrowDown"
	case termbox.KeyArrowLeft:
		return "ArrowLeft"
	case termbox.KeyArrowRight:
		return "ArrowRight"
	case termbox.KeySpace:
		return " "
	}
	if ev.Ch != 0 {
		return string(ev.Ch)
	}
	return ""
}

// printAt writes s starting at column x, honouring wide runes.
// It returns the column following the text.
func printAt(buf []termbox.Cell, cols, x, y int, s string, fg, bg termbox.Attribute) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x >= 0 && x < cols && y >= 0 && cols*y+x < len(buf) {
			buf[cols*y+x] = termbox.Cell{Ch: r, Fg: fg, Bg: bg}
		}
		if w == 0 {
			w = 1
		}
		x += w
	}
	return x
}

// centered returns the column at which s is centred in cols.
func centered(cols int, s string) int {
	x := (cols - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}
