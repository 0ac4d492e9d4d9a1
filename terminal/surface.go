package terminal

import (
	"github.com/nsf/termbox-go"

	particles "github.com/esimov/pagefx/particle-field"
)

// Each terminal cell stands for a cellW x cellH block of surface units,
// so the field keeps its pixel based constants.
const (
	cellW = 8.0
	cellH = 16.0
)

// minLinkAlpha hides the faintest links, which would otherwise fill the
// screen with dots at terminal resolution.
const minLinkAlpha = 0.03

// cellSurface rasterizes the field onto a termbox cell buffer.
type cellSurface struct {
	backbuf  []termbox.Cell
	bbw, bbh int
	palette  func(particles.Color) termbox.Attribute
}

func newCellSurface(cols, rows int) *cellSurface {
	s := &cellSurface{palette: colorOf}
	s.realloc(cols, rows)
	return s
}

func (s *cellSurface) realloc(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.bbw, s.bbh = cols, rows
	s.backbuf = make([]termbox.Cell, cols*rows)
}

func (s *cellSurface) Size() (float64, float64) {
	return float64(s.bbw) * cellW, float64(s.bbh) * cellH
}

func (s *cellSurface) Resize(w, h float64) {
	s.realloc(int(w/cellW), int(h/cellH))
}

func (s *cellSurface) Clear() {
	for i := range s.backbuf {
		s.backbuf[i] = termbox.Cell{}
	}
}

func (s *cellSurface) FillCircle(x, y, r float64, c particles.Color, alpha float64) {
	fg := s.palette(c)
	if alpha > 0.45 {
		fg |= termbox.AttrBold
	}
	s.set(int(x/cellW), int(y/cellH), particleGlyph(r), fg)
}

func (s *cellSurface) StrokeLine(x0, y0, x1, y1 float64, c particles.Color, alpha, width float64) {
	if alpha < minLinkAlpha {
		return
	}
	ch := '·'
	if alpha < 0.06 {
		ch = '.'
	}
	fg := s.palette(c)
	cx0, cy0 := int(x0/cellW), int(y0/cellH)
	cx1, cy1 := int(x1/cellW), int(y1/cellH)

	// Bresenham, skipping both end points which hold the particles.
	dx := abs(cx1 - cx0)
	dy := -abs(cy1 - cy0)
	sx, sy := sign(cx1-cx0), sign(cy1-cy0)
	e := dx + dy
	x, y := cx0, cy0
	for x != cx1 || y != cy1 {
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
		if x == cx1 && y == cy1 {
			break
		}
		if s.empty(x, y) {
			s.set(x, y, ch, fg)
		}
	}
}

func (s *cellSurface) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.bbw && y < s.bbh
}

func (s *cellSurface) empty(x, y int) bool {
	return s.inside(x, y) && s.backbuf[s.bbw*y+x].Ch == 0
}

func (s *cellSurface) set(x, y int, ch rune, fg termbox.Attribute) {
	if !s.inside(x, y) {
		return
	}
	s.backbuf[s.bbw*y+x] = termbox.Cell{Ch: ch, Fg: fg}
}

func (s *cellSurface) at(x, y int) termbox.Cell {
	if !s.inside(x, y) {
		return termbox.Cell{}
	}
	return s.backbuf[s.bbw*y+x]
}

func particleGlyph(r float64) rune {
	switch {
	case r < 1.7:
		return '∙'
	case r < 2.4:
		return '•'
	default:
		return '●'
	}
}

func colorOf(c particles.Color) termbox.Attribute {
	switch c {
	case particles.Cyan:
		return termbox.ColorCyan
	case particles.Violet:
		return termbox.ColorMagenta
	}
	return termbox.ColorWhite
}

var rainbow = []termbox.Attribute{
	termbox.ColorRed,
	termbox.ColorYellow,
	termbox.ColorGreen,
	termbox.ColorCyan,
	termbox.ColorBlue,
	termbox.ColorMagenta,
}

// rainbowOf cycles the palette through the rainbow as frames advance.
func rainbowOf(frame uint64) func(particles.Color) termbox.Attribute {
	return func(c particles.Color) termbox.Attribute {
		shift := 0
		if c == particles.Violet {
			shift = len(rainbow) / 2
		}
		return rainbow[(int(frame/4)+shift)%len(rainbow)]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
