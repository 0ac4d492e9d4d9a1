package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailEasesTowardsPointer(t *testing.T) {
	var tr Trail
	tr.Point(100, 200)
	tr.Step()
	x, y := tr.Pos()
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 20, y, 1e-9)

	tr.Step()
	x, _ = tr.Pos()
	assert.InDelta(t, 19, x, 1e-9)

	for i := 0; i < 500; i++ {
		tr.Step()
	}
	cx, cy := tr.Corner()
	assert.InDelta(t, 90, cx, 1e-6)
	assert.InDelta(t, 190, cy, 1e-6)
}

func TestSequenceMatchesKonami(t *testing.T) {
	s := NewSequence(Konami)
	keys := append([]string{"x", "ArrowUp"}, Konami...)
	var hits int
	for i, k := range keys {
		if s.Push(k) {
			hits++
			assert.Equal(t, len(keys)-1, i)
		}
	}
	assert.Equal(t, 1, hits)

	assert.False(t, s.Push("b"), "the window slides past the match")
	for _, k := range Konami {
		s.Push(k)
	}
	assert.False(t, s.Push("x"))
}

func TestSequenceEmptyPattern(t *testing.T) {
	s := NewSequence(nil)
	assert.False(t, s.Push("a"))
}

func TestCounterEndsOnTarget(t *testing.T) {
	c := NewCounter(250)
	var (
		last   int
		frames int
		more   = true
	)
	for more {
		var v int
		v, more = c.Step()
		require.GreaterOrEqual(t, v, last)
		last = v
		frames++
		require.Less(t, frames, 1000)
	}
	assert.Equal(t, 250, last)
	assert.InDelta(t, 125, frames, 1)
}

func TestOnceFiresOnce(t *testing.T) {
	var o Once
	assert.False(t, o.Fire(false))
	assert.True(t, o.Fire(true))
	assert.False(t, o.Fire(true))
}

func TestParallax(t *testing.T) {
	dx, dy := Parallax(500, 250, 1000, 500)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = Parallax(1000, 0, 1000, 500)
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, -10.0, dy)
	assert.Equal(t, "translate(10px, -10px)", Translate(dx, dy))

	dx, dy = Parallax(10, 10, 0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestFilter(t *testing.T) {
	assert.True(t, Filter("all", "journal"))
	assert.True(t, Filter("journal", "journal"))
	assert.False(t, Filter("conference", "journal"))
}

func TestReveal(t *testing.T) {
	assert.True(t, Reveal(100, 800))
	assert.False(t, Reveal(600, 800))
	assert.True(t, Reveal(-50, 800))
}

func TestActiveSection(t *testing.T) {
	sections := []Section{{"home", 0}, {"about", 800}, {"projects", 1600}}
	assert.Equal(t, "home", ActiveSection(0, sections))
	assert.Equal(t, "home", ActiveSection(599, sections))
	assert.Equal(t, "about", ActiveSection(600, sections))
	assert.Equal(t, "projects", ActiveSection(5000, sections))
	assert.Empty(t, ActiveSection(0, nil))
}

func TestNavBackground(t *testing.T) {
	assert.Equal(t, "none", NavBackground(100).Shadow)
	assert.Equal(t, "rgba(10, 14, 39, 0.95)", NavBackground(101).Background)
}

func TestGlow(t *testing.T) {
	assert.Equal(t, "radial-gradient(circle at 12px 30px, rgba(0, 217, 255, 0.2), transparent 50%)", Glow(12, 30))
}
