package scrubber

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedia struct {
	paused   bool
	duration float64
	pos      float64
	seeks    []float64
}

func (m *fakeMedia) Play()                { m.paused = false }
func (m *fakeMedia) Pause()               { m.paused = true }
func (m *fakeMedia) Paused() bool         { return m.paused }
func (m *fakeMedia) Duration() float64    { return m.duration }
func (m *fakeMedia) CurrentTime() float64 { return m.pos }
func (m *fakeMedia) Seek(t float64) {
	m.pos = t
	m.seeks = append(m.seeks, t)
}

type fakeBar struct {
	left, width float64
}

func (b fakeBar) Bounds() (float64, float64) { return b.left, b.width }

type fakeView struct {
	opacity  float64
	visible  bool
	playing  bool
	progress float64
	label    string
}

func (v *fakeView) SetOverlayOpacity(o float64) { v.opacity = o }
func (v *fakeView) SetOverlayVisible(b bool)    { v.visible = b }
func (v *fakeView) SetPlaying(p bool)           { v.playing = p }
func (v *fakeView) SetProgress(f float64)       { v.progress = f }
func (v *fakeView) SetLabel(s string)           { v.label = s }

type pending struct {
	d  time.Duration
	fn func()
}

// deferred queues callbacks until flush is called.
type deferred struct {
	queue []pending
}

func (d *deferred) after(delay time.Duration, fn func()) {
	d.queue = append(d.queue, pending{delay, fn})
}

func (d *deferred) flush() {
	q := d.queue
	d.queue = nil
	for _, p := range q {
		p.fn()
	}
}

func newSession(dur float64) (*Session, *fakeMedia, *fakeView, *deferred) {
	m := &fakeMedia{paused: true, duration: dur}
	v := &fakeView{visible: true, opacity: 1}
	d := &deferred{}
	s := NewSession(m, fakeBar{left: 100, width: 200}, v, d.after)
	return s, m, v, d
}

func TestTogglePlayFadesOverlay(t *testing.T) {
	s, m, v, d := newSession(60)
	require.Equal(t, Idle, s.State())

	s.TogglePlay()
	assert.False(t, m.Paused())
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, 0.0, v.opacity)
	assert.True(t, v.visible, "overlay stays until the fade completes")
	require.Len(t, d.queue, 1)
	assert.Equal(t, HideDelay, d.queue[0].d)
	d.flush()
	assert.False(t, v.visible)

	s.TogglePlay()
	assert.True(t, m.Paused())
	assert.Equal(t, Idle, s.State())
	assert.True(t, v.visible)
	assert.Equal(t, 0.0, v.opacity)
	require.Len(t, d.queue, 1)
	assert.Equal(t, ShowDelay, d.queue[0].d)
	d.flush()
	assert.Equal(t, 1.0, v.opacity)
}

func TestClickMediaHidesOverlayAtOnce(t *testing.T) {
	s, m, v, d := newSession(60)
	s.ClickMedia()
	assert.False(t, m.Paused())
	assert.False(t, v.visible)
	assert.Equal(t, 0.0, v.opacity)
	assert.Empty(t, d.queue)

	s.ClickMedia()
	assert.True(t, m.Paused())
	assert.True(t, v.visible)
	d.flush()
	assert.Equal(t, 1.0, v.opacity)
}

func TestMediaNotifications(t *testing.T) {
	s, _, v, d := newSession(60)
	s.OnPlay()
	assert.True(t, v.playing)
	d.flush()
	assert.False(t, v.visible)

	s.OnPause()
	assert.False(t, v.playing)
	assert.True(t, v.visible)
	d.flush()
	assert.Equal(t, 1.0, v.opacity)
}

func TestTimeUpdateMirrorsProgress(t *testing.T) {
	s, m, v, _ := newSession(125)
	m.pos = 65
	s.OnTimeUpdate()
	assert.Equal(t, "1:05 / 2:05", v.label)
	assert.InDelta(t, 65.0/125.0, v.progress, 1e-12)
}

func TestMetadataAndCanPlayRefreshLabel(t *testing.T) {
	s, m, v, _ := newSession(math.NaN())
	s.OnMetadata()
	assert.Empty(t, v.label)

	m.duration = 90
	s.OnCanPlay()
	assert.Equal(t, "0:00 / 1:30", v.label)

	v.label = ""
	s.OnMetadata()
	assert.Equal(t, "0:00 / 1:30", v.label)
}

func TestDragSequence(t *testing.T) {
	s, m, _, _ := newSession(200)
	m.paused = false

	// Bar spans [100, 300): 160 is 30% in.
	s.BarPress(160)
	assert.Equal(t, Dragging, s.State())
	require.Len(t, m.seeks, 1)
	assert.InDelta(t, 60.0, m.seeks[0], 1e-9)

	// 400 is 150% of the bar, clamped to the end.
	s.PointerMove(400)
	require.Len(t, m.seeks, 2)
	assert.Equal(t, 200.0, m.seeks[1])

	s.PointerMove(0)
	require.Len(t, m.seeks, 3)
	assert.Equal(t, 0.0, m.seeks[2])

	s.PointerRelease()
	assert.Len(t, m.seeks, 3, "release performs no seek")
	assert.Equal(t, Playing, s.State())

	s.PointerMove(200)
	assert.Len(t, m.seeks, 3, "moves after release are ignored")
}

func TestDragFromIdleReturnsToIdle(t *testing.T) {
	s, _, _, _ := newSession(100)
	s.BarPress(150)
	assert.Equal(t, Dragging, s.State())
	s.PointerRelease()
	assert.Equal(t, Idle, s.State())
}

func TestPressIsNotClamped(t *testing.T) {
	s, m, _, _ := newSession(100)
	s.BarPress(50)
	require.Len(t, m.seeks, 1)
	assert.Equal(t, -25.0, m.seeks[0])
}

func TestBarClickSeeksWithoutDragging(t *testing.T) {
	s, m, _, _ := newSession(100)
	s.BarClick(250)
	require.Len(t, m.seeks, 1)
	assert.InDelta(t, 75.0, m.seeks[0], 1e-9)
	assert.Equal(t, Idle, s.State())

	s.PointerMove(300)
	assert.Len(t, m.seeks, 1)
}

func TestUnknownDurationIsNoop(t *testing.T) {
	for _, dur := range []float64{math.NaN(), 0, math.Inf(1), -3} {
		s, m, v, _ := newSession(dur)
		s.BarClick(200)
		s.BarPress(200)
		s.PointerMove(250)
		s.OnTimeUpdate()
		assert.Empty(t, m.seeks)
		assert.Equal(t, Idle, s.State())
		assert.Empty(t, v.label)
	}
}

func TestZeroWidthBarIsNoop(t *testing.T) {
	m := &fakeMedia{paused: true, duration: 10}
	s := NewSession(m, fakeBar{left: 0, width: 0}, &fakeView{}, (&deferred{}).after)
	s.BarPress(5)
	s.BarClick(5)
	assert.Empty(t, m.seeks)
	assert.Equal(t, Idle, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "unknown", State(9).String())
}
