// Package scrubber mediates between pointer input on a video's scrub bar
// and the playback position of the video element.
package scrubber

import (
	"math"
	"time"
)

const (
	// HideDelay lets the overlay fade out before it is removed.
	HideDelay = 300 * time.Millisecond
	// ShowDelay lets the overlay become visible before it fades in.
	ShowDelay = 10 * time.Millisecond
)

// Media is the playback element a session controls.
// Duration may be NaN or zero until the metadata has loaded.
type Media interface {
	Play()
	Pause()
	Paused() bool
	Duration() float64
	CurrentTime() float64
	Seek(t float64)
}

// Bar reports the horizontal bounds of the scrub bar at the time of the call.
type Bar interface {
	Bounds() (left, width float64)
}

// View is the visual state mirrored by a session.
type View interface {
	SetOverlayOpacity(o float64)
	SetOverlayVisible(v bool)
	SetPlaying(p bool)
	SetProgress(fraction float64)
	SetLabel(s string)
}

// Deferrer runs fn once after d has elapsed.
type Deferrer func(d time.Duration, fn func())

// State is the observable state of a session.
type State int

const (
	Idle State = iota
	Playing
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Session drives a single media element.
type Session struct {
	media    Media
	bar      Bar
	view     View
	after    Deferrer
	dragging bool
}

// NewSession binds a session to its media, scrub bar and view.
// A nil deferrer falls back to time.AfterFunc.
func NewSession(m Media, b Bar, v View, after Deferrer) *Session {
	if after == nil {
		after = func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		}
	}
	return &Session{media: m, bar: b, view: v, after: after}
}

// State returns the current state of the session.
func (s *Session) State() State {
	switch {
	case s.dragging:
		return Dragging
	case s.media.Paused():
		return Idle
	default:
		return Playing
	}
}

// TogglePlay handles a click on the play control.
func (s *Session) TogglePlay() {
	if s.media.Paused() {
		s.media.Play()
		s.hideOverlay()
		return
	}
	s.media.Pause()
	s.showOverlay()
}

// ClickMedia handles a click on the media surface itself.
// Starting playback from here removes the overlay without waiting for the fade.
func (s *Session) ClickMedia() {
	if s.media.Paused() {
		s.media.Play()
		s.view.SetOverlayOpacity(0)
		s.view.SetOverlayVisible(false)
		return
	}
	s.media.Pause()
	s.showOverlay()
}

// OnPlay handles the media's own play notification.
func (s *Session) OnPlay() {
	s.view.SetPlaying(true)
	s.hideOverlay()
}

// OnPause handles the media's own pause notification.
func (s *Session) OnPause() {
	s.view.SetPlaying(false)
	s.showOverlay()
}

// OnTimeUpdate mirrors the playback position into the view.
func (s *Session) OnTimeUpdate() {
	s.refresh()
}

// OnMetadata refreshes the view once the duration is known.
func (s *Session) OnMetadata() {
	s.refresh()
}

// OnCanPlay refreshes the view once the media is ready to play.
func (s *Session) OnCanPlay() {
	s.refresh()
}

// BarClick seeks to the position under x without starting a drag.
func (s *Session) BarClick(x float64) {
	if !s.known() {
		return
	}
	if frac, ok := s.fraction(x); ok {
		s.seek(frac)
	}
}

// BarPress starts a drag at x.
func (s *Session) BarPress(x float64) {
	if !s.known() {
		return
	}
	frac, ok := s.fraction(x)
	if !ok {
		return
	}
	s.dragging = true
	s.seek(frac)
}

// PointerMove follows a drag anywhere on the page.
func (s *Session) PointerMove(x float64) {
	if !s.dragging || !s.known() {
		return
	}
	frac, ok := s.fraction(x)
	if !ok {
		return
	}
	s.seek(math.Max(0, math.Min(1, frac)))
}

// PointerRelease ends a drag. The last seek stands.
func (s *Session) PointerRelease() {
	s.dragging = false
}

func (s *Session) known() bool {
	return validDuration(s.media.Duration())
}

// fraction maps x to its offset along the bar.
func (s *Session) fraction(x float64) (float64, bool) {
	left, width := s.bar.Bounds()
	if width <= 0 {
		return 0, false
	}
	return (x - left) / width, true
}

func (s *Session) seek(frac float64) {
	s.media.Seek(frac * s.media.Duration())
}

func (s *Session) refresh() {
	dur := s.media.Duration()
	if !validDuration(dur) {
		return
	}
	cur := s.media.CurrentTime()
	s.view.SetProgress(cur / dur)
	s.view.SetLabel(Label(cur, dur))
}

func (s *Session) hideOverlay() {
	s.view.SetOverlayOpacity(0)
	s.after(HideDelay, func() {
		s.view.SetOverlayVisible(false)
	})
}

func (s *Session) showOverlay() {
	s.view.SetOverlayVisible(true)
	s.after(ShowDelay, func() {
		s.view.SetOverlayOpacity(1)
	})
}

func validDuration(d float64) bool {
	return d > 0 && !math.IsNaN(d) && !math.IsInf(d, 0)
}
