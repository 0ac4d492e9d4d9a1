//go:build js && wasm

package canvas

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/esimov/pagefx/scrubber"
)

// Video adapts a `.video-container` element to the scrubber interfaces:
// it is the Media, the Bar and the View of its session.
type Video struct {
	container js.Value
	video     js.Value
	playBtn   js.Value
	overlay   js.Value
	bar       js.Value
	filled    js.Value
	label     js.Value

	session *scrubber.Session
}

// BindVideos creates one scrub session per video container in the document.
func BindVideos(doc js.Value) []*Video {
	var videos []*Video
	each(doc, ".video-container", func(el js.Value) {
		if v := bindVideo(doc, el); v != nil {
			videos = append(videos, v)
		}
	})
	return videos
}

func bindVideo(doc, container js.Value) *Video {
	v := &Video{
		container: container,
		video:     container.Call("querySelector", ".project-video"),
		playBtn:   container.Call("querySelector", ".play-btn"),
		overlay:   container.Call("querySelector", ".video-overlay"),
		bar:       container.Call("querySelector", ".progress-bar"),
		filled:    container.Call("querySelector", ".progress-filled"),
		label:     container.Call("querySelector", ".video-time"),
	}
	if v.video.IsNull() || v.playBtn.IsNull() || v.overlay.IsNull() {
		return nil
	}
	v.session = scrubber.NewSession(v, v, v, func(d time.Duration, fn func()) {
		setTimeout(fn, int(d.Milliseconds()))
	})
	s := v.session

	listen(v.playBtn, "click", func(js.Value) { s.TogglePlay() })
	listen(v.video, "click", func(js.Value) { s.ClickMedia() })
	listen(v.video, "play", func(js.Value) { s.OnPlay() })
	listen(v.video, "pause", func(js.Value) { s.OnPause() })

	if v.bar.IsNull() || v.filled.IsNull() || v.label.IsNull() {
		return v
	}
	listen(v.video, "timeupdate", func(js.Value) { s.OnTimeUpdate() })
	listen(v.video, "loadedmetadata", func(js.Value) { s.OnMetadata() })
	listen(v.video, "canplay", func(js.Value) { s.OnCanPlay() })
	listen(v.bar, "click", func(ev js.Value) { s.BarClick(newPointer(ev).X) })
	listen(v.bar, "mousedown", func(ev js.Value) { s.BarPress(newPointer(ev).X) })

	// Move and release are tracked on the whole document so a drag
	// leaving the bar still ends.
	listen(doc, "mousemove", func(ev js.Value) { s.PointerMove(newPointer(ev).X) })
	listen(doc, "mouseup", func(js.Value) { s.PointerRelease() })

	return v
}

// Session returns the scrub session driving this video.
func (v *Video) Session() *scrubber.Session {
	return v.session
}

func (v *Video) Play() {
	v.video.Call("play")
}

func (v *Video) Pause() {
	v.video.Call("pause")
}

func (v *Video) Paused() bool {
	return v.video.Get("paused").Bool()
}

func (v *Video) Duration() float64 {
	return v.video.Get("duration").Float()
}

func (v *Video) CurrentTime() float64 {
	return v.video.Get("currentTime").Float()
}

func (v *Video) Seek(t float64) {
	v.video.Set("currentTime", t)
}

func (v *Video) Bounds() (float64, float64) {
	if v.bar.IsNull() {
		return 0, 0
	}
	r := boundsOf(v.bar)
	return r.Left, r.Width
}

func (v *Video) SetOverlayOpacity(o float64) {
	v.overlay.Get("style").Set("opacity", fmt.Sprint(o))
}

func (v *Video) SetOverlayVisible(b bool) {
	display := "none"
	if b {
		display = "flex"
	}
	v.overlay.Get("style").Set("display", display)
}

func (v *Video) SetPlaying(p bool) {
	if p {
		v.container.Get("classList").Call("add", "playing")
	} else {
		v.container.Get("classList").Call("remove", "playing")
	}
}

func (v *Video) SetProgress(f float64) {
	if v.filled.IsNull() {
		return
	}
	v.filled.Get("style").Set("width", fmt.Sprintf("%g%%", f*100))
}

func (v *Video) SetLabel(s string) {
	if v.label.IsNull() {
		return
	}
	v.label.Set("textContent", s)
}
