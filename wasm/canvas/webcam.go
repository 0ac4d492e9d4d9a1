//go:build js && wasm

package canvas

import (
	"context"
	"errors"
	"syscall/js"

	"github.com/esimov/pagefx/effects"
	"github.com/esimov/pagefx/wasm/detector"
)

// detectEvery throttles face detection to one frame out of n.
const detectEvery = 4

// Webcam streams the user camera into an offscreen canvas for detection.
type Webcam struct {
	window js.Value
	video  js.Value
	ctx    js.Value
	width  int
	height int
}

// StartWebcam asks for camera access and starts the stream.
func (c *Canvas) StartWebcam() (*Webcam, error) {
	media := c.window.Get("navigator").Get("mediaDevices")
	if media.IsUndefined() {
		return nil, errors.New("media devices are not supported")
	}
	constraints := map[string]interface{}{
		"audio": false,
		"video": map[string]interface{}{"width": 640, "height": 480},
	}
	stream, err := await(media.Call("getUserMedia", constraints))
	if err != nil {
		return nil, err
	}

	w := &Webcam{window: c.window, width: 640, height: 480}
	w.video = c.doc.Call("createElement", "video")
	w.video.Set("srcObject", stream)
	w.video.Set("muted", true)
	w.video.Call("setAttribute", "playsinline", "")
	if _, err := await(w.video.Call("play")); err != nil {
		return nil, err
	}

	off := c.doc.Call("createElement", "canvas")
	off.Set("width", w.width)
	off.Set("height", w.height)
	w.ctx = off.Call("getContext", "2d")
	return w, nil
}

// pixels grabs the current camera frame as RGBA bytes.
func (w *Webcam) pixels() []uint8 {
	w.ctx.Call("drawImage", w.video, 0, 0, w.width, w.height)
	data := w.ctx.Call("getImageData", 0, 0, w.width, w.height).Get("data")
	arr := w.window.Get("Uint8Array").New(data.Get("buffer"))

	buf := make([]uint8, arr.Get("length").Int())
	js.CopyBytesToGo(buf, arr)
	return buf
}

// Track moves the trail to the viewer's gaze until ctx is done.
func (w *Webcam) Track(ctx context.Context, det *detector.Detector, c *Canvas, trail *effects.Trail) {
	var n int
	Every(ctx, func() {
		n++
		if n%detectEvery != 0 {
			return
		}
		gray := detector.Grayscale(w.pixels(), w.width, w.height)
		x, y, ok := det.Gaze(gray, w.width, w.height)
		if !ok {
			return
		}
		vw, vh := c.Viewport()
		trail.Point(detector.ToViewport(x, y, w.width, w.height, vw, vh))
	})
}

// await blocks until a Javascript promise settles.
// It must not be called from inside a Javascript callback.
func await(promise js.Value) (js.Value, error) {
	done := make(chan js.Value, 1)
	fail := make(chan js.Value, 1)

	then := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var v js.Value
		if len(args) > 0 {
			v = args[0]
		}
		done <- v
		return nil
	})
	defer then.Release()
	catch := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var v js.Value
		if len(args) > 0 {
			v = args[0]
		}
		fail <- v
		return nil
	})
	defer catch.Release()

	promise.Call("then", then).Call("catch", catch)
	select {
	case v := <-done:
		return v, nil
	case e := <-fail:
		return js.Undefined(), errors.New(e.Call("toString").String())
	}
}
