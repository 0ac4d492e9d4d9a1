//go:build js && wasm

package canvas

import (
	"math"
	"syscall/js"

	particles "github.com/esimov/pagefx/particle-field"
)

// Canvas is a particle Surface backed by a 2D canvas context.
type Canvas struct {
	window js.Value
	doc    js.Value
	elem   js.Value
	ctx    js.Value

	width, height float64
}

// NewCanvas binds the canvas element with the given id and sizes it to the viewport.
func NewCanvas(id string) *Canvas {
	var c Canvas
	c.window = js.Global()
	c.doc = c.window.Get("document")
	c.elem = c.doc.Call("getElementById", id)
	if c.elem.IsNull() {
		c.elem = c.doc.Call("createElement", "canvas")
		c.elem.Set("id", id)
		c.doc.Get("body").Call("appendChild", c.elem)
	}
	c.ctx = c.elem.Call("getContext", "2d")
	c.Resize(c.Viewport())

	return &c
}

// Viewport returns the window inner size.
func (c *Canvas) Viewport() (float64, float64) {
	return c.window.Get("innerWidth").Float(), c.window.Get("innerHeight").Float()
}

func (c *Canvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *Canvas) Resize(w, h float64) {
	c.width, c.height = w, h
	c.elem.Set("width", w)
	c.elem.Set("height", h)
}

func (c *Canvas) Clear() {
	c.ctx.Call("clearRect", 0, 0, c.width, c.height)
}

func (c *Canvas) FillCircle(x, y, r float64, col particles.Color, alpha float64) {
	c.ctx.Set("fillStyle", string(col))
	c.ctx.Set("globalAlpha", alpha)
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, math.Pi*2)
	c.ctx.Call("fill")
	c.ctx.Set("globalAlpha", 1)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, col particles.Color, alpha, width float64) {
	c.ctx.Set("strokeStyle", string(col))
	c.ctx.Set("globalAlpha", alpha)
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
	c.ctx.Set("globalAlpha", 1)
}

// OnResize calls fn with the new viewport size whenever the window is resized.
func (c *Canvas) OnResize(fn func(w, h float64)) {
	c.window.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(c.Viewport())
		return nil
	}))
}

// Alert calls the `window.alert` Javascript function
func (c *Canvas) Alert(msg string) {
	c.window.Call("alert", msg)
}

// Log calls the `console.log` Javascript function
func (c *Canvas) Log(args ...interface{}) {
	c.window.Get("console").Call("log", args...)
}
