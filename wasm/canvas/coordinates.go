//go:build js && wasm

package canvas

import "syscall/js"

// pointer holds the viewport coordinates of a mouse event.
type pointer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func newPointer(ev js.Value) pointer {
	return pointer{
		X: ev.Get("clientX").Float(),
		Y: ev.Get("clientY").Float(),
	}
}

// rect is the bounding box of an element in viewport coordinates.
type rect struct {
	Left, Top, Width, Height float64
}

func boundsOf(el js.Value) rect {
	r := el.Call("getBoundingClientRect")
	return rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

// listen registers fn for the named event and keeps the callback alive
// for the lifetime of the page.
func listen(target js.Value, event string, fn func(ev js.Value)) {
	target.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	}))
}

// each calls fn for every element matching selector under root.
func each(root js.Value, selector string, fn func(el js.Value)) {
	list := root.Call("querySelectorAll", selector)
	for i := 0; i < list.Length(); i++ {
		fn(list.Index(i))
	}
}

// setTimeout runs fn after ms milliseconds on the page's event loop.
func setTimeout(fn func(), ms int) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn()
		cb.Release()
		return nil
	})
	js.Global().Call("setTimeout", cb, ms)
}
