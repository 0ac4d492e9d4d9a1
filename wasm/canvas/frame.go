//go:build js && wasm

package canvas

import (
	"context"
	"syscall/js"
)

// Frame is a particle Scheduler backed by requestAnimationFrame.
type Frame struct {
	window js.Value
	tick   chan struct{}
	cb     js.Func
}

// NewFrame creates a scheduler bound to the window's repaint callback.
func NewFrame() *Frame {
	f := &Frame{
		window: js.Global(),
		tick:   make(chan struct{}, 1),
	}
	f.cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case f.tick <- struct{}{}:
		default:
		}
		return nil
	})
	return f
}

// Next asks for the next repaint and waits for it.
func (f *Frame) Next(ctx context.Context) error {
	f.window.Call("requestAnimationFrame", f.cb)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.tick:
		return nil
	}
}

// Release frees the callback once the loop is over.
func (f *Frame) Release() {
	f.cb.Release()
}

// Every runs fn on every repaint until ctx is done.
func Every(ctx context.Context, fn func()) {
	f := NewFrame()
	go func() {
		defer f.Release()
		for {
			fn()
			if f.Next(ctx) != nil {
				return
			}
		}
	}()
}
