//go:build js && wasm

package canvas

import (
	"encoding/json"
	"log"
	"syscall/js"

	particles "github.com/esimov/pagefx/particle-field"
)

// resize mirrors the message the preview server accepts.
type resize struct {
	Type string  `json:"type"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// Socket replays the frames streamed by the preview server onto a canvas.
type Socket struct {
	*Canvas
	conn js.Value
}

// InitWebSocket connects to the preview server of the current page origin.
func InitWebSocket(c *Canvas) *Socket {
	loc := c.window.Get("location")
	scheme := "ws://"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss://"
	}
	s := &Socket{
		Canvas: c,
		conn:   c.window.Get("WebSocket").New(scheme + loc.Get("host").String() + "/ws"),
	}

	listen(s.conn, "open", func(js.Value) {
		log.Println("preview connected")
		s.sendSize(c.Viewport())
	})
	listen(s.conn, "close", func(ev js.Value) {
		log.Printf("preview closed: %d", ev.Get("code").Int())
	})
	listen(s.conn, "message", func(ev js.Value) {
		var fr particles.Frame
		if err := json.Unmarshal([]byte(ev.Get("data").String()), &fr); err != nil {
			log.Println(err)
			return
		}
		particles.Replay(fr, s.Canvas)
	})
	c.OnResize(func(w, h float64) {
		c.Resize(w, h)
		s.sendSize(w, h)
	})
	return s
}

func (s *Socket) sendSize(w, h float64) {
	msg, err := json.Marshal(resize{Type: "resize", W: w, H: h})
	if err != nil {
		log.Println(err)
		return
	}
	s.conn.Call("send", string(msg))
}
