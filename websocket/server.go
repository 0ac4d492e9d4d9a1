package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	particles "github.com/esimov/pagefx/particle-field"
)

// HttpParams holds the address and the static root served next to the socket.
type HttpParams struct {
	Address string
	Prefix  string
	Root    string
}

// Message is sent by preview clients.
type Message struct {
	Type string  `json:"type"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

const (
	writeWait = 5 * time.Second
	sendQueue = 4
)

// A server application calls the Upgrade method from an HTTP request handler to initiate a connection
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub steps a particle field on a recording surface and broadcasts
// every frame to the connected preview clients.
type Hub struct {
	field *particles.Field
	rec   *particles.Recorder
	fps   int

	mu      sync.Mutex
	clients map[*client]struct{}
	resize  chan Message
}

// NewHub creates a hub over a field drawing onto rec.
func NewHub(field *particles.Field, rec *particles.Recorder, fps int) *Hub {
	return &Hub{
		field:   field,
		rec:     rec,
		fps:     fps,
		clients: make(map[*client]struct{}),
		resize:  make(chan Message, 8),
	}
}

// Run renders frames until ctx is done. The field is only touched from here.
func (h *Hub) Run(ctx context.Context) error {
	ticker := particles.NewTicker(h.fps)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return ctx.Err()
		case m := <-h.resize:
			h.field.Resize(m.W, m.H)
			log.Printf("field resized to %gx%g", m.W, m.H)
		default:
			h.field.Step()
			h.broadcast(h.rec.Frame())
			if err := ticker.Next(ctx); err != nil {
				h.closeAll()
				return err
			}
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(fr particles.Frame) {
	msg, err := json.Marshal(fr)
	if err != nil {
		log.Println(err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Slow client, skip this frame.
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// Handler returns the static file server plus the /ws endpoint,
// wrapped with request logging.
func (h *Hub) Handler(p *HttpParams) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(p.Prefix, http.StripPrefix(p.Prefix, http.FileServer(http.Dir(p.Root))))
	mux.HandleFunc("/ws", h.wsHandler)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux.ServeHTTP(w, r)
	})
}

// wsHandler defines the websocket connection endpoint
func (h *Hub) wsHandler(w http.ResponseWriter, r *http.Request) {
	// Upgrade the http connection to a WebSocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendQueue)}
	h.register(c)
	go h.writeSocket(c)
	go h.readSocket(c)
}

// readSocket listen for resize requests sent by the client
func (h *Hub) readSocket(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	for {
		var m Message
		if err := c.conn.ReadJSON(&m); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}
		if m.Type != "resize" || m.W <= 0 || m.H <= 0 {
			log.Printf("ignoring message %q", m.Type)
			continue
		}
		select {
		case h.resize <- m:
		default:
		}
	}
}

// writeSocket forwards the broadcast frames to the client
func (h *Hub) writeSocket(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Println(err)
			return
		}
	}
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
}

// Init serves the static root and the frame stream until ctx is done.
func Init(ctx context.Context, p *HttpParams, h *Hub) error {
	var err error
	p.Root, err = filepath.Abs(p.Root)
	if err != nil {
		return err
	}
	log.Printf("serving %s as %s on %s", p.Root, p.Prefix, p.Address)

	srv := &http.Server{
		Addr:    p.Address,
		Handler: h.Handler(p),
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	go h.Run(ctx)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
