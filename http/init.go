package http

import (
	"context"
	"math/rand"
	"time"

	"github.com/esimov/pagefx/config"
	particles "github.com/esimov/pagefx/particle-field"
	"github.com/esimov/pagefx/websocket"
)

// Preview surface size until a client reports its viewport.
const (
	previewWidth  = 1280
	previewHeight = 720
)

// InitServer starts the preview server described by cfg and blocks until ctx is done.
func InitServer(ctx context.Context, cfg *config.Config) error {
	ws := websocket.HttpParams{
		Address: cfg.Address,
		Prefix:  cfg.Prefix,
		Root:    cfg.Root,
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rec := particles.NewRecorder(previewWidth, previewHeight)
	field := particles.NewField(rec, rand.New(rand.NewSource(seed)),
		particles.WithResizeWrap(cfg.ResizeWrap))

	return websocket.Init(ctx, &ws, websocket.NewHub(field, rec, cfg.FPS))
}
