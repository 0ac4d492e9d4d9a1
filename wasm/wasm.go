//go:build js && wasm

package main

import (
	"context"
	"log"
	"math/rand"
	"net/url"
	"syscall/js"
	"time"

	particles "github.com/esimov/pagefx/particle-field"
	"github.com/esimov/pagefx/wasm/canvas"
	"github.com/esimov/pagefx/wasm/detector"
)

func main() {
	ctx := context.Background()
	query := queryParams()

	c := canvas.NewCanvas("particles-canvas")
	page := canvas.NewPage()
	page.Init(ctx)

	videos := canvas.BindVideos(js.Global().Get("document"))
	log.Printf("bound %d video players", len(videos))

	if query.Get("face") == "1" {
		go trackFace(ctx, c, page)
	}

	if query.Get("remote") == "1" {
		canvas.InitWebSocket(c)
	} else {
		field := particles.NewField(c, rand.New(rand.NewSource(time.Now().UnixNano())))
		c.OnResize(field.Resize)

		frame := canvas.NewFrame()
		defer frame.Release()
		go func() {
			if err := particles.Run(ctx, field, frame); err != nil {
				log.Println(err)
			}
		}()
	}

	// Keep the callbacks alive for the lifetime of the page.
	select {}
}

func trackFace(ctx context.Context, c *canvas.Canvas, page *canvas.Page) {
	webcam, err := c.StartWebcam()
	if err != nil {
		c.Alert("Webcam not detected!")
		return
	}
	det := detector.NewDetector()
	if err := det.Load(); err != nil {
		det.Log(err.Error())
		return
	}
	webcam.Track(ctx, det, c, page.Trail())
}

func queryParams() url.Values {
	u, err := url.Parse(js.Global().Get("location").Get("href").String())
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}
