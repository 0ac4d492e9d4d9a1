//go:build js && wasm

package detector

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"syscall/js"
	"time"
)

// ParseCascade loads and parse the cascade file through the
// Javascript `location.href` method supported by the `js/syscall` package.
// This method will return the cascade file encoded as a byte array.
func (d *Detector) ParseCascade(path string) ([]byte, error) {
	href := js.Global().Get("location").Get("href")
	u, err := url.Parse(href.String())
	if err != nil {
		return nil, err
	}
	u.Path = path
	u.RawQuery = fmt.Sprint(time.Now().UnixNano())

	log.Println("loading cascade file: " + u.String())
	resp, err := http.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cascade %s: unexpected status %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Load fetches and unpacks both cascade files.
func (d *Detector) Load() error {
	face, err := d.ParseCascade("/cascade/facefinder")
	if err != nil {
		return fmt.Errorf("error reading the facefinder cascade file: %w", err)
	}
	puploc, err := d.ParseCascade("/cascade/puploc")
	if err != nil {
		return fmt.Errorf("error reading the puploc cascade file: %w", err)
	}
	return d.Unpack(face, puploc)
}

// Log calls the `console.log` Javascript function
func (d *Detector) Log(args ...interface{}) {
	js.Global().Get("console").Call("log", args...)
}
