// Package effects holds the small per-frame and per-event computations
// behind the page decorations: cursor trail, parallax, counters, filters,
// scroll reveals and the key sequence easter egg.
package effects

const (
	// TrailEase is the fraction of the remaining distance covered per frame.
	TrailEase = 0.1
	// TrailSize is the diameter of the trail dot.
	TrailSize = 20.0
)

// Trail is a dot easing towards the last known pointer position.
type Trail struct {
	x, y   float64
	tx, ty float64
}

// Point moves the trail target.
func (t *Trail) Point(x, y float64) {
	t.tx, t.ty = x, y
}

// Step eases the trail towards its target by one frame.
func (t *Trail) Step() {
	t.x += (t.tx - t.x) * TrailEase
	t.y += (t.ty - t.y) * TrailEase
}

// Pos returns the trail centre.
func (t *Trail) Pos() (float64, float64) {
	return t.x, t.y
}

// Corner returns the top-left corner of the trail dot.
func (t *Trail) Corner() (float64, float64) {
	return t.x - TrailSize/2, t.y - TrailSize/2
}
