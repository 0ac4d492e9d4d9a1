package particles

import (
	"math"
	"math/rand"
)

// Color is one of the two palette values a particle can be painted with.
type Color string

const (
	Cyan   Color = "#00d9ff"
	Violet Color = "#b537f2"
)

// Particle defines a single point of the background field.
// Only the position changes after creation.
type Particle struct {
	x, y    float64
	vx, vy  float64
	radius  float64
	color   Color
	opacity float64
}

// NewParticle spawns a particle at a random point inside a {w, h} surface.
func NewParticle(rnd *rand.Rand, w, h float64) *Particle {
	p := &Particle{
		x:       rnd.Float64() * w,
		y:       rnd.Float64() * h,
		radius:  rnd.Float64()*2 + 1,
		vx:      rnd.Float64()*0.5 - 0.25,
		vy:      rnd.Float64()*0.5 - 0.25,
		color:   Violet,
		opacity: rnd.Float64()*0.5 + 0.2,
	}
	if rnd.Float64() > 0.5 {
		p.color = Cyan
	}
	return p
}

// GetX retrieve the particle position on the {x} axis.
func (p *Particle) GetX() float64 {
	return p.x
}

// GetY retrieve the particle position on the {y} axis.
func (p *Particle) GetY() float64 {
	return p.y
}

// GetVx get the particle velocity on the {x} axis.
func (p *Particle) GetVx() float64 {
	return p.vx
}

// GetVy get the particle velocity on the {y} axis.
func (p *Particle) GetVy() float64 {
	return p.vy
}

// GetRadius get the particle radius.
func (p *Particle) GetRadius() float64 {
	return p.radius
}

// GetColor get the particle color.
func (p *Particle) GetColor() Color {
	return p.color
}

// GetOpacity get the particle opacity.
func (p *Particle) GetOpacity() float64 {
	return p.opacity
}

// update advances the particle by its velocity and wraps it
// back inside a {w, h} surface.
func (p *Particle) update(w, h float64) {
	p.x = wrap(p.x+p.vx, w)
	p.y = wrap(p.y+p.vy, h)
}

// wrap teleports a coordinate leaving [0, extent) to the opposite edge.
func wrap(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	if v >= extent {
		return 0
	}
	if v < 0 {
		return math.Nextafter(extent, 0)
	}
	return v
}

func (p *Particle) distance(q *Particle) float64 {
	dx := p.x - q.x
	dy := p.y - q.y
	return math.Sqrt(dx*dx + dy*dy)
}
