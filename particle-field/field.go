package particles

import (
	"math/rand"
)

const (
	// NumOfParticles is the fixed size of the field.
	NumOfParticles = 100
	// LinkDistance is the distance under which two particles get connected.
	LinkDistance = 100.0
	// LinkOpacity is the opacity of a link between two overlapping particles.
	LinkOpacity = 0.1
	// LinkWidth is the stroke width of a link.
	LinkWidth = 1.0
)

// Surface is the 2D drawing target of the field.
type Surface interface {
	Size() (w, h float64)
	Resize(w, h float64)
	Clear()
	FillCircle(x, y, r float64, c Color, alpha float64)
	StrokeLine(x0, y0, x1, y1 float64, c Color, alpha, width float64)
}

// Field holds the particle collection and the surface it is drawn onto.
type Field struct {
	particles  []*Particle
	surface    Surface
	resizeWrap bool
	frames     uint64
}

// Option customizes a Field.
type Option func(*Field)

// WithResizeWrap controls whether particles left outside the surface
// by a resize are wrapped back immediately. Enabled by default.
func WithResizeWrap(enabled bool) Option {
	return func(f *Field) {
		f.resizeWrap = enabled
	}
}

// NewField populates a new field with NumOfParticles random particles
// spread over the surface.
func NewField(s Surface, rnd *rand.Rand, opts ...Option) *Field {
	f := &Field{
		surface:    s,
		resizeWrap: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	w, h := s.Size()
	f.particles = make([]*Particle, NumOfParticles)
	for i := range f.particles {
		f.particles[i] = NewParticle(rnd, w, h)
	}
	return f
}

// Step renders a single frame: clear the surface, then for every particle
// in order advance it, draw it and link it to every particle with a higher index.
func (f *Field) Step() {
	w, h := f.surface.Size()
	f.surface.Clear()

	for i, p := range f.particles {
		p.update(w, h)
		f.surface.FillCircle(p.x, p.y, p.radius, p.color, p.opacity)

		for _, q := range f.particles[i+1:] {
			d := p.distance(q)
			if d < LinkDistance {
				alpha := LinkOpacity * (1 - d/LinkDistance)
				f.surface.StrokeLine(p.x, p.y, q.x, q.y, p.color, alpha, LinkWidth)
			}
		}
	}
	f.frames++
}

// Resize updates the surface bounds. Particle positions are never rescaled.
func (f *Field) Resize(w, h float64) {
	f.surface.Resize(w, h)
	if !f.resizeWrap {
		return
	}
	w, h = f.surface.Size()
	for _, p := range f.particles {
		p.x = wrap(p.x, w)
		p.y = wrap(p.y, h)
	}
}

// Len returns the number of particles in the field.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns a snapshot of the particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	for i, p := range f.particles {
		out[i] = *p
	}
	return out
}

// Frames returns the number of frames rendered so far.
func (f *Field) Frames() uint64 {
	return f.frames
}
