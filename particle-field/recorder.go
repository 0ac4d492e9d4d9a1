package particles

// OpKind names a recorded draw primitive.
type OpKind string

const (
	OpCircle OpKind = "circle"
	OpLine   OpKind = "line"
)

// Op is a single recorded draw call.
type Op struct {
	Kind  OpKind  `json:"op"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	X1    float64 `json:"x1,omitempty"`
	Y1    float64 `json:"y1,omitempty"`
	R     float64 `json:"r,omitempty"`
	Width float64 `json:"lw,omitempty"`
	Color Color   `json:"c"`
	Alpha float64 `json:"a"`
}

// Frame is the display list of one rendered frame.
type Frame struct {
	Seq    uint64  `json:"seq"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
	Ops    []Op    `json:"ops"`
}

// Recorder is a Surface keeping the draw calls of the current frame
// in memory instead of painting them.
type Recorder struct {
	w, h float64
	seq  uint64
	ops  []Op
}

// NewRecorder creates a recording surface of {w, h} units.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (float64, float64) {
	return r.w, r.h
}

func (r *Recorder) Resize(w, h float64) {
	r.w, r.h = w, h
}

func (r *Recorder) Clear() {
	r.seq++
	r.ops = r.ops[:0]
}

func (r *Recorder) FillCircle(x, y, rad float64, c Color, alpha float64) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X: x, Y: y, R: rad, Color: c, Alpha: alpha})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, c Color, alpha, width float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Color: c, Alpha: alpha})
}

// Frame returns a copy of the ops recorded since the last Clear.
func (r *Recorder) Frame() Frame {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return Frame{Seq: r.seq, Width: r.w, Height: r.h, Ops: ops}
}

// Replay draws a recorded frame onto another surface.
func Replay(fr Frame, s Surface) {
	s.Clear()
	for _, op := range fr.Ops {
		switch op.Kind {
		case OpCircle:
			s.FillCircle(op.X, op.Y, op.R, op.Color, op.Alpha)
		case OpLine:
			s.StrokeLine(op.X, op.Y, op.X1, op.Y1, op.Color, op.Alpha, op.Width)
		}
	}
}
