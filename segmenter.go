package sigpad

// Update is the outcome of a Segmenter operation.
//
// At most one field is set. A non-nil Temporary replaces the previous
// in-progress outline wholesale. A non-nil Finalized is a completed
// stroke segment that should be rendered into persistent storage; the
// in-progress outline is folded into it, so Temporary is nil. The zero
// Update means nothing to draw.
type Update struct {
	Temporary *Shape
	Finalized *Shape
}

// Segmenter folds a stream of input points into weighted outline shapes.
//
// Points accumulate in a small buffer. One, two, or three buffered
// points yield a temporary dot, line, or quadratic outline; a fourth
// point completes a cubic segment, which is emitted as finalized, and
// the buffer restarts from its last point so consecutive segments share
// an endpoint.
//
// A Segmenter is not safe for concurrent use.
type Segmenter struct {
	pen Pen
	buf []WeightedPoint
}

// NewSegmenter creates a segmenter that derives stroke weights with the
// given pen.
func NewSegmenter(pen Pen) *Segmenter {
	return &Segmenter{pen: pen, buf: make([]WeightedPoint, 0, 4)}
}

// AddPoint buffers the next input point and returns the resulting
// update: a refreshed temporary outline, or a finalized cubic segment
// once four points have accumulated.
func (s *Segmenter) AddPoint(p Point) Update {
	s.buf = append(s.buf, s.weighted(p))
	switch len(s.buf) {
	case 1:
		return Update{Temporary: DotShape(s.buf[0])}
	case 2:
		return Update{Temporary: LineShape(s.buf[0], s.buf[1])}
	case 3:
		return Update{Temporary: QuadShape(s.buf[0], s.buf[1], s.buf[2])}
	default:
		fin := CubicShape(s.buf[0], s.buf[1], s.buf[2], s.buf[3])
		// Keep the last point so the next segment starts where this
		// one ended.
		s.buf[0] = s.buf[3]
		s.buf = s.buf[:1]
		return Update{Finalized: fin}
	}
}

// EndLine flushes the buffer at the end of a stroke. One, two, or three
// leftover points become a finalized dot, line, or quadratic outline; an
// empty buffer yields the zero Update. The buffer is empty afterwards.
func (s *Segmenter) EndLine() Update {
	var u Update
	switch len(s.buf) {
	case 1:
		u.Finalized = DotShape(s.buf[0])
	case 2:
		u.Finalized = LineShape(s.buf[0], s.buf[1])
	case 3:
		u.Finalized = QuadShape(s.buf[0], s.buf[1], s.buf[2])
	}
	s.buf = s.buf[:0]
	return u
}

// Reset discards all buffered points without emitting anything.
func (s *Segmenter) Reset() {
	s.buf = s.buf[:0]
}

// Buffered returns the number of points currently buffered.
func (s *Segmenter) Buffered() int {
	return len(s.buf)
}

// weighted tags a point with its stroke weight, derived from the
// distance to the most recently buffered point. The first point of a
// stroke gets the maximum weight.
func (s *Segmenter) weighted(p Point) WeightedPoint {
	w := s.pen.MaxWeight
	if n := len(s.buf); n > 0 {
		w = s.pen.Weight(p.Distance(s.buf[n-1].Point))
	}
	return WeightedPoint{Point: p, Weight: w}
}
