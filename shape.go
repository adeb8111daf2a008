package sigpad

// ShapeElement represents a single element in a shape outline.
type ShapeElement interface {
	isShapeElement()
}

// MoveTo starts the outline at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isShapeElement() {}

// LineTo continues the outline with a straight segment.
type LineTo struct {
	Point Point
}

func (LineTo) isShapeElement() {}

// QuadTo continues the outline with a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isShapeElement() {}

// CubicTo continues the outline with a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isShapeElement() {}

// Close closes the outline back to its starting point.
type Close struct{}

func (Close) isShapeElement() {}

// Shape is a closed, fillable outline built from bezier elements.
// Shapes are produced by the shape builders and the Segmenter and are
// immutable once returned; render them by walking Elements.
type Shape struct {
	elements []ShapeElement
}

// newShape creates an empty shape with room for n elements.
func newShape(n int) *Shape {
	return &Shape{elements: make([]ShapeElement, 0, n)}
}

func (s *Shape) moveTo(p Point) {
	s.elements = append(s.elements, MoveTo{Point: p})
}

func (s *Shape) lineTo(p Point) {
	s.elements = append(s.elements, LineTo{Point: p})
}

func (s *Shape) quadTo(ctrl, p Point) {
	s.elements = append(s.elements, QuadTo{Control: ctrl, Point: p})
}

func (s *Shape) cubicTo(c1, c2, p Point) {
	s.elements = append(s.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
}

func (s *Shape) close() {
	s.elements = append(s.elements, Close{})
}

// circle appends a full circle built from four cubic Bezier arcs.
func (s *Shape) circle(c Point, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	s.moveTo(Pt(c.X+r, c.Y))
	s.cubicTo(Pt(c.X+r, c.Y+offset), Pt(c.X+offset, c.Y+r), Pt(c.X, c.Y+r))
	s.cubicTo(Pt(c.X-offset, c.Y+r), Pt(c.X-r, c.Y+offset), Pt(c.X-r, c.Y))
	s.cubicTo(Pt(c.X-r, c.Y-offset), Pt(c.X-offset, c.Y-r), Pt(c.X, c.Y-r))
	s.cubicTo(Pt(c.X+offset, c.Y-r), Pt(c.X+r, c.Y-offset), Pt(c.X+r, c.Y))
	s.close()
}

// Elements returns the outline elements in drawing order.
// The returned slice must not be modified.
func (s *Shape) Elements() []ShapeElement {
	return s.elements
}

// Empty reports whether the shape has no elements.
func (s *Shape) Empty() bool {
	return len(s.elements) == 0
}

// Bounds returns the bounding box of the shape's control polygon.
// Bezier curves never escape their control polygon, so the box always
// contains the filled region; it may overshoot near tight curves.
// Useful for dirty-rectangle invalidation when redrawing.
func (s *Shape) Bounds() (min, max Point) {
	first := true
	grow := func(p Point) {
		if first {
			min, max = p, p
			first = false
			return
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	for _, el := range s.elements {
		switch e := el.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	return min, max
}
