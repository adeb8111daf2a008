package sigpad

// WeightedPoint is an input point tagged with its local stroke weight.
// The weight is the full stroke width at that point, in pixels.
type WeightedPoint struct {
	Point  Point
	Weight float64
}

// Pen derives stroke weights from the spacing of input points: the
// farther apart two consecutive samples are, the faster the pen was
// moving and the thinner the stroke becomes.
type Pen struct {
	// MinWeight and MaxWeight bound the stroke width in pixels.
	MinWeight float64
	MaxWeight float64

	// Falloff is the width lost per pixel of distance between
	// consecutive input points.
	Falloff float64
}

// DefaultPen draws strokes between 2 and 7 pixels wide, thinning out
// over the first 50 pixels of point spacing.
var DefaultPen = Pen{MinWeight: 2, MaxWeight: 7, Falloff: 0.1}

// Weight returns the stroke weight for a point at the given distance
// from its predecessor, clamped to [MinWeight, MaxWeight].
func (pen Pen) Weight(distance float64) float64 {
	w := pen.MaxWeight - pen.Falloff*distance
	if w < pen.MinWeight {
		return pen.MinWeight
	}
	if w > pen.MaxWeight {
		return pen.MaxWeight
	}
	return w
}

// The shape builders below turn 1-4 weighted points into closed fillable
// outlines. At every input point the stroke has a cross-section: a
// segment of length equal to the point's weight, centered on the point
// and perpendicular to the local stroke direction. The outline runs
// through one end of each cross-section, caps, and returns through the
// other ends, so filling it produces a tapered stroke.
//
// Coincident points give a zero direction, whose unit perpendicular is
// the zero vector; the cross-section collapses onto the point and the
// outline degenerates without producing NaNs.

// DotShape returns the outline for a single point: a circle centered on
// the point with diameter equal to its weight.
func DotShape(p WeightedPoint) *Shape {
	s := newShape(6)
	s.circle(p.Point, p.Weight/2)
	return s
}

// LineShape returns the outline for two points: a quadrilateral joining
// their cross-sections.
func LineShape(a, b WeightedPoint) *Shape {
	dir := b.Point.Sub(a.Point)
	a1, a2 := crossSection(a, dir)
	b1, b2 := crossSection(b, dir)

	s := newShape(5)
	s.moveTo(a1)
	s.lineTo(b1)
	s.lineTo(b2)
	s.lineTo(a2)
	s.close()
	return s
}

// QuadShape returns the outline for three points: two quadratic Bezier
// edges joining the end cross-sections, steered by the averaged
// cross-section at the middle point.
func QuadShape(a, b, c WeightedPoint) *Shape {
	ab := b.Point.Sub(a.Point)
	bc := c.Point.Sub(b.Point)
	a1, a2 := crossSection(a, ab)
	b1, b2 := averagedCrossSection(b, ab, bc)
	c1, c2 := crossSection(c, bc)

	s := newShape(6)
	s.moveTo(a1)
	s.quadTo(b1, c1)
	s.lineTo(c2)
	s.quadTo(b2, a2)
	s.close()
	return s
}

// CubicShape returns the outline for four points: two cubic Bezier edges
// joining the end cross-sections, steered by the averaged cross-sections
// at the two interior points.
func CubicShape(a, b, c, d WeightedPoint) *Shape {
	ab := b.Point.Sub(a.Point)
	bc := c.Point.Sub(b.Point)
	cd := d.Point.Sub(c.Point)
	a1, a2 := crossSection(a, ab)
	b1, b2 := averagedCrossSection(b, ab, bc)
	c1, c2 := averagedCrossSection(c, bc, cd)
	d1, d2 := crossSection(d, cd)

	s := newShape(6)
	s.moveTo(a1)
	s.cubicTo(b1, c1, d1)
	s.lineTo(d2)
	s.cubicTo(c2, b2, a2)
	s.close()
	return s
}

// crossSection returns the two endpoints of the segment of length
// p.Weight centered on p.Point, perpendicular to dir. The first endpoint
// is on the counter-clockwise side of dir, so consecutive cross-sections
// along a stroke keep consistent sides.
func crossSection(p WeightedPoint, dir Vec2) (Point, Point) {
	n := dir.Perp().Normalize().Mul(p.Weight / 2)
	return p.Point.Add(n), p.Point.Add(n.Neg())
}

// averagedCrossSection blends the cross-sections against the incoming
// and outgoing directions at an interior point, endpoint by endpoint.
// This keeps the outline continuous where the stroke bends.
func averagedCrossSection(p WeightedPoint, in, out Vec2) (Point, Point) {
	in1, in2 := crossSection(p, in)
	out1, out2 := crossSection(p, out)
	return in1.Lerp(out1, 0.5), in2.Lerp(out2, 0.5)
}
