package sigpad

import (
	"image"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// fillShape renders the shape into dst with the given color,
// source-over with anti-aliased coverage. Quadratic and cubic elements
// reach the scanline pass as curves; nothing is pre-flattened here.
// A nil or empty shape is a no-op.
func fillShape(dst *image.RGBA, s *Shape, c RGBA) {
	if s == nil || s.Empty() {
		return
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(c.Color())
	for _, el := range s.Elements() {
		switch e := el.(type) {
		case MoveTo:
			filler.Start(fixedPt(e.Point))
		case LineTo:
			filler.Line(fixedPt(e.Point))
		case QuadTo:
			filler.QuadBezier(fixedPt(e.Control), fixedPt(e.Point))
		case CubicTo:
			filler.CubeBezier(fixedPt(e.Control1), fixedPt(e.Control2), fixedPt(e.Point))
		case Close:
			filler.Stop(true)
		}
	}
	filler.Draw()
}

// fixedPt converts a Point to the rasterizer's 26.6 fixed-point format.
func fixedPt(p Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// cloneRGBA returns a copy of src, or nil if src is nil.
func cloneRGBA(src *image.RGBA) *image.RGBA {
	if src == nil {
		return nil
	}
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// drawOver composites src over dst at full opacity, scaling src to the
// destination bounds when the sizes differ.
func drawOver(dst *image.RGBA, src image.Image) {
	sb, db := src.Bounds(), dst.Bounds()
	if sb.Dx() == db.Dx() && sb.Dy() == db.Dy() {
		xdraw.Draw(dst, db, src, sb.Min, xdraw.Over)
		return
	}
	xdraw.BiLinear.Scale(dst, db, src, sb, xdraw.Over, nil)
}

// rescaleRGBA resamples src to width x height.
func rescaleRGBA(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
