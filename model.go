package sigpad

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
)

// ErrInvalidSize reports canvas dimensions that are not strictly
// positive.
var ErrInvalidSize = errors.New("sigpad: invalid canvas size")

// Model accumulates a signature drawing.
//
// Finished stroke segments are rasterized into a committed image;
// the stroke currently in progress is kept as a temporary outline and
// only rendered on demand. Feeding a point is therefore cheap no matter
// how much has been drawn already.
//
// A Model is not safe for concurrent use. AsyncModel provides a
// serialized front end for multi-goroutine callers.
type Model struct {
	width  int
	height int
	seg    *Segmenter
	pen    Pen
	color  RGBA

	raster *image.RGBA // committed strokes; nil until first composite
	temp   *Shape      // stroke in progress; nil when none
}

// New creates an empty drawing model with the given canvas dimensions.
// Returns ErrInvalidSize when width or height is not positive.
func New(width, height int, opts ...Option) (*Model, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Model{
		width:  width,
		height: height,
		seg:    NewSegmenter(cfg.pen),
		pen:    cfg.pen,
		color:  cfg.color,
	}
	if cfg.seed != nil {
		m.AddImage(cfg.seed)
	}
	return m, nil
}

// AddPoint feeds the next input point of the stroke in progress. It
// refreshes the temporary outline and, each time a cubic segment
// completes, composites that segment into the committed raster.
func (m *Model) AddPoint(p Point) {
	m.apply(m.seg.AddPoint(p))
}

// EndStroke finishes the stroke in progress, compositing whatever is
// left in the segment buffer. Safe to call with no stroke in progress.
func (m *Model) EndStroke() {
	m.apply(m.seg.EndLine())
}

// apply folds a segmenter update into the drawing state.
func (m *Model) apply(u Update) {
	if u.Finalized != nil {
		m.composite(u.Finalized)
	}
	m.temp = u.Temporary
}

// composite renders a finalized shape into the committed raster,
// allocating the raster on first use.
func (m *Model) composite(s *Shape) {
	if m.raster == nil {
		m.raster = image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	}
	fillShape(m.raster, s, m.color)
}

// Reset clears the drawing: committed raster, stroke in progress, and
// segment buffer. Size, color, and pen settings are retained.
func (m *Model) Reset() {
	m.seg.Reset()
	m.raster = nil
	m.temp = nil
	Logger().Debug("model reset", "width", m.width, "height", m.height)
}

// AddImage composites img over the current committed content at full
// opacity. Images whose bounds differ from the canvas are scaled to
// fit it. A nil img is a no-op.
func (m *Model) AddImage(img image.Image) {
	if img == nil {
		return
	}
	if m.raster == nil {
		m.raster = image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	}
	drawOver(m.raster, img)
}

// Image returns the full signature: committed strokes with the stroke
// in progress rendered on top in the current color. The result is a
// fresh image of the canvas size; an empty model yields a fully
// transparent image. Image never changes model state.
func (m *Model) Image() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	if m.raster != nil {
		copy(out.Pix, m.raster.Pix)
	}
	fillShape(out, m.temp, m.color)
	return out
}

// Committed returns a copy of the committed raster, or nil when nothing
// has been committed since creation or the last Reset.
func (m *Model) Committed() *image.RGBA {
	return cloneRGBA(m.raster)
}

// Temporary returns the outline of the stroke in progress, or nil when
// there is none. The returned shape must not be modified.
func (m *Model) Temporary() *Shape {
	return m.temp
}

// SetColor changes the stroke color for subsequent segments. Pixels
// already committed keep their color.
func (m *Model) SetColor(c RGBA) {
	m.color = c
}

// Color returns the current stroke color.
func (m *Model) Color() RGBA {
	return m.color
}

// Pen returns the pen used to derive stroke weights.
func (m *Model) Pen() Pen {
	return m.pen
}

// Size returns the canvas dimensions.
func (m *Model) Size() (width, height int) {
	return m.width, m.height
}

// SetSize changes the canvas dimensions. Committed content is rescaled
// to the new size; the stroke in progress keeps its canvas coordinates.
// Setting the current size is a no-op. Returns ErrInvalidSize when
// width or height is not positive, leaving the model unchanged.
func (m *Model) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == m.width && height == m.height {
		return nil
	}
	if m.raster != nil {
		m.raster = rescaleRGBA(m.raster, width, height)
	}
	m.width = width
	m.height = height
	Logger().Debug("canvas resized", "width", width, "height", height)
	return nil
}

// EncodePNG writes the full signature image as PNG to the given writer.
func (m *Model) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.Image())
}

// EncodeJPEG writes the full signature image as JPEG with the given
// quality (1-100). JPEG has no alpha channel; transparent regions come
// out black.
func (m *Model) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, m.Image(), &jpeg.Options{Quality: quality})
}

// SavePNG saves the full signature image to a PNG file.
func (m *Model) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return m.EncodePNG(f)
}
