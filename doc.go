// Package sigpad captures smooth, variable-width freehand signatures
// from a stream of input points.
//
// # Overview
//
// Connecting raw input samples with uniform-width line segments makes a
// signature look lifeless. sigpad instead fits weighted bezier outlines
// to the point stream: stroke width follows the speed of motion (the
// spacing between successive samples), so fast strokes come out thin and
// slow, deliberate strokes come out thick.
//
// The drawing is kept in two layers. Finished stroke segments are
// rasterized into a persistent image; the stroke currently in progress
// is a small temporary outline rendered on top. Redrawing a frame means
// blitting one image and filling one small shape, no matter how long the
// signature already is.
//
// # Quick Start
//
//	m, err := sigpad.New(400, 200)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, pt := range stroke {
//		m.AddPoint(pt)
//	}
//	m.EndStroke()
//	img := m.Image() // *image.RGBA of the full signature
//
// # Architecture
//
// The package is organized around four pieces:
//   - Shape builders: DotShape, LineShape, QuadShape, CubicShape turn
//     1-4 weighted points into closed fillable outlines
//   - Segmenter: folds a point stream into temporary and finalized shapes
//   - Model: owns the committed raster and the outline in progress
//   - AsyncModel: serializes a Model behind a single worker goroutine
//
// # Concurrency
//
// A Model is not safe for concurrent use. AsyncModel wraps one in a
// worker fed from an ordered queue, so UI code can push points from any
// goroutine without locking:
//
//	am, err := sigpad.NewAsync(400, 200)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer am.Close()
//
//	am.AsyncAddPoint(sigpad.Pt(12, 40)) // returns immediately
//	am.AsyncEndStroke()
//	snap := <-am.Snapshot() // committed raster + outline in progress
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - One unit is one pixel of the canvas
package sigpad

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
