// Command sigpaddemo synthesizes a freehand signature and writes it to
// a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/sigpad/sigpad"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 400, "canvas height")
		output  = flag.String("output", "signature.png", "output file")
		ink     = flag.String("color", "1a1a6e", "stroke color (hex)")
		seed    = flag.String("seed", "", "optional background PNG")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		sigpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []sigpad.Option{sigpad.WithColor(sigpad.Hex(*ink))}
	if *seed != "" {
		img, err := loadPNG(*seed)
		if err != nil {
			log.Fatalf("Failed to load seed image: %v", err)
		}
		opts = append(opts, sigpad.WithSeedImage(img))
	}

	am, err := sigpad.NewAsync(*width, *height, opts...)
	if err != nil {
		log.Fatalf("Failed to create model: %v", err)
	}
	defer func() { _ = am.Close() }()

	w := float64(*width)
	h := float64(*height)

	// Three strokes: a cursive scrawl, a crossing flourish, and a fast
	// underline. Sample spacing varies along each, so the stroke width
	// tapers the way real pen speed would make it.
	stroke(am, scrawl(0.12*w, 0.55*h, 0.55*w, 5, 90))
	stroke(am, flourish(0.42*w, 0.48*h, 0.30*w, 0.28*h, 70))
	stroke(am, underline(0.15*w, 0.78*h, 0.62*w, 12))

	img := am.Image()
	if img == nil {
		log.Fatal("No image produced")
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Signature saved to %s (%dx%d)\n", *output, *width, *height)
}

// stroke feeds one stroke's points through the async front end.
func stroke(am *sigpad.AsyncModel, pts []sigpad.Point) {
	for _, p := range pts {
		am.AsyncAddPoint(p)
	}
	am.AsyncEndStroke()
}

// scrawl samples a run of cursive humps. The samples accelerate toward
// the end, thinning the stroke like a hurried hand.
func scrawl(x0, y0, width float64, humps, n int) []sigpad.Point {
	pts := make([]sigpad.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		eased := math.Pow(t, 0.75) // spacing grows along the stroke
		x := x0 + width*eased
		y := y0 - 0.22*width*math.Abs(math.Sin(float64(humps)*math.Pi*eased))*(1-0.3*eased)
		pts = append(pts, sigpad.Pt(x, y))
	}
	return pts
}

// flourish samples a decaying loop, the kind of swirl people put
// through a signature.
func flourish(cx, cy, rx, ry float64, n int) []sigpad.Point {
	pts := make([]sigpad.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		decay := 1 - 0.45*t
		x := cx + rx*decay*math.Cos(2*math.Pi*1.25*t-math.Pi/2)
		y := cy + ry*decay*math.Sin(2*math.Pi*2.25*t)
		pts = append(pts, sigpad.Pt(x, y))
	}
	return pts
}

// underline samples a nearly straight, fast line: few samples, wide
// spacing, thin stroke.
func underline(x0, y0, width float64, n int) []sigpad.Point {
	pts := make([]sigpad.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		x := x0 + width*t
		y := y0 + 6*math.Sin(math.Pi*t)
		pts = append(pts, sigpad.Pt(x, y))
	}
	return pts
}

// loadPNG reads a PNG image from path.
func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return png.Decode(f)
}
