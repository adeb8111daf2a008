package sigpad

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// mustModel builds a model or fails the test.
func mustModel(tb testing.TB, w, h int, opts ...Option) *Model {
	tb.Helper()
	m, err := New(w, h, opts...)
	if err != nil {
		tb.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	return m
}

// solidRGBA returns a w x h image filled with c.
func solidRGBA(w, h int, c color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(uint32(c.R) * uint32(c.A) / 255),
				G: uint8(uint32(c.G) * uint32(c.A) / 255),
				B: uint8(uint32(c.B) * uint32(c.A) / 255),
				A: c.A,
			})
		}
	}
	return img
}

// transparentImage reports whether every byte of the image is zero.
func transparentImage(img *image.RGBA) bool {
	for _, b := range img.Pix {
		if b != 0 {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{"valid", 100, 100, false},
		{"wide", 2000, 10, false},
		{"zero width", 0, 100, true},
		{"zero height", 100, 0, true},
		{"negative width", -1, 100, true},
		{"negative height", 100, -1, true},
		{"both zero", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("error = %v, want ErrInvalidSize", err)
				}
				return
			}
			w, h := m.Size()
			if w != tt.width || h != tt.height {
				t.Errorf("Size() = %d, %d, want %d, %d", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	m := mustModel(t, 50, 50)

	if got := m.Color(); got != Black {
		t.Errorf("Color() = %+v, want Black", got)
	}
	if got := m.Pen(); got != DefaultPen {
		t.Errorf("Pen() = %+v, want DefaultPen", got)
	}
	if got := m.Committed(); got != nil {
		t.Errorf("Committed() = %v on fresh model, want nil", got)
	}
	if got := m.Temporary(); got != nil {
		t.Errorf("Temporary() = %v on fresh model, want nil", got)
	}
}

func TestNew_Options(t *testing.T) {
	pen := Pen{MinWeight: 1, MaxWeight: 3, Falloff: 0.2}
	seed := solidRGBA(40, 40, color.NRGBA{0, 128, 0, 255})

	m := mustModel(t, 40, 40,
		WithColor(Blue),
		WithPen(pen),
		WithSeedImage(seed),
	)

	if got := m.Color(); got != Blue {
		t.Errorf("Color() = %+v, want Blue", got)
	}
	if got := m.Pen(); got != pen {
		t.Errorf("Pen() = %+v, want %+v", got, pen)
	}
	committed := m.Committed()
	if committed == nil {
		t.Fatal("Committed() = nil, want seeded image")
	}
	if got := committed.RGBAAt(20, 20); got.G == 0 {
		t.Errorf("seed pixel = %+v, want green", got)
	}
}

func TestModel_TemporaryThenCommitted(t *testing.T) {
	m := mustModel(t, 100, 100)

	// One point: only a temporary dot, nothing committed.
	m.AddPoint(Pt(50, 50))
	if m.Committed() != nil {
		t.Error("Committed() non-nil before any segment finalized")
	}
	if m.Temporary() == nil {
		t.Fatal("Temporary() = nil after AddPoint")
	}

	// The full image still shows the dot.
	img := m.Image()
	if got := img.RGBAAt(50, 50); got.A == 0 {
		t.Error("Image() missing ink at the temporary dot")
	}

	// Ending the stroke moves the ink into the committed raster.
	m.EndStroke()
	if m.Temporary() != nil {
		t.Error("Temporary() non-nil after EndStroke")
	}
	committed := m.Committed()
	if committed == nil {
		t.Fatal("Committed() = nil after EndStroke")
	}
	if got := committed.RGBAAt(50, 50); got.A == 0 {
		t.Error("committed raster missing ink at the dot")
	}
}

func TestModel_FourPointsCommitSegment(t *testing.T) {
	m := mustModel(t, 100, 100)

	for _, p := range []Point{Pt(10, 50), Pt(20, 50), Pt(30, 50), Pt(40, 50)} {
		m.AddPoint(p)
	}

	committed := m.Committed()
	if committed == nil {
		t.Fatal("Committed() = nil after four points")
	}
	if got := committed.RGBAAt(25, 50); got.A == 0 {
		t.Error("committed raster missing ink on the stroke")
	}
	if got := committed.RGBAAt(90, 10); got.A != 0 {
		t.Errorf("committed raster has ink far from the stroke: %+v", got)
	}
	if m.Temporary() != nil {
		t.Error("Temporary() not cleared after segment finalized")
	}
}

func TestModel_ImageIsPureRead(t *testing.T) {
	m := mustModel(t, 60, 60)
	m.AddPoint(Pt(10, 30))
	m.AddPoint(Pt(20, 30))
	m.AddPoint(Pt(30, 30))
	m.AddPoint(Pt(40, 30)) // finalizes, so there is raster content
	m.AddPoint(Pt(50, 30)) // and a fresh temporary on top

	first := m.Image()
	second := m.Image()
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two Image() calls differ with no mutation in between")
	}

	// The read must not have disturbed the stroke in progress.
	if m.Temporary() == nil {
		t.Error("Image() cleared the temporary shape")
	}
}

func TestModel_Reset(t *testing.T) {
	m := mustModel(t, 80, 40, WithColor(Red))
	m.AddPoint(Pt(10, 20))
	m.AddPoint(Pt(30, 20))
	m.EndStroke()
	m.AddPoint(Pt(50, 20))

	m.Reset()

	if m.Committed() != nil {
		t.Error("Committed() non-nil after Reset")
	}
	if m.Temporary() != nil {
		t.Error("Temporary() non-nil after Reset")
	}
	img := m.Image()
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 40 {
		t.Errorf("Image() bounds = %v after Reset, want 80x40", img.Bounds())
	}
	if !transparentImage(img) {
		t.Error("Image() not fully transparent after Reset")
	}
	// Configuration survives.
	if got := m.Color(); got != Red {
		t.Errorf("Color() = %+v after Reset, want Red", got)
	}
}

func TestModel_AddImage(t *testing.T) {
	m := mustModel(t, 100, 100)

	// Seed equal to the canvas: Image() must reproduce it exactly.
	seed := solidRGBA(100, 100, color.NRGBA{255, 0, 0, 255})
	m.AddImage(seed)

	img := m.Image()
	if !bytes.Equal(img.Pix, seed.Pix) {
		t.Error("Image() differs from an opaque full-canvas seed")
	}
}

func TestModel_AddImage_Additive(t *testing.T) {
	m := mustModel(t, 100, 100)

	// First layer: opaque red everywhere.
	m.AddImage(solidRGBA(100, 100, color.NRGBA{255, 0, 0, 255}))

	// Second layer: opaque blue in the right half, transparent left.
	second := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 50; x < 100; x++ {
			second.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	m.AddImage(second)

	committed := m.Committed()
	if got := committed.RGBAAt(25, 50); got.R != 255 || got.A != 255 {
		t.Errorf("left half = %+v, want red preserved", got)
	}
	if got := committed.RGBAAt(75, 50); got.B != 255 || got.A != 255 {
		t.Errorf("right half = %+v, want blue", got)
	}
}

func TestModel_AddImage_Scales(t *testing.T) {
	m := mustModel(t, 100, 100)
	m.AddImage(solidRGBA(50, 50, color.NRGBA{0, 255, 0, 255}))

	committed := m.Committed()
	if committed.Bounds().Dx() != 100 {
		t.Fatalf("committed bounds = %v, want canvas size", committed.Bounds())
	}
	if got := committed.RGBAAt(90, 90); got.G == 0 {
		t.Errorf("corner pixel = %+v, want scaled green", got)
	}
}

func TestModel_AddImage_Nil(t *testing.T) {
	m := mustModel(t, 10, 10)
	m.AddImage(nil)
	if m.Committed() != nil {
		t.Error("Committed() non-nil after AddImage(nil)")
	}
}

func TestModel_SetColor_AffectsLaterSegmentsOnly(t *testing.T) {
	m := mustModel(t, 120, 60, WithColor(Red))

	m.AddPoint(Pt(20, 30))
	m.EndStroke() // red dot committed

	m.SetColor(Blue)
	m.AddPoint(Pt(80, 30))
	m.EndStroke() // blue dot committed

	committed := m.Committed()
	first := committed.RGBAAt(20, 30)
	second := committed.RGBAAt(80, 30)
	if first.R == 0 || first.B != 0 {
		t.Errorf("first dot = %+v, want red", first)
	}
	if second.B == 0 || second.R != 0 {
		t.Errorf("second dot = %+v, want blue", second)
	}
}

func TestModel_SetSize(t *testing.T) {
	tests := []struct {
		name      string
		newWidth  int
		newHeight int
		wantErr   bool
	}{
		{"grow both", 200, 200, false},
		{"shrink both", 50, 50, false},
		{"same size noop", 100, 100, false},
		{"zero width", 0, 100, true},
		{"zero height", 100, 0, true},
		{"negative width", -5, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustModel(t, 100, 100)

			err := m.SetSize(tt.newWidth, tt.newHeight)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			w, h := m.Size()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("error = %v, want ErrInvalidSize", err)
				}
				if w != 100 || h != 100 {
					t.Errorf("Size() = %d, %d after failed SetSize, want unchanged", w, h)
				}
				return
			}
			if w != tt.newWidth || h != tt.newHeight {
				t.Errorf("Size() = %d, %d, want %d, %d", w, h, tt.newWidth, tt.newHeight)
			}
		})
	}
}

func TestModel_SetSize_RescalesContent(t *testing.T) {
	m := mustModel(t, 40, 40)
	m.AddImage(solidRGBA(40, 40, color.NRGBA{255, 0, 0, 255}))

	if err := m.SetSize(80, 80); err != nil {
		t.Fatalf("SetSize failed: %v", err)
	}

	committed := m.Committed()
	if committed.Bounds().Dx() != 80 || committed.Bounds().Dy() != 80 {
		t.Fatalf("committed bounds = %v, want 80x80", committed.Bounds())
	}
	// A solid color resamples to itself away from the borders.
	if got := committed.RGBAAt(40, 40); got.R != 255 || got.A != 255 {
		t.Errorf("center pixel after rescale = %+v, want solid red", got)
	}
}

func TestModel_SetSize_EmptyModel(t *testing.T) {
	m := mustModel(t, 40, 40)
	if err := m.SetSize(20, 60); err != nil {
		t.Fatalf("SetSize failed: %v", err)
	}
	if m.Committed() != nil {
		t.Error("Committed() non-nil after resizing an empty model")
	}
	img := m.Image()
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 60 {
		t.Errorf("Image() bounds = %v, want 20x60", img.Bounds())
	}
}

func TestModel_EncodePNG(t *testing.T) {
	m := mustModel(t, 30, 20)
	m.AddPoint(Pt(15, 10))
	m.EndStroke()

	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output failed: %v", err)
	}
	if decoded.Bounds().Dx() != 30 || decoded.Bounds().Dy() != 20 {
		t.Errorf("decoded bounds = %v, want 30x20", decoded.Bounds())
	}
	if _, _, _, a := decoded.At(15, 10).RGBA(); a == 0 {
		t.Error("decoded image missing ink at the dot")
	}
}
