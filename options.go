package sigpad

import "image"

// Option configures a Model during creation.
// Use functional options to customize model behavior.
//
// Example:
//
//	// Default: black ink, standard pen
//	m, err := sigpad.New(400, 200)
//
//	// Blue ink over a scanned form
//	m, err := sigpad.New(400, 200,
//	    sigpad.WithColor(sigpad.Blue),
//	    sigpad.WithSeedImage(form))
type Option func(*config)

// config holds optional settings for Model creation.
type config struct {
	color RGBA
	pen   Pen
	seed  image.Image
}

// defaultConfig returns the default model configuration.
func defaultConfig() config {
	return config{
		color: Black,
		pen:   DefaultPen,
	}
}

// WithColor sets the initial stroke color. The default is Black.
func WithColor(c RGBA) Option {
	return func(o *config) {
		o.color = c
	}
}

// WithPen sets the pen that derives stroke weights from point spacing.
// The default is DefaultPen.
//
// Example:
//
//	// A broader, lazier pen for large canvases
//	pen := sigpad.Pen{MinWeight: 3, MaxWeight: 12, Falloff: 0.05}
//	m, err := sigpad.New(1200, 600, sigpad.WithPen(pen))
func WithPen(p Pen) Option {
	return func(o *config) {
		o.pen = p
	}
}

// WithSeedImage composites img into the model at creation, exactly as
// if it were passed to AddImage afterwards. Useful for restoring a
// previously captured signature so the user can continue it.
func WithSeedImage(img image.Image) Option {
	return func(o *config) {
		o.seed = img
	}
}
