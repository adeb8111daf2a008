package sigpad

import (
	"errors"
	"image"
	"io"

	"github.com/sigpad/sigpad/internal/queue"
)

// ErrClosed reports an operation on an AsyncModel after Close.
var ErrClosed = errors.New("sigpad: model is closed")

// Snapshot is the output of AsyncModel.Snapshot: everything a renderer
// needs to draw the current signature.
type Snapshot struct {
	// Committed is a copy of the committed raster, nil when nothing
	// has been committed yet.
	Committed *image.RGBA

	// Temporary is the outline of the stroke in progress, nil when
	// none. Fill it with Color on top of Committed.
	Temporary *Shape

	// Color is the stroke color in effect when the snapshot was taken.
	Color RGBA
}

// AsyncModel serializes access to a Model through a single worker
// goroutine. Every operation is appended to one FIFO queue, so the
// drawing observed at any point is exactly what a single-goroutine
// caller would have produced with the same calls in the same order.
//
// Point feeding never blocks: AsyncAddPoint and AsyncEndStroke return
// as soon as the operation is queued. State accessors and mutators
// (Reset, AddImage, Image, SetColor, SetSize, ...) block until their
// turn in the queue, so the caller observes the settled result.
//
// The queue is unbounded. If producers outpace the worker for long
// enough, memory grows without limit; Pending exposes the current depth
// for callers that want to watch it.
type AsyncModel struct {
	model *Model // owned by the worker goroutine until Close
	ops   *queue.Queue[func()]
	done  chan struct{}
}

var _ io.Closer = (*AsyncModel)(nil)

// NewAsync creates a drawing model wrapped in a serializing worker.
// Callers must Close it to stop the worker.
func NewAsync(width, height int, opts ...Option) (*AsyncModel, error) {
	m, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	a := &AsyncModel{
		model: m,
		ops:   queue.New[func()](),
		done:  make(chan struct{}),
	}
	go a.loop()
	return a, nil
}

// loop drains the queue in FIFO order until Close.
func (a *AsyncModel) loop() {
	defer close(a.done)
	for {
		op, ok := a.ops.Pop()
		if !ok {
			return
		}
		a.run(op)
	}
}

// run executes one queued operation, containing any panic so a poisoned
// operation cannot take down the worker or the operations behind it.
func (a *AsyncModel) run(op func()) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("queued operation panicked", "panic", r)
		}
	}()
	op()
}

// enqueue pushes op, logging a warning when the model is closed.
func (a *AsyncModel) enqueue(op func()) bool {
	if a.ops.Push(op) {
		return true
	}
	Logger().Warn("operation dropped, model is closed")
	return false
}

// do runs op on the worker and waits for it to finish. The wait is
// released even if op panics. Reports false, without running op, when
// the model is closed.
func (a *AsyncModel) do(op func()) bool {
	ran := make(chan struct{})
	ok := a.enqueue(func() {
		defer close(ran)
		op()
	})
	if !ok {
		return false
	}
	<-ran
	return true
}

// AsyncAddPoint queues the next input point of the stroke in progress
// and returns immediately.
func (a *AsyncModel) AsyncAddPoint(p Point) {
	a.enqueue(func() { a.model.AddPoint(p) })
}

// AsyncEndStroke queues the end of the current stroke and returns
// immediately.
func (a *AsyncModel) AsyncEndStroke() {
	a.enqueue(func() { a.model.EndStroke() })
}

// Snapshot queues a read of the drawing state and returns a channel
// that receives the result once every operation queued before it has
// executed. The channel is buffered, so the worker never blocks on it;
// it is closed after the send. On a closed model the returned channel
// is closed without a value.
func (a *AsyncModel) Snapshot() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	ok := a.enqueue(func() {
		ch <- Snapshot{
			Committed: a.model.Committed(),
			Temporary: a.model.Temporary(),
			Color:     a.model.Color(),
		}
		close(ch)
	})
	if !ok {
		close(ch)
	}
	return ch
}

// Image returns the full signature image, waiting for all previously
// queued operations to execute first. Returns nil on a closed model.
func (a *AsyncModel) Image() *image.RGBA {
	var img *image.RGBA
	a.do(func() { img = a.model.Image() })
	return img
}

// Reset clears the drawing. It blocks until the reset has executed in
// queue order.
func (a *AsyncModel) Reset() {
	a.do(func() { a.model.Reset() })
}

// AddImage composites img over the committed content, blocking until
// the composite has executed in queue order.
func (a *AsyncModel) AddImage(img image.Image) {
	a.do(func() { a.model.AddImage(img) })
}

// SetColor changes the stroke color for subsequent segments, blocking
// until the change is applied in queue order.
func (a *AsyncModel) SetColor(c RGBA) {
	a.do(func() { a.model.SetColor(c) })
}

// Color returns the current stroke color, or the zero RGBA on a closed
// model.
func (a *AsyncModel) Color() RGBA {
	var c RGBA
	a.do(func() { c = a.model.Color() })
	return c
}

// SetSize changes the canvas dimensions, rescaling committed content.
// It blocks until applied. Returns ErrClosed on a closed model.
func (a *AsyncModel) SetSize(width, height int) error {
	var err error
	if !a.do(func() { err = a.model.SetSize(width, height) }) {
		return ErrClosed
	}
	return err
}

// Size returns the canvas dimensions, or zeros on a closed model.
func (a *AsyncModel) Size() (width, height int) {
	a.do(func() {
		width, height = a.model.Size()
	})
	return width, height
}

// Pending returns the number of queued operations not yet executed.
func (a *AsyncModel) Pending() int {
	return a.ops.Len()
}

// Close stops the worker after draining every operation queued so far.
// Operations submitted after Close are dropped. Close is idempotent and
// always returns nil; the error return implements io.Closer.
func (a *AsyncModel) Close() error {
	a.ops.Close()
	<-a.done
	return nil
}
