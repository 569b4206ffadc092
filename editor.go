package andie

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/gogpu/andie/internal/cache"
	"github.com/gogpu/andie/internal/imaging"
	"github.com/gogpu/andie/op"
	"github.com/gogpu/andie/raster"
)

// Editor holds one image and its edit history.
//
// The displayed image is always the original with every history entry
// applied in order. Operations never mutate the original; undo pops the
// last entry and replays, redo re-applies a popped entry.
//
// An Editor is safe for concurrent use, though actions are serialized.
// Notices are delivered after the editor is unlocked, so a Notifier may
// query the editor.
type Editor struct {
	mu sync.Mutex

	logger   *slog.Logger
	notifier Notifier
	rng      *rand.Rand
	codec    imaging.Options

	path     string
	original *raster.Buffer
	current  *raster.Buffer
	history  []op.Op
	redo     []op.Op

	macro     []op.Op
	recording bool

	snaps *cache.Snapshots

	// pending holds notices raised under mu; unlock delivers them.
	pending []Notice
}

// New creates an editor with no image loaded.
func New(opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Editor{
		logger:   o.logger,
		notifier: o.notifier,
		codec:    imaging.Options{JPEGQuality: o.jpegQuality},
		snaps:    cache.NewSnapshots(cache.DefaultSnapshots),
	}
	if o.seeded {
		e.rng = op.NewRand(o.seed)
	} else {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.notifier == nil {
		e.notifier = logNotifier{logger: e.log}
	}
	return e
}

// log returns the editor's logger, falling back to the package logger.
func (e *Editor) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return Logger()
}

// notify queues a notice. Caller must hold e.mu and release it with unlock.
func (e *Editor) notify(err error, msg string) {
	e.pending = append(e.pending, Notice{Err: err, Message: msg})
}

// unlock releases e.mu, then delivers queued notices, so a notifier may
// call back into the editor.
func (e *Editor) unlock() {
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	for _, n := range pending {
		e.notifier.Notify(n)
	}
}

// Load replaces the editor's image with a copy of buf and clears all
// history. The editor has no file path afterwards.
func (e *Editor) Load(buf *raster.Buffer) error {
	if buf == nil {
		return errors.Wrap(ErrMissingImage, "load")
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset(buf.Clone(), "")
	return nil
}

// reset installs original as the base image with empty history.
// Caller must hold e.mu.
func (e *Editor) reset(original *raster.Buffer, path string) {
	e.original = original
	e.current = original
	e.history = nil
	e.redo = nil
	e.path = path
	e.snaps.Clear()
}

// HasImage reports whether an image is loaded.
func (e *Editor) HasImage() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.original != nil
}

// Path returns the file the image was opened from or last saved to.
func (e *Editor) Path() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.path
}

// Current returns a copy of the displayed image, or nil if none is loaded.
func (e *Editor) Current() *raster.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return nil
	}
	return e.current.Clone()
}

// Original returns a copy of the unedited image, or nil if none is loaded.
func (e *Editor) Original() *raster.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.original == nil {
		return nil
	}
	return e.original.Clone()
}

// History returns the applied operations, oldest first.
func (e *Editor) History() []op.Op {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.history)
}

// RedoHistory returns the undone operations; the last element is the next
// to be redone.
func (e *Editor) RedoHistory() []op.Op {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.redo)
}

// CanUndo reports whether there is an operation to undo.
func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.history) > 0
}

// CanRedo reports whether there is an operation to redo.
func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redo) > 0
}

// Apply runs o on the displayed image and records it.
//
// On success the redo stack is cleared and, while a macro is recording, o
// is appended to the macro. On failure nothing changes. A
// RandomScattering without a seed is given one first, so replay
// reproduces the same pattern.
func (e *Editor) Apply(o op.Op) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.original == nil {
		return errors.Wrapf(ErrMissingImage, "apply %s", o.Kind)
	}
	o = e.stampSeed(o)

	out, err := o.Transform(e.current)
	if err != nil {
		e.log().Debug("apply failed", "op", o.String(), "error", err)
		return errors.Wrapf(err, "apply %s", o.Kind)
	}

	e.push(out, o)
	e.redo = nil
	if e.recording {
		e.macro = append(e.macro, o)
	}
	e.log().Debug("applied", "op", o.String(), "history", len(e.history))
	return nil
}

// stampSeed gives an unseeded RandomScattering a non-zero seed.
func (e *Editor) stampSeed(o op.Op) op.Op {
	if o.Kind != op.KindRandomScattering || o.Seed != 0 {
		return o
	}
	for o.Seed == 0 {
		o.Seed = e.rng.Uint64()
	}
	return o
}

// push appends o with its result. Caller must hold e.mu.
func (e *Editor) push(out *raster.Buffer, o op.Op) {
	e.snaps.Truncate(len(e.history))
	e.history = append(e.history, o)
	e.current = out
	e.snaps.Put(len(e.history), out)
}

// Undo removes the last operation and rebuilds the displayed image.
// With an empty history it sends an ErrHistoryUnderflow notice and does
// nothing.
func (e *Editor) Undo() error {
	e.mu.Lock()
	defer e.unlock()

	if len(e.history) == 0 {
		e.notify(ErrHistoryUnderflow, "Nothing to undo")
		return nil
	}

	last := e.history[len(e.history)-1]
	out, err := e.replay(len(e.history) - 1)
	if err != nil {
		return errors.Wrapf(err, "undo %s", last.Kind)
	}

	e.history = e.history[:len(e.history)-1]
	e.redo = append(e.redo, last)
	e.current = out
	e.log().Debug("undone", "op", last.String(), "history", len(e.history))
	return nil
}

// Redo re-applies the most recently undone operation. The rest of the
// redo stack is kept. With nothing to redo it sends an
// ErrHistoryUnderflow notice and does nothing.
func (e *Editor) Redo() error {
	e.mu.Lock()
	defer e.unlock()

	if len(e.redo) == 0 {
		e.notify(ErrHistoryUnderflow, "Nothing to redo")
		return nil
	}

	next := e.redo[len(e.redo)-1]
	out, err := next.Transform(e.current)
	if err != nil {
		return errors.Wrapf(err, "redo %s", next.Kind)
	}

	e.redo = e.redo[:len(e.redo)-1]
	e.push(out, next)
	e.log().Debug("redone", "op", next.String(), "history", len(e.history))
	return nil
}

// Refresh rebuilds the displayed image from the original and the history.
func (e *Editor) Refresh() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.original == nil {
		return errors.Wrap(ErrMissingImage, "refresh")
	}
	out, err := e.replay(len(e.history))
	if err != nil {
		return err
	}
	e.current = out
	return nil
}

// replay returns the image after the first depth history entries,
// starting from the deepest stored snapshot. Caller must hold e.mu.
func (e *Editor) replay(depth int) (*raster.Buffer, error) {
	from, buf := e.snaps.Nearest(depth)
	if buf == nil {
		from, buf = 0, e.original
	}
	out, err := applyAll(buf, e.history[from:depth])
	if err != nil {
		return nil, err
	}
	e.snaps.Put(depth, out)
	return out, nil
}

// applyAll runs ops in order over src.
func applyAll(src *raster.Buffer, ops []op.Op) (*raster.Buffer, error) {
	out := src
	for i, o := range ops {
		next, err := o.Transform(out)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d (%s)", i+1, o.Kind)
		}
		out = next
	}
	return out, nil
}
