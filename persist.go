package andie

import (
	"io/fs"

	"github.com/pkg/errors"

	"github.com/gogpu/andie/internal/imaging"
	"github.com/gogpu/andie/op"
)

// Open loads the image at path and, if a history sidecar (path + ".ops")
// exists, replays it.
//
// A sidecar that cannot be read or replayed is logged and ignored: the
// image opens with empty history. Redo is always cleared. The macro is
// left alone.
func (e *Editor) Open(path string) error {
	buf, err := imaging.Load(path)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset(buf, path)
	e.log().Debug("opened", "path", path, "width", buf.Width(), "height", buf.Height())

	sidecar := op.SidecarPath(path)
	ops, err := op.ReadLogFile(sidecar)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		e.log().Warn("ignoring history", "path", sidecar, "error", err)
		return nil
	}

	out, err := applyAll(buf, ops)
	if err != nil {
		e.log().Warn("ignoring history", "path", sidecar, "error", err)
		return nil
	}
	e.history = ops
	e.current = out
	e.snaps.Put(len(ops), out)
	e.log().Debug("replayed history", "path", sidecar, "ops", len(ops))
	return nil
}

// Save writes the original image back to its path and the history to the
// sidecar. The edited image is not written; see Export.
func (e *Editor) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.save()
}

// save is Save without locking. Caller must hold e.mu.
func (e *Editor) save() error {
	if e.original == nil {
		return errors.Wrap(ErrMissingImage, "save")
	}
	if e.path == "" {
		return errors.Wrap(ErrNoPath, "save")
	}

	if err := imaging.Save(e.path, e.original, e.codec); err != nil {
		return err
	}
	sidecar := op.SidecarPath(e.path)
	if err := op.WriteLogFile(sidecar, e.history); err != nil {
		return errors.Wrap(err, "save history")
	}
	e.log().Debug("saved", "path", e.path, "ops", len(e.history))
	return nil
}

// SaveAs is Save to a new path, which becomes the editor's path. The
// extension must name a writable format; if it does not, nothing is
// written and the path is unchanged.
func (e *Editor) SaveAs(path string) error {
	if _, err := imaging.EncoderFor(path); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.original == nil {
		return errors.Wrap(ErrMissingImage, "save as")
	}
	prev := e.path
	e.path = path
	if err := e.save(); err != nil {
		e.path = prev
		return err
	}
	return nil
}

// Export writes the displayed image to path with no sidecar.
func (e *Editor) Export(path string) error {
	e.mu.Lock()
	current := e.current
	e.mu.Unlock()

	if current == nil {
		return errors.Wrap(ErrMissingImage, "export")
	}
	if err := imaging.Save(path, current, e.codec); err != nil {
		return err
	}
	e.log().Debug("exported", "path", path)
	return nil
}
