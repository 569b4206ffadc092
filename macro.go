package andie

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"

	"github.com/gogpu/andie/op"
	"github.com/gogpu/andie/raster"
)

// MacroFile is the name of the macro log written next to the image.
const MacroFile = "Macro" + op.LogExt

// StartMacro begins recording a new macro, discarding any previous one.
// Every operation applied while recording is appended to it.
func (e *Editor) StartMacro() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.macro = nil
	e.recording = true
	e.log().Debug("macro recording started")
}

// StopMacro stops recording. The recorded operations are kept.
func (e *Editor) StopMacro() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.recording = false
	e.log().Debug("macro recording stopped", "ops", len(e.macro))
}

// IsRecording reports whether a macro is being recorded.
func (e *Editor) IsRecording() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recording
}

// Macro returns the recorded operations, oldest first.
func (e *Editor) Macro() []op.Op {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.macro)
}

// MacroPath returns where SaveMacro writes, or "" if the image has no path.
func (e *Editor) MacroPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.macroPath()
}

func (e *Editor) macroPath() string {
	if e.path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(e.path), MacroFile)
}

// SaveMacro stops recording and writes the macro next to the image.
func (e *Editor) SaveMacro() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.recording = false
	path := e.macroPath()
	if path == "" {
		return errors.Wrap(ErrNoPath, "save macro")
	}
	if err := op.WriteLogFile(path, e.macro); err != nil {
		return errors.Wrap(err, "save macro")
	}
	e.log().Debug("macro saved", "path", path, "ops", len(e.macro))
	return nil
}

// ApplyMacro applies the macro saved next to the image, or the recorded
// macro if no file exists there.
func (e *Editor) ApplyMacro() error {
	e.mu.Lock()
	defer e.unlock()

	ops := e.macro
	if path := e.macroPath(); path != "" {
		loaded, err := op.ReadLogFile(path)
		switch {
		case err == nil:
			ops = loaded
		case !errors.Is(err, fs.ErrNotExist):
			return errors.Wrap(err, "apply macro")
		}
	}
	return e.applyMacro(ops)
}

// ApplyMacroFile applies the operations logged in path.
func (e *Editor) ApplyMacroFile(path string) error {
	ops, err := op.ReadLogFile(path)
	if err != nil {
		return errors.Wrap(err, "apply macro")
	}

	e.mu.Lock()
	defer e.unlock()
	return e.applyMacro(ops)
}

// applyMacro applies ops as a unit: if any step fails the image and
// history are left as they were. Each step becomes its own history entry.
// Caller must hold e.mu and release it with unlock.
func (e *Editor) applyMacro(ops []op.Op) error {
	if e.original == nil {
		return errors.Wrap(ErrMissingImage, "apply macro")
	}
	if len(ops) == 0 {
		e.notify(ErrHistoryUnderflow, "Macro is empty")
		return nil
	}

	stamped := make([]op.Op, len(ops))
	for i, o := range ops {
		stamped[i] = e.stampSeed(o)
	}

	results := make([]*raster.Buffer, len(stamped))
	cur := e.current
	for i, o := range stamped {
		next, err := o.Transform(cur)
		if err != nil {
			e.log().Debug("macro failed", "step", i+1, "op", o.String(), "error", err)
			return errors.Wrapf(err, "apply macro step %d (%s)", i+1, o.Kind)
		}
		results[i] = next
		cur = next
	}

	for i, o := range stamped {
		e.push(results[i], o)
	}
	e.redo = nil
	if e.recording {
		e.macro = append(e.macro, stamped...)
	}
	e.log().Debug("macro applied", "ops", len(stamped), "history", len(e.history))
	return nil
}
