package op

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LogVersion is the operation log format version written by EncodeLog.
const LogVersion = 1

// LogExt is the suffix of the history sidecar written beside an image.
const LogExt = ".ops"

// logFile is the on-disk layout of an operation log.
type logFile struct {
	Version int  `yaml:"version"`
	Ops     []Op `yaml:"ops"`
}

// EncodeLog writes ops to w as a YAML document, oldest first.
func EncodeLog(w io.Writer, ops []Op) error {
	for i, o := range ops {
		if !o.Kind.Valid() {
			return errors.Wrapf(ErrInvalidOp, "log entry %d: kind %d", i, uint8(o.Kind))
		}
	}
	if ops == nil {
		ops = []Op{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(logFile{Version: LogVersion, Ops: ops}); err != nil {
		return errors.Wrap(err, "op: encode log")
	}
	return errors.Wrap(enc.Close(), "op: encode log")
}

// DecodeLog reads a log written by EncodeLog. Every entry is checked and
// its parameters clamped as if it had been built by a constructor.
func DecodeLog(r io.Reader) ([]Op, error) {
	var lf logFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrCorruptLog, "empty log")
		}
		return nil, errors.Wrapf(ErrCorruptLog, "%v", err)
	}
	if lf.Version != LogVersion {
		return nil, errors.Wrapf(ErrCorruptLog, "unsupported version %d", lf.Version)
	}

	ops := make([]Op, len(lf.Ops))
	for i, o := range lf.Ops {
		if !o.Kind.Valid() {
			return nil, errors.Wrapf(ErrCorruptLog, "entry %d has no kind", i)
		}
		ops[i] = o.normalize()
	}
	return ops, nil
}

// ReadLogFile decodes the log at path.
func ReadLogFile(path string) ([]Op, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "op: read log")
	}
	ops, err := DecodeLog(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return ops, nil
}

// WriteLogFile encodes ops to path, replacing any existing file.
func WriteLogFile(path string, ops []Op) error {
	var buf bytes.Buffer
	if err := EncodeLog(&buf, ops); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "op: write log")
	}
	return nil
}

// SidecarPath returns the history log path for an image file.
func SidecarPath(imagePath string) string {
	return imagePath + LogExt
}
