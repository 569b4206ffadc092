package andie

import (
	"log/slog"

	"github.com/gogpu/andie/internal/imaging"
)

// Option configures an Editor during creation.
//
// Example:
//
//	// Silent editor with entropy-seeded scattering
//	ed := andie.New()
//
//	// Reproducible editor that reports notices to the UI
//	ed := andie.New(andie.WithSeed(1), andie.WithNotifier(ui))
type Option func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	logger      *slog.Logger
	notifier    Notifier
	seed        uint64
	seeded      bool
	jpegQuality int
}

// defaultOptions returns the default editor options.
func defaultOptions() editorOptions {
	return editorOptions{
		jpegQuality: imaging.DefaultJPEGQuality,
	}
}

// WithLogger sets the logger for one editor, overriding [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *editorOptions) {
		o.logger = l
	}
}

// WithNotifier sets the receiver of notices. By default notices are
// logged at Info level.
func WithNotifier(n Notifier) Option {
	return func(o *editorOptions) {
		o.notifier = n
	}
}

// WithSeed seeds the source that picks seeds for RandomScattering
// operations applied without one. Editors built with the same seed and
// fed the same operations produce identical images.
func WithSeed(seed uint64) Option {
	return func(o *editorOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithJPEGQuality sets the quality used when saving or exporting JPEG
// files, clamped to [1, 100].
func WithJPEGQuality(q int) Option {
	return func(o *editorOptions) {
		o.jpegQuality = q
	}
}
