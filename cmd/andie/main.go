// Command andie applies recorded edits to an image from the command line.
//
// Usage:
//
//	andie [flags] image
//
// The image is opened with its history sidecar, if any. Then, in order, the
// -script log is applied, the saved macro is applied (-macro), the last N
// operations are undone (-undo), the history is printed (-history), the
// edited image is exported (-export) and the original plus history are
// saved (-save).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/gogpu/andie"
	"github.com/gogpu/andie/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	config  string
	script  string
	macro   bool
	undo    int
	history bool
	export  string
	save    bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, string, error) {
	fs := flag.NewFlagSet("andie", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f flags
	fs.StringVar(&f.config, "config", "", "YAML configuration file")
	fs.StringVar(&f.script, "script", "", "operation log to apply")
	fs.BoolVar(&f.macro, "macro", false, "apply Macro.ops from the image directory")
	fs.IntVar(&f.undo, "undo", 0, "undo the last `N` operations")
	fs.BoolVar(&f.history, "history", false, "print the edit history")
	fs.StringVar(&f.export, "export", "", "write the edited image to `file`")
	fs.BoolVar(&f.save, "save", false, "save the original image and its history")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: andie [flags] image")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", errors.New("expected exactly one image")
	}
	if f.undo < 0 {
		return nil, "", errors.Errorf("-undo must not be negative, got %d", f.undo)
	}
	return &f, fs.Arg(0), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, path, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "andie:", err)
		return 2
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		fmt.Fprintf(stderr, "andie: %v\n", err)
		return 1
	}
	andie.SetLogger(cfg.Logger(stderr))
	defer andie.SetLogger(nil)

	notify := andie.NotifierFunc(func(n andie.Notice) {
		fmt.Fprintln(stderr, "andie:", n.Message)
	})
	ed := andie.New(append(cfg.Options(), andie.WithNotifier(notify))...)

	if err := edit(ed, f, path, stdout); err != nil {
		if cfg.Debug() {
			fmt.Fprintf(stderr, "andie: %+v\n", err)
		} else {
			fmt.Fprintf(stderr, "andie: %v\n", err)
		}
		return 1
	}
	return 0
}

func edit(ed *andie.Editor, f *flags, path string, stdout io.Writer) error {
	if err := ed.Open(path); err != nil {
		return err
	}
	if f.script != "" {
		if err := ed.ApplyMacroFile(f.script); err != nil {
			return err
		}
	}
	if f.macro {
		if err := ed.ApplyMacro(); err != nil {
			return err
		}
	}
	for range f.undo {
		if err := ed.Undo(); err != nil {
			return err
		}
	}
	if f.history {
		for i, o := range ed.History() {
			fmt.Fprintf(stdout, "%3d  %s\n", i+1, o)
		}
	}
	if f.export != "" {
		if err := ed.Export(f.export); err != nil {
			return err
		}
	}
	if f.save {
		if err := ed.Save(); err != nil {
			return err
		}
	}
	return nil
}
