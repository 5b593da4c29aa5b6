// Package runner orchestrates the per-file rewrite loop: read, decode,
// fix, and write back or report. Each file is processed independently; the
// only state shared between files is the read-only registry and settings.
package runner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/muneeb706/django-upgrade-agent/internal/config"
	"github.com/muneeb706/django-upgrade-agent/internal/fix"
	"github.com/muneeb706/django-upgrade-agent/internal/fixers"
	"github.com/muneeb706/django-upgrade-agent/pkg/diff"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitChanged = 1
	ExitError   = 2
)

// Stdin is the sentinel path meaning "read source from standard input and
// write the result to standard output".
const Stdin = "-"

// Options configures the runner behavior.
type Options struct {
	Files                 []string
	TargetVersion         string // empty means "use config file / default"
	Only                  []string
	Skip                  []string
	ListFixers            bool
	ExitZeroEvenIfChanged bool
	Diff                  bool
	NoColor               bool
	ConfigPath            string
	Stdin                 io.Reader
	Stdout                io.Writer
	Stderr                io.Writer
}

// Run executes the rewrite pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	registry := fixers.Default()

	if opts.ListFixers {
		for _, name := range registry.Names() {
			fmt.Fprintln(opts.Stdout, name)
		}
		return ExitOK
	}

	settings, code := resolveSettings(opts, registry)
	if code != ExitOK {
		return code
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(opts.Stderr, "django-upgrade: no files given")
		return ExitError
	}

	ret := ExitOK
	decodeFailed := false
	for _, path := range opts.Files {
		fileCode, badEncoding := runFile(opts, registry, settings, path)
		if fileCode > ret {
			ret = fileCode
		}
		decodeFailed = decodeFailed || badEncoding
	}

	if opts.ExitZeroEvenIfChanged && ret == ExitChanged && !decodeFailed {
		return ExitOK
	}
	return ret
}

// resolveSettings merges flag values over the config file and validates
// the target version and fixer selections before any file is touched.
func resolveSettings(opts *Options, registry *fix.Registry) (*fix.Settings, int) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "django-upgrade: %v\n", err)
		return nil, ExitError
	}

	target := opts.TargetVersion
	if target == "" {
		target = cfg.TargetVersion
	}
	only := opts.Only
	if len(only) == 0 {
		only = cfg.Only
	}
	skip := opts.Skip
	if len(skip) == 0 {
		skip = cfg.Skip
	}

	version, err := fix.ParseVersion(target)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "django-upgrade: %v\n", err)
		return nil, ExitError
	}

	settings, err := fix.NewSettings(registry, version, only, skip)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "django-upgrade: %v\n", err)
		return nil, ExitError
	}
	return settings, ExitOK
}

// runFile processes a single file (or stdin) and returns its exit code,
// plus whether the input failed UTF-8 decoding.
func runFile(opts *Options, registry *fix.Registry, settings *fix.Settings, path string) (int, bool) {
	var src []byte
	var err error
	if path == Stdin {
		src, err = io.ReadAll(opts.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(opts.Stderr, "django-upgrade: %v\n", err)
		return ExitError, false
	}

	if !utf8.Valid(src) {
		fmt.Fprintf(opts.Stderr, "%s is non-utf-8 (not supported)\n", path)
		return ExitChanged, true
	}

	input := string(src)
	output := fix.Source(input, registry, settings, path)

	if opts.Diff {
		d := diff.Unified(path, input, output)
		if d == "" {
			return ExitOK, false
		}
		writeDiff(opts.Stdout, d, opts.NoColor)
		return ExitChanged, false
	}

	if path == Stdin {
		fmt.Fprint(opts.Stdout, output)
		if output == input {
			return ExitOK, false
		}
		return ExitChanged, false
	}

	if output == input {
		return ExitOK, false
	}

	fmt.Fprintf(opts.Stderr, "Rewriting %s\n", path)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		fmt.Fprintf(opts.Stderr, "django-upgrade: writing %s: %v\n", path, err)
		return ExitError, false
	}
	return ExitChanged, false
}

var (
	addedLine   = color.New(color.FgGreen)
	removedLine = color.New(color.FgRed)
	hunkLine    = color.New(color.FgCyan)
)

// writeDiff prints a unified diff, colorizing added, removed, and hunk
// header lines unless color is disabled.
func writeDiff(w io.Writer, d string, noColor bool) {
	if noColor {
		fmt.Fprint(w, d)
		return
	}
	for _, line := range strings.SplitAfter(d, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			addedLine.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			removedLine.Fprint(w, line)
		case strings.HasPrefix(line, "@@"):
			hunkLine.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
}
