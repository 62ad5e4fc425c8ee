// Package filespecs expands user-supplied filespecs (paths, possibly relative, possibly containing
// wildcards) into the concrete files they designate.
package filespecs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mtth/filespecs/internal/except"
	"github.com/mtth/filespecs/internal/filter"
	"github.com/mtth/filespecs/internal/fspath"
	"github.com/spf13/afero"
)

var (
	// fileSystem is the filesystem used by default. It is swapped out for testing.
	fileSystem = afero.NewOsFs()

	// getwd provides the default base directory for relative patterns.
	getwd = os.Getwd

	errUnknownBaseDir = errors.New("unable to determine base directory")
)

// Option customizes an Expander.
type Option func(*Expander)

// WithBaseDir sets the directory relative patterns are resolved against. A relative directory is
// itself resolved against the current working directory. Defaults to the working directory.
func WithBaseDir(dpath fspath.Local) Option {
	return func(e *Expander) { e.baseDir = dpath }
}

// WithExclude drops matching paths from every pattern's matches. A pattern whose matches are all
// excluded expands to empty.
func WithExclude(pred filter.Predicate) Option {
	return func(e *Expander) { e.exclude = pred }
}

// WithRecursive enables ** matching across directory levels.
func WithRecursive(recursive bool) Option {
	return func(e *Expander) { e.recursive = recursive }
}

// WithFs sets the filesystem patterns are expanded against.
func WithFs(afs afero.Fs) Option {
	return func(e *Expander) { e.fs = afs }
}

// Expander resolves filespecs into files. It holds no state between calls and may be used
// concurrently.
type Expander struct {
	fs        afero.Fs
	baseDir   fspath.Local
	exclude   filter.Predicate
	recursive bool
}

// NewExpander returns an Expander configured with the given options.
func NewExpander(opts ...Option) *Expander {
	e := &Expander{fs: fileSystem}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand is a convenience wrapper around NewExpander(opts...).Expand(patterns).
func Expand(patterns []string, opts ...Option) ([]fspath.Local, error) {
	return NewExpander(opts...).Expand(patterns)
}

// Expand returns the absolute paths matched by the patterns, concatenated in pattern order. Every
// pattern is expanded before failing: if any of them matched nothing, the returned error is a
// *NoMatchError describing all of them.
func (e *Expander) Expand(patterns []string) ([]fspath.Local, error) {
	exps, err := e.ExpandEach(patterns)
	if err != nil {
		return nil, err
	}

	var paths []fspath.Local
	failed := false
	for _, exp := range exps {
		if exp.Status() == StatusEmpty {
			failed = true
			continue
		}
		paths = append(paths, exp.Matches...)
	}
	if failed {
		err := &NoMatchError{Expansions: exps}
		slog.Info("Filespec expansion failed.", except.LogErrAttr(err))
		return nil, err
	}

	slog.Info(fmt.Sprintf("Expanded %d filespec(s) into %d path(s).", len(patterns), len(paths)))
	return paths, nil
}

// ExpandEach expands every pattern independently and returns one Expansion per pattern, in input
// order. Empty expansions are not an error here.
func (e *Expander) ExpandEach(patterns []string) ([]Expansion, error) {
	base, err := e.resolveBaseDir()
	if err != nil {
		return nil, err
	}
	slog.Debug("Expanding filespecs...", dataAttrs(slog.String("base", base), slog.Int("count", len(patterns))))

	globber := e.globber()
	exps := make([]Expansion, 0, len(patterns))
	for _, pat := range patterns {
		exps = append(exps, e.expandOne(globber, base, pat))
	}
	return exps, nil
}

func (e *Expander) globber() Globber {
	if e.recursive {
		return NewRecursiveGlobber(e.fs)
	}
	return NewGlobber(e.fs)
}

// resolveBaseDir reads the working directory at most once per call.
func (e *Expander) resolveBaseDir() (fspath.Local, error) {
	dpath := fspath.CollapseLeading(fspath.ExpandHome(e.baseDir))
	if filepath.IsAbs(dpath) {
		return filepath.Clean(dpath), nil
	}
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUnknownBaseDir, err)
	}
	return filepath.Join(wd, dpath), nil
}

func (e *Expander) expandOne(globber Globber, base fspath.Local, pat string) Expansion {
	exp := Expansion{Pattern: pat}
	resolved := fspath.Resolve(base, pat)
	attrs := dataAttrs(slog.String("pattern", pat), slog.String("resolved", resolved))

	matches, err := globber.Glob(resolved)
	if err != nil {
		slog.Warn("Malformed filespec, treating as empty.", attrs, except.LogErrAttr(err))
		exp.Err = err
		return exp
	}
	for _, match := range matches {
		if e.exclude.Match(match) {
			continue
		}
		exp.Matches = append(exp.Matches, match)
	}

	slog.Debug("Expanded filespec.", attrs, slog.Int("matches", len(exp.Matches)), slog.Int("excluded", len(matches)-len(exp.Matches)))
	return exp
}
