package filespecs

import (
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mtth/filespecs/internal/except"
	"github.com/mtth/filespecs/internal/fspath"
	"github.com/spf13/afero"
)

// Globber is the wildcard engine used to expand normalized patterns.
type Globber interface {
	// Glob returns all existing paths matching an absolute pattern, in listing order. It returns an
	// error only when the pattern is malformed.
	Glob(pattern fspath.Local) ([]fspath.Local, error)
}

// NewGlobber returns a globber with single-level shell semantics: each wildcard matches within one
// path segment and ** behaves like *. A pattern without wildcards matches itself if it exists.
func NewGlobber(afs afero.Fs) Globber {
	return shallowGlobber{afs}
}

type shallowGlobber struct {
	fs afero.Fs
}

// Glob implements Globber.
func (g shallowGlobber) Glob(pattern fspath.Local) ([]fspath.Local, error) {
	except.Must(filepath.IsAbs(pattern), "pattern %v is not absolute", pattern)
	return afero.Glob(g.fs, pattern)
}

// NewRecursiveGlobber returns a globber where ** matches any number of path segments, including
// zero. Brace alternatives ({a,b}) are also supported.
func NewRecursiveGlobber(afs afero.Fs) Globber {
	root := afero.NewBasePathFs(afs, string(filepath.Separator))
	return recursiveGlobber{afero.NewIOFS(root)}
}

type recursiveGlobber struct {
	fsys fs.FS
}

// Glob implements Globber.
func (g recursiveGlobber) Glob(pattern fspath.Local) ([]fspath.Local, error) {
	matches, err := doublestar.Glob(g.fsys, fspath.Unroot(pattern))
	if err != nil {
		return nil, err
	}
	for i, match := range matches {
		matches[i] = fspath.Reroot(match)
	}
	return matches, nil
}
