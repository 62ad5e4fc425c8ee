// Package filter implements exclusion predicates over expanded paths.
package filter

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/mtth/filespecs/internal/fspath"
)

var ErrInvalidPattern = errors.New("invalid exclusion pattern")

// Predicate matches paths against a list of glob patterns. The zero value matches nothing.
type Predicate []glob.Glob

// New compiles the patterns into a predicate. Patterns use / as separator, so * stays within a
// single path segment and ** crosses them.
func New(pats []string) (Predicate, error) {
	var globs []glob.Glob
	for _, pat := range pats {
		compiled, err := glob.Compile(pat, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, pat, err)
		}
		globs = append(globs, compiled)
	}
	return Predicate(globs), nil
}

// Match returns true if any pattern matches either the full path or its base name.
func (p Predicate) Match(fpath fspath.Local) bool {
	posix := filepath.ToSlash(fpath)
	name := path.Base(posix)
	for _, g := range p {
		if g.Match(posix) || g.Match(name) {
			return true
		}
	}
	return false
}
