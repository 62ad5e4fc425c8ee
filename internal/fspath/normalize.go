package fspath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mtth/filespecs/internal/except"
)

// CollapseLeading replaces a run of leading separators with a single one. A pattern such as
// //tmp/data/* would otherwise be handed to the globber as a network-style root.
func CollapseLeading(fpath Local) Local {
	i := 0
	for i < len(fpath) && os.IsPathSeparator(fpath[i]) {
		i++
	}
	if i <= 1 {
		return fpath
	}
	return string(filepath.Separator) + fpath[i:]
}

// ExpandHome replaces a leading ~ with the current user's home directory. Other forms (e.g.
// ~user) are left untouched.
func ExpandHome(fpath Local) Local {
	if fpath == "~" {
		return xdg.Home
	}
	rest, ok := strings.CutPrefix(fpath, "~")
	if !ok || rest == "" || !os.IsPathSeparator(rest[0]) {
		return fpath
	}
	return filepath.Join(xdg.Home, rest)
}

// Resolve returns an absolute, cleaned version of the pattern. Relative patterns are joined onto
// base, which must itself be absolute.
func Resolve(base, fpath Local) Local {
	except.Must(filepath.IsAbs(base), "base %v is not absolute", base)
	fpath = CollapseLeading(ExpandHome(fpath))
	if filepath.IsAbs(fpath) {
		return filepath.Clean(fpath)
	}
	return filepath.Join(base, fpath)
}

// Unroot converts an absolute local path into the root-relative form expected by fs.FS
// implementations mounted at the filesystem root.
func Unroot(fpath Local) POSIX {
	except.Must(filepath.IsAbs(fpath), "path %v is not absolute", fpath)
	rel := filepath.ToSlash(strings.TrimLeft(fpath, string(filepath.Separator)))
	if rel == "" {
		return "."
	}
	return rel
}

// Reroot is the inverse of Unroot.
func Reroot(fpath POSIX) Local {
	return filepath.Join(string(filepath.Separator), filepath.FromSlash(fpath))
}
