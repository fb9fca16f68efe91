package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/xmllint/internal/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "xmllint"

// DefaultDirPerm is the permission for directories created by the linter.
const DefaultDirPerm = 0o755

// Kind selects the existence requirement applied by Resolve.
type Kind int

const (
	// MustExist requires the resolved path to be an existing directory.
	MustExist Kind = iota
	// MayCreate accepts a missing path but rejects an existing non-directory.
	MayCreate
)

// Resolve joins rel onto root, normalizes the result, and verifies that it
// stays inside root. Failures are marked with errors.ErrMissingInput (empty
// rel) or errors.ErrInvalidPath (escape, missing, or wrong type).
func Resolve(root, rel string, kind Kind) (string, error) {
	if rel == "" {
		return "", errors.Wrap(errors.ErrMissingInput, "empty path")
	}
	if strings.ContainsRune(rel, '\x00') {
		return "", errors.Mark(errors.Newf("%q contains a null byte", rel), errors.ErrInvalidPath)
	}

	base, err := Root(root)
	if err != nil {
		return "", err
	}

	resolved := filepath.Join(base, rel)
	if !Within(base, resolved) {
		return "", errors.Mark(
			errors.Newf("%q resolves outside the root directory", rel),
			errors.ErrInvalidPath)
	}

	info, err := os.Stat(resolved)
	switch {
	case os.IsNotExist(err):
		if kind == MayCreate {
			return resolved, nil
		}
		return "", errors.Mark(errors.Newf("%q does not exist", rel), errors.ErrInvalidPath)
	case err != nil:
		return "", errors.Mark(errors.Wrapf(err, "checking %q", rel), errors.ErrInvalidPath)
	case !info.IsDir():
		return "", errors.Mark(errors.Newf("%q is not a directory", rel), errors.ErrInvalidPath)
	}

	return resolved, nil
}

// Root returns the absolute, cleaned form of root after checking that it is
// an existing directory.
func Root(root string) (string, error) {
	if root == "" {
		return "", errors.Wrap(errors.ErrMissingInput, "empty root directory")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "resolving root %q", root), errors.ErrInvalidPath)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "root %q", root), errors.ErrInvalidPath)
	}
	if !info.IsDir() {
		return "", errors.Mark(errors.Newf("root %q is not a directory", root), errors.ErrInvalidPath)
	}
	return abs, nil
}

// Within reports whether path equals root or lies beneath it. Both
// arguments are compared in cleaned form; no symlinks are followed.
func Within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// RelSlash returns path relative to root using forward slashes, the form
// used in progress output and report records. It falls back to path when
// no relative form exists.
func RelSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0755) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/xmllint, the user-level config search dir.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}
