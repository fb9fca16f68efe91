// Package paths confines caller-supplied paths to a root directory and
// locates the xmllint configuration directory.
//
// # Root Confinement
//
// Every directory the linter touches is given relative to a run root (the
// build workspace). [Resolve] joins, normalizes, and checks the result:
//
//	xsds, err := paths.Resolve(root, "schemas", paths.MustExist)
//	if err != nil {
//	    // errors.Is(err, lintErrors.ErrInvalidPath) or ErrMissingInput
//	}
//
// A path whose normalized form leaves the root (for example "../outside")
// is rejected before any file system access beyond the root itself.
// [MayCreate] is used for the report directory, which is created on demand.
//
// # XDG Base Directory Compliance
//
// [ConfigHome] wraps github.com/adrg/xdg so the config search path follows
// XDG conventions on Linux and macOS (~/.config).
package paths
